package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"capmatrix/internal/cli"
	"capmatrix/internal/cli/commands"
	"capmatrix/internal/config"
	"capmatrix/internal/domain"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

func main() {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger, err := cli.NewLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitFailure)
	}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "capmatrix <inputFile> [outputTarget]",
		Short: "Runner capability matrix generator",
		Long: `Reshape runner test results into the capability matrix shown on the website.
Prints the matrix when no output target is given, writes it to a local path,
or mirrors it locally and uploads it when the target starts with gs://.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, logger)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = rootCmd.ExecuteContext(ctx)
	stop()
	_ = logger.Sync()

	if err != nil {
		var missing *domain.MissingArgumentError
		if errors.As(err, &missing) {
			fmt.Println(err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}
