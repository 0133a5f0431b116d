package commands

import (
	"os"

	"capmatrix/internal/cli"
	"capmatrix/internal/config"
	"capmatrix/internal/parser"
	"capmatrix/internal/report"
	"capmatrix/internal/storage"
	"capmatrix/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	Summary  *SummaryCommand
	View     *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, logger *zap.Logger) *Commands {
	// Initialize dependencies
	resultsParser := parser.NewResultsParser()
	pipe := newPipeline(cfg, resultsParser, logger)
	uploader := storage.NewGCSUploader(cfg, logger, os.Stderr)
	filter := report.NewFilter()
	viewer := ui.NewMatrixViewer()

	return &Commands{
		Generate: NewGenerateCommand(cfg, pipe, uploader),
		Summary:  NewSummaryCommand(cfg, pipe, filter),
		View:     NewViewCommand(cfg, pipe, filter, viewer),
	}
}

// Register registers all commands with cobra. The root command itself
// generates the matrix.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, level zap.AtomicLevel) {
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", "", "Path to an env file with CAPMATRIX_* settings (default .env if present)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		cli.SetVerbose(level, flags.Verbose)
		return nil
	}

	// Generate (root) command
	rootCmd.Args = cobra.MaximumNArgs(2)
	rootCmd.RunE = c.Generate.Execute
	rootCmd.Flags().StringVar(&flags.MirrorPath, "mirror-path", "", "Local copy written before a gs:// upload (default "+config.DefaultMirrorPath+")")
	rootCmd.Flags().StringVar(&flags.Bucket, "bucket", "", "Bucket receiving gs:// uploads (default "+config.DefaultBucket+")")
	rootCmd.Flags().StringVar(&flags.ProjectID, "project", "", "Cloud project used for uploads (default "+config.DefaultProjectID+")")
	rootCmd.Flags().StringVar(&flags.CredentialsFile, "credentials", "", "Service account key file used for uploads")
	rootCmd.Flags().DurationVar(&flags.UploadTimeout, "timeout", 0, "Timeout for writing and uploading the matrix (default "+config.DefaultUploadTimeout.String()+")")

	// Summary command
	summaryCmd := &cobra.Command{
		Use:   "summary <inputFile>",
		Short: "Print the capability matrix as a table",
		Long:  "Aggregate runner test results and print the capability matrix with per-engine totals",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Summary.Execute,
	}
	summaryCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter categories by name pattern (supports wildcards, e.g., 'Uses*' or '*ParDo*')")
	rootCmd.AddCommand(summaryCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view <inputFile>",
		Short: "Browse the capability matrix interactively",
		Long:  "Display categories and per-engine test outcomes in an interactive viewer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.View.Execute,
	}
	viewCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter categories by name pattern (supports wildcards, e.g., 'Uses*' or '*ParDo*')")
	rootCmd.AddCommand(viewCmd)
}
