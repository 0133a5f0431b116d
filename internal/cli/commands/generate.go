package commands

import (
	"context"

	"capmatrix/internal/config"
	"capmatrix/internal/domain"
	"capmatrix/internal/report"
	"capmatrix/internal/storage"

	"github.com/spf13/cobra"
)

// GenerateCommand handles `capmatrix <inputFile> [outputTarget]`
type GenerateCommand struct {
	config   *config.Config
	pipeline *pipeline
	uploader storage.Uploader
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(cfg *config.Config, pipe *pipeline, uploader storage.Uploader) *GenerateCommand {
	return &GenerateCommand{
		config:   cfg,
		pipeline: pipe,
		uploader: uploader,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &domain.MissingArgumentError{}
	}

	doc, err := gc.pipeline.build(args[0])
	if err != nil {
		return err
	}

	data, err := report.Marshal(doc)
	if err != nil {
		return err
	}

	var target string
	if len(args) > 1 {
		target = args[1]
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if gc.config.UploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gc.config.UploadTimeout)
		defer cancel()
	}

	sink := storage.Resolve(target, gc.config, gc.uploader, cmd.OutOrStdout())
	return sink.Write(ctx, data)
}
