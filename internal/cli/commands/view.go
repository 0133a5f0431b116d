package commands

import (
	"capmatrix/internal/config"
	"capmatrix/internal/domain"
	"capmatrix/internal/report"
	"capmatrix/internal/ui"

	"github.com/spf13/cobra"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config   *config.Config
	pipeline *pipeline
	filter   *report.Filter
	viewer   ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, pipe *pipeline, filter *report.Filter, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:   cfg,
		pipeline: pipe,
		filter:   filter,
		viewer:   viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &domain.MissingArgumentError{}
	}

	doc, err := vc.pipeline.build(args[0])
	if err != nil {
		return err
	}

	return vc.viewer.View(doc, vc.filter.FilterRows(report.Rows(doc), vc.config.Flags.Filter))
}
