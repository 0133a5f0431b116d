package commands

import (
	"capmatrix/internal/config"
	"capmatrix/internal/domain"
	"capmatrix/internal/report"
	"capmatrix/internal/ui"

	"github.com/spf13/cobra"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	config   *config.Config
	pipeline *pipeline
	filter   *report.Filter
}

// NewSummaryCommand creates a new SummaryCommand
func NewSummaryCommand(cfg *config.Config, pipe *pipeline, filter *report.Filter) *SummaryCommand {
	return &SummaryCommand{
		config:   cfg,
		pipeline: pipe,
		filter:   filter,
	}
}

// Execute runs the command
func (sc *SummaryCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &domain.MissingArgumentError{}
	}

	doc, err := sc.pipeline.build(args[0])
	if err != nil {
		return err
	}

	rows := sc.filter.FilterRows(report.Rows(doc), sc.config.Flags.Filter)
	ui.NewFormatter(cmd.OutOrStdout()).PrintMatrix(doc, rows)
	return nil
}
