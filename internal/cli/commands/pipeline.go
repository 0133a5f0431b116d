package commands

import (
	"capmatrix/internal/aggregate"
	"capmatrix/internal/config"
	"capmatrix/internal/domain"
	"capmatrix/internal/parser"
	"capmatrix/internal/report"

	"go.uber.org/zap"
)

// pipeline loads a results file and shapes it into the matrix document
type pipeline struct {
	config *config.Config
	parser parser.Parser
	logger *zap.Logger
}

func newPipeline(cfg *config.Config, p parser.Parser, logger *zap.Logger) *pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pipeline{config: cfg, parser: p, logger: logger}
}

// build parses path, aggregates it and formats the output document
func (p *pipeline) build(path string) (domain.OutputDocument, error) {
	doc, err := p.parser.ParseFile(path)
	if err != nil {
		return domain.OutputDocument{}, err
	}
	p.logger.Debug("Loaded test results",
		zap.String("path", path),
		zap.Strings("engines", doc.EngineKeys()),
		zap.Int("test_cases", doc.TotalTestCases()))

	aggregator := aggregate.New(aggregate.Options{MarkerCategory: p.config.MarkerCategory}, p.logger)
	index := aggregator.Aggregate(doc)

	return report.NewFormatter(p.config.EngineNames).Format(index, doc.EngineKeys()), nil
}
