// Package aggregate turns per-engine test results into the category
// indexed capability matrix rows.
package aggregate

import (
	"slices"
	"strings"

	"capmatrix/internal/domain"

	"go.uber.org/zap"
)

// Options controls aggregation
type Options struct {
	// MarkerCategory is dropped from every test case before grouping
	MarkerCategory string
}

// Aggregator builds a CategoryIndex from a results document
type Aggregator struct {
	opts   Options
	logger *zap.Logger
}

// New creates a new Aggregator
func New(opts Options, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{opts: opts, logger: logger}
}

// DisplayName returns the part of a category after its last '.'
func DisplayName(category string) string {
	return category[strings.LastIndex(category, ".")+1:]
}

// Aggregate groups every engine's outcomes by category, labels each
// engine's support and back-fills engines that never reported a category.
func (a *Aggregator) Aggregate(doc *domain.TestResultsDocument) *domain.CategoryIndex {
	index := domain.NewCategoryIndex()

	for _, engine := range doc.Engines {
		a.collectEngine(index, engine)
	}

	filled := backfill(index, doc.EngineKeys())
	a.logger.Debug("Aggregated test results",
		zap.Int("engines", len(doc.Engines)),
		zap.Int("categories", index.Len()),
		zap.Int("backfilled", filled))

	return index
}

// collectEngine records one engine's outcomes. Cells are appended to their
// rows in the order the engine first touched each category.
func (a *Aggregator) collectEngine(index *domain.CategoryIndex, engine domain.EngineResults) {
	cells := make(map[string]*domain.ClassValue)
	var order []string

	for _, tc := range engine.TestCases {
		if len(tc.Categories) == 0 {
			continue
		}
		outcome := tc.Outcome()

		for _, category := range tc.Categories {
			if category == a.opts.MarkerCategory {
				continue
			}

			index.Add(&domain.CategoryEntry{
				Category: category,
				Name:     DisplayName(category),
			})

			cell, ok := cells[category]
			if !ok {
				cell = &domain.ClassValue{Class: engine.Key}
				cells[category] = cell
				order = append(order, category)
			}

			if tc.Passed() {
				cell.Passed = append(cell.Passed, outcome)
			} else {
				cell.Failed = append(cell.Failed, outcome)
			}
		}
	}

	for _, category := range order {
		cell := cells[category]
		label(cell)
		entry, _ := index.Get(category)
		entry.Values = append(entry.Values, *cell)
	}

	a.logger.Debug("Collected engine",
		zap.String("engine", engine.Key),
		zap.Int("test_cases", len(engine.TestCases)),
		zap.Int("categories", len(order)))
}

// label derives the support level of a reported cell. A cell with only
// failures keeps no label.
func label(cell *domain.ClassValue) {
	switch {
	case len(cell.Failed) == 0:
		cell.Level = domain.SupportYes
		cell.Detail = domain.DetailFullySupported
	case len(cell.Passed) > 0:
		cell.Level = domain.SupportPartially
		cell.Detail = domain.DetailBatchSupported
	}
}

// backfill appends a Not supported cell for every engine missing from a
// row and returns how many cells it added
func backfill(index *domain.CategoryIndex, engines []string) int {
	added := 0
	for _, entry := range index.Entries() {
		present := make(map[string]bool, len(entry.Values))
		for _, v := range entry.Values {
			present[v.Class] = true
		}
		if len(present) == len(engines) {
			continue
		}

		tests := notSupportedTests(entry.Values)
		for _, engine := range engines {
			if present[engine] {
				continue
			}
			entry.Values = append(entry.Values, domain.ClassValue{
				Class:  engine,
				Level:  domain.SupportNotSupported,
				Failed: slices.Clone(tests),
			})
			added++
		}
	}
	return added
}

// notSupportedTests lists every test recorded for a row once, by name, in
// first-seen order with the status cleared
func notSupportedTests(values []domain.ClassValue) []domain.TestOutcome {
	var tests []domain.TestOutcome
	seen := make(map[string]bool)

	for _, v := range values {
		for _, group := range [][]domain.TestOutcome{v.Passed, v.Failed} {
			for _, t := range group {
				if seen[t.Name] {
					continue
				}
				seen[t.Name] = true
				tests = append(tests, domain.TestOutcome{Name: t.Name})
			}
		}
	}
	return tests
}
