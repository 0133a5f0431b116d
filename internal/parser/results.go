package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"capmatrix/internal/domain"

	"github.com/tidwall/gjson"
)

const (
	// BatchKey is the top-level key holding per-engine results
	BatchKey = "batch"
	// TestCasesKey holds the test case list of one engine
	TestCasesKey = "testCases"
)

// ResultsParser parses runner test results JSON. Engine order is taken
// from the document itself.
type ResultsParser struct{}

// NewResultsParser creates a new ResultsParser
func NewResultsParser() *ResultsParser {
	return &ResultsParser{}
}

// ParseFile reads and parses the results file at path
func (p *ResultsParser) ParseFile(path string) (*domain.TestResultsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.InputError{Path: path, Err: err}
	}

	doc, err := p.Parse(data)
	if err != nil {
		var parseErr *domain.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Parse parses a results document from raw JSON
func (p *ResultsParser) Parse(data []byte) (*domain.TestResultsDocument, error) {
	if !gjson.ValidBytes(data) {
		return nil, &domain.ParseError{Err: errors.New("invalid JSON")}
	}

	batch := gjson.GetBytes(data, BatchKey)
	if !batch.IsObject() {
		return nil, &domain.ParseError{Err: fmt.Errorf("%q is not an object", BatchKey)}
	}

	doc := &domain.TestResultsDocument{}
	var parseErr error
	batch.ForEach(func(key, value gjson.Result) bool {
		cases, err := parseTestCases(value)
		if err != nil {
			parseErr = &domain.ParseError{Err: fmt.Errorf("engine %q: %w", key.String(), err)}
			return false
		}
		doc.Set(key.String(), cases)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return doc, nil
}

func parseTestCases(engine gjson.Result) ([]domain.TestCase, error) {
	raw := engine.Get(TestCasesKey)
	if !raw.IsArray() {
		return nil, fmt.Errorf("%q is not an array", TestCasesKey)
	}

	var cases []domain.TestCase
	if err := json.Unmarshal([]byte(raw.Raw), &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
