package parser

import "capmatrix/internal/domain"

// Parser reads a test results document
type Parser interface {
	ParseFile(path string) (*domain.TestResultsDocument, error)
	Parse(data []byte) (*domain.TestResultsDocument, error)
}
