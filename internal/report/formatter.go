// Package report shapes aggregated rows into the capability matrix
// document consumed by the website.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"capmatrix/internal/domain"
)

const (
	// Description is the title shown above the matrix
	Description = "Capability Matrix (based on runner testing)"
	// Anchor is the page anchor of the matrix block
	Anchor = "what"
)

// Style holds the cell colors of the matrix block
type Style struct {
	Yes           string
	YesBorder     string
	Partial       string
	PartialBorder string
	No            string
	NoBorder      string
}

// DefaultStyle is the website's matrix palette
var DefaultStyle = Style{
	Yes:           "fff",
	YesBorder:     "f6f6f6",
	Partial:       "f9f9f9",
	PartialBorder: "d8d8d8",
	No:            "e1e0e0",
	NoBorder:      "bcbcbc",
}

// Formatter builds the output document
type Formatter struct {
	displayNames map[string]string
	style        Style
}

// NewFormatter creates a Formatter that labels columns from displayNames
func NewFormatter(displayNames map[string]string) *Formatter {
	return &Formatter{
		displayNames: displayNames,
		style:        DefaultStyle,
	}
}

// Format returns the matrix for the given rows and engine keys. An engine
// without a display name gets a column without one.
func (f *Formatter) Format(index *domain.CategoryIndex, engines []string) domain.OutputDocument {
	columns := make([]domain.Column, 0, len(engines))
	for _, key := range engines {
		columns = append(columns, domain.Column{
			Class: key,
			Name:  f.displayNames[key],
		})
	}

	rows := make([]domain.CategoryEntry, 0, index.Len())
	for _, entry := range index.Entries() {
		rows = append(rows, *entry)
	}

	return domain.OutputDocument{
		CapabilityMatrix: domain.CapabilityMatrix{
			Columns: columns,
			Categories: []domain.CategoryGroup{
				{
					Description:  Description,
					Anchor:       Anchor,
					ColorY:       f.style.Yes,
					ColorYBorder: f.style.YesBorder,
					ColorP:       f.style.Partial,
					ColorPBorder: f.style.PartialBorder,
					ColorN:       f.style.No,
					ColorNBorder: f.style.NoBorder,
					Rows:         rows,
				},
			},
		},
	}
}

// Marshal serializes the document as compact JSON without HTML escaping
func Marshal(doc domain.OutputDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshal capability matrix: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Rows returns the rows of the document's first category group
func Rows(doc domain.OutputDocument) []domain.CategoryEntry {
	if len(doc.CapabilityMatrix.Categories) == 0 {
		return nil
	}
	return doc.CapabilityMatrix.Categories[0].Rows
}
