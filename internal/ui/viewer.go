package ui

import "capmatrix/internal/domain"

// Viewer displays a capability matrix interactively
type Viewer interface {
	View(doc domain.OutputDocument, rows []domain.CategoryEntry) error
}
