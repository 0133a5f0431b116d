package report

import (
	"path/filepath"
	"strings"

	"capmatrix/internal/domain"
)

// Filter filters matrix rows by category pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterRows keeps rows whose display name or full category matches the
// pattern. Supports wildcards like "Uses*" or "*State*"; a pattern without
// wildcards matches by substring.
func (f *Filter) FilterRows(rows []domain.CategoryEntry, pattern string) []domain.CategoryEntry {
	if pattern == "" {
		return rows
	}

	var filtered []domain.CategoryEntry
	for _, row := range rows {
		if f.matches(row.Name, pattern) || f.matches(row.Category, pattern) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func (f *Filter) matches(name, pattern string) bool {
	if name == "" {
		return false
	}

	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// All non-empty parts must appear, in order
		rest := name
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasPart = true
			i := strings.Index(rest, part)
			if i < 0 {
				return false
			}
			rest = rest[i+len(part):]
		}
		return hasPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
