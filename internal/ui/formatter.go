package ui

import (
	"fmt"
	"io"
	"strings"

	"capmatrix/internal/domain"

	"github.com/fatih/color"
)

// LabelFailing is shown for a reported cell without a support label
const LabelFailing = "Failing"

// Formatter prints the capability matrix to the console
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// EngineTally counts the verdicts of one engine column
type EngineTally struct {
	Column       domain.Column
	Yes          int
	Partially    int
	Failing      int
	NotSupported int
}

// Tally counts verdicts per column over rows
func Tally(columns []domain.Column, rows []domain.CategoryEntry) []EngineTally {
	tallies := make([]EngineTally, 0, len(columns))
	for _, col := range columns {
		t := EngineTally{Column: col}
		for _, row := range rows {
			v, ok := row.Value(col.Class)
			if !ok {
				continue
			}
			switch v.Level {
			case domain.SupportYes:
				t.Yes++
			case domain.SupportPartially:
				t.Partially++
			case domain.SupportNotSupported:
				t.NotSupported++
			default:
				t.Failing++
			}
		}
		tallies = append(tallies, t)
	}
	return tallies
}

// CellLabel returns the text and color for a matrix cell
func CellLabel(v domain.ClassValue) (string, *color.Color) {
	switch v.Level {
	case domain.SupportYes:
		return string(v.Level), color.New(color.FgGreen)
	case domain.SupportPartially:
		return string(v.Level), color.New(color.FgYellow)
	case domain.SupportNotSupported, domain.SupportNo:
		return string(v.Level), color.New(color.FgRed)
	default:
		return LabelFailing, color.New(color.FgMagenta)
	}
}

// columnTitle returns the header of a column, falling back to its key
func columnTitle(col domain.Column) string {
	if col.Name != "" {
		return col.Name
	}
	return col.Class
}

// PrintMatrix prints the rows of the matrix as a table followed by
// per-engine totals
func (f *Formatter) PrintMatrix(doc domain.OutputDocument, rows []domain.CategoryEntry) {
	columns := doc.CapabilityMatrix.Columns
	cyan := color.New(color.FgCyan)

	description := ""
	if len(doc.CapabilityMatrix.Categories) > 0 {
		description = doc.CapabilityMatrix.Categories[0].Description
	}
	cyan.Fprintf(f.out, "%s\n\n", description)

	if len(rows) == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No categories found")
		return
	}

	// Column widths
	widths := make([]int, len(columns)+1)
	widths[0] = len("Category")
	for _, row := range rows {
		widths[0] = max(widths[0], len(row.Name))
	}
	for i, col := range columns {
		widths[i+1] = len(columnTitle(col))
		for _, row := range rows {
			if v, ok := row.Value(col.Class); ok {
				label, _ := CellLabel(v)
				widths[i+1] = max(widths[i+1], len(label))
			}
		}
	}

	// Header
	header := []string{pad("Category", widths[0])}
	for i, col := range columns {
		header = append(header, pad(columnTitle(col), widths[i+1]))
	}
	cyan.Fprintln(f.out, strings.Join(header, " │ "))

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	fmt.Fprintln(f.out, strings.Join(rule, "─┼─"))

	// Rows
	for _, row := range rows {
		cells := []string{pad(row.Name, widths[0])}
		for i, col := range columns {
			v, ok := row.Value(col.Class)
			if !ok {
				cells = append(cells, pad("", widths[i+1]))
				continue
			}
			label, c := CellLabel(v)
			cells = append(cells, c.Sprint(pad(label, widths[i+1])))
		}
		fmt.Fprintln(f.out, strings.Join(cells, " │ "))
	}

	// Totals
	fmt.Fprintln(f.out)
	for _, t := range Tally(columns, rows) {
		fmt.Fprintf(f.out, "%s: %s, %s, %s, %s\n",
			columnTitle(t.Column),
			color.GreenString("%d yes", t.Yes),
			color.YellowString("%d partially", t.Partially),
			color.MagentaString("%d failing", t.Failing),
			color.RedString("%d not supported", t.NotSupported),
		)
	}
	fmt.Fprintf(f.out, "\n%d categor%s across %d engine(s)\n", len(rows), plural(len(rows)), len(columns))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
