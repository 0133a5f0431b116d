package ui

import (
	"fmt"
	"strings"

	"capmatrix/internal/domain"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// maxListedTests caps the tests listed per cell in the details pane
const maxListedTests = 25

// MatrixViewer displays matrix rows in an interactive TUI
type MatrixViewer struct{}

// NewMatrixViewer creates a new MatrixViewer
func NewMatrixViewer() *MatrixViewer {
	return &MatrixViewer{}
}

// View displays the rows: categories on the left, per-engine cells on the right
func (mv *MatrixViewer) View(doc domain.OutputDocument, rows []domain.CategoryEntry) error {
	if len(rows) == 0 {
		color.Yellow("No categories found")
		return nil
	}
	columns := doc.CapabilityMatrix.Columns

	app := tview.NewApplication()

	// Category list (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, row := range rows {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, tview.Escape(row.Name)), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	// Row header and cell details (right side)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Capability Matrix (%d categories, %d engines) | Use ↑↓ to navigate, → to view details, ← to go back, Q or Ctrl+C to exit ", len(rows), len(columns)))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(rows) {
			statsView.SetText(formatRowStats(rows[index], columns))
			detailsView.SetText(formatRowDetails(rows[index], columns)).ScrollToBeginning()
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// tviewTag maps a cell verdict to a tview color tag
func tviewTag(v domain.ClassValue) string {
	switch v.Level {
	case domain.SupportYes:
		return "green"
	case domain.SupportPartially:
		return "yellow"
	case domain.SupportNotSupported, domain.SupportNo:
		return "red"
	default:
		return "fuchsia"
	}
}

// formatRowStats formats the header line of a row: category and verdict counts
func formatRowStats(row domain.CategoryEntry, columns []domain.Column) string {
	t := Tally(columns, []domain.CategoryEntry{row})
	var yes, partial, failing, missing int
	for _, e := range t {
		yes += e.Yes
		partial += e.Partially
		failing += e.Failing
		missing += e.NotSupported
	}

	category := row.Category
	if category == "" {
		category = row.Name
	}
	return fmt.Sprintf("[cyan]category:[white] [yellow]%s[white]\n[green]%d yes[white] | [yellow]%d partially[white] | [fuchsia]%d failing[white] | [red]%d not supported[white]\n",
		tview.Escape(category), yes, partial, failing, missing)
}

// formatRowDetails lists every engine cell of a row with its tests using tview color tags
func formatRowDetails(row domain.CategoryEntry, columns []domain.Column) string {
	var b strings.Builder

	for _, col := range columns {
		v, ok := row.Value(col.Class)
		if !ok {
			continue
		}
		label, _ := CellLabel(v)
		fmt.Fprintf(&b, "[cyan]%s[white]: [%s]%s[white]", tview.Escape(columnTitle(col)), tviewTag(v), label)
		if v.Detail != "" {
			fmt.Fprintf(&b, " (%s)", v.Detail)
		}
		b.WriteString("\n")

		writeTests(&b, "passed", "green", v.Passed)
		writeTests(&b, "failed", "red", v.Failed)
		b.WriteString("\n")
	}

	return b.String()
}

func writeTests(b *strings.Builder, title, tag string, tests []domain.TestOutcome) {
	if len(tests) == 0 {
		return
	}
	fmt.Fprintf(b, "  [%s]%s (%d):[white]\n", tag, title, len(tests))
	for i, t := range tests {
		if i == maxListedTests {
			fmt.Fprintf(b, "    [gray]... and %d more[white]\n", len(tests)-maxListedTests)
			break
		}
		fmt.Fprintf(b, "    %s\n", tview.Escape(t.Name))
	}
}
