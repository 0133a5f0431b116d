package domain

// SupportLevel is the verdict shown in a matrix cell
type SupportLevel string

const (
	SupportYes          SupportLevel = "Yes"
	SupportPartially    SupportLevel = "Partially"
	SupportNo           SupportLevel = "No"
	SupportNotSupported SupportLevel = "Not supported"
)

// Support details paired with a level
const (
	DetailFullySupported = "fully supported"
	DetailBatchSupported = "fully supported in batch mode"
	DetailNotImplemented = "not implemeted"
)

// ClassValue is one engine's cell for a category.
// Level and Detail stay empty when the engine only has failures.
type ClassValue struct {
	Class  string        `json:"class"`
	Level  SupportLevel  `json:"l1,omitempty"`
	Detail string        `json:"l2,omitempty"`
	Passed []TestOutcome `json:"l3,omitempty"`
	Failed []TestOutcome `json:"l4,omitempty"`
}

// CategoryEntry is a matrix row
type CategoryEntry struct {
	Category string       `json:"-"`
	Name     string       `json:"name"`
	Values   []ClassValue `json:"values"`
}

// Value returns the cell for the given engine key
func (e *CategoryEntry) Value(class string) (ClassValue, bool) {
	for _, v := range e.Values {
		if v.Class == class {
			return v, true
		}
	}
	return ClassValue{}, false
}

// CategoryIndex maps category strings to rows and remembers the order in
// which categories were first seen
type CategoryIndex struct {
	order   []string
	entries map[string]*CategoryEntry
}

// NewCategoryIndex creates an empty CategoryIndex
func NewCategoryIndex() *CategoryIndex {
	return &CategoryIndex{entries: make(map[string]*CategoryEntry)}
}

// Get returns the row for a category
func (ci *CategoryIndex) Get(category string) (*CategoryEntry, bool) {
	e, ok := ci.entries[category]
	return e, ok
}

// Add inserts a row unless its category is already indexed
func (ci *CategoryIndex) Add(entry *CategoryEntry) *CategoryEntry {
	if existing, ok := ci.entries[entry.Category]; ok {
		return existing
	}
	ci.entries[entry.Category] = entry
	ci.order = append(ci.order, entry.Category)
	return entry
}

// Len returns the number of categories
func (ci *CategoryIndex) Len() int {
	return len(ci.order)
}

// Keys returns the category strings in first-seen order
func (ci *CategoryIndex) Keys() []string {
	keys := make([]string, len(ci.order))
	copy(keys, ci.order)
	return keys
}

// Entries returns the rows in first-seen order
func (ci *CategoryIndex) Entries() []*CategoryEntry {
	entries := make([]*CategoryEntry, 0, len(ci.order))
	for _, key := range ci.order {
		entries = append(entries, ci.entries[key])
	}
	return entries
}

// Column is an engine header in the matrix
type Column struct {
	Class string `json:"class"`
	Name  string `json:"name,omitempty"`
}

// CategoryGroup carries presentation metadata and the rows it styles
type CategoryGroup struct {
	Description  string          `json:"description"`
	Anchor       string          `json:"anchor"`
	ColorY       string          `json:"color-y"`
	ColorYBorder string          `json:"color-yb"`
	ColorP       string          `json:"color-p"`
	ColorPBorder string          `json:"color-pb"`
	ColorN       string          `json:"color-n"`
	ColorNBorder string          `json:"color-nb"`
	Rows         []CategoryEntry `json:"rows"`
}

// CapabilityMatrix is the body of the output document
type CapabilityMatrix struct {
	Columns    []Column        `json:"columns"`
	Categories []CategoryGroup `json:"categories"`
}

// OutputDocument is the complete capability matrix report
type OutputDocument struct {
	CapabilityMatrix CapabilityMatrix `json:"capability_matrix"`
}
