package domain

// EngineResults holds the test cases reported by one engine (runner)
type EngineResults struct {
	Key       string     `json:"-"`
	TestCases []TestCase `json:"testCases"`
}

// TestResultsDocument is the parsed input: per-engine results in the
// order the engines appear in the source file
type TestResultsDocument struct {
	Engines []EngineResults
}

// Set stores the test cases for an engine. A key that is already present
// keeps its position and has its test cases replaced.
func (d *TestResultsDocument) Set(key string, cases []TestCase) {
	for i := range d.Engines {
		if d.Engines[i].Key == key {
			d.Engines[i].TestCases = cases
			return
		}
	}
	d.Engines = append(d.Engines, EngineResults{Key: key, TestCases: cases})
}

// EngineKeys returns the engine keys in document order
func (d *TestResultsDocument) EngineKeys() []string {
	keys := make([]string, 0, len(d.Engines))
	for _, e := range d.Engines {
		keys = append(keys, e.Key)
	}
	return keys
}

// TotalTestCases returns the number of test cases across all engines
func (d *TestResultsDocument) TotalTestCases() int {
	total := 0
	for _, e := range d.Engines {
		total += len(e.TestCases)
	}
	return total
}
