package domain

// StatusPassed is the only status that counts as a pass
const StatusPassed = "PASSED"

// TestCase represents a single test execution reported by an engine
type TestCase struct {
	Name       string   `json:"name"`
	Status     string   `json:"status"`
	Categories []string `json:"categories"`
}

// Passed reports whether the test case finished with status PASSED
func (tc TestCase) Passed() bool {
	return tc.Status == StatusPassed
}

// Outcome returns the name/status pair recorded under a category
func (tc TestCase) Outcome() TestOutcome {
	return TestOutcome{Name: tc.Name, Status: tc.Status}
}

// TestOutcome is a test name and its status as listed in a matrix cell
type TestOutcome struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}
