package domain

import "fmt"

// CheckFailure represents a hard violation raised by a check function.
type CheckFailure struct {
	Suite    string `json:"suite"`
	Check    string `json:"check"`
	Target   string `json:"target"`
	Message  string `json:"message"`
	Resolved bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved in the viewer
}

// String formats the failure for terminal summaries.
func (f CheckFailure) String() string {
	return fmt.Sprintf("FAILED::%s::%s", f.Check, f.Message)
}

// CheckWarning represents a soft violation raised by a check function.
// Warnings are reported but never affect the exit status.
type CheckWarning struct {
	Suite   string `json:"suite"`
	Check   string `json:"check"`
	Target  string `json:"target"`
	Message string `json:"message"`
}

// String formats the warning the way the reporting machinery prints it.
func (w CheckWarning) String() string {
	return fmt.Sprintf("Warning::%s::%s: %s", w.Suite, w.Check, w.Message)
}
