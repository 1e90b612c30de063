package Reports

import "fmt"

// ValidationError reports a structurally required field that is missing
// from raw input. No partial output is produced once one is raised.
type ValidationError struct {
	ReportID uint
	Field    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("report %d: missing required field %q", e.ReportID, e.Field)
}

// FormatError reports a date or time value that could not be parsed into
// its display format. The raw value is kept for diagnostics.
type FormatError struct {
	ReportID uint
	Field    string
	Value    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("report %d: cannot parse %s value %q", e.ReportID, e.Field, e.Value)
}

// RenderError reports a violated invariant during document assembly.
type RenderError struct {
	ReportID uint
	Reason   string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("report %d: %s", e.ReportID, e.Reason)
}
