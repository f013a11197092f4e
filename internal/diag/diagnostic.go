package diag

import (
	"pycheck/internal/source"
)

// Diagnostic is a single reported problem: append-only fact produced by
// exactly one stage, never merged or deduplicated.
type Diagnostic struct {
	Severity   Severity
	Code       Code
	Message    string
	Pos        source.Pos
	Suggestion string // optional human fix text
}
