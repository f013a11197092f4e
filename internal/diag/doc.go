// Package diag defines the diagnostic value types shared by the analysis
// stages: severity, stage-scoped codes, the Diagnostic record with its
// optional suggestion, and the Bag accumulator stages report into.
package diag
