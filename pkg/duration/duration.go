// Package duration provides canonical time constants for the entire codebase.
//
// DO NOT use hardcoded time.Duration values like `10 * time.Second` elsewhere.
// Reference the appropriate constant from this package instead.
package duration

import "time"

const (
	// AnalyzeTimeout bounds a single analyzer invocation (10s).
	// Each sample gets its own deadline; the budget is never shared
	// across the corpus.
	AnalyzeTimeout = 10 * time.Second

	// RunMax bounds a full stress run end to end (30min).
	RunMax = 30 * time.Minute
)
