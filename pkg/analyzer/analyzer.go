// Package analyzer drives the external risk-scoring engine. Each sample is
// analyzed by one bounded subprocess invocation, and every failure mode —
// non-zero exit, timeout, output that misses the schema — collapses into a
// single sentinel outcome. Nothing in this package raises past the Run
// boundary.
package analyzer

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/policytester/policytester/pkg/duration"
	"github.com/policytester/policytester/pkg/jsonutil"
)

// DefaultBin is the analyzer executable resolved from PATH when a Runner
// does not name one.
const DefaultBin = "iamx"

// Outcome is the normalized result of one invocation. RanOk is false on any
// invocation failure, with Score 0 and Passed false as the sentinel values.
// A transient failure is recorded identically to a deterministic one.
type Outcome struct {
	Score  float64
	Passed bool
	RanOk  bool
}

// Failure is the sentinel outcome for every invocation failure. No
// distinguishing information is retained.
var Failure = Outcome{}

// Runner invokes the analyzer once per policy file.
type Runner struct {
	// Bin is the analyzer executable. Empty means DefaultBin.
	Bin string

	// Timeout bounds each invocation independently; the budget is never
	// shared across the corpus. Zero means duration.AnalyzeTimeout.
	Timeout time.Duration
}

// NewRunner returns a runner with the default binary and timeout.
func NewRunner() *Runner {
	return &Runner{Bin: DefaultBin, Timeout: duration.AnalyzeTimeout}
}

// output mirrors the analyzer's machine-readable contract: a results object
// carrying a numeric risk_score and a boolean passed. Pointer fields so a
// missing key is a schema violation rather than a zero value.
type output struct {
	Results *results `json:"results"`
}

type results struct {
	RiskScore *float64 `json:"risk_score"`
	Passed    *bool    `json:"passed"`
}

// Run analyzes the policy file at path. It never returns an error: a
// non-zero exit, an elapsed deadline (the process is killed), or stdout
// that does not match the schema all terminate in Failure. On success the
// parsed score and verdict are returned with RanOk set.
func (r *Runner) Run(ctx context.Context, path string) Outcome {
	bin := r.Bin
	if bin == "" {
		bin = DefaultBin
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = duration.AnalyzeTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, "analyze", path, "--format", "json")
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	// Unblocks Wait if a child of the analyzer holds stdout open after
	// the kill on timeout.
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		// Non-zero exit, killed process, and missing executable alike.
		return Failure
	}

	var out output
	if err := jsonutil.Unmarshal(stdout.Bytes(), &out); err != nil {
		return Failure
	}
	if out.Results == nil || out.Results.RiskScore == nil || out.Results.Passed == nil {
		return Failure
	}
	return Outcome{Score: *out.Results.RiskScore, Passed: *out.Results.Passed, RanOk: true}
}
