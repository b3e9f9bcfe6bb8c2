// Package accuracy pairs generated samples with analyzer outcomes and
// aggregates tolerance-based correctness statistics per tier and overall.
package accuracy

import (
	"math"

	"github.com/policytester/policytester/pkg/analyzer"
	"github.com/policytester/policytester/pkg/corpus"
)

// DefaultScoreTolerance accepts up to 100% relative error, deliberately
// loose for a heuristic severity score.
const DefaultScoreTolerance = 1.0

// Record is the read-only pairing of one sample with its outcome.
type Record struct {
	Sample  corpus.Sample
	Outcome analyzer.Outcome
}

// TierStats aggregates correctness counts for one tier, or for the whole
// run when used as the overall aggregate.
type TierStats struct {
	Total         int
	ScoreCorrect  int
	StatusCorrect int
}

// ScoreAccuracy returns the score-correct percentage (0 for an empty tier).
func (s TierStats) ScoreAccuracy() float64 {
	return pct(s.ScoreCorrect, s.Total)
}

// StatusAccuracy returns the status-correct percentage (0 for an empty tier).
func (s TierStats) StatusAccuracy() float64 {
	return pct(s.StatusCorrect, s.Total)
}

func pct(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// Summary holds per-tier statistics plus the overall aggregate. Overall is
// accumulated alongside the per-tier counts, never recomputed by a second
// scan over raw records, so the two views cannot drift.
type Summary struct {
	PerTier map[corpus.Tier]*TierStats
	Overall TierStats
}

// Evaluator applies the tolerance predicates and aggregates records. The
// tolerance and verdict thresholds are adjustable policy inputs, not fixed
// law; override them via options.
type Evaluator struct {
	scoreTolerance float64
	thresholds     VerdictThresholds
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithScoreTolerance overrides the relative-error tolerance of the score
// predicate.
func WithScoreTolerance(tol float64) Option {
	return func(e *Evaluator) {
		e.scoreTolerance = tol
	}
}

// WithVerdictThresholds overrides the verdict classification thresholds.
func WithVerdictThresholds(t VerdictThresholds) Option {
	return func(e *Evaluator) {
		e.thresholds = t
	}
}

// NewEvaluator returns an evaluator with default tolerance and thresholds.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		scoreTolerance: DefaultScoreTolerance,
		thresholds:     DefaultVerdictThresholds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ScoreCorrect reports whether actual is within tolerance of expected:
// |actual − expected| / max(expected, 1) ≤ tolerance. The boundary counts
// as correct.
func (e *Evaluator) ScoreCorrect(actual, expected float64) bool {
	denom := expected
	if denom < 1 {
		denom = 1
	}
	return math.Abs(actual-expected)/denom <= e.scoreTolerance
}

// StatusCorrect is exact boolean equality. No tolerance.
func (e *Evaluator) StatusCorrect(actual, expected bool) bool {
	return actual == expected
}

// Evaluate aggregates records into per-tier and overall statistics. Tiers
// absent from the records still appear with zeroed stats so reports keep
// the fixed tier ordering.
func (e *Evaluator) Evaluate(records []Record) *Summary {
	sum := &Summary{PerTier: make(map[corpus.Tier]*TierStats, len(corpus.AllTiers))}
	for _, tier := range corpus.AllTiers {
		sum.PerTier[tier] = &TierStats{}
	}
	for _, rec := range records {
		stats := sum.PerTier[rec.Sample.Tier]
		if stats == nil {
			stats = &TierStats{}
			sum.PerTier[rec.Sample.Tier] = stats
		}
		stats.Total++
		sum.Overall.Total++
		if e.ScoreCorrect(rec.Outcome.Score, rec.Sample.ExpectedScore) {
			stats.ScoreCorrect++
			sum.Overall.ScoreCorrect++
		}
		if e.StatusCorrect(rec.Outcome.Passed, rec.Sample.ExpectedPass) {
			stats.StatusCorrect++
			sum.Overall.StatusCorrect++
		}
	}
	return sum
}
