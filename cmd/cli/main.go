// Command policytester stress-tests an access-policy risk analyzer against
// a stratified synthetic corpus with known expected severity, then reports
// how closely the analyzer's scores and verdicts match expectation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/policytester/policytester/pkg/accuracy"
	"github.com/policytester/policytester/pkg/analyzer"
	"github.com/policytester/policytester/pkg/corpus"
	"github.com/policytester/policytester/pkg/duration"
	"github.com/policytester/policytester/pkg/harness"
	"github.com/policytester/policytester/pkg/ui"
)

func main() {
	var (
		size      = flag.Int("size", 100, "total corpus size, split evenly across tiers (divisible by 5)")
		critical  = flag.Int("critical", -1, "CRITICAL sample count (overrides -size split)")
		high      = flag.Int("high", -1, "HIGH sample count (overrides -size split)")
		medium    = flag.Int("medium", -1, "MEDIUM sample count (overrides -size split)")
		low       = flag.Int("low", -1, "LOW sample count (overrides -size split)")
		edge      = flag.Int("edge", -1, "EDGE sample count (overrides -size split)")
		seed      = flag.Int64("seed", 0, "corpus generator seed (0 = fresh seed per run)")
		bin       = flag.String("analyzer", analyzer.DefaultBin, "analyzer executable")
		timeout   = flag.Duration("timeout", duration.AnalyzeTimeout, "per-invocation analyzer timeout")
		tolerance = flag.Float64("tolerance", accuracy.DefaultScoreTolerance, "relative-error tolerance for score correctness")
		noColor   = flag.Bool("no-color", false, "disable colored output")
		silent    = flag.Bool("silent", false, "suppress progress output")
	)
	flag.Parse()

	ui.SetNoColor(*noColor)
	ui.SetSilent(*silent)

	counts, err := buildCounts(*size, map[corpus.Tier]int{
		corpus.TierCritical: *critical,
		corpus.TierHigh:     *high,
		corpus.TierMedium:   *medium,
		corpus.TierLow:      *low,
		corpus.TierEdge:     *edge,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "policytester: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, duration.RunMax)
	defer cancel()

	cfg := harness.Config{
		Counts:   counts,
		Seed:     *seed,
		Analyzer: *bin,
		Timeout:  *timeout,
		Out:      os.Stdout,
		EvalOpts: []accuracy.Option{accuracy.WithScoreTolerance(*tolerance)},
	}

	// The qualitative verdict is informational only; the exit code
	// reflects run completion, never accuracy.
	if _, err := harness.Run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "policytester: %v\n", err)
		os.Exit(1)
	}
}

// buildCounts splits size evenly across tiers, then applies any non-negative
// per-tier overrides.
func buildCounts(size int, overrides map[corpus.Tier]int) (corpus.Counts, error) {
	tiers := len(corpus.AllTiers)
	if size <= 0 || size%tiers != 0 {
		return nil, fmt.Errorf("size %d must be positive and divisible by %d tiers", size, tiers)
	}
	counts := make(corpus.Counts, tiers)
	for _, t := range corpus.AllTiers {
		counts[t] = size / tiers
	}
	for t, n := range overrides {
		if n >= 0 {
			counts[t] = n
		}
	}
	return counts, nil
}
