package harness

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policytester/policytester/pkg/accuracy"
	"github.com/policytester/policytester/pkg/corpus"
	"github.com/policytester/policytester/pkg/ui"
)

func init() {
	ui.SetNoColor(true)
}

func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "iamx-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	bin := writeStub(t, `echo '{"results":{"risk_score":7.4,"passed":false}}'`)
	var out bytes.Buffer

	sum, err := Run(context.Background(), Config{
		Counts:   corpus.Counts{corpus.TierCritical: 4},
		Seed:     1,
		Analyzer: bin,
		Out:      &out,
	})
	require.NoError(t, err)

	// every CRITICAL sample expects 7.4/fail, so the stub is a perfect analyzer
	assert.Equal(t, 4, sum.Overall.Total)
	assert.Equal(t, 4, sum.Overall.ScoreCorrect)
	assert.Equal(t, 4, sum.Overall.StatusCorrect)

	text := out.String()
	assert.Contains(t, text, "Total Policies: 4")
	assert.Contains(t, text, "EXCELLENT")
}

func TestRunAnalyzerFailureIsRecordedNotRaised(t *testing.T) {
	bin := writeStub(t, `exit 1`)
	var out bytes.Buffer

	sum, err := Run(context.Background(), Config{
		Counts:   corpus.Counts{corpus.TierMedium: 2},
		Seed:     1,
		Analyzer: bin,
		Out:      &out,
	})
	require.NoError(t, err, "invocation failures must never abort the run")

	// sentinel outcome: score 0 is within tolerance of 4.8, but the forced
	// fail verdict contradicts the expected pass
	stats := sum.PerTier[corpus.TierMedium]
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 0, stats.StatusCorrect)
	assert.Contains(t, out.String(), "NEEDS IMPROVEMENT")
}

func TestRunTimeoutCountsAsFailure(t *testing.T) {
	bin := writeStub(t, `sleep 30`)
	var out bytes.Buffer

	sum, err := Run(context.Background(), Config{
		Counts:   corpus.Counts{corpus.TierMedium: 1},
		Seed:     1,
		Analyzer: bin,
		Timeout:  100 * time.Millisecond,
		Out:      &out,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, sum.PerTier[corpus.TierMedium].StatusCorrect)
}

func TestRunReleasesEphemeralStorage(t *testing.T) {
	bin := writeStub(t, `echo '{"results":{"risk_score":3.1,"passed":true}}'`)
	var out bytes.Buffer

	_, err := Run(context.Background(), Config{
		Counts:   corpus.Counts{corpus.TierLow: 2},
		Seed:     1,
		Analyzer: bin,
		Out:      &out,
	})
	require.NoError(t, err)

	dir := corpusDirFromOutput(t, out.String())
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "run directory %s should be removed", dir)
}

func corpusDirFromOutput(t *testing.T, text string) string {
	t.Helper()
	for _, line := range strings.Split(text, "\n") {
		if idx := strings.Index(line, "Wrote policies to "); idx >= 0 {
			return strings.TrimSpace(line[idx+len("Wrote policies to "):])
		}
	}
	t.Fatal("no corpus directory line in output")
	return ""
}

func TestRunHonorsCancellation(t *testing.T) {
	bin := writeStub(t, `echo '{"results":{"risk_score":3.1,"passed":true}}'`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{
		Counts:   corpus.Counts{corpus.TierLow: 1},
		Seed:     1,
		Analyzer: bin,
		Out:      &bytes.Buffer{},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunCustomEvaluatorOptions(t *testing.T) {
	// analyzer always reports 9.9; with a tight tolerance nothing passes
	// the score predicate
	bin := writeStub(t, `echo '{"results":{"risk_score":9.9,"passed":false}}'`)
	var out bytes.Buffer

	sum, err := Run(context.Background(), Config{
		Counts:   corpus.Counts{corpus.TierCritical: 3},
		Seed:     1,
		Analyzer: bin,
		Out:      &out,
		EvalOpts: []accuracy.Option{accuracy.WithScoreTolerance(0.01)},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Overall.ScoreCorrect)
	assert.Equal(t, 3, sum.Overall.StatusCorrect)
}
