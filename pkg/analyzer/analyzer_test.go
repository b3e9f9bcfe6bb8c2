package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/policytester/policytester/pkg/duration"
)

// writeStub writes a shell-script analyzer stand-in and returns its path.
func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "iamx-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func writePolicyFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "critical_0.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Version":"2012-10-17","Statement":[]}`), 0o644))
	return path
}

func TestRunSuccess(t *testing.T) {
	bin := writeStub(t, `
[ "$1" = "analyze" ] || exit 3
[ -f "$2" ] || exit 4
[ "$3" = "--format" ] || exit 3
[ "$4" = "json" ] || exit 3
echo '{"results":{"risk_score":7.4,"passed":false}}'`)
	r := &Runner{Bin: bin, Timeout: duration.AnalyzeTimeout}

	out := r.Run(context.Background(), writePolicyFile(t))
	assert.Equal(t, Outcome{Score: 7.4, Passed: false, RanOk: true}, out)
}

func TestRunSuccessPassingPolicy(t *testing.T) {
	bin := writeStub(t, `echo '{"results":{"risk_score":0.8,"passed":true}}'`)
	r := &Runner{Bin: bin}

	out := r.Run(context.Background(), writePolicyFile(t))
	assert.Equal(t, Outcome{Score: 0.8, Passed: true, RanOk: true}, out)
}

func TestRunNonZeroExit(t *testing.T) {
	bin := writeStub(t, `exit 2`)
	r := &Runner{Bin: bin}

	assert.Equal(t, Failure, r.Run(context.Background(), writePolicyFile(t)))
}

func TestRunMalformedOutput(t *testing.T) {
	bin := writeStub(t, `echo 'not json at all'`)
	r := &Runner{Bin: bin}

	assert.Equal(t, Failure, r.Run(context.Background(), writePolicyFile(t)))
}

func TestRunSchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
	}{
		{"missing results object", `{}`},
		{"missing passed", `{"results":{"risk_score":5.0}}`},
		{"missing risk_score", `{"results":{"passed":true}}`},
		{"results not an object", `{"results":7}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bin := writeStub(t, `echo '`+tt.stdout+`'`)
			r := &Runner{Bin: bin}
			assert.Equal(t, Failure, r.Run(context.Background(), writePolicyFile(t)))
		})
	}
}

func TestRunTimeoutKillsProcess(t *testing.T) {
	bin := writeStub(t, `sleep 30`)
	r := &Runner{Bin: bin, Timeout: 100 * time.Millisecond}

	start := time.Now()
	out := r.Run(context.Background(), writePolicyFile(t))
	elapsed := time.Since(start)

	assert.Equal(t, Failure, out)
	assert.Less(t, elapsed, 5*time.Second, "timed-out process was not terminated promptly")
}

func TestRunMissingBinary(t *testing.T) {
	r := &Runner{Bin: filepath.Join(t.TempDir(), "no-such-analyzer")}
	assert.Equal(t, Failure, r.Run(context.Background(), "whatever.json"))
}

func TestRunDoesNotShareDeadline(t *testing.T) {
	// Two invocations each get their own budget: the second must succeed
	// even after the first burned its full timeout.
	slow := writeStub(t, `sleep 30`)
	fast := writeStub(t, `echo '{"results":{"risk_score":3.1,"passed":true}}'`)
	path := writePolicyFile(t)

	slowRunner := &Runner{Bin: slow, Timeout: 100 * time.Millisecond}
	assert.Equal(t, Failure, slowRunner.Run(context.Background(), path))

	fastRunner := &Runner{Bin: fast, Timeout: 100 * time.Millisecond}
	out := fastRunner.Run(context.Background(), path)
	assert.True(t, out.RanOk)
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner()
	assert.Equal(t, DefaultBin, r.Bin)
	assert.Equal(t, duration.AnalyzeTimeout, r.Timeout)
}
