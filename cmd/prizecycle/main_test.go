package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/prizecycle/localsearch"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{newLogger: func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }}
	root := newRootCmd(a)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestMethodsCmd(t *testing.T) {
	out, err := execute(t, "methods")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, len(localsearch.Methods()))
	for i, m := range localsearch.Methods() {
		assert.Equal(t, string(m), lines[i])
	}
}

func TestSolveCmd(t *testing.T) {
	out, err := execute(t, "solve", "--n", "30", "--method", "lm-candidates", "--start", "random", "--seed", "4", "--k", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "lm-candidates from random")
	assert.Contains(t, out, "final: ")
	assert.Contains(t, out, "tour: [")
}

func TestSolveCmd_Deterministic(t *testing.T) {
	a, err := execute(t, "solve", "--n", "25", "--method", "greedy-edges", "--seed", "9")
	require.NoError(t, err)
	b, err := execute(t, "solve", "--n", "25", "--method", "greedy-edges", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSolveCmd_BadInput(t *testing.T) {
	_, err := execute(t, "solve", "--method", "tabu")
	assert.ErrorIs(t, err, localsearch.ErrUnknownMethod)

	_, err = execute(t, "solve", "--start", "nearest")
	assert.Error(t, err)

	_, err = execute(t, "solve", "--k", "0")
	assert.Error(t, err)

	_, err = execute(t, "solve", "--n", "10", "--start-node", "10")
	assert.Error(t, err)
}

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "run.yaml")
	metricsPath := filepath.Join(dir, "run.prom")
	doc := `
instance:
  layout: clustered
  clusters: 3
  per_cluster: 8
  spread: 60
  cost: {distribution: exponential, rate: 0.01}
methods: [steepest-edges, lm]
start: random
runs: 3
workers: 2
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(doc), 0o600))

	out, err := execute(t, "run", "--config", cfgPath, "--metrics-out", metricsPath)
	require.NoError(t, err)
	assert.Contains(t, out, "24 points")
	assert.Contains(t, out, "steepest-edges")
	assert.Contains(t, out, "lm")

	prom, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `prizecycle_descents_total{method="lm",status="ok"} 3`)
	assert.Contains(t, string(prom), `prizecycle_descents_total{method="steepest-edges",status="ok"} 3`)
}

func TestRunCmd_Errors(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err, "--config is required")

	_, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
