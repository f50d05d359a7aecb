package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeInputs(t *testing.T, pipeline, data string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "main.hcl")
	d := filepath.Join(dir, "data.yaml")
	require.NoError(t, os.WriteFile(p, []byte(pipeline), 0o600))
	require.NoError(t, os.WriteFile(d, []byte(data), 0o600))
	return p, d
}

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	pipeline := `
node "input" "a" { name = "A" }
node "multiply" "m" { const = 2 }
node "output" "out" { name = "DOUBLE" }
edge "a" "m" {}
edge "m" "out" {}
`
	data := `
series:
  - name: A
    frequency: annual
    start: 2020-01-01
    values: [1.5, 2]
`
	p, d := writeInputs(t, pipeline, data)
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	require.NoError(t, run(context.Background(), out, logs, []string{"-log-level", "warn", p, d}))
	require.Equal(t, "date        DOUBLE\n2020-01-01  3\n2021-01-01  4\n", out.String())
	require.Empty(t, logs.String())
}

func TestRun_InvalidPipeline(t *testing.T) {
	t.Parallel()

	invalidHCL := `
		node "input" "a" {
			name = "A"
		// Missing closing brace here
	`
	p, d := writeInputs(t, invalidHCL, "series: []\n")
	out := &bytes.Buffer{}

	err := run(context.Background(), out, &bytes.Buffer{}, []string{p, d})
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load pipeline")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
