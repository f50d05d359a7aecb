package integrationtests

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/calcgrid/internal/app"
	"github.com/vk/calcgrid/internal/hcl"
	"github.com/vk/calcgrid/internal/registry"
	"github.com/vk/calcgrid/internal/testutil"
)

// harnessResult holds the outcomes of an integration test run.
type harnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// runIntegrationTest writes files below a temp root and runs the app on the
// "pipeline" directory and the "data.yaml" file found there. With no modules
// the core modules are used.
func runIntegrationTest(t *testing.T, files map[string]string, mutate func(*app.Config), modules ...registry.Module) *harnessResult {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "pipeline"), 0o755))
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	raw := app.Config{
		PipelinePath: filepath.Join(root, "pipeline"),
		DataPath:     filepath.Join(root, "data.yaml"),
		LogLevel:     "debug",
		LogFormat:    "text",
	}
	if mutate != nil {
		mutate(&raw)
	}
	cfg, err := app.NewConfig(raw)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	t.Cleanup(func() {
		if os.Getenv("CALCGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	var runErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		a := app.NewApp(out, logs, cfg, hcl.NewLoader(), modules...)
		runErr = a.Run(context.Background())
	}()

	return &harnessResult{Output: out.String(), LogOutput: logs.String(), Err: runErr}
}

const monthlyData = `
series:
  - name: A
    frequency: monthly
    start: 2020-01-01
    values: [1, 2, 3, 4, 5, 6]
  - name: B
    frequency: monthly
    start: 2020-01-01
    values: [10, 20, 30, 40, 50, 60]
  - name: Q
    frequency: quarterly
    start: 2020-01-01
    values: [100, 200]
`
