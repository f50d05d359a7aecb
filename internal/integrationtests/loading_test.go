package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoading_DirectoryOfFiles validates that node and edge blocks spread
// over several files and subdirectories form one pipeline.
func TestLoading_DirectoryOfFiles(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"pipeline/settings.hcl": `pipeline "split_files" { max_iterations = 4 }`,
		"pipeline/nodes/inputs.hcl": `
			node "input" "a" { name = "A" }
			node "input" "b" { name = "B" }
		`,
		"pipeline/nodes/calc.hcl": `
			node "add" "sum" {}
			node "output" "out" { name = "SUM" }
		`,
		"pipeline/edges.hcl": `
			edge "a" "sum" {}
			edge "b" "sum" {}
			edge "sum" "out" {}
		`,
		"pipeline/README.md": "not a pipeline file",
		"data.yaml":          monthlyData,
	}

	result := runIntegrationTest(t, files, nil)

	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "2020-01-01  11\n")
	require.Contains(t, result.Output, "2020-06-01  66\n")
	require.Contains(t, result.LogOutput, "pipeline=split_files")
}

// TestLoading_TwoPipelineBlocksAreRejected validates that a pipeline may only
// be configured once.
func TestLoading_TwoPipelineBlocksAreRejected(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"pipeline/a.hcl": `pipeline "one" {}`,
		"pipeline/b.hcl": `pipeline "two" {}`,
		"data.yaml":      monthlyData,
	}

	result := runIntegrationTest(t, files, nil)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "pipeline")
}

// TestLoading_OptionalArgumentDefaults validates that omitted optional
// arguments take their declared defaults.
func TestLoading_OptionalArgumentDefaults(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"pipeline/main.hcl": `
			node "filter" "f" {
				names    = ["A"]
				collapse = true
			}
			node "multiply" "m" {}
			node "output" "out" { name = "SAME" }
			edge "f" "m" {}
			edge "m" "out" {}
		`,
		"data.yaml": monthlyData,
	}

	result := runIntegrationTest(t, files, nil)

	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "2020-03-01  3\n")
}

// TestLoading_FrequencyKeywords validates that both keyword variables and
// quoted tags are accepted for frequencies.
func TestLoading_FrequencyKeywords(t *testing.T) {
	t.Parallel()
	for _, freq := range []string{"annual", `"A"`, `"annual"`} {
		files := map[string]string{
			"pipeline/main.hcl": `
				node "input" "a" { name = "A" }
				node "aggregate" "y" {
					frequency   = ` + freq + `
					aggregation = "sum"
				}
				node "output" "out" { name = "YEAR" }
				edge "a" "y" {}
				edge "y" "out" {}
			`,
			"data.yaml": monthlyData,
		}

		result := runIntegrationTest(t, files, nil)

		require.NoError(t, result.Err, "frequency %s", freq)
		require.Equal(t, "date        YEAR\n2020-01-01  21\n", result.Output, "frequency %s", freq)
	}
}
