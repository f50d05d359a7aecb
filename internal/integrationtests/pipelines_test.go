package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/calcgrid/internal/app"
)

// TestPipelines_SplitFeedsSuccessorsByOutputIndex validates that a split
// node routes each column to the successor with the matching output index.
func TestPipelines_SplitFeedsSuccessorsByOutputIndex(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"pipeline/main.hcl": `
			node "split" "s" { names = ["A", "B"] }
			node "subtract" "diff" {}
			node "output" "out" { name = "B_MINUS_A" }

			edge "s" "diff" {
				output_idx = 2
				input_idx  = 1
			}
			edge "s" "diff" {
				output_idx = 1
				input_idx  = 2
			}
			edge "diff" "out" {}
		`,
		"data.yaml": monthlyData,
	}

	result := runIntegrationTest(t, files, nil)

	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "2020-01-01  9\n")
	require.Contains(t, result.Output, "2020-06-01  54\n")
}

// TestPipelines_FanOutBroadcasts validates that a plain node feeds the same
// value to every successor.
func TestPipelines_FanOutBroadcasts(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"pipeline/main.hcl": `
			node "input" "a" { name = "A" }
			node "add" "plus" { const = 1 }
			node "multiply" "times" { const = 10 }
			node "add" "join" {}
			node "output" "out" { name = "R" }

			edge "a" "plus" {}
			edge "a" "times" {}
			edge "plus" "join" {}
			edge "times" "join" {}
			edge "join" "out" {}
		`,
		"data.yaml": monthlyData,
	}

	result := runIntegrationTest(t, files, nil)

	require.NoError(t, result.Err)
	// (a + 1) + 10a
	require.Contains(t, result.Output, "2020-01-01  12\n")
	require.Contains(t, result.Output, "2020-04-01  45\n")
}

// TestPipelines_MixedFrequenciesAfterAggregation validates that a monthly
// series aggregated to quarterly can be combined with a quarterly series.
func TestPipelines_MixedFrequenciesAfterAggregation(t *testing.T) {
	t.Parallel()
	files := map[string]string{
		"pipeline/main.hcl": `
			node "input" "a" { name = "A" }
			node "input" "q" { name = "Q" }
			node "aggregate" "aq" {
				frequency   = quarterly
				aggregation = "mean"
			}
			node "add" "sum" {}
			node "output" "out" { name = "TOTAL" }

			edge "a" "aq" {}
			edge "aq" "sum" {}
			edge "q" "sum" {}
			edge "sum" "out" {}
		`,
		"data.yaml": monthlyData,
	}

	result := runIntegrationTest(t, files, func(c *app.Config) { c.OutputFormat = app.OutputYAML })

	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "name: TOTAL")
	require.Contains(t, result.Output, "frequency: quarterly")
	require.Contains(t, result.Output, "values: [102, 205]")
}
