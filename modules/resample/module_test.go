package resample_test

import (
	"testing"

	hcl2 "github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/calcgrid/internal/frequency"
	"github.com/vk/calcgrid/internal/hcl"
	"github.com/vk/calcgrid/internal/registry"
	"github.com/vk/calcgrid/internal/series"
	"github.com/vk/calcgrid/internal/testutil"
	"github.com/vk/calcgrid/modules/resample"
)

func TestAggregate(t *testing.T) {
	r := registry.New()
	(&resample.Module{}).Register(r)
	require.NoError(t, r.Validate(testutil.Context()))
	k, ok := r.Lookup("aggregate")
	require.True(t, ok)

	evalCtx := &hcl2.EvalContext{Variables: map[string]cty.Value{"quarterly": cty.StringVal("Q")}}
	decode := func(freq, agg string) (any, error) {
		args := make(map[string]hcl2.Expression)
		for name, src := range map[string]string{"frequency": freq, "aggregation": agg} {
			expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl2.InitialPos)
			require.False(t, diags.HasErrors())
			args[name] = expr
		}
		target := k.NewArgs()
		err := hcl.NewConverter().DecodeArguments(testutil.Context(), target, args, k.Arguments, evalCtx)
		return target, err
	}

	testCases := []struct {
		name      string
		freq, agg string
		want      string
		wantErr   error
	}{
		{name: "variable", freq: `quarterly`, agg: `"max"`, want: "Aggregate(Q-max)"},
		{name: "tag", freq: `"A"`, agg: `"sum"`, want: "Aggregate(A-sum)"},
		{name: "long name", freq: `"monthly"`, agg: `"mean"`, want: "Aggregate(M-mean)"},
		{name: "bad frequency", freq: `"weekly"`, agg: `"sum"`, wantErr: frequency.ErrUnknownFrequency},
		{name: "bad aggregation", freq: `"A"`, agg: `"median"`, wantErr: series.ErrUnknownAggregation},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target, err := decode(tc.freq, tc.agg)
			require.NoError(t, err)
			node, err := k.New(target)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, node.String())
		})
	}
}
