package columns_test

import (
	"testing"

	hcl2 "github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/calcgrid/internal/calc"
	"github.com/vk/calcgrid/internal/hcl"
	"github.com/vk/calcgrid/internal/registry"
	"github.com/vk/calcgrid/internal/testutil"
	"github.com/vk/calcgrid/modules/columns"
)

func build(t *testing.T, kind string, args map[string]string) (calc.Node, error) {
	t.Helper()
	r := registry.New()
	(&columns.Module{}).Register(r)
	require.NoError(t, r.Validate(testutil.Context()))

	k, ok := r.Lookup(kind)
	require.True(t, ok, kind)
	exprs := make(map[string]hcl2.Expression, len(args))
	for name, src := range args {
		expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl2.InitialPos)
		require.False(t, diags.HasErrors(), diags.Error())
		exprs[name] = expr
	}
	target := k.NewArgs()
	require.NoError(t, hcl.NewConverter().DecodeArguments(testutil.Context(), target, exprs, k.Arguments, nil))
	return k.New(target)
}

func TestKinds(t *testing.T) {
	testCases := []struct {
		kind string
		args map[string]string
		want string
	}{
		{"input", map[string]string{"name": `"TS1"`}, "Input(TS1)"},
		{"output", map[string]string{"name": `"NEW"`}, "Output(NEW)"},
		{"filter", map[string]string{"names": `["A", "B"]`}, "Filter(A,B)"},
		{"split", map[string]string{"names": `["B", "A"]`}, "Split(B,A)"},
	}
	for _, tc := range testCases {
		t.Run(tc.kind, func(t *testing.T) {
			node, err := build(t, tc.kind, tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, node.String())
			_, isSource := node.(calc.Source)
			assert.Equal(t, tc.kind != "output", isSource)
		})
	}
}

func TestFilter_CollapseDefaultsToFalse(t *testing.T) {
	node, err := build(t, "filter", map[string]string{"names": `["A"]`})
	require.NoError(t, err)
	assert.False(t, node.(*calc.Filter).Collapse)

	node, err = build(t, "filter", map[string]string{"names": `["A"]`, "collapse": `true`})
	require.NoError(t, err)
	assert.True(t, node.(*calc.Filter).Collapse)
}

func TestKinds_RejectEmpty(t *testing.T) {
	_, err := build(t, "input", map[string]string{"name": `""`})
	require.Error(t, err)
	_, err = build(t, "split", map[string]string{"names": `[]`})
	require.Error(t, err)
}
