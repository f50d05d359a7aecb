package hcl_test

import (
	"testing"

	hcl2 "github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/calcgrid/internal/config"
	"github.com/vk/calcgrid/internal/hcl"
	"github.com/vk/calcgrid/internal/testutil"
)

type testArgs struct {
	Names    []string `arg:"names"`
	Const    float64  `arg:"const"`
	Collapse bool     `arg:"collapse"`
	Target   string   `arg:"frequency"`
	Ignored  string   `arg:"-"`
}

var testDefs = map[string]*config.ArgumentDefinition{
	"names":     {Name: "names", Type: cty.List(cty.String)},
	"const":     {Name: "const", Type: cty.Number, Default: ptr(cty.NumberIntVal(7))},
	"collapse":  {Name: "collapse", Type: cty.Bool, Optional: true},
	"frequency": {Name: "frequency", Type: cty.String, Optional: true},
}

func ptr(v cty.Value) *cty.Value { return &v }

func parseExpr(t *testing.T, src string) hcl2.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl2.Pos{Line: 1, Column: 1})
	require.False(t, diags.HasErrors(), "expression parsing failed: %s", diags.Error())
	return expr
}

func evalCtx() *hcl2.EvalContext {
	return &hcl2.EvalContext{Variables: map[string]cty.Value{"quarterly": cty.StringVal("Q")}}
}

func TestDecodeArguments(t *testing.T) {
	var got testArgs
	err := hcl.NewConverter().DecodeArguments(testutil.Context(), &got, map[string]hcl2.Expression{
		"names":     parseExpr(t, `["A", "B"]`),
		"collapse":  parseExpr(t, `true`),
		"frequency": parseExpr(t, `quarterly`),
	}, testDefs, evalCtx())
	require.NoError(t, err)

	assert.Equal(t, testArgs{
		Names:    []string{"A", "B"},
		Const:    7,
		Collapse: true,
		Target:   "Q",
	}, got)
}

func TestDecodeArguments_ImplicitConversion(t *testing.T) {
	var got testArgs
	err := hcl.NewConverter().DecodeArguments(testutil.Context(), &got, map[string]hcl2.Expression{
		"names": parseExpr(t, `["A"]`),
		"const": parseExpr(t, `"2.5"`),
	}, testDefs, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got.Const)
}

func TestDecodeArguments_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		target  any
		args    map[string]string
		wantErr string
	}{
		{"missing required", &testArgs{}, map[string]string{}, `missing required argument "names"`},
		{"undeclared", &testArgs{}, map[string]string{"names": `["A"]`, "colour": `"red"`}, "unsupported argument(s): colour"},
		{"wrong type", &testArgs{}, map[string]string{"names": `["A"]`, "const": `"abc"`}, `failed to decode argument "const"`},
		{"unknown variable", &testArgs{}, map[string]string{"names": `["A"]`, "frequency": `weekly`}, `argument "frequency"`},
		{"null", &testArgs{}, map[string]string{"names": `null`}, "must not be null"},
		{"non-pointer", testArgs{}, map[string]string{}, "non-nil pointer"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args := make(map[string]hcl2.Expression, len(tc.args))
			for k, v := range tc.args {
				args[k] = parseExpr(t, v)
			}
			err := hcl.NewConverter().DecodeArguments(testutil.Context(), tc.target, args, testDefs, evalCtx())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
