package graph

import (
	"context"

	"github.com/vk/calcgrid/internal/calc"
	"github.com/vk/calcgrid/internal/calcerr"
	"github.com/vk/calcgrid/internal/frequency"
	"github.com/vk/calcgrid/internal/series"
)

// Compute runs the compute pass: every input node receives table, and the
// value produced by the output node is returned.
func (g *Graph) Compute(ctx context.Context, table *series.Table) (calc.Value, error) {
	return traverse[calc.Value](ctx, g, &computeEvaluator{table: table})
}

// ParseFrequencies runs the frequency pass: every input node receives the
// declared frequency of the columns it reads, and the frequency inferred for
// the output node is returned. No data is touched.
func (g *Graph) ParseFrequencies(ctx context.Context, inputs map[string]frequency.Frequency) (frequency.Frequency, error) {
	return traverse[frequency.Frequency](ctx, g, &frequencyEvaluator{inputs: inputs})
}

type computeEvaluator struct {
	table *series.Table
}

func (*computeEvaluator) name() string { return "compute" }

func (*computeEvaluator) begin(g *Graph) {
	for _, n := range g.nodes {
		n.ResetCache()
	}
}

func (e *computeEvaluator) seed(n calc.Node) (calc.Value, error) {
	if e.table == nil {
		return nil, calcerr.Newf(calcerr.ErrMissingInput, "no input table")
	}
	return n.Compute(e.table)
}

func (*computeEvaluator) eval(n calc.Node, inputs []calc.Value) (calc.Value, error) {
	return n.Compute(inputs...)
}

func (*computeEvaluator) split(v calc.Value) ([]calc.Value, bool) {
	outs, ok := v.(calc.Outputs)
	return outs, ok
}

type frequencyEvaluator struct {
	inputs map[string]frequency.Frequency
}

func (*frequencyEvaluator) name() string { return "frequency" }

func (*frequencyEvaluator) begin(*Graph) {}

// seed resolves the declared frequencies of the columns a source reads. They
// must agree before the node's own frequency policy is applied.
func (e *frequencyEvaluator) seed(n calc.Node) (frequency.Frequency, error) {
	src, ok := n.(calc.Source)
	if !ok {
		return "", calcerr.Newf(calcerr.ErrInvalidGraph, "input node %s does not read from the input table", n)
	}
	names := src.Sources()
	if len(names) == 0 {
		return "", calcerr.Newf(calcerr.ErrMissingInput, "input node %s reads no columns", n)
	}
	declared := make([]frequency.Frequency, 0, len(names))
	for _, name := range names {
		f, ok := e.inputs[name]
		if !ok {
			return "", calcerr.Newf(calcerr.ErrMissingInput, "no frequency declared for input %q", name)
		}
		declared = append(declared, f)
	}
	f, err := frequency.Identical{}.OutputFrequency(declared...)
	if err != nil {
		return "", err
	}
	return n.OutputFrequency(f)
}

func (*frequencyEvaluator) eval(n calc.Node, inputs []frequency.Frequency) (frequency.Frequency, error) {
	return n.OutputFrequency(inputs...)
}

func (*frequencyEvaluator) split(frequency.Frequency) ([]frequency.Frequency, bool) {
	return nil, false
}
