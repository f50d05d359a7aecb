package calc

import (
	"strconv"

	"github.com/vk/calcgrid/internal/frequency"
	"github.com/vk/calcgrid/internal/series"
)

// Add sums any number of same-frequency series, index-aligned, then adds
// Const. Input order does not matter.
type Add struct {
	Base
	Const float64
}

func NewAdd(c float64) *Add {
	return &Add{
		Base: Base{
			Contract:  Contract{Kinds: []Kind{KindSeries}},
			Frequency: frequency.Identical{},
		},
		Const: c,
	}
}

func (n *Add) Compute(inputs ...Value) (Value, error) {
	if err := n.Contract.Check(inputs); err != nil {
		return nil, err
	}
	out := fold(inputs, series.Add)
	return n.Remember(out.AddScalar(n.Const)), nil
}

func (n *Add) String() string { return "Add" + constSuffix(n.Const, 0) }

// Subtract computes first - second - Const. Its inputs are ordered.
type Subtract struct {
	Base
	Const float64
}

func NewSubtract(c float64) *Subtract {
	return &Subtract{
		Base: Base{
			Contract:  Contract{Arity: 2, Kinds: []Kind{KindSeries}},
			Frequency: frequency.Identical{Arity: 2},
			InOrder:   true,
		},
		Const: c,
	}
}

func (n *Subtract) Compute(inputs ...Value) (Value, error) {
	if err := n.Contract.Check(inputs); err != nil {
		return nil, err
	}
	diff := series.Sub(inputs[0].(*series.Series), inputs[1].(*series.Series))
	return n.Remember(diff.AddScalar(-n.Const)), nil
}

func (n *Subtract) String() string { return "Subtract" + constSuffix(n.Const, 0) }

// Multiply takes the index-aligned product of its inputs, scaled by Const.
type Multiply struct {
	Base
	Const float64
}

func NewMultiply(c float64) *Multiply {
	return &Multiply{
		Base: Base{
			Contract:  Contract{Kinds: []Kind{KindSeries}},
			Frequency: frequency.Identical{},
		},
		Const: c,
	}
}

func (n *Multiply) Compute(inputs ...Value) (Value, error) {
	if err := n.Contract.Check(inputs); err != nil {
		return nil, err
	}
	out := fold(inputs, series.Mul)
	return n.Remember(out.MulScalar(n.Const)), nil
}

func (n *Multiply) String() string { return "Multiply" + constSuffix(n.Const, 1) }

// fold reduces already validated series inputs left to right.
func fold(inputs []Value, op func(a, b *series.Series) *series.Series) *series.Series {
	acc := inputs[0].(*series.Series)
	for _, in := range inputs[1:] {
		acc = op(acc, in.(*series.Series))
	}
	return acc
}

func constSuffix(c, neutral float64) string {
	if c == neutral {
		return ""
	}
	return "(" + strconv.FormatFloat(c, 'g', -1, 64) + ")"
}
