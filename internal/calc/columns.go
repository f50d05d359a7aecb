package calc

import (
	"fmt"
	"strings"

	"github.com/vk/calcgrid/internal/frequency"
	"github.com/vk/calcgrid/internal/series"
)

// Input extracts one named column from the input table.
type Input struct {
	Base
	Name string
}

// NewInput returns a source node reading column name.
func NewInput(name string) *Input {
	return &Input{
		Base: Base{
			Contract:  Contract{Arity: 1, Kinds: []Kind{KindTable}},
			Frequency: frequency.Passthrough{},
		},
		Name: name,
	}
}

func (n *Input) Compute(inputs ...Value) (Value, error) {
	if err := n.Contract.Check(inputs); err != nil {
		return nil, err
	}
	col, err := inputs[0].(*series.Table).Column(n.Name)
	if err != nil {
		return nil, err
	}
	return n.Remember(col), nil
}

func (n *Input) Sources() []string { return []string{n.Name} }

func (n *Input) String() string { return fmt.Sprintf("Input(%s)", n.Name) }

// Output renames the final series. Values are unchanged.
type Output struct {
	Base
	Name string
}

func NewOutput(name string) *Output {
	return &Output{
		Base: Base{
			Contract:  Contract{Arity: 1, Kinds: []Kind{KindSeries}},
			Frequency: frequency.Passthrough{},
		},
		Name: name,
	}
}

func (n *Output) Compute(inputs ...Value) (Value, error) {
	if err := n.Contract.Check(inputs); err != nil {
		return nil, err
	}
	return n.Remember(inputs[0].(*series.Series).Rename(n.Name)), nil
}

func (n *Output) String() string { return fmt.Sprintf("Output(%s)", n.Name) }

// Filter projects a subset of the input table's columns. With Collapse set
// and a single name, the result degrades to a bare series.
type Filter struct {
	Base
	Names    []string
	Collapse bool
}

func NewFilter(names []string, collapse bool) *Filter {
	return &Filter{
		Base: Base{
			Contract:  Contract{Arity: 1, Kinds: []Kind{KindTable}},
			Frequency: frequency.Passthrough{},
		},
		Names:    append([]string(nil), names...),
		Collapse: collapse,
	}
}

func (n *Filter) Compute(inputs ...Value) (Value, error) {
	if err := n.Contract.Check(inputs); err != nil {
		return nil, err
	}
	tbl, err := inputs[0].(*series.Table).Select(n.Names...)
	if err != nil {
		return nil, err
	}
	if n.Collapse && tbl.Len() == 1 {
		col, err := tbl.Column(n.Names[0])
		if err != nil {
			return nil, err
		}
		return n.Remember(col), nil
	}
	return n.Remember(tbl), nil
}

func (n *Filter) Sources() []string { return append([]string(nil), n.Names...) }

func (n *Filter) String() string { return fmt.Sprintf("Filter(%s)", strings.Join(n.Names, ",")) }

// Split emits each named column of the input table to a different
// successor, in ascending output index order.
type Split struct {
	Base
	Names []string
}

func NewSplit(names []string) *Split {
	return &Split{
		Base: Base{
			Contract:   Contract{Arity: 1, Kinds: []Kind{KindTable}},
			Frequency:  frequency.Passthrough{},
			OutInOrder: true,
		},
		Names: append([]string(nil), names...),
	}
}

func (n *Split) Compute(inputs ...Value) (Value, error) {
	if err := n.Contract.Check(inputs); err != nil {
		return nil, err
	}
	tbl := inputs[0].(*series.Table)
	out := make(Outputs, 0, len(n.Names))
	for _, name := range n.Names {
		col, err := tbl.Column(name)
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	return n.Remember(out), nil
}

func (n *Split) Sources() []string { return append([]string(nil), n.Names...) }

func (n *Split) String() string { return fmt.Sprintf("Split(%s)", strings.Join(n.Names, ",")) }
