// Package columns provides the node kinds that read from the input table
// and name the result: input, filter, split and output.
package columns

import (
	"errors"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/calcgrid/internal/calc"
	"github.com/vk/calcgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// NameArgs holds the single column or series name of input and output.
type NameArgs struct {
	Name string `arg:"name"`
}

// FilterArgs defines the arguments of the filter kind.
type FilterArgs struct {
	Names    []string `arg:"names"`
	Collapse bool     `arg:"collapse"`
}

// SplitArgs defines the arguments of the split kind.
type SplitArgs struct {
	Names []string `arg:"names"`
}

var errNoNames = errors.New("names must not be empty")

func newInput(a *NameArgs) (calc.Node, error) {
	if a.Name == "" {
		return nil, errors.New("name must not be empty")
	}
	return calc.NewInput(a.Name), nil
}

func newOutput(a *NameArgs) (calc.Node, error) {
	if a.Name == "" {
		return nil, errors.New("name must not be empty")
	}
	return calc.NewOutput(a.Name), nil
}

func newFilter(a *FilterArgs) (calc.Node, error) {
	if len(a.Names) == 0 {
		return nil, errNoNames
	}
	return calc.NewFilter(a.Names, a.Collapse), nil
}

func newSplit(a *SplitArgs) (calc.Node, error) {
	if len(a.Names) == 0 {
		return nil, errNoNames
	}
	return calc.NewSplit(a.Names), nil
}

// Register registers the node kinds with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.Kind("input", "Reads one column of the input table.",
		registry.Args(registry.Arg("name", "string", "Column to read.")),
		newInput))
	r.RegisterKind(registry.Kind("output", "Names the final series.",
		registry.Args(registry.Arg("name", "string", "Name of the result.")),
		newOutput))
	r.RegisterKind(registry.Kind("filter", "Projects columns of the input table.",
		registry.Args(
			registry.Arg("names", "list(string)", "Columns to keep."),
			registry.OptionalArg("collapse", "bool", "Return a bare series when one column is kept.", cty.False),
		),
		newFilter))
	r.RegisterKind(registry.Kind("split", "Feeds one column of the input table to each successor, by output_idx.",
		registry.Args(registry.Arg("names", "list(string)", "Columns to emit, in output order.")),
		newSplit))
}
