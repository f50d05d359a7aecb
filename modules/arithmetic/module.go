// Package arithmetic provides the add, subtract and multiply node kinds.
package arithmetic

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/calcgrid/internal/calc"
	"github.com/vk/calcgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Args defines the arguments shared by all arithmetic kinds.
type Args struct {
	Const float64 `arg:"const"`
}

// Register registers the node kinds with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.Kind("add", "Sums its inputs, then adds const.",
		registry.Args(registry.OptionalArg("const", "number", "Constant added to the sum.", cty.Zero)),
		func(a *Args) (calc.Node, error) { return calc.NewAdd(a.Const), nil }))
	r.RegisterKind(registry.Kind("subtract", "Computes input 1 - input 2 - const. Edges need input_idx.",
		registry.Args(registry.OptionalArg("const", "number", "Constant subtracted from the difference.", cty.Zero)),
		func(a *Args) (calc.Node, error) { return calc.NewSubtract(a.Const), nil }))
	r.RegisterKind(registry.Kind("multiply", "Multiplies its inputs, then scales by const.",
		registry.Args(registry.OptionalArg("const", "number", "Scale factor.", cty.NumberIntVal(1))),
		func(a *Args) (calc.Node, error) { return calc.NewMultiply(a.Const), nil }))
}
