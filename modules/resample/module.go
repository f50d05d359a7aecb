// Package resample provides the aggregate node kind.
package resample

import (
	"github.com/vk/calcgrid/internal/calc"
	"github.com/vk/calcgrid/internal/frequency"
	"github.com/vk/calcgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Args defines the arguments of the aggregate kind.
type Args struct {
	Frequency   string `arg:"frequency"`
	Aggregation string `arg:"aggregation"`
}

func newAggregate(a *Args) (calc.Node, error) {
	target, err := frequency.Parse(a.Frequency)
	if err != nil {
		return nil, err
	}
	return calc.NewAggregate(target, a.Aggregation)
}

// Register registers the node kinds with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.Kind("aggregate", "Resamples its input to a coarser frequency.",
		registry.Args(
			registry.Arg("frequency", "string", "Target frequency: daily, monthly, quarterly or annual."),
			registry.Arg("aggregation", "string", "One of sum, mean, max, min, first, last, count."),
		),
		newAggregate))
}
