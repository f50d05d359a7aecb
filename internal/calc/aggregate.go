package calc

import (
	"fmt"

	"github.com/vk/calcgrid/internal/frequency"
	"github.com/vk/calcgrid/internal/series"
)

// Aggregate resamples a series or table to a coarser frequency.
type Aggregate struct {
	Base
	Target      frequency.Frequency
	Aggregation series.Aggregation
}

// NewAggregate validates the target frequency and aggregation name.
func NewAggregate(target frequency.Frequency, aggregation string) (*Aggregate, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("aggregate: %w: %q", frequency.ErrUnknownFrequency, string(target))
	}
	agg, err := series.ParseAggregation(aggregation)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	return &Aggregate{
		Base: Base{
			Contract:  Contract{Arity: 1, Kinds: []Kind{KindAny}},
			Frequency: frequency.Downsample{Target: target},
		},
		Target:      target,
		Aggregation: agg,
	}, nil
}

func (n *Aggregate) Compute(inputs ...Value) (Value, error) {
	if err := n.Contract.Check(inputs); err != nil {
		return nil, err
	}
	var (
		out Value
		err error
	)
	switch in := inputs[0].(type) {
	case *series.Series:
		out, err = in.Resample(n.Target, n.Aggregation)
	case *series.Table:
		out, err = in.Resample(n.Target, n.Aggregation)
	}
	if err != nil {
		return nil, err
	}
	return n.Remember(out), nil
}

func (n *Aggregate) String() string {
	return fmt.Sprintf("Aggregate(%s-%s)", n.Target, n.Aggregation)
}
