package series

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vk/calcgrid/internal/frequency"
)

// ErrUnknownAggregation is returned for an unsupported aggregation name.
var ErrUnknownAggregation = errors.New("unknown aggregation")

// Aggregation names how the observations falling into one period are
// reduced to a single value.
type Aggregation string

const (
	Sum   Aggregation = "sum"
	Mean  Aggregation = "mean"
	Max   Aggregation = "max"
	Min   Aggregation = "min"
	First Aggregation = "first"
	Last  Aggregation = "last"
	Count Aggregation = "count"
)

// ParseAggregation validates an aggregation name.
func ParseAggregation(s string) (Aggregation, error) {
	switch a := Aggregation(s); a {
	case Sum, Mean, Max, Min, First, Last, Count:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAggregation, s)
}

// reduce applies the aggregation to the values of one period, skipping NaN.
func (a Aggregation) reduce(values []float64) float64 {
	var kept []float64
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	switch a {
	case Count:
		return float64(len(kept))
	case Sum:
		total := 0.0
		for _, v := range kept {
			total += v
		}
		return total
	}
	if len(kept) == 0 {
		return math.NaN()
	}
	switch a {
	case Mean:
		total := 0.0
		for _, v := range kept {
			total += v
		}
		return total / float64(len(kept))
	case Max:
		return maxOf(kept)
	case Min:
		return minOf(kept)
	case First:
		return kept[0]
	case Last:
		return kept[len(kept)-1]
	}
	return math.NaN()
}

// Resample groups observations by the period of target they fall into and
// reduces each group with agg. Periods are labeled by their start time. Every
// period between the first and the last observation is present; an empty one
// reduces like an all-NaN group (sum and count 0, others NaN).
func (s *Series) Resample(target frequency.Frequency, agg Aggregation) (*Series, error) {
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %q", frequency.ErrUnknownFrequency, string(target))
	}
	if _, err := ParseAggregation(string(agg)); err != nil {
		return nil, err
	}
	out := &Series{Name: s.Name}
	var (
		bucket  []float64
		current time.Time
	)
	flush := func() {
		if bucket == nil {
			return
		}
		out.Index = append(out.Index, current)
		out.Values = append(out.Values, agg.reduce(bucket))
	}
	for i, t := range s.Index {
		start := target.PeriodStart(t)
		if bucket == nil || !start.Equal(current) {
			flush()
			if bucket != nil {
				// Periods without observations are emitted empty.
				for p := target.Step(current, 1); p.Before(start); p = target.Step(p, 1) {
					out.Index = append(out.Index, p)
					out.Values = append(out.Values, agg.reduce(nil))
				}
			}
			current = start
			bucket = []float64{}
		}
		bucket = append(bucket, s.Values[i])
	}
	flush()
	return out, nil
}

// Resample resamples every column of the table.
func (t *Table) Resample(target frequency.Frequency, agg Aggregation) (*Table, error) {
	cols := make([]*Series, 0, t.Len())
	for _, c := range t.Columns() {
		r, err := c.Resample(target, agg)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		cols = append(cols, r)
	}
	return NewTable(cols...)
}

func maxOf(values []float64) float64 {
	out := values[0]
	for _, v := range values[1:] {
		if v > out {
			out = v
		}
	}
	return out
}

func minOf(values []float64) float64 {
	out := values[0]
	for _, v := range values[1:] {
		if v < out {
			out = v
		}
	}
	return out
}
