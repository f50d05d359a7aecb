// Package series holds the time-indexed numeric data that flows through a
// calculation graph: named series, tables of series, index-aligned arithmetic
// and frequency resampling.
package series

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// ErrInvalidSeries is returned when a series cannot be constructed.
var ErrInvalidSeries = errors.New("invalid series")

// Series is a named sequence of values indexed by strictly ascending period
// start times.
type Series struct {
	Name   string
	Index  []time.Time
	Values []float64
}

// New validates and builds a series. The slices are copied.
func New(name string, index []time.Time, values []float64) (*Series, error) {
	if len(index) != len(values) {
		return nil, fmt.Errorf("%w %q: %d index entries for %d values", ErrInvalidSeries, name, len(index), len(values))
	}
	for i := 1; i < len(index); i++ {
		if !index[i-1].Before(index[i]) {
			return nil, fmt.Errorf("%w %q: index is not strictly ascending at position %d", ErrInvalidSeries, name, i)
		}
	}
	s := &Series{
		Name:   name,
		Index:  append([]time.Time(nil), index...),
		Values: append([]float64(nil), values...),
	}
	return s, nil
}

// Len returns the number of observations.
func (s *Series) Len() int { return len(s.Values) }

// Copy returns a deep copy of s.
func (s *Series) Copy() *Series {
	return &Series{
		Name:   s.Name,
		Index:  append([]time.Time(nil), s.Index...),
		Values: append([]float64(nil), s.Values...),
	}
}

// Rename returns a copy of s carrying the new name.
func (s *Series) Rename(name string) *Series {
	out := s.Copy()
	out.Name = name
	return out
}

// At returns the value observed at t, if any.
func (s *Series) At(t time.Time) (float64, bool) {
	i := sort.Search(len(s.Index), func(i int) bool { return !s.Index[i].Before(t) })
	if i < len(s.Index) && s.Index[i].Equal(t) {
		return s.Values[i], true
	}
	return 0, false
}

// Add returns the index-aligned sum of a and b.
func Add(a, b *Series) *Series {
	return combine(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the index-aligned difference a - b.
func Sub(a, b *Series) *Series {
	return combine(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns the index-aligned product of a and b.
func Mul(a, b *Series) *Series {
	return combine(a, b, func(x, y float64) float64 { return x * y })
}

// Map applies fn to every value of s and returns the result as a new series.
func (s *Series) Map(fn func(float64) float64) *Series {
	out := s.Copy()
	for i, v := range out.Values {
		out.Values[i] = fn(v)
	}
	return out
}

// AddScalar returns s + c.
func (s *Series) AddScalar(c float64) *Series {
	return s.Map(func(v float64) float64 { return v + c })
}

// MulScalar returns s * c.
func (s *Series) MulScalar(c float64) *Series {
	return s.Map(func(v float64) float64 { return v * c })
}

// combine aligns a and b on the union of their indexes. A period present on
// only one side produces NaN. The result keeps the name only when both
// operands share it.
func combine(a, b *Series, op func(x, y float64) float64) *Series {
	out := &Series{}
	if a.Name == b.Name {
		out.Name = a.Name
	}
	i, j := 0, 0
	for i < len(a.Index) || j < len(b.Index) {
		switch {
		case j >= len(b.Index) || (i < len(a.Index) && a.Index[i].Before(b.Index[j])):
			out.Index = append(out.Index, a.Index[i])
			out.Values = append(out.Values, math.NaN())
			i++
		case i >= len(a.Index) || b.Index[j].Before(a.Index[i]):
			out.Index = append(out.Index, b.Index[j])
			out.Values = append(out.Values, math.NaN())
			j++
		default:
			out.Index = append(out.Index, a.Index[i])
			out.Values = append(out.Values, op(a.Values[i], b.Values[j]))
			i++
			j++
		}
	}
	return out
}
