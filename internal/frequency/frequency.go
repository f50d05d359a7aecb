// Package frequency implements the sampling-frequency type system: a closed,
// totally ordered set of frequencies and the handlers that derive a node's
// output frequency from the frequencies of its inputs.
package frequency

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownFrequency is returned for values outside the closed set.
var ErrUnknownFrequency = errors.New("unknown frequency")

// Frequency is the sampling granularity of a time-indexed series.
type Frequency string

const (
	Daily     Frequency = "D"
	Monthly   Frequency = "M"
	Quarterly Frequency = "Q"
	Annual    Frequency = "A"
)

// ranks orders frequencies by coarseness.
var ranks = map[Frequency]int{
	Daily:     1,
	Monthly:   2,
	Quarterly: 3,
	Annual:    4,
}

var longNames = map[string]Frequency{
	"daily":     Daily,
	"monthly":   Monthly,
	"quarterly": Quarterly,
	"annual":    Annual,
}

// All returns every frequency, finest first.
func All() []Frequency {
	return []Frequency{Daily, Monthly, Quarterly, Annual}
}

// Parse accepts a tag ("M") or a long name ("monthly"), case-insensitively.
func Parse(s string) (Frequency, error) {
	trimmed := strings.TrimSpace(s)
	if f := Frequency(strings.ToUpper(trimmed)); f.Valid() {
		return f, nil
	}
	if f, ok := longNames[strings.ToLower(trimmed)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
}

// Valid reports whether f belongs to the closed set.
func (f Frequency) Valid() bool {
	_, ok := ranks[f]
	return ok
}

// Rank returns 1 (daily) through 4 (annual), or 0 for an unknown value.
func (f Frequency) Rank() int {
	return ranks[f]
}

// Name returns the lower-case long name, e.g. "quarterly".
func (f Frequency) Name() string {
	for name, v := range longNames {
		if v == f {
			return name
		}
	}
	return string(f)
}

func (f Frequency) String() string { return string(f) }

// Compare returns -1, 0 or +1 as a is finer than, equal to, or coarser than b.
func Compare(a, b Frequency) int {
	ra, rb := a.Rank(), b.Rank()
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// Less reports whether a is strictly finer than b.
func Less(a, b Frequency) bool {
	return Compare(a, b) < 0
}

// Max returns the coarsest of the given frequencies. fs must be non-empty.
func Max(fs ...Frequency) Frequency {
	out := fs[0]
	for _, f := range fs[1:] {
		if Compare(f, out) > 0 {
			out = f
		}
	}
	return out
}

// Min returns the finest of the given frequencies. fs must be non-empty.
func Min(fs ...Frequency) Frequency {
	out := fs[0]
	for _, f := range fs[1:] {
		if Compare(f, out) < 0 {
			out = f
		}
	}
	return out
}

// PeriodStart truncates t to the first instant of the period containing it.
// The location of t is preserved.
func (f Frequency) PeriodStart(t time.Time) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch f {
	case Daily:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case Monthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case Quarterly:
		q := (int(m)-1)/3*3 + 1
		return time.Date(y, time.Month(q), 1, 0, 0, 0, 0, loc)
	case Annual:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
	return t
}

// Step advances t by n periods of f.
func (f Frequency) Step(t time.Time, n int) time.Time {
	switch f {
	case Daily:
		return t.AddDate(0, 0, n)
	case Monthly:
		return t.AddDate(0, n, 0)
	case Quarterly:
		return t.AddDate(0, 3*n, 0)
	case Annual:
		return t.AddDate(n, 0, 0)
	}
	return t
}
