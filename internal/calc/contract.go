package calc

import (
	"fmt"

	"github.com/vk/calcgrid/internal/calcerr"
	"github.com/vk/calcgrid/internal/series"
)

// Kind classifies a Value for input validation.
type Kind int

const (
	KindAny Kind = iota
	KindSeries
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindSeries:
		return "series"
	case KindTable:
		return "table"
	default:
		return "any"
	}
}

// KindOf reports the kind of v. Unknown values report KindAny.
func KindOf(v Value) Kind {
	switch v.(type) {
	case *series.Series:
		return KindSeries
	case *series.Table:
		return KindTable
	default:
		return KindAny
	}
}

// Contract declares how many inputs a node accepts and of what kind.
//
// Arity 0 means any number of inputs, but at least one. A single entry in
// Kinds applies to every input; otherwise Kinds[i] applies to input i.
type Contract struct {
	Arity int
	Kinds []Kind
}

// Check validates inputs against the contract: arity first, then kinds.
func (c Contract) Check(inputs []Value) error {
	if c.Arity > 0 && len(inputs) != c.Arity {
		return calcerr.Arity(c.Arity, len(inputs))
	}
	if len(inputs) == 0 {
		return calcerr.MinArity(1, 0)
	}
	for i, in := range inputs {
		want := c.kindAt(i)
		if isNil(in) {
			return calcerr.Newf(calcerr.ErrTypeMismatch, "input %d: expected %s, got nil", i+1, want)
		}
		got := KindOf(in)
		if got == KindAny || (want != KindAny && want != got) {
			return calcerr.Newf(calcerr.ErrTypeMismatch, "input %d: expected %s, got %s", i+1, want, describe(in))
		}
	}
	return nil
}

func (c Contract) kindAt(i int) Kind {
	switch {
	case len(c.Kinds) == 0:
		return KindAny
	case len(c.Kinds) == 1:
		return c.Kinds[0]
	case i < len(c.Kinds):
		return c.Kinds[i]
	default:
		return KindAny
	}
}

// isNil reports untyped nils and nil pointers of the known value kinds.
func isNil(v Value) bool {
	switch v := v.(type) {
	case nil:
		return true
	case *series.Series:
		return v == nil
	case *series.Table:
		return v == nil
	}
	return false
}

func describe(v Value) string {
	if k := KindOf(v); k != KindAny {
		return k.String()
	}
	return fmt.Sprintf("%T", v)
}
