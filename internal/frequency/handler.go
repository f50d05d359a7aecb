package frequency

import (
	"fmt"

	"github.com/vk/calcgrid/internal/calcerr"
)

// Handler derives the output frequency of a calculation from the ordered
// frequencies of its inputs.
//
// Handlers check arity before anything else, so an input count mismatch is
// always reported as calcerr.ErrArity even when the frequencies themselves
// would also be rejected.
type Handler interface {
	OutputFrequency(inputs ...Frequency) (Frequency, error)
}

// checkInputs validates the input count and that every input is known.
// A fixed arity of 0 means unconstrained, which still requires one input.
func checkInputs(arity int, inputs []Frequency) error {
	if arity > 0 && len(inputs) != arity {
		return calcerr.Arity(arity, len(inputs))
	}
	if len(inputs) == 0 {
		return calcerr.MinArity(1, 0)
	}
	for _, f := range inputs {
		if !f.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownFrequency, string(f))
		}
	}
	return nil
}

// Passthrough handles a single series whose frequency is not altered.
type Passthrough struct{}

func (Passthrough) OutputFrequency(inputs ...Frequency) (Frequency, error) {
	if err := checkInputs(1, inputs); err != nil {
		return "", err
	}
	return inputs[0], nil
}

// Identical requires every input to share one frequency, which it returns.
// Arity 0 accepts any number of inputs.
type Identical struct {
	Arity int
}

func (h Identical) OutputFrequency(inputs ...Frequency) (Frequency, error) {
	if err := checkInputs(h.Arity, inputs); err != nil {
		return "", err
	}
	for _, f := range inputs[1:] {
		if f != inputs[0] {
			return "", calcerr.Newf(calcerr.ErrIncompatibleFrequencies, "needs identical frequencies, got %v", distinct(inputs))
		}
	}
	return inputs[0], nil
}

// Coarsest returns the least granular input frequency.
type Coarsest struct{}

func (Coarsest) OutputFrequency(inputs ...Frequency) (Frequency, error) {
	if err := checkInputs(0, inputs); err != nil {
		return "", err
	}
	return Max(inputs...), nil
}

// Finest returns the most granular input frequency.
type Finest struct{}

func (Finest) OutputFrequency(inputs ...Frequency) (Frequency, error) {
	if err := checkInputs(0, inputs); err != nil {
		return "", err
	}
	return Min(inputs...), nil
}

// Downsample aggregates a single series to Target, which must be equal to or
// coarser than the input frequency.
type Downsample struct {
	Target Frequency
}

func (h Downsample) OutputFrequency(inputs ...Frequency) (Frequency, error) {
	if err := checkInputs(1, inputs); err != nil {
		return "", err
	}
	if !h.Target.Valid() {
		return "", fmt.Errorf("%w: target %q", ErrUnknownFrequency, string(h.Target))
	}
	if Compare(inputs[0], h.Target) > 0 {
		return "", calcerr.Newf(calcerr.ErrInvalidAggregation, "can only aggregate to an equal or coarser frequency, cannot go from %s to %s", inputs[0].Name(), h.Target.Name())
	}
	return h.Target, nil
}

// distinct lists the frequencies in fs without repeats, in rank order.
func distinct(fs []Frequency) []Frequency {
	var out []Frequency
	for _, f := range All() {
		for _, in := range fs {
			if in == f {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
