// Package calcerr defines the error taxonomy shared by the frequency
// handlers, the calculation nodes and the graph engine.
//
// Every failure carries one of the sentinel kinds below so callers can branch
// with errors.Is regardless of how many layers wrapped it.
package calcerr

import (
	"errors"
	"fmt"
)

var (
	// ErrArity is returned when a node or frequency handler receives the
	// wrong number of inputs.
	ErrArity = errors.New("arity mismatch")

	// ErrTypeMismatch is returned when an input value has the wrong kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIncompatibleFrequencies is returned when a handler requires equal
	// input frequencies and receives differing ones.
	ErrIncompatibleFrequencies = errors.New("incompatible frequencies")

	// ErrInvalidAggregation is returned when a downsample would have to
	// produce a finer frequency than its input.
	ErrInvalidAggregation = errors.New("invalid aggregation")

	// ErrGraphIncomplete is returned when the output node cannot be reached,
	// or when the graph has no input node or not exactly one output node.
	ErrGraphIncomplete = errors.New("graph incomplete")

	// ErrNodeEvaluation marks failures raised while a node was evaluated.
	ErrNodeEvaluation = errors.New("node evaluation failed")

	// ErrMissingInput is returned when a required input column or input
	// frequency was not supplied.
	ErrMissingInput = errors.New("missing input")

	// ErrInvalidGraph is returned when an edge list cannot form a graph.
	ErrInvalidGraph = errors.New("invalid graph")
)

// Error attaches a message to one of the sentinel kinds.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// Newf builds an Error of the given kind.
func Newf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Arity reports a fixed-arity violation.
func Arity(want, got int) error {
	return Newf(ErrArity, "accepts exactly %d inputs, got %d", want, got)
}

// MinArity reports too few inputs for an unconstrained-arity consumer.
func MinArity(min, got int) error {
	return Newf(ErrArity, "accepts at least %d inputs, got %d", min, got)
}

// NodeEvaluationError wraps a failure raised by a node together with the
// identity of that node and the pass that was running.
type NodeEvaluationError struct {
	Node string
	ID   int
	Pass string
	Err  error
}

func (e *NodeEvaluationError) Error() string {
	return fmt.Sprintf("problem evaluating node %s (#%d) during %s pass: %v", e.Node, e.ID, e.Pass, e.Err)
}

func (e *NodeEvaluationError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrNodeEvaluation in addition to the wrapped cause.
func (e *NodeEvaluationError) Is(target error) bool {
	return target == ErrNodeEvaluation
}
