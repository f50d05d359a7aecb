// Package calc defines the calculation units that make up a graph.
//
// Every node exposes two explicit behaviors: Compute transforms input values
// and OutputFrequency derives the output sampling frequency from the input
// frequencies. The graph engine calls one or the other depending on the pass
// it is running. Nodes are identity-addressed: two nodes built with the same
// arguments are still different vertices.
package calc

import (
	"sync"

	"github.com/vk/calcgrid/internal/frequency"
)

// Value is the data exchanged between nodes: a *series.Series or a
// *series.Table.
type Value any

// Outputs is returned by nodes that feed a different value to each
// successor. Element i goes to the i-th successor in output order.
type Outputs []Value

// Node is a single calculation unit.
type Node interface {
	// Compute evaluates the node on its inputs, given in input order.
	Compute(inputs ...Value) (Value, error)
	// OutputFrequency derives the output frequency from the input
	// frequencies, given in input order.
	OutputFrequency(inputs ...frequency.Frequency) (frequency.Frequency, error)
	// OrderedInputs reports whether predecessors must be resolved by
	// ascending input index.
	OrderedInputs() bool
	// OrderedOutputs reports whether successors must be resolved by
	// ascending output index.
	OrderedOutputs() bool
	// LastResult returns the value produced by the most recent Compute.
	// It is kept for introspection only.
	LastResult() Value
	// ResetCache clears LastResult.
	ResetCache()
	String() string
}

// Source is implemented by nodes that read directly from the external input
// table. Only sources may appear as input nodes of a graph.
type Source interface {
	Node
	// Sources lists the input table columns the node reads.
	Sources() []string
}

// Base carries the state and behavior common to all nodes. Concrete nodes
// embed it and implement Compute and String.
type Base struct {
	Contract   Contract
	Frequency  frequency.Handler
	InOrder    bool
	OutInOrder bool

	mu   sync.Mutex
	last Value
}

func (b *Base) OutputFrequency(inputs ...frequency.Frequency) (frequency.Frequency, error) {
	return b.Frequency.OutputFrequency(inputs...)
}

func (b *Base) OrderedInputs() bool { return b.InOrder }

func (b *Base) OrderedOutputs() bool { return b.OutInOrder }

func (b *Base) LastResult() Value {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

func (b *Base) ResetCache() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = nil
}

// Remember stores v as the last result and returns it.
func (b *Base) Remember(v Value) Value {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last = v
	return v
}
