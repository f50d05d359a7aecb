package graph

import "github.com/vk/calcgrid/internal/calc"

// evaluator supplies the pass-specific behavior to the traversal. T is the
// payload carried on edges: calc.Value for the compute pass and
// frequency.Frequency for the frequency pass.
type evaluator[T any] interface {
	// name labels the pass in logs and errors.
	name() string
	// begin runs once before seeding.
	begin(g *Graph)
	// seed evaluates an input node against the external value.
	seed(n calc.Node) (T, error)
	// eval evaluates a node on its predecessor payloads, in input order.
	eval(n calc.Node, inputs []T) (T, error)
	// split reports whether v carries one payload per outgoing edge.
	split(v T) ([]T, bool)
}
