package graph

import (
	"fmt"
	"sort"

	"github.com/vk/calcgrid/internal/calc"
	"github.com/vk/calcgrid/internal/calcerr"
)

// Edge metadata keys.
const (
	MetaInputIdx  = "inputIdx"
	MetaOutputIdx = "outputIdx"
)

// DefaultMaxIterations bounds the fixpoint loop when no option overrides it.
const DefaultMaxIterations = 10

// NodeID addresses a node in a graph's arena.
type NodeID int

// EdgeSpec declares one edge for New. Meta may carry MetaInputIdx and
// MetaOutputIdx.
type EdgeSpec struct {
	From calc.Node
	To   calc.Node
	Meta map[string]int
}

// Edge is a read-only view of a stored edge.
type Edge struct {
	From NodeID
	To   NodeID
	Meta map[string]int
}

type edge struct {
	from, to  NodeID
	inputIdx  *int
	outputIdx *int
}

func (e *edge) meta() map[string]int {
	m := make(map[string]int, 2)
	if e.inputIdx != nil {
		m[MetaInputIdx] = *e.inputIdx
	}
	if e.outputIdx != nil {
		m[MetaOutputIdx] = *e.outputIdx
	}
	return m
}

// Graph is an immutable calculation graph.
type Graph struct {
	name          string
	maxIterations int

	nodes []calc.Node
	ids   map[calc.Node]NodeID
	edges []*edge

	// Edge indexes per node, in resolution order.
	incoming [][]int
	outgoing [][]int
}

// Option configures a Graph.
type Option func(*Graph)

// WithMaxIterations overrides the fixpoint bound. Values below 1 are
// ignored.
func WithMaxIterations(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.maxIterations = n
		}
	}
}

// New builds a graph from an edge list. It fails with calcerr.ErrInvalidGraph
// when an edge is malformed or when an order-sensitive node lacks a unique
// positional index on one of its relevant edges.
func New(name string, specs []EdgeSpec, opts ...Option) (*Graph, error) {
	g := &Graph{
		name:          name,
		maxIterations: DefaultMaxIterations,
		ids:           make(map[calc.Node]NodeID),
	}
	for _, opt := range opts {
		opt(g)
	}

	// Edges that differ in either positional index are parallel edges.
	type key struct {
		from, to      NodeID
		inIdx, outIdx int
		hasIn, hasOut bool
	}
	seen := make(map[key]*edge)

	for i, spec := range specs {
		if spec.From == nil || spec.To == nil {
			return nil, calcerr.Newf(calcerr.ErrInvalidGraph, "edge %d: both endpoints are required", i)
		}
		for k := range spec.Meta {
			if k != MetaInputIdx && k != MetaOutputIdx {
				return nil, calcerr.Newf(calcerr.ErrInvalidGraph, "edge %d: unknown metadata key %q", i, k)
			}
		}
		from, to := g.add(spec.From), g.add(spec.To)

		k := key{from: from, to: to}
		if v, ok := spec.Meta[MetaInputIdx]; ok {
			k.inIdx, k.hasIn = v, true
		}
		if v, ok := spec.Meta[MetaOutputIdx]; ok {
			k.outIdx, k.hasOut = v, true
		}
		if _, ok := seen[k]; ok {
			continue
		}
		e := &edge{from: from, to: to}
		if k.hasIn {
			in := k.inIdx
			e.inputIdx = &in
		}
		if k.hasOut {
			out := k.outIdx
			e.outputIdx = &out
		}
		seen[k] = e
		g.edges = append(g.edges, e)
	}

	g.incoming = make([][]int, len(g.nodes))
	g.outgoing = make([][]int, len(g.nodes))
	for i, e := range g.edges {
		g.outgoing[e.from] = append(g.outgoing[e.from], i)
		g.incoming[e.to] = append(g.incoming[e.to], i)
	}

	for id, n := range g.nodes {
		if n.OrderedInputs() {
			if err := g.order(g.incoming[id], MetaInputIdx, func(e *edge) *int { return e.inputIdx }); err != nil {
				return nil, fmt.Errorf("node %s (#%d): %w", n, id, err)
			}
		}
		if n.OrderedOutputs() {
			if err := g.order(g.outgoing[id], MetaOutputIdx, func(e *edge) *int { return e.outputIdx }); err != nil {
				return nil, fmt.Errorf("node %s (#%d): %w", n, id, err)
			}
		}
	}
	return g, nil
}

func (g *Graph) add(n calc.Node) NodeID {
	if id, ok := g.ids[n]; ok {
		return id
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.ids[n] = id
	return id
}

// order sorts edge indexes in place by the positional index idx returns.
func (g *Graph) order(edges []int, key string, idx func(*edge) *int) error {
	used := make(map[int]bool, len(edges))
	for _, i := range edges {
		v := idx(g.edges[i])
		if v == nil {
			return calcerr.Newf(calcerr.ErrInvalidGraph, "order-sensitive node needs %s on every edge", key)
		}
		if used[*v] {
			return calcerr.Newf(calcerr.ErrInvalidGraph, "duplicate %s %d", key, *v)
		}
		used[*v] = true
	}
	sort.SliceStable(edges, func(a, b int) bool {
		return *idx(g.edges[edges[a]]) < *idx(g.edges[edges[b]])
	})
	return nil
}

// Name returns the graph's name.
func (g *Graph) Name() string { return g.name }

// MaxIterations returns the fixpoint bound.
func (g *Graph) MaxIterations() int { return g.maxIterations }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node stored under id.
func (g *Graph) Node(id NodeID) calc.Node { return g.nodes[id] }

// ID looks up the arena address of n.
func (g *Graph) ID(n calc.Node) (NodeID, bool) {
	id, ok := g.ids[n]
	return id, ok
}

// Nodes returns all nodes in NodeID order.
func (g *Graph) Nodes() []calc.Node {
	return append([]calc.Node(nil), g.nodes...)
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = Edge{From: e.from, To: e.to, Meta: e.meta()}
	}
	return out
}

// InputNodes returns the nodes without incoming edges, in NodeID order.
func (g *Graph) InputNodes() ([]NodeID, error) {
	var out []NodeID
	for id := range g.nodes {
		if len(g.incoming[id]) == 0 {
			out = append(out, NodeID(id))
		}
	}
	if len(out) == 0 {
		return nil, calcerr.Newf(calcerr.ErrGraphIncomplete, "graph %q has no input node", g.name)
	}
	return out, nil
}

// OutputNode returns the single node without outgoing edges.
func (g *Graph) OutputNode() (NodeID, error) {
	var out []NodeID
	for id := range g.nodes {
		if len(g.outgoing[id]) == 0 {
			out = append(out, NodeID(id))
		}
	}
	if len(out) != 1 {
		return 0, calcerr.Newf(calcerr.ErrGraphIncomplete, "graph %q needs exactly one output node, found %d", g.name, len(out))
	}
	return out[0], nil
}

// Predecessors returns the source of every incoming edge of id, in input
// order. A predecessor appears once per parallel edge.
func (g *Graph) Predecessors(id NodeID) []NodeID {
	out := make([]NodeID, len(g.incoming[id]))
	for i, e := range g.incoming[id] {
		out[i] = g.edges[e].from
	}
	return out
}

// Successors returns the target of every outgoing edge of id, in output
// order.
func (g *Graph) Successors(id NodeID) []NodeID {
	out := make([]NodeID, len(g.outgoing[id]))
	for i, e := range g.outgoing[id] {
		out[i] = g.edges[e].to
	}
	return out
}
