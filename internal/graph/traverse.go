package graph

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vk/calcgrid/internal/calcerr"
	"github.com/vk/calcgrid/internal/ctxlog"
)

// run is the traversal shared by every pass.
type run[T any] struct {
	g      *Graph
	ev     evaluator[T]
	logger *slog.Logger

	payload []T
	staged  []bool
}

func traverse[T any](ctx context.Context, g *Graph, ev evaluator[T]) (T, error) {
	var zero T

	r := &run[T]{
		g:  g,
		ev: ev,
		logger: ctxlog.FromContext(ctx).With(
			"graph", g.name,
			"pass", ev.name(),
			"run_id", uuid.NewString(),
		),
		payload: make([]T, len(g.edges)),
		staged:  make([]bool, len(g.edges)),
	}

	inputs, err := g.InputNodes()
	if err != nil {
		return zero, err
	}
	output, err := g.OutputNode()
	if err != nil {
		return zero, err
	}

	r.logger.Debug("Starting pass", "inputs", len(inputs), "output", g.nodes[output].String(), "maxIterations", g.maxIterations)
	ev.begin(g)

	for _, id := range inputs {
		v, err := ev.seed(g.nodes[id])
		if err != nil {
			return zero, r.fail(id, err)
		}
		r.logger.Debug("Seeded input node", "node", g.nodes[id].String(), "id", int(id))
		if id == output {
			r.logger.Debug("Pass finished", "iterations", 0)
			return v, nil
		}
		if err := r.stage(id, v); err != nil {
			return zero, err
		}
	}

	for iter := 1; iter <= g.maxIterations; iter++ {
		frontier := r.frontier()
		if len(frontier) == 0 {
			break
		}
		for _, id := range frontier {
			n := g.nodes[id]
			v, err := ev.eval(n, r.gather(id))
			if err != nil {
				return zero, r.fail(id, err)
			}
			r.logger.Debug("Evaluated node", "node", n.String(), "id", int(id), "iteration", iter)
			if id == output {
				r.logger.Debug("Pass finished", "iterations", iter)
				return v, nil
			}
			if err := r.stage(id, v); err != nil {
				return zero, err
			}
		}
	}

	return zero, calcerr.Newf(calcerr.ErrGraphIncomplete,
		"output node %s of graph %q not reached within %d iterations", g.nodes[output], g.name, g.maxIterations)
}

// frontier lists, in NodeID order, the nodes whose incoming edges are all
// populated and whose outgoing edges are all empty. Input nodes are never
// part of it.
func (r *run[T]) frontier() []NodeID {
	var out []NodeID
	for id := range r.g.nodes {
		in, outs := r.g.incoming[id], r.g.outgoing[id]
		if len(in) == 0 || !r.all(in, true) || !r.all(outs, false) {
			continue
		}
		out = append(out, NodeID(id))
	}
	return out
}

func (r *run[T]) all(edges []int, staged bool) bool {
	for _, e := range edges {
		if r.staged[e] != staged {
			return false
		}
	}
	return true
}

func (r *run[T]) gather(id NodeID) []T {
	in := r.g.incoming[id]
	out := make([]T, len(in))
	for i, e := range in {
		out[i] = r.payload[e]
	}
	return out
}

// stage writes v onto the outgoing edges of id. A split result feeds the
// edges positionally; anything else is broadcast.
func (r *run[T]) stage(id NodeID, v T) error {
	outs := r.g.outgoing[id]
	parts, ok := r.ev.split(v)
	if ok && len(parts) != len(outs) {
		return r.fail(id, calcerr.Newf(calcerr.ErrArity, "produced %d outputs for %d outgoing edges", len(parts), len(outs)))
	}
	for i, e := range outs {
		if ok {
			r.payload[e] = parts[i]
		} else {
			r.payload[e] = v
		}
		r.staged[e] = true
	}
	return nil
}

func (r *run[T]) fail(id NodeID, err error) error {
	n := r.g.nodes[id]
	r.logger.Debug("Node evaluation failed", "node", n.String(), "id", int(id), "error", err)
	return &calcerr.NodeEvaluationError{
		Node: n.String(),
		ID:   int(id),
		Pass: r.ev.name(),
		Err:  err,
	}
}
