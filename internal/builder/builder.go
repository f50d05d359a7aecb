package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/calcgrid/internal/calc"
	"github.com/vk/calcgrid/internal/config"
	"github.com/vk/calcgrid/internal/ctxlog"
	"github.com/vk/calcgrid/internal/frequency"
	"github.com/vk/calcgrid/internal/graph"
	"github.com/vk/calcgrid/internal/registry"
)

var (
	ErrUnknownKind   = errors.New("unknown node kind")
	ErrDuplicateNode = errors.New("duplicate node id")
	ErrUnknownNode   = errors.New("unknown node id")
	ErrNoEdges       = errors.New("pipeline declares no edges")
)

// Pipeline is a built graph together with the ids its nodes were declared
// under.
type Pipeline struct {
	Graph *graph.Graph
	ids   map[calc.Node]string
}

// ID returns the declared id of the node stored under id in the graph.
func (p *Pipeline) ID(id graph.NodeID) string {
	return p.ids[p.Graph.Node(id)]
}

// EvalContext exposes the frequency keywords (daily, monthly, quarterly,
// annual) as variables to node arguments.
func EvalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, f := range frequency.All() {
		vars[f.Name()] = cty.StringVal(string(f))
	}
	return &hcl.EvalContext{Variables: vars}
}

// Build constructs the graph described by model. A positive maxIterations
// overrides the pipeline's own setting.
func Build(ctx context.Context, model *config.Model, conv config.Converter, reg *registry.Registry, maxIterations int) (*Pipeline, error) {
	ctx, logger := ctxlog.With(ctx, "pipeline", model.Name)
	logger.Debug("Build: Starting graph construction.")

	nodes, err := createNodes(ctx, model, conv, reg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Node creation complete.", "node_count", len(nodes))

	specs, err := resolveEdges(ctx, model, nodes)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Edge resolution complete.", "edge_count", len(specs))

	if err := detectCycles(model); err != nil {
		return nil, err
	}
	logger.Debug("Build: Cycle detection passed.")

	if maxIterations <= 0 {
		maxIterations = model.MaxIterations
	}
	g, err := graph.New(model.Name, specs, graph.WithMaxIterations(maxIterations))
	if err != nil {
		return nil, fmt.Errorf("pipeline %q: %w", model.Name, err)
	}

	p := &Pipeline{Graph: g, ids: make(map[calc.Node]string, len(nodes))}
	for id, n := range nodes {
		p.ids[n] = id
	}
	logger.Info("Build: Graph construction successful.", "nodes", g.Len(), "maxIterations", g.MaxIterations())
	return p, nil
}

// createNodes instantiates every node block through the registry.
func createNodes(ctx context.Context, model *config.Model, conv config.Converter, reg *registry.Registry) (map[string]calc.Node, error) {
	evalCtx := EvalContext()
	nodes := make(map[string]calc.Node, len(model.Nodes))

	for _, n := range model.Nodes {
		if _, exists := nodes[n.ID]; exists {
			return nil, fmt.Errorf("%w %q (%s)", ErrDuplicateNode, n.ID, n.Source)
		}
		kind, ok := reg.Lookup(n.Kind)
		if !ok {
			return nil, fmt.Errorf("node %q (%s): %w %q, known kinds: %s", n.ID, n.Source, ErrUnknownKind, n.Kind, strings.Join(reg.Kinds(), ", "))
		}

		args := kind.NewArgs()
		if err := conv.DecodeArguments(ctx, args, n.Arguments, kind.Arguments, evalCtx); err != nil {
			return nil, fmt.Errorf("node %q %q (%s): %w", n.Kind, n.ID, n.Source, err)
		}
		node, err := kind.New(args)
		if err != nil {
			return nil, fmt.Errorf("node %q %q (%s): %w", n.Kind, n.ID, n.Source, err)
		}
		ctxlog.FromContext(ctx).Debug("Created node.", "id", n.ID, "kind", n.Kind, "node", node.String())
		nodes[n.ID] = node
	}
	return nodes, nil
}

// resolveEdges maps edge blocks onto graph edge specs.
func resolveEdges(ctx context.Context, model *config.Model, nodes map[string]calc.Node) ([]graph.EdgeSpec, error) {
	logger := ctxlog.FromContext(ctx)
	if len(model.Edges) == 0 {
		return nil, ErrNoEdges
	}

	referenced := make(map[string]bool, len(nodes))
	specs := make([]graph.EdgeSpec, 0, len(model.Edges))
	for _, e := range model.Edges {
		from, ok := nodes[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %q -> %q (%s): %w %q", e.From, e.To, e.Source, ErrUnknownNode, e.From)
		}
		to, ok := nodes[e.To]
		if !ok {
			return nil, fmt.Errorf("edge %q -> %q (%s): %w %q", e.From, e.To, e.Source, ErrUnknownNode, e.To)
		}
		referenced[e.From], referenced[e.To] = true, true

		spec := graph.EdgeSpec{From: from, To: to}
		if e.InputIdx != nil || e.OutputIdx != nil {
			spec.Meta = make(map[string]int, 2)
		}
		if e.InputIdx != nil {
			spec.Meta[graph.MetaInputIdx] = *e.InputIdx
		}
		if e.OutputIdx != nil {
			spec.Meta[graph.MetaOutputIdx] = *e.OutputIdx
		}
		specs = append(specs, spec)
	}

	for _, n := range model.Nodes {
		if !referenced[n.ID] {
			logger.Warn("Node is not connected by any edge, skipping.", "id", n.ID, "kind", n.Kind)
		}
	}
	return specs, nil
}
