package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/calcgrid/internal/config"
)

// translatePipeline copies pipeline settings into the model.
func (l *Loader) translatePipeline(p *pipelineBlock, model *config.Model) {
	model.Name = p.Name
	if p.MaxIterations != nil {
		model.MaxIterations = *p.MaxIterations
	}
}

// translateNode converts a node block into the agnostic model.
func (l *Loader) translateNode(n *nodeBlock, file string) (*config.Node, error) {
	args, err := l.extractBodyAttributes(n.Body)
	if err != nil {
		return nil, fmt.Errorf("node %q %q in %s: %w", n.Kind, n.ID, file, err)
	}
	return &config.Node{
		Kind:      n.Kind,
		ID:        n.ID,
		Arguments: args,
		Source:    file,
	}, nil
}

// translateEdge converts an edge block into the agnostic model.
func (l *Loader) translateEdge(e *edgeBlock, file string) *config.Edge {
	return &config.Edge{
		From:      e.From,
		To:        e.To,
		InputIdx:  e.InputIdx,
		OutputIdx: e.OutputIdx,
		Source:    file,
	}
}

// extractBodyAttributes converts a block body into a map of expressions.
// Nested blocks are rejected.
func (l *Loader) extractBodyAttributes(body hcl.Body) (map[string]hcl.Expression, error) {
	if body == nil {
		return nil, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	exprMap := make(map[string]hcl.Expression, len(attrs))
	for name, attr := range attrs {
		exprMap[name] = attr.Expr
	}
	return exprMap, nil
}
