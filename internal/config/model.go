package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Model is the unified, format-agnostic representation of a pipeline: its
// settings, its node declarations and the edges between them.
type Model struct {
	Name string
	// MaxIterations is zero when the pipeline does not set it.
	MaxIterations int
	Nodes         []*Node
	Edges         []*Edge
}

// Node is the format-agnostic representation of a `node` block.
type Node struct {
	Kind      string
	ID        string
	Arguments map[string]hcl.Expression
	// Source locates the declaration, for error messages.
	Source string
}

// Edge is the format-agnostic representation of an `edge` block. Nil
// indexes were not set.
type Edge struct {
	From      string
	To        string
	InputIdx  *int
	OutputIdx *int
	Source    string
}

// ArgumentDefinition defines a single argument accepted by a node kind.
type ArgumentDefinition struct {
	Name        string
	Type        cty.Type
	Description string
	Default     *cty.Value
	Optional    bool
}
