package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks a pipeline file may contain. Any
// other block or attribute is an error.
type fileRoot struct {
	Pipelines []*pipelineBlock `hcl:"pipeline,block"`
	Nodes     []*nodeBlock     `hcl:"node,block"`
	Edges     []*edgeBlock     `hcl:"edge,block"`
}

// pipelineBlock holds pipeline-wide settings.
type pipelineBlock struct {
	Name          string `hcl:"name,label"`
	MaxIterations *int   `hcl:"max_iterations,optional"`
}

// nodeBlock declares one calculation node. Its attributes are the arguments
// of the node kind.
type nodeBlock struct {
	Kind string   `hcl:"kind,label"`
	ID   string   `hcl:"id,label"`
	Body hcl.Body `hcl:",remain"`
}

// edgeBlock connects two nodes by id.
type edgeBlock struct {
	From      string `hcl:"from,label"`
	To        string `hcl:"to,label"`
	InputIdx  *int   `hcl:"input_idx,optional"`
	OutputIdx *int   `hcl:"output_idx,optional"`
}
