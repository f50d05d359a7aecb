package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/calcgrid/internal/config"
	"github.com/vk/calcgrid/internal/ctxlog"
	"github.com/vk/calcgrid/internal/fsutil"
)

// ErrNoFiles is returned when none of the given paths holds an .hcl file.
var ErrNoFiles = errors.New("no .hcl files found")

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL pipeline loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and merges their blocks into
// one model. At most one pipeline block may be declared across all files.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(".hcl", paths...)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%w in %v", ErrNoFiles, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()
	var pipelineFile string

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, p := range root.Pipelines {
			if pipelineFile != "" {
				return nil, nil, fmt.Errorf("pipeline %q in %s: a pipeline block is already declared in %s", p.Name, file, pipelineFile)
			}
			pipelineFile = file
			l.translatePipeline(p, model)
		}
		for _, n := range root.Nodes {
			node, err := l.translateNode(n, file)
			if err != nil {
				return nil, nil, err
			}
			model.Nodes = append(model.Nodes, node)
		}
		for _, e := range root.Edges {
			model.Edges = append(model.Edges, l.translateEdge(e, file))
		}
	}

	if model.Name == "" {
		model.Name = "pipeline"
	}
	logger.Debug("HCL loading complete.", "pipeline", model.Name, "nodes", len(model.Nodes), "edges", len(model.Edges))
	return model, NewConverter(), nil
}
