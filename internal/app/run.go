package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/calcgrid/internal/builder"
	"github.com/vk/calcgrid/internal/ctxlog"
	"github.com/vk/calcgrid/internal/dataset"
	"github.com/vk/calcgrid/internal/dot"
)

// Run loads the pipeline and the dataset, checks frequencies and, unless the
// run is check-only, computes the result and writes it out.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, converter, err := a.loader.Load(ctx, a.config.PipelinePath)
	if err != nil {
		return fmt.Errorf("failed to load pipeline: %w", err)
	}
	a.logger.Debug("Pipeline loaded.", "nodes", len(model.Nodes), "edges", len(model.Edges))

	p, err := builder.Build(ctx, model, converter, a.registry, a.config.MaxIterations)
	if err != nil {
		return fmt.Errorf("failed to build graph: %w", err)
	}

	if a.config.DotPath != "" {
		if err := a.writeDot(p); err != nil {
			return err
		}
	}

	ds, err := dataset.Load(ctx, a.config.DataPath)
	if err != nil {
		return err
	}
	a.logger.Debug("Dataset loaded.", "columns", ds.Table.Names())

	freq, err := p.Graph.ParseFrequencies(ctx, ds.Frequencies)
	if err != nil {
		return fmt.Errorf("frequency check failed: %w", err)
	}
	a.logger.Info("Frequency check passed.", "pipeline", p.Graph.Name(), "frequency", freq.Name())

	if a.config.CheckOnly {
		_, err := fmt.Fprintf(a.outW, "%s: output frequency %s\n", p.Graph.Name(), freq.Name())
		return err
	}

	v, err := p.Graph.Compute(ctx, ds.Table)
	if err != nil {
		return fmt.Errorf("computation failed: %w", err)
	}
	table, err := asTable(v, resultName(p))
	if err != nil {
		return err
	}
	a.logger.Info("Computation finished.", "pipeline", p.Graph.Name(), "columns", table.Names())

	if a.config.OutputFormat == OutputYAML {
		return dataset.Encode(a.outW, table, freq)
	}
	return writeText(a.outW, table)
}

// resultName is the declared id of the output node, or the pipeline name.
func resultName(p *builder.Pipeline) string {
	if id, err := p.Graph.OutputNode(); err == nil {
		if name := p.ID(id); name != "" {
			return name
		}
	}
	return p.Graph.Name()
}

func (a *App) writeDot(p *builder.Pipeline) error {
	if a.config.DotPath == "-" {
		return dot.Write(a.outW, p.Graph, p.ID)
	}

	f, err := os.Create(a.config.DotPath)
	if err != nil {
		return fmt.Errorf("failed to create dot file: %w", err)
	}
	if err := dot.Write(f, p.Graph, p.ID); err != nil {
		f.Close()
		return fmt.Errorf("failed to write dot file: %w", err)
	}
	a.logger.Debug("Graph diagram written.", "path", a.config.DotPath)
	return f.Close()
}
