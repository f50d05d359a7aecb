// Package dot renders a calculation graph as a Graphviz DOT document.
package dot

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/emicklei/dot"

	"github.com/vk/calcgrid/internal/graph"
)

// Namer returns a display name for a node, or "" when it has none.
type Namer func(graph.NodeID) string

// Build converts g into a DOT graph. Node labels combine the optional name
// with the node's String(); edge labels show positional indexes. Input nodes
// are drawn as boxes and the output node with a double border.
func Build(g *graph.Graph, name Namer) *dot.Graph {
	inputs := make(map[graph.NodeID]bool)
	if ids, err := g.InputNodes(); err == nil {
		for _, id := range ids {
			inputs[id] = true
		}
	}
	output, err := g.OutputNode()
	hasOutput := err == nil

	d := dot.NewGraph(dot.Directed)
	d.Attr("label", g.Name())
	d.Attr("labelloc", "t")
	d.Attr("rankdir", "LR")

	vertices := make([]dot.Node, g.Len())
	for i, n := range g.Nodes() {
		id := graph.NodeID(i)
		label := n.String()
		if name != nil {
			if s := name(id); s != "" {
				label = s + "\n" + label
			}
		}
		v := d.Node(fmt.Sprintf("n%d", i)).Label(label)
		switch {
		case inputs[id]:
			v.Box()
		case hasOutput && id == output:
			v.Attr("peripheries", "2")
		}
		vertices[i] = v
	}

	for _, e := range g.Edges() {
		if label := edgeLabel(e.Meta); label != "" {
			d.Edge(vertices[e.From], vertices[e.To], label)
		} else {
			d.Edge(vertices[e.From], vertices[e.To])
		}
	}
	return d
}

// Write renders g to w as a DOT document.
func Write(w io.Writer, g *graph.Graph, name Namer) error {
	_, err := io.WriteString(w, Build(g, name).String())
	return err
}

func edgeLabel(meta map[string]int) string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, meta[k]))
	}
	return strings.Join(parts, " ")
}
