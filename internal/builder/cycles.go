package builder

import (
	"strings"

	"github.com/vk/calcgrid/internal/calcerr"
	"github.com/vk/calcgrid/internal/config"
)

// detectCycles runs a depth-first search over the declared edges and reports
// the first cycle found as a path of node ids.
func detectCycles(model *config.Model) error {
	// Successors in declaration order keep the reported path stable.
	succ := make(map[string][]string)
	for _, e := range model.Edges {
		succ[e.From] = append(succ[e.From], e.To)
	}

	// permanent: fully visited and not part of a cycle.
	// onStack: in the current traversal path.
	permanent := make(map[string]bool)
	onStack := make(map[string]bool)
	var path []string

	var visit func(id string) error
	visit = func(id string) error {
		if permanent[id] {
			return nil
		}
		if onStack[id] {
			start := 0
			for i, p := range path {
				if p == id {
					start = i
					break
				}
			}
			cycle := append(append([]string(nil), path[start:]...), id)
			return calcerr.Newf(calcerr.ErrInvalidGraph, "cycle detected: %s", strings.Join(cycle, " -> "))
		}

		onStack[id] = true
		path = append(path, id)
		for _, next := range succ[id] {
			if err := visit(next); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		delete(onStack, id)
		permanent[id] = true
		return nil
	}

	for _, e := range model.Edges {
		if err := visit(e.From); err != nil {
			return err
		}
	}
	return nil
}
