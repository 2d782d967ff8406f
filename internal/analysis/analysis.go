// Package analysis provides static views of a dependency graph that do not
// require a build: Graphviz DOT export and cycle detection.
package analysis

import (
	"fmt"
	"io"
	"sort"

	dgraph "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/specialistvlad/burstmake/internal/graph"
)

// FromGraph converts the dependency graph into a directed graph whose edges
// point from each target to its dependencies. Targets are drawn as boxes and
// dependency-only files as ellipses.
func FromGraph(g *graph.Graph) (dgraph.Graph[string, string], error) {
	dg := dgraph.New(dgraph.StringHash, dgraph.Directed())

	for _, v := range g.Vertices() {
		shape := "ellipse"
		if v.IsTarget {
			shape = "box"
		}
		if err := dg.AddVertex(v.Name, dgraph.VertexAttribute("shape", shape)); err != nil {
			return nil, fmt.Errorf("failed to add vertex %s: %w", v.Name, err)
		}
	}

	for _, v := range g.Vertices() {
		for _, dep := range v.Dependencies {
			if err := dg.AddEdge(v.Name, dep.Name); err != nil {
				return nil, fmt.Errorf("failed to add edge %s -> %s: %w", v.Name, dep.Name, err)
			}
		}
	}
	return dg, nil
}

// WriteDOT renders the dependency graph in Graphviz DOT format.
func WriteDOT(w io.Writer, g *graph.Graph) error {
	dg, err := FromGraph(g)
	if err != nil {
		return err
	}
	return draw.DOT(dg, w)
}

// Cycles returns every dependency cycle in the graph as the sorted names of
// the vertices involved. Self-loops count as cycles of one vertex. The result
// is sorted by the first name of each cycle.
func Cycles(g *graph.Graph) ([][]string, error) {
	dg, err := FromGraph(g)
	if err != nil {
		return nil, err
	}

	sccs, err := dgraph.StronglyConnectedComponents(dg)
	if err != nil {
		return nil, fmt.Errorf("failed to compute strongly connected components: %w", err)
	}
	adjacency, err := dg.AdjacencyMap()
	if err != nil {
		return nil, err
	}

	var cycles [][]string
	for _, scc := range sccs {
		if len(scc) == 1 {
			if _, selfLoop := adjacency[scc[0]][scc[0]]; !selfLoop {
				continue
			}
		}
		members := append([]string(nil), scc...)
		sort.Strings(members)
		cycles = append(cycles, members)
	}
	sort.Slice(cycles, func(i, j int) bool { return cycles[i][0] < cycles[j][0] })
	return cycles, nil
}
