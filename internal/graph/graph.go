package graph

import (
	"github.com/specialistvlad/burstmake/internal/vertex"
	"github.com/specialistvlad/burstmake/internal/vertexstore"
)

// Graph owns every vertex of a build together with its edges and commands.
type Graph struct {
	store *vertexstore.Store
}

// New creates an empty dependency graph.
func New() *Graph {
	return &Graph{store: vertexstore.New()}
}

// Upsert returns the vertex called name, creating it when it is missing and
// promoting it to a target when isTarget is set.
func (g *Graph) Upsert(name string, isTarget bool) *vertex.Vertex {
	v, _ := g.store.Upsert(name, isTarget)
	return v
}

// Vertex looks up a vertex by exact name.
func (g *Graph) Vertex(name string) (*vertex.Vertex, bool) {
	return g.store.Lookup(name)
}

// Vertices returns all vertices in order of first reference.
func (g *Graph) Vertices() []*vertex.Vertex {
	return g.store.All()
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return g.store.Len()
}

// AddDependency appends an edge from the target vertex to the dependency
// vertex. Both must already exist. Declaring the same edge twice returns an
// *EdgeError and leaves the dependency list unchanged.
func (g *Graph) AddDependency(from, to string) error {
	fromV, ok := g.store.Lookup(from)
	if !ok {
		return &VertexError{Op: "add dependency", Name: from}
	}
	toV, ok := g.store.Lookup(to)
	if !ok {
		return &VertexError{Op: "add dependency", Name: to}
	}

	if fromV.DependsOn(toV) {
		return &EdgeError{From: from, To: to}
	}
	fromV.Dependencies = append(fromV.Dependencies, toV)
	return nil
}

// AddCommand appends a command to the named vertex.
func (g *Graph) AddCommand(name, command string) error {
	v, ok := g.store.Lookup(name)
	if !ok {
		return &VertexError{Op: "add command", Name: name}
	}
	v.Commands = append(v.Commands, command)
	return nil
}

// ResetTraversalState clears the visited, processed and toBuild flags of every
// vertex. It must run before each independent traversal of the same graph.
func (g *Graph) ResetTraversalState() {
	for _, v := range g.store.All() {
		v.Reset()
	}
}

// DeclareTarget records a rule for name.
func (g *Graph) DeclareTarget(name string) error {
	if name == "" {
		return &VertexError{Op: "declare target", Err: ErrEmptyName}
	}
	g.Upsert(name, true)
	return nil
}

// DeclareDependency records that target depends on dep, creating dep as a
// dependency-only vertex when it has not been seen before.
func (g *Graph) DeclareDependency(target, dep string) error {
	if _, ok := g.store.Lookup(target); !ok {
		return &VertexError{Op: "declare dependency", Name: target}
	}
	if dep == "" {
		return &VertexError{Op: "declare dependency", Err: ErrEmptyName}
	}
	g.Upsert(dep, false)
	return g.AddDependency(target, dep)
}

// DeclareCommand records a command for target.
func (g *Graph) DeclareCommand(target, command string) error {
	return g.AddCommand(target, command)
}
