// Package vertex defines the single node type of the dependency graph: a named
// build artifact, either a declared target or a dependency-only file.
package vertex

import "time"

// Vertex is one named build artifact. The name doubles as a filesystem path,
// interpreted relative to the build's working directory.
type Vertex struct {
	// Name is the unique key of the vertex within a graph.
	Name string
	// IsTarget is true once the vertex has been declared as a rule. It never
	// goes back to false.
	IsTarget bool

	// Commands are the shell commands that rebuild the vertex, in declared order.
	Commands []string
	// Dependencies are the vertices this one depends on, in declared order.
	Dependencies []*Vertex

	// --- Per-traversal state, cleared by Reset ---

	// Visited is set when a traversal enters the vertex.
	Visited bool
	// Processed is set when a traversal has finished the vertex in post-order.
	Processed bool
	// ToBuild is set once the vertex has been found stale.
	ToBuild bool
	// FileExists and ModTime record the last observed filesystem state.
	// ModTime is the zero time when the file does not exist.
	FileExists bool
	ModTime    time.Time
}

// New creates a vertex with no dependencies or commands.
func New(name string, isTarget bool) *Vertex {
	return &Vertex{Name: name, IsTarget: isTarget}
}

// Reset clears the transient traversal flags.
func (v *Vertex) Reset() {
	v.Visited = false
	v.Processed = false
	v.ToBuild = false
}

// DependsOn reports whether dep is already a direct dependency of v.
func (v *Vertex) DependsOn(dep *Vertex) bool {
	for _, d := range v.Dependencies {
		if d == dep {
			return true
		}
	}
	return false
}

// State is the position of a vertex in the traversal state machine.
type State int

const (
	// Unvisited means the current traversal has not entered the vertex yet.
	Unvisited State = iota
	// Entered means the traversal is inside the vertex and has not finished it.
	Entered
	// Processed means the vertex has completed its post-order step.
	Processed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Entered:
		return "entered"
	case Processed:
		return "processed"
	default:
		return "unknown"
	}
}

// State derives the traversal state from the transient flags.
func (v *Vertex) State() State {
	switch {
	case v.Processed:
		return Processed
	case v.Visited:
		return Entered
	default:
		return Unvisited
	}
}
