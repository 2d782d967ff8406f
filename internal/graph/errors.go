package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVertex is returned when an operation names a vertex that is not in the graph.
	ErrUnknownVertex = errors.New("unknown vertex")
	// ErrDuplicateEdge is returned when a dependency is declared twice on the same target.
	ErrDuplicateEdge = errors.New("duplicate edge")
	// ErrEmptyName is returned when a target or dependency is declared with an empty name.
	ErrEmptyName = errors.New("empty vertex name")
)

// VertexError reports an operation on an unusable vertex name. Err is
// ErrUnknownVertex when nil.
type VertexError struct {
	Op   string
	Name string
	Err  error
}

func (e *VertexError) Error() string {
	if errors.Is(e.Err, ErrEmptyName) {
		return fmt.Sprintf("%s: vertex name must not be empty", e.Op)
	}
	return fmt.Sprintf("%s: vertex %q does not exist", e.Op, e.Name)
}

// Unwrap lets errors.Is match ErrUnknownVertex or the recorded cause.
func (e *VertexError) Unwrap() error {
	if e.Err == nil {
		return ErrUnknownVertex
	}
	return e.Err
}

// EdgeError reports a redundant dependency declaration.
type EdgeError struct {
	From string
	To   string
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("dependency %q -> %q already exists", e.From, e.To)
}

func (e *EdgeError) Unwrap() error { return ErrDuplicateEdge }
