package build

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTarget is returned when the requested starting target is not in the graph.
	ErrUnknownTarget = errors.New("unknown target")
	// ErrMissingPrerequisite is returned when a dependency has neither a file nor a rule.
	ErrMissingPrerequisite = errors.New("missing prerequisite")
	// ErrDependencyCycle is returned for a detected cycle when Options.StrictCycles is set.
	ErrDependencyCycle = errors.New("dependency cycle")
	// ErrCommandFailure is returned when a build command fails to run or exits non-zero.
	ErrCommandFailure = errors.New("command failure")
)

// Error is a fatal build condition tied to one vertex.
type Error struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Vertex is the name of the offending vertex.
	Vertex string
	// Command is set for ErrCommandFailure.
	Command string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnknownTarget:
		return fmt.Sprintf("target %q does not exist", e.Vertex)
	case ErrMissingPrerequisite:
		return fmt.Sprintf("file %q does not exist and no rule builds it", e.Vertex)
	case ErrDependencyCycle:
		return fmt.Sprintf("dependency cycle found at %q", e.Vertex)
	case ErrCommandFailure:
		return fmt.Sprintf("building %q: %v", e.Vertex, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("building %q: %v", e.Vertex, e.Err)
	}
	return fmt.Sprintf("building %q failed", e.Vertex)
}

// Unwrap exposes the kind and the cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
