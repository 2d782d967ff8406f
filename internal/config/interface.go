package config

import (
	"context"
	"fmt"
)

// Loader is the interface for a format-specific build description loader.
type Loader interface {
	// Load reads the build description at path and translates it into the model.
	Load(ctx context.Context, path string) (*Model, error)
}

// Declarer receives declarations in source order. graph.Graph implements it.
type Declarer interface {
	DeclareTarget(name string) error
	DeclareDependency(target, dep string) error
	DeclareCommand(target, command string) error
}

// ParseError reports malformed input at a specific location.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}
