// Package executor runs the shell commands attached to a vertex.
package executor

import (
	"context"
	"errors"
	"fmt"
)

// Executor runs a single build command. Implementations keep no state between
// calls; the traversal decides what to run and in which order.
type Executor interface {
	Run(ctx context.Context, command string) error
}

// ErrCommandFailed is matched by every *CommandError.
var ErrCommandFailed = errors.New("command failed")

// CommandError describes a command that exited non-zero or could not start.
type CommandError struct {
	Command string
	// ExitCode is -1 when the command could not be launched.
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("command %q failed to start: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("command %q exited with status %d", e.Command, e.ExitCode)
}

// Unwrap exposes both the sentinel and the underlying process error.
func (e *CommandError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCommandFailed}
	}
	return []error{ErrCommandFailed, e.Err}
}
