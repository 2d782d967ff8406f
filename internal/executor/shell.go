package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/specialistvlad/burstmake/internal/ctxlog"
)

// DefaultShell is the interpreter used when Shell.Path is empty.
const DefaultShell = "/bin/sh"

// Shell runs each command with `sh -c` and echoes the command line first.
type Shell struct {
	// Path is the shell binary; DefaultShell when empty.
	Path string
	// Dir is the working directory of the command; empty inherits the process's.
	Dir string
	// Stdout and Stderr receive the command echo and the command's output.
	// They default to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
	// Env, when non-nil, replaces the inherited environment.
	Env []string
}

// NewShell creates a shell executor that runs commands in dir.
func NewShell(dir string, stdout, stderr io.Writer) *Shell {
	return &Shell{Dir: dir, Stdout: stdout, Stderr: stderr}
}

// Run implements Executor.
func (s *Shell) Run(ctx context.Context, command string) error {
	logger := ctxlog.FromContext(ctx)

	stdout, stderr := s.Stdout, s.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	shell := s.Path
	if shell == "" {
		shell = DefaultShell
	}

	fmt.Fprintln(stdout, command)

	cmd := exec.CommandContext(ctx, shell, "-c", command)
	cmd.Dir = s.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if s.Env != nil {
		cmd.Env = s.Env
	}

	logger.Debug("Running command.", "command", command, "dir", s.Dir)
	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return &CommandError{Command: command, ExitCode: exitErr.ExitCode(), Err: err}
	}
	return &CommandError{Command: command, ExitCode: -1, Err: err}
}
