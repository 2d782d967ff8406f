package testutil

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/specialistvlad/burstmake/internal/executor"
)

// RecordingExecutor is an executor.Executor that records every command and
// interprets a tiny command language instead of spawning a shell:
//
//	touch <name>...   creates or updates the named workspace files
//	fail              exits with status 1
//	anything else     succeeds without side effects
//
// Each touch advances a private clock by one second starting after Epoch, so
// produced files are always strictly newer than files set up with Old or New.
type RecordingExecutor struct {
	Workspace *Workspace

	mu    sync.Mutex
	calls []string
	tick  int
}

// NewRecordingExecutor creates an executor bound to the workspace.
func NewRecordingExecutor(w *Workspace) *RecordingExecutor {
	return &RecordingExecutor{Workspace: w}
}

// Run implements executor.Executor.
func (r *RecordingExecutor) Run(_ context.Context, command string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, command)

	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "fail":
		return &executor.CommandError{Command: command, ExitCode: 1}
	case "touch":
		for _, name := range fields[1:] {
			r.tick++
			mtime := Epoch.Add(time.Duration(r.tick) * time.Second)
			path := r.Workspace.Path(name)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if err := os.WriteFile(path, nil, 0o644); err != nil {
					return &executor.CommandError{Command: command, ExitCode: -1, Err: err}
				}
			}
			if err := os.Chtimes(path, mtime, mtime); err != nil {
				return &executor.CommandError{Command: command, ExitCode: -1, Err: err}
			}
		}
	}
	return nil
}

// Calls returns the commands run so far, in order.
func (r *RecordingExecutor) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Reset forgets recorded calls but keeps the clock running.
func (r *RecordingExecutor) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
