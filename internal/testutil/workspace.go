package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Epoch is the reference time for workspace files. Files touched by tests with
// Old or New land before or after it; files produced by a RecordingExecutor
// land strictly after every one of them.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var (
	// Old is an mtime well before Epoch.
	Old = Epoch.Add(-2 * time.Hour)
	// New is an mtime after Old but before anything a RecordingExecutor writes.
	New = Epoch.Add(-1 * time.Hour)
)

// Workspace is a temporary directory that plays the role of the build's
// working directory.
type Workspace struct {
	t   *testing.T
	Dir string
}

// NewWorkspace creates an empty workspace removed at the end of the test.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()
	return &Workspace{t: t, Dir: t.TempDir()}
}

// Path returns the absolute path of name inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Write creates or replaces name with content.
func (w *Workspace) Write(name, content string) {
	w.t.Helper()
	path := w.Path(name)
	require.NoError(w.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(w.t, os.WriteFile(path, []byte(content), 0o644))
}

// Touch creates name if needed and sets its modification time.
func (w *Workspace) Touch(name string, mtime time.Time) {
	w.t.Helper()
	path := w.Path(name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		w.Write(name, "")
	}
	require.NoError(w.t, os.Chtimes(path, mtime, mtime))
}

// Exists reports whether name exists in the workspace.
func (w *Workspace) Exists(name string) bool {
	_, err := os.Stat(w.Path(name))
	return err == nil
}

// ModTime returns the modification time of name.
func (w *Workspace) ModTime(name string) time.Time {
	w.t.Helper()
	info, err := os.Stat(w.Path(name))
	require.NoError(w.t, err)
	return info.ModTime()
}
