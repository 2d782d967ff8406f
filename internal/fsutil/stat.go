// Package fsutil inspects the filesystem state of build artifacts.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// FileInfo is the part of a file's state the build cares about.
type FileInfo struct {
	Exists  bool
	ModTime time.Time
}

// Stater reports the state of a named artifact.
type Stater interface {
	// Stat returns Exists=false without an error when name does not exist.
	Stat(name string) (FileInfo, error)
}

// OS stats files on the local filesystem. Relative names are resolved against
// Dir; an empty Dir means the process working directory.
type OS struct {
	Dir string
}

// Path returns the path name resolves to. The name itself is kept verbatim,
// so "a/../b" and "b" stay distinct artifacts.
func (o OS) Path(name string) string {
	if o.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return o.Dir + string(filepath.Separator) + name
}

// Stat implements Stater.
func (o OS) Stat(name string) (FileInfo, error) {
	info, err := os.Stat(o.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return FileInfo{}, nil
		}
		return FileInfo{}, fmt.Errorf("stat %s: %w", name, err)
	}
	return FileInfo{Exists: true, ModTime: info.ModTime()}, nil
}
