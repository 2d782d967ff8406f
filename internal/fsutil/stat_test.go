package fsutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSStat_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	mtime := time.Unix(1_700_000_000, 0)
	require.NoError(t, os.Chtimes(path, mtime, mtime))

	info, err := OS{Dir: dir}.Stat("app")
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.True(t, info.ModTime.Equal(mtime))
}

func TestOSStat_MissingFile(t *testing.T) {
	info, err := OS{Dir: t.TempDir()}.Stat("main.o")
	require.NoError(t, err)
	assert.False(t, info.Exists)
	assert.True(t, info.ModTime.IsZero())
}

func TestOSPath(t *testing.T) {
	assert.Equal(t, "main.o", OS{}.Path("main.o"))
	assert.Equal(t, filepath.Join("build", "main.o"), OS{Dir: "build"}.Path("main.o"))

	abs := filepath.Join(t.TempDir(), "x")
	assert.Equal(t, abs, OS{Dir: "build"}.Path(abs))
}

func TestOSPath_KeepsNameLiteral(t *testing.T) {
	sep := string(filepath.Separator)
	name := "obj" + sep + ".." + sep + "main.o"

	assert.Equal(t, "build"+sep+name, OS{Dir: "build"}.Path(name))
	assert.Equal(t, name, OS{}.Path(name))
}

func TestOSStat_UnnormalizedName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "obj"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.o"), nil, 0o644))

	info, err := OS{Dir: dir}.Stat("obj/../main.o")
	require.NoError(t, err)
	assert.True(t, info.Exists)

	info, err = OS{Dir: dir}.Stat("missing/../main.o")
	require.NoError(t, err)
	assert.False(t, info.Exists, "a name through a missing directory must not be cleaned away")
}
