package vertex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReset_ClearsTraversalFlagsOnly(t *testing.T) {
	v := New("app", true)
	v.Visited, v.Processed, v.ToBuild = true, true, true
	v.FileExists = true
	v.ModTime = time.Unix(100, 0)
	v.Commands = []string{"touch app"}

	v.Reset()

	assert.False(t, v.Visited)
	assert.False(t, v.Processed)
	assert.False(t, v.ToBuild)
	assert.True(t, v.IsTarget)
	assert.Equal(t, []string{"touch app"}, v.Commands)
}

func TestState(t *testing.T) {
	v := New("a", false)
	assert.Equal(t, Unvisited, v.State())

	v.Visited = true
	assert.Equal(t, Entered, v.State())

	v.Processed = true
	assert.Equal(t, Processed, v.State())
	assert.Equal(t, "processed", v.State().String())
}

func TestDependsOn(t *testing.T) {
	a, b, c := New("a", true), New("b", false), New("c", false)
	a.Dependencies = append(a.Dependencies, b)

	assert.True(t, a.DependsOn(b))
	assert.False(t, a.DependsOn(c))
}
