package analysis

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/burstmake/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, edges map[string][]string, order ...string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, target := range order {
		require.NoError(t, g.DeclareTarget(target))
		for _, dep := range edges[target] {
			require.NoError(t, g.DeclareDependency(target, dep))
		}
	}
	return g
}

func TestFromGraph(t *testing.T) {
	g := buildGraph(t, map[string][]string{"app": {"main.o", "util.o"}}, "app")

	dg, err := FromGraph(g)
	require.NoError(t, err)

	order, err := dg.Order()
	require.NoError(t, err)
	assert.Equal(t, 3, order)

	_, err = dg.Edge("app", "main.o")
	assert.NoError(t, err)
	_, err = dg.Edge("main.o", "app")
	assert.Error(t, err, "edges point from target to dependency")

	_, props, err := dg.VertexWithProperties("app")
	require.NoError(t, err)
	assert.Equal(t, "box", props.Attributes["shape"])
	_, props, err = dg.VertexWithProperties("util.o")
	require.NoError(t, err)
	assert.Equal(t, "ellipse", props.Attributes["shape"])
}

func TestWriteDOT(t *testing.T) {
	g := buildGraph(t, map[string][]string{"app": {"main.o"}}, "app")

	buf := &bytes.Buffer{}
	require.NoError(t, WriteDOT(buf, g))

	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `"app" -> "main.o"`)
}

func TestCycles(t *testing.T) {
	t.Run("acyclic graph", func(t *testing.T) {
		g := buildGraph(t, map[string][]string{"a": {"b", "c"}, "b": {"c"}}, "a", "b")
		cycles, err := Cycles(g)
		require.NoError(t, err)
		assert.Empty(t, cycles)
	})

	t.Run("two cycles and a self-loop", func(t *testing.T) {
		g := buildGraph(t, map[string][]string{
			"x": {"y"},
			"y": {"z"},
			"z": {"x"},
			"b": {"a"},
			"a": {"b"},
			"s": {"s"},
			"t": {"a"},
		}, "x", "y", "z", "b", "a", "s", "t")

		cycles, err := Cycles(g)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "b"}, {"s"}, {"x", "y", "z"}}, cycles)
	})
}
