// Package build walks a dependency graph from one target in post-order and
// rebuilds every vertex that is stale relative to its dependencies.
//
// Each vertex moves through unvisited → entered → processed exactly once per
// build. Reaching a vertex that is entered but not processed means the graph
// has a cycle; the revisit is reported as a Cycle and otherwise treated as
// already satisfied, unless Options.StrictCycles makes it fatal.
//
// A vertex is stale when its file is missing, when any dependency's file is
// missing or newer, or when any dependency was itself stale. Every other
// failure (unknown target, missing prerequisite, failing command) aborts the
// whole build.
package build
