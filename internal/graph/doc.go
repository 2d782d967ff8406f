// Package graph provides the dependency graph of one build invocation.
//
// # Structure
//
// The graph is a vertexstore.Store plus, for every vertex, an ordered list of
// outgoing edges (target → dependency) and an ordered list of shell commands.
// Vertices are created on first reference, either when a rule declares them
// or when a rule names them as a dependency.
//
// # Lifecycle
//
//  1. **Created** by the App for a single build invocation
//  2. **Populated** from a config.Model through the Declare* methods
//  3. **Walked** by the build package, which only mutates transient flags
//  4. **Discarded** when the invocation ends
//
// # Errors
//
// Construction errors are typed so callers can decide how strict to be:
//   - ErrUnknownVertex: an edge or command refers to a vertex that does not exist
//   - ErrDuplicateEdge: the same (target, dependency) pair was declared twice
//
// Neither error leaves the graph partially modified.
package graph
