// Package vertexstore holds every vertex of one dependency graph, keyed by
// name and iterable in the order of first reference.
//
// The store is populated during graph construction and only read afterwards.
// Construction and traversal are single-threaded, so the store does no locking.
package vertexstore

import "github.com/specialistvlad/burstmake/internal/vertex"

// Store is an insertion-ordered, name-keyed collection of vertices.
type Store struct {
	byName map[string]*vertex.Vertex
	order  []*vertex.Vertex
}

// New creates a new, empty vertex store.
func New() *Store {
	return &Store{
		byName: make(map[string]*vertex.Vertex),
	}
}

// Upsert returns the vertex called name, creating it if needed. Declaring an
// existing vertex as a target promotes it; target status is never revoked.
// The second return value reports whether a new vertex was created.
func (s *Store) Upsert(name string, isTarget bool) (*vertex.Vertex, bool) {
	if v, ok := s.byName[name]; ok {
		if isTarget {
			v.IsTarget = true
		}
		return v, false
	}

	v := vertex.New(name, isTarget)
	s.byName[name] = v
	s.order = append(s.order, v)
	return v, true
}

// Lookup returns the vertex with exactly the given name.
func (s *Store) Lookup(name string) (*vertex.Vertex, bool) {
	v, ok := s.byName[name]
	return v, ok
}

// All returns a snapshot of all vertices in order of first reference.
func (s *Store) All() []*vertex.Vertex {
	out := make([]*vertex.Vertex, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of vertices.
func (s *Store) Len() int {
	return len(s.order)
}
