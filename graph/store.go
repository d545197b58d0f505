// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Store is an immutable directed road network. It is built once by
// Build or Load and never mutated afterward; concurrent reads from
// multiple search goroutines require no locking.
//
// Adjacency is stored as a per-vertex map from EdgeID to the opposite
// endpoint's VertexID, rather than as a flat CSR structure, because
// downstream traversal and frontier models key their lookups (speed
// tables, grade tables, restriction tables) on EdgeID identity and
// a CSR layout would force those models to re-derive it.
type Store struct {
	edges    []Edge
	vertices []Vertex
	adj      []map[EdgeID]VertexID // adj[v]: out-edges of v, keyed by edge id, valued by dst
	rev      []map[EdgeID]VertexID // rev[v]: in-edges of v, keyed by edge id, valued by src
}

// Build constructs a Store from dense edge and vertex slices.
// Build assigns IDs itself from slice position, overwriting any ID the
// caller set, so in the resulting Store edges[i].ID equals i and
// vertices[i].ID equals i.
// Build fails with AdjacencyVertexMissingError if any edge names a
// src/dst vertex outside the range of vertices.
func Build(edges []Edge, vertices []Vertex) (*Store, error) {
	adj := make([]map[EdgeID]VertexID, len(vertices))
	rev := make([]map[EdgeID]VertexID, len(vertices))
	for i := range adj {
		adj[i] = make(map[EdgeID]VertexID, 1)
		rev[i] = make(map[EdgeID]VertexID, 1)
	}

	out := make([]Edge, len(edges))
	for i, e := range edges {
		e.ID = EdgeID(i)
		out[i] = e

		if int(e.Src) < 0 || int(e.Src) >= len(vertices) {
			return nil, AdjacencyVertexMissingError{VertexID: e.Src}
		}
		if int(e.Dst) < 0 || int(e.Dst) >= len(vertices) {
			return nil, AdjacencyVertexMissingError{VertexID: e.Dst}
		}
		adj[e.Src][e.ID] = e.Dst
		rev[e.Dst][e.ID] = e.Src
	}

	vs := make([]Vertex, len(vertices))
	for i, v := range vertices {
		v.ID = VertexID(i)
		vs[i] = v
	}

	return &Store{edges: out, vertices: vs, adj: adj, rev: rev}, nil
}

// NumVertices returns the number of vertices in the store.
func (s *Store) NumVertices() int { return len(s.vertices) }

// NumEdges returns the number of edges in the store.
func (s *Store) NumEdges() int { return len(s.edges) }

// Edge returns the edge with the given ID.
func (s *Store) Edge(id EdgeID) (Edge, error) {
	if int(id) < 0 || int(id) >= len(s.edges) {
		return Edge{}, EdgeIDNotFoundError{EdgeID: id}
	}
	return s.edges[id], nil
}

// Vertex returns the vertex with the given ID.
func (s *Store) Vertex(id VertexID) (Vertex, error) {
	if int(id) < 0 || int(id) >= len(s.vertices) {
		return Vertex{}, VertexIDNotFoundError{VertexID: id}
	}
	return s.vertices[id], nil
}

// OutEdges returns the out-edges of v as a map from EdgeID to dst
// VertexID. Callers must not mutate the returned map.
func (s *Store) OutEdges(v VertexID) map[EdgeID]VertexID {
	if int(v) < 0 || int(v) >= len(s.adj) {
		return nil
	}
	return s.adj[v]
}

// InEdges returns the in-edges of v as a map from EdgeID to src
// VertexID. Callers must not mutate the returned map.
func (s *Store) InEdges(v VertexID) map[EdgeID]VertexID {
	if int(v) < 0 || int(v) >= len(s.rev) {
		return nil
	}
	return s.rev[v]
}
