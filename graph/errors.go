// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "fmt"

// AdjacencyVertexMissingError is returned during Build when an edge
// names a src or dst vertex ID that was never declared in the vertex
// table. It is fatal: the graph store cannot be constructed.
type AdjacencyVertexMissingError struct {
	VertexID VertexID
}

func (e AdjacencyVertexMissingError) Error() string {
	return fmt.Sprintf("graph: adjacency references missing vertex %d", e.VertexID)
}

// EdgeIDNotFoundError is returned by Store.Edge for an out-of-range ID.
type EdgeIDNotFoundError struct {
	EdgeID EdgeID
}

func (e EdgeIDNotFoundError) Error() string {
	return fmt.Sprintf("graph: edge id %d not found", e.EdgeID)
}

// VertexIDNotFoundError is returned by Store.Vertex for an out-of-range ID.
type VertexIDNotFoundError struct {
	VertexID VertexID
}

func (e VertexIDNotFoundError) Error() string {
	return fmt.Sprintf("graph: vertex id %d not found", e.VertexID)
}

// EmptyFileSourceError is returned by the loader when an input file
// resolves to zero data rows (header only, or empty).
type EmptyFileSourceError struct {
	Filename string
}

func (e EmptyFileSourceError) Error() string {
	return fmt.Sprintf("graph: %s contains no data rows", e.Filename)
}
