// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"fmt"

	"github.com/routecompass/routecompass/graph"
)

// NoPathExistsError is returned when the frontier empties without
// reaching the destination.
type NoPathExistsError struct {
	Origin, Destination graph.VertexID
}

func (e NoPathExistsError) Error() string {
	return fmt.Sprintf("search: no path from vertex %d to vertex %d", e.Origin, e.Destination)
}

// ReconstructionMissingVertexError is returned when the search tree
// breaks while walking it back from the destination.
type ReconstructionMissingVertexError struct {
	VertexID graph.VertexID
}

func (e ReconstructionMissingVertexError) Error() string {
	return fmt.Sprintf("search: reconstruction reached vertex %d with no recorded branch", e.VertexID)
}

// CancelledError is returned when a search's context is cancelled; it
// carries no partial result.
type CancelledError struct{}

func (CancelledError) Error() string { return "search: cancelled" }
