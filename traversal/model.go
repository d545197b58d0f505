// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traversal

import (
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
)

// Trajectory names the (src, edge, dst) triple a single TraverseEdge
// call relaxes, mirroring the original's (&Vertex, &Edge, &Vertex)
// trajectory tuple.
type Trajectory struct {
	Src  graph.Vertex
	Edge graph.Edge
	Dst  graph.Vertex
}

// AccessTrajectory names the (prev edge, vertex, next edge) triple an
// AccessEdge call relaxes — the turn from PrevEdge onto NextEdge
// through V, bracketed by its endpoints U and W.
type AccessTrajectory struct {
	U        graph.Vertex
	PrevEdge graph.Edge
	V        graph.Vertex
	NextEdge graph.Edge
	W        graph.Vertex
}

// Model computes the incremental cost of crossing one edge, and
// optionally of transitioning onto it from a previous edge, by
// mutating a state.Vector in place. It never returns a cost directly:
// the search engine reads the delta a call produces on the model's
// ObjectiveFeature and uses that delta as the edge's g-cost
// contribution, so accumulated cost and reported state are always
// computed by the same arithmetic.
type Model interface {
	// TraverseEdge updates s in place with the cost of crossing
	// t.Edge. A negative delta on ObjectiveFeature is an error.
	TraverseEdge(t Trajectory, s state.Vector, sm *state.Model) error

	// AccessEdge updates s in place with the cost of transitioning
	// from t.PrevEdge onto t.NextEdge. Models with no turn cost
	// (the common case) implement this as a no-op.
	AccessEdge(t AccessTrajectory, s state.Vector, sm *state.Model) error

	// EstimateTraversal returns a Delta representing an admissible
	// lower bound on the cost of travelling from src to dst in a
	// straight line, without reference to any particular edge. It is
	// pure: it never mutates state directly, so the caller decides
	// whether and where to apply it (heuristic.FromTraversalModel, in
	// heuristic/frommodel.go, applies it to a scratch clone to read off
	// a heuristic value).
	EstimateTraversal(src, dst graph.Vertex, sm *state.Model) (Delta, error)

	// StateFeatures declares the schema entries this model
	// contributes; callers Extend a state.Model with the union of
	// every component model's StateFeatures before a search begins.
	StateFeatures() []state.Feature

	// ObjectiveFeature names the feature whose before/after delta the
	// search engine reads as an edge's cost contribution.
	ObjectiveFeature() string
}
