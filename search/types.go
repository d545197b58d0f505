// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"github.com/routecompass/routecompass/cost"
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
)

// EdgeTraversal is the result of applying the traversal (and, where
// applicable, access) model to one edge: its own incremental cost
// contributions and the state snapshot immediately after.
type EdgeTraversal struct {
	EdgeID        graph.EdgeID
	AccessCost    cost.Cost
	TraversalCost cost.Cost
	ResultState   state.Vector
}

// SearchTreeBranch records the best incoming branch discovered at one
// settled vertex. The search tree as a whole is a mapping from
// VertexID to SearchTreeBranch: a spanning forest rooted at the
// search's origin.
type SearchTreeBranch struct {
	TerminalVertex graph.VertexID
	EdgeTraversal  EdgeTraversal
}

// label is the A* frontier entry. It is never mutated after being
// pushed: a cheaper route to the same vertex is represented by a
// fresh label and the stale one is discarded on pop (lazy deletion),
// per spec — no decrease-key primitive is required.
type label struct {
	vertex   graph.VertexID
	gCost    cost.Cost
	fCost    cost.Cost
	state    state.Vector
	prevEdge graph.EdgeID
	hasPrev  bool
	seq      int
}
