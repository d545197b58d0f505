// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frontier

import (
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
)

// Model is the edge-admissibility predicate a search consults before
// relaxing a candidate edge. A false result prunes the successor
// without enqueuing it; it is not itself an error. prevEdge is nil at
// the origin, where there is no predecessor to evaluate a turn
// against.
type Model interface {
	ValidFrontier(edge graph.Edge, s state.Vector, sm *state.Model, prevEdge *graph.Edge) (bool, error)
}
