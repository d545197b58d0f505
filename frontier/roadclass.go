// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frontier

import (
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
)

// RoadClassRestriction rejects any edge whose RoadClass is in
// Forbidden.
type RoadClassRestriction struct {
	Forbidden map[graph.RoadClass]struct{}
}

// NewRoadClassRestriction builds a RoadClassRestriction forbidding
// classes.
func NewRoadClassRestriction(classes ...graph.RoadClass) RoadClassRestriction {
	forbidden := make(map[graph.RoadClass]struct{}, len(classes))
	for _, c := range classes {
		forbidden[c] = struct{}{}
	}
	return RoadClassRestriction{Forbidden: forbidden}
}

func (r RoadClassRestriction) ValidFrontier(edge graph.Edge, _ state.Vector, _ *state.Model, _ *graph.Edge) (bool, error) {
	_, forbidden := r.Forbidden[edge.RoadClass]
	return !forbidden, nil
}
