// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traversal

import (
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/internal/numeric"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/unit"
)

// SpeedLookupModel accumulates travel time using a per-edge speed
// table, grounded on the original's SpeedTraversalModel: traverse_edge
// looks the edge's speed up and converts (speed, distance) into time;
// estimate_traversal uses the table's maximum speed against the
// haversine distance, which is admissible because no edge can be
// crossed faster than the fastest edge in the table.
type SpeedLookupModel struct {
	Feature  string
	SpeedOf  []unit.Speed // indexed by graph.EdgeID
	TimeUnit unit.TimeUnit

	maxSpeed unit.Speed
}

// NewSpeedLookupModel builds a SpeedLookupModel over speedOf, indexed
// by EdgeID, reporting time onto feature in timeUnit. It fails if
// speedOf is empty, since a lookup table with no rows can never
// produce an admissible maximum-speed bound.
func NewSpeedLookupModel(feature string, speedOf []unit.Speed, timeUnit unit.TimeUnit) (*SpeedLookupModel, error) {
	if len(speedOf) == 0 {
		return nil, PredictionFailureError{Reason: "speed table has no rows"}
	}
	raw := make([]float64, len(speedOf))
	for i, s := range speedOf {
		raw[i] = s.Value()
	}
	max, _ := numeric.Max(raw)
	return &SpeedLookupModel{
		Feature:  feature,
		SpeedOf:  speedOf,
		TimeUnit: timeUnit,
		maxSpeed: unit.NewSpeed(max, unit.KilometersPerHour),
	}, nil
}

func (m *SpeedLookupModel) speedFor(id graph.EdgeID) (unit.Speed, error) {
	if int(id) < 0 || int(id) >= len(m.SpeedOf) {
		return 0, MissingIDInTabularLookupError{EdgeID: id, Table: "speed table"}
	}
	return m.SpeedOf[id], nil
}

func (m *SpeedLookupModel) TraverseEdge(t Trajectory, s state.Vector, sm *state.Model) error {
	speed, err := m.speedFor(t.Edge.ID)
	if err != nil {
		return err
	}
	return sm.AddTime(s, m.Feature, unit.TravelTime(t.Edge.Distance, speed))
}

// AccessEdge is a no-op: this model carries no turn-cost penalty.
func (m *SpeedLookupModel) AccessEdge(AccessTrajectory, state.Vector, *state.Model) error {
	return nil
}

func (m *SpeedLookupModel) EstimateTraversal(src, dst graph.Vertex, _ *state.Model) (Delta, error) {
	d := graph.HaversineDistance(src.Coordinate, dst.Coordinate)
	if d.Value() == 0 {
		return nil, nil
	}
	return TimeDelta(m.Feature, unit.TravelTime(d, m.maxSpeed)), nil
}

func (m *SpeedLookupModel) StateFeatures() []state.Feature {
	return []state.Feature{state.TimeFeature(m.Feature, m.TimeUnit, unit.ZeroTime)}
}

func (m *SpeedLookupModel) ObjectiveFeature() string { return m.Feature }
