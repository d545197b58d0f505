// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traversal

import (
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/unit"
)

// DistanceModel accumulates edge distance as its sole objective,
// grounded on the original's DistanceModel: traversal_cost adds the
// edge's length, cost_estimate is the haversine lower bound between
// the two endpoints.
type DistanceModel struct {
	Feature string
	Unit    unit.DistanceUnit
}

// NewDistanceModel builds a DistanceModel accumulating onto feature,
// stored in u.
func NewDistanceModel(feature string, u unit.DistanceUnit) *DistanceModel {
	return &DistanceModel{Feature: feature, Unit: u}
}

func (m *DistanceModel) TraverseEdge(t Trajectory, s state.Vector, sm *state.Model) error {
	return sm.AddDistance(s, m.Feature, t.Edge.Distance)
}

// AccessEdge is a no-op: crossing onto an edge carries no distance
// cost independent of the edge itself.
func (m *DistanceModel) AccessEdge(AccessTrajectory, state.Vector, *state.Model) error {
	return nil
}

func (m *DistanceModel) EstimateTraversal(src, dst graph.Vertex, _ *state.Model) (Delta, error) {
	d := graph.HaversineDistance(src.Coordinate, dst.Coordinate)
	if d.Value() == 0 {
		return nil, nil
	}
	return DistanceDelta(m.Feature, d), nil
}

func (m *DistanceModel) StateFeatures() []state.Feature {
	return []state.Feature{state.DistanceFeature(m.Feature, m.Unit, unit.ZeroDistance)}
}

func (m *DistanceModel) ObjectiveFeature() string { return m.Feature }
