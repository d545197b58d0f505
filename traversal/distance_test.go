// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traversal_test

import (
	"testing"

	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/traversal"
	"github.com/routecompass/routecompass/unit"
)

// triangle mirrors the fixture used throughout the graph and search
// packages: (0,0) -> (0,0.0009) -> (0.0009,0.0009), plus a direct 0->2
// shortcut.
func triangle(t *testing.T) *graph.Store {
	t.Helper()
	vertices := []graph.Vertex{
		{Coordinate: graph.Coordinate{Lon: 0, Lat: 0}},
		{Coordinate: graph.Coordinate{Lon: 0, Lat: 0.0009}},
		{Coordinate: graph.Coordinate{Lon: 0.0009, Lat: 0.0009}},
	}
	edges := []graph.Edge{
		{Src: 0, Dst: 1, Distance: unit.NewDistance(100, unit.Meters)},
		{Src: 1, Dst: 2, Distance: unit.NewDistance(100, unit.Meters)},
		{Src: 0, Dst: 2, Distance: unit.NewDistance(250, unit.Meters)},
	}
	store, err := graph.Build(edges, vertices)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return store
}

func TestDistanceModelAccumulatesRouteCost(t *testing.T) {
	store := triangle(t)
	model := traversal.NewDistanceModel("distance", unit.Meters)

	sm, err := state.Empty().Extend(model.StateFeatures())
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	s := sm.InitialState()

	for _, id := range []graph.EdgeID{0, 1} {
		e, _ := store.Edge(id)
		src, _ := store.Vertex(e.Src)
		dst, _ := store.Vertex(e.Dst)
		if err := model.TraverseEdge(traversal.Trajectory{Src: src, Edge: e, Dst: dst}, s, sm); err != nil {
			t.Fatalf("TraverseEdge(%d): %v", id, err)
		}
	}

	got, err := sm.Get(s, "distance")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != 200 {
		t.Errorf("route 0->1->2 distance = %v meters, want 200", got)
	}
}

func TestDistanceModelEstimateIsHaversineLowerBound(t *testing.T) {
	store := triangle(t)
	model := traversal.NewDistanceModel("distance", unit.Meters)
	sm, _ := state.Empty().Extend(model.StateFeatures())

	src, _ := store.Vertex(0)
	dst, _ := store.Vertex(2)
	delta, err := model.EstimateTraversal(src, dst, sm)
	if err != nil {
		t.Fatalf("EstimateTraversal: %v", err)
	}

	scratch := sm.InitialState()
	if err := delta.Apply(scratch, sm); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	got, _ := sm.Get(scratch, "distance")
	// The shortest actual path (0->1->2) costs 200m; an admissible
	// heuristic must never exceed it.
	if got <= 0 || got > 200 {
		t.Errorf("haversine estimate = %v meters, want in (0, 200]", got)
	}
}
