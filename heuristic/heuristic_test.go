// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heuristic_test

import (
	"math"
	"testing"

	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/heuristic"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/traversal"
	"github.com/routecompass/routecompass/unit"
)

func TestHaversineDistanceOnly(t *testing.T) {
	h := heuristic.Haversine{}
	src := graph.Vertex{Coordinate: graph.Coordinate{Lon: 0, Lat: 0}}
	dst := graph.Vertex{Coordinate: graph.Coordinate{Lon: 0, Lat: 0.01}}

	c, err := h.Estimate(src, dst)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if c <= 0 {
		t.Errorf("Estimate(src, dst) = %v, want > 0", c)
	}
}

func TestHaversineZeroForSameVertex(t *testing.T) {
	h := heuristic.Haversine{TravelSpeed: unit.NewSpeed(40, unit.KilometersPerHour)}
	v := graph.Vertex{Coordinate: graph.Coordinate{Lon: -86.67, Lat: 36.12}}
	c, err := h.Estimate(v, v)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if c != 0 {
		t.Errorf("Estimate(v, v) = %v, want 0", c)
	}
}

// TestHeuristicConsistency exercises spec scenario 6: for collinear
// vertices A, B, C with B between A and C, h(A,C) <= cost(A,B) + h(B,C).
func TestHeuristicConsistency(t *testing.T) {
	h := heuristic.Haversine{TravelSpeed: unit.NewSpeed(40, unit.KilometersPerHour)}
	a := graph.Vertex{Coordinate: graph.Coordinate{Lon: 0, Lat: 0}}
	b := graph.Vertex{Coordinate: graph.Coordinate{Lon: 0, Lat: 0.01}}
	c := graph.Vertex{Coordinate: graph.Coordinate{Lon: 0, Lat: 0.02}}

	hac, err := h.Estimate(a, c)
	if err != nil {
		t.Fatalf("Estimate(a,c): %v", err)
	}
	costAB, err := h.Estimate(a, b) // collinear, so the haversine bound equals true edge cost here
	if err != nil {
		t.Fatalf("Estimate(a,b): %v", err)
	}
	hbc, err := h.Estimate(b, c)
	if err != nil {
		t.Fatalf("Estimate(b,c): %v", err)
	}

	if hac > costAB+hbc+1e-9 {
		t.Errorf("consistency violated: h(a,c)=%v > cost(a,b)+h(b,c)=%v", hac, costAB+hbc)
	}
}

func TestFromTraversalModelAgreesWithDirectEstimate(t *testing.T) {
	model := traversal.NewDistanceModel("distance", unit.Meters)
	sm, err := state.Empty().Extend(model.StateFeatures())
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	est := heuristic.FromTraversalModel(model, sm)
	src := graph.Vertex{Coordinate: graph.Coordinate{Lon: 0, Lat: 0}}
	dst := graph.Vertex{Coordinate: graph.Coordinate{Lon: 0, Lat: 0.001}}

	got, err := est.Estimate(src, dst)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	want := graph.HaversineDistance(src.Coordinate, dst.Coordinate).In(unit.Meters)
	if math.Abs(float64(got)-want) > 1e-6 {
		t.Errorf("Estimate = %v, want %v (the same haversine bound DistanceModel.EstimateTraversal uses)", got, want)
	}
}
