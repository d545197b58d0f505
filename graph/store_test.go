// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph_test

import (
	"testing"

	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/unit"
)

func triangle() ([]graph.Edge, []graph.Vertex) {
	vertices := []graph.Vertex{
		{Coordinate: graph.Coordinate{Lon: 0, Lat: 0}},
		{Coordinate: graph.Coordinate{Lon: 0, Lat: 1}},
		{Coordinate: graph.Coordinate{Lon: 1, Lat: 1}},
	}
	edges := []graph.Edge{
		{Src: 0, Dst: 1, Distance: unit.NewDistance(100, unit.Meters)},
		{Src: 1, Dst: 2, Distance: unit.NewDistance(100, unit.Meters)},
		{Src: 0, Dst: 2, Distance: unit.NewDistance(250, unit.Meters)},
	}
	return edges, vertices
}

func TestBuildAssignsDenseIDs(t *testing.T) {
	edges, vertices := triangle()
	store, err := graph.Build(edges, vertices)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < store.NumEdges(); i++ {
		e, err := store.Edge(graph.EdgeID(i))
		if err != nil {
			t.Fatalf("Edge(%d): %v", i, err)
		}
		if int(e.ID) != i {
			t.Errorf("edge %d has ID %d", i, e.ID)
		}
	}
}

func TestAdjacencyInvariant(t *testing.T) {
	edges, vertices := triangle()
	store, err := graph.Build(edges, vertices)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < store.NumEdges(); i++ {
		e, _ := store.Edge(graph.EdgeID(i))
		if dst, ok := store.OutEdges(e.Src)[e.ID]; !ok || dst != e.Dst {
			t.Errorf("adj[%d][%d] = (%v, %v), want (%v, true)", e.Src, e.ID, dst, ok, e.Dst)
		}
		if src, ok := store.InEdges(e.Dst)[e.ID]; !ok || src != e.Src {
			t.Errorf("rev[%d][%d] = (%v, %v), want (%v, true)", e.Dst, e.ID, src, ok, e.Src)
		}
	}
}

func TestBuildAdjacencyVertexMissing(t *testing.T) {
	vertices := []graph.Vertex{{}}
	edges := []graph.Edge{{Src: 0, Dst: 5}}
	_, err := graph.Build(edges, vertices)
	var target graph.AdjacencyVertexMissingError
	if err == nil {
		t.Fatal("expected AdjacencyVertexMissingError, got nil")
	}
	if !isAdjacencyMissing(err, &target) {
		t.Fatalf("expected AdjacencyVertexMissingError, got %v", err)
	}
	if target.VertexID != 5 {
		t.Errorf("VertexID = %d, want 5", target.VertexID)
	}
}

func isAdjacencyMissing(err error, target *graph.AdjacencyVertexMissingError) bool {
	e, ok := err.(graph.AdjacencyVertexMissingError)
	if !ok {
		return false
	}
	*target = e
	return true
}

func TestEdgeAndVertexNotFound(t *testing.T) {
	edges, vertices := triangle()
	store, err := graph.Build(edges, vertices)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := store.Edge(99); err == nil {
		t.Error("expected error for out-of-range edge id")
	}
	if _, err := store.Vertex(99); err == nil {
		t.Error("expected error for out-of-range vertex id")
	}
}
