// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visualize_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/search"
	"github.com/routecompass/routecompass/unit"
	"github.com/routecompass/routecompass/visualize"
)

func triangleStore(t *testing.T) *graph.Store {
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

func TestRenderRouteWritesNonEmptyPNG(t *testing.T) {
	store := triangleStore(t)
	route := []search.EdgeTraversal{
		{EdgeID: 0, AccessCost: 0, TraversalCost: 100},
		{EdgeID: 1, AccessCost: 0, TraversalCost: 100},
	}

	path := filepath.Join(t.TempDir(), "route.png")
	if err := visualize.RenderRoute(path, store, route); err != nil {
		t.Fatalf("RenderRoute: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("RenderRoute wrote an empty file")
	}
}

func TestRenderRouteEmptyRouteStillSaves(t *testing.T) {
	store := triangleStore(t)

	path := filepath.Join(t.TempDir(), "empty.png")
	if err := visualize.RenderRoute(path, store, nil); err != nil {
		t.Fatalf("RenderRoute: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Stat: %v", err)
	}
}

func TestRenderRouteUnknownEdgeErrors(t *testing.T) {
	store := triangleStore(t)
	route := []search.EdgeTraversal{{EdgeID: 99}}

	path := filepath.Join(t.TempDir(), "bad.png")
	if err := visualize.RenderRoute(path, store, route); err == nil {
		t.Fatal("RenderRoute: got nil error for an out-of-range edge id")
	}
}
