// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph_test

import (
	"compress/gzip"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/unit"
)

const edgeCSV = `edge_id,src_vertex_id,dst_vertex_id,road_class,distance,grade
0,0,1,motorway,0.1,0.01
1,1,2,motorway,0.1,0.0
2,0,2,restricted,0.25,0.02
`

const vertexCSV = `vertex_id,x,y
0,0,0
1,0,1
2,1,1
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func writeGzipFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(content)); err != nil {
		t.Fatalf("gzip Write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip Close: %v", err)
	}
	return path
}

func TestLoadPlainCSV(t *testing.T) {
	dir := t.TempDir()
	edgeFile := writeFile(t, dir, "edges.csv", edgeCSV)
	vertexFile := writeFile(t, dir, "vertices.csv", vertexCSV)

	store, err := graph.Load(graph.LoadConfig{
		EdgeFile:     edgeFile,
		VertexFile:   vertexFile,
		DistanceUnit: unit.Kilometers,
	}, slog.Default())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.NumEdges() != 3 {
		t.Errorf("NumEdges = %d, want 3", store.NumEdges())
	}
	if store.NumVertices() != 3 {
		t.Errorf("NumVertices = %d, want 3", store.NumVertices())
	}
	e0, _ := store.Edge(0)
	if e0.RoadClass != graph.Motorway {
		t.Errorf("edge 0 road class = %v, want motorway", e0.RoadClass)
	}
}

func TestLoadGzippedCSV(t *testing.T) {
	dir := t.TempDir()
	edgeFile := writeGzipFile(t, dir, "edges.csv.gz", edgeCSV)
	vertexFile := writeGzipFile(t, dir, "vertices.csv.gz", vertexCSV)

	store, err := graph.Load(graph.LoadConfig{
		EdgeFile:     edgeFile,
		VertexFile:   vertexFile,
		NEdges:       3,
		NVertices:    3,
		DistanceUnit: unit.Kilometers,
	}, slog.Default())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.NumEdges() != 3 {
		t.Errorf("NumEdges = %d, want 3", store.NumEdges())
	}
}

func TestLoadCountsLinesWhenSizeOmitted(t *testing.T) {
	dir := t.TempDir()
	edgeFile := writeFile(t, dir, "edges.csv", edgeCSV)
	vertexFile := writeFile(t, dir, "vertices.csv", vertexCSV)

	n, err := graph.CountLines(edgeFile)
	if err != nil {
		t.Fatalf("CountLines: %v", err)
	}
	if n != 4 { // header + 3 data rows
		t.Errorf("CountLines = %d, want 4", n)
	}

	store, err := graph.Load(graph.LoadConfig{
		EdgeFile:     edgeFile,
		VertexFile:   vertexFile,
		DistanceUnit: unit.Kilometers,
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.NumEdges() != 3 {
		t.Errorf("NumEdges = %d, want 3", store.NumEdges())
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	edgeFile := writeFile(t, dir, "edges.csv", "edge_id,src_vertex_id,dst_vertex_id,road_class,distance,grade\n")
	vertexFile := writeFile(t, dir, "vertices.csv", vertexCSV)

	_, err := graph.Load(graph.LoadConfig{
		EdgeFile:     edgeFile,
		VertexFile:   vertexFile,
		DistanceUnit: unit.Kilometers,
	}, nil)
	if err == nil {
		t.Fatal("expected EmptyFileSourceError, got nil")
	}
}
