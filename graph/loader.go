// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/routecompass/routecompass/unit"
)

// edgeCSVHeader is the required header row of the edge list CSV.
var edgeCSVHeader = []string{"edge_id", "src_vertex_id", "dst_vertex_id", "road_class", "distance", "grade"}

// vertexCSVHeader is the required header row of the vertex list CSV.
var vertexCSVHeader = []string{"vertex_id", "x", "y"}

// LoadConfig describes one edge-list-csv graph source, mirroring the
// original TomTomGraphConfig: file paths, optional pre-declared row
// counts (to pre-allocate), and the distance unit the CSV's distance
// column is expressed in.
type LoadConfig struct {
	EdgeFile     string
	VertexFile   string
	NEdges       int // 0 means "count the file"
	NVertices    int // 0 means "count the file"
	DistanceUnit unit.DistanceUnit
}

// Load reads the edge and vertex CSVs named by cfg (gzip-decoding
// transparently when the filename ends in ".gz"), builds adjacency,
// and returns an immutable Store. Row counts are taken from cfg when
// given and otherwise determined with a one-pass line count.
func Load(cfg LoadConfig, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	nEdges := cfg.NEdges
	if nEdges == 0 {
		log.Warn("edge list size not provided, scanning input to determine size", "file", cfg.EdgeFile)
		n, err := CountLines(cfg.EdgeFile)
		if err != nil {
			return nil, err
		}
		nEdges = n - 1 // drop the header row
	}
	if nEdges < 1 {
		return nil, EmptyFileSourceError{Filename: cfg.EdgeFile}
	}

	nVertices := cfg.NVertices
	if nVertices == 0 {
		log.Warn("vertex list size not provided, scanning input to determine size", "file", cfg.VertexFile)
		n, err := CountLines(cfg.VertexFile)
		if err != nil {
			return nil, err
		}
		nVertices = n - 1
	}
	if nVertices < 1 {
		return nil, EmptyFileSourceError{Filename: cfg.VertexFile}
	}

	vertices, err := loadVertices(cfg.VertexFile, nVertices)
	if err != nil {
		return nil, err
	}
	log.Info("loaded vertex list", "rows", len(vertices))

	edges, err := loadEdges(cfg.EdgeFile, nEdges, cfg.DistanceUnit)
	if err != nil {
		return nil, err
	}
	log.Info("loaded edge list", "rows", len(edges))

	store, err := Build(edges, vertices)
	if err != nil {
		return nil, err
	}
	log.Info("graph store built", "vertices", store.NumVertices(), "edges", store.NumEdges())
	return store, nil
}

// CountLines returns the number of newline-terminated lines in path,
// transparently gzip-decoding when path ends in ".gz". It is used to
// size adjacency slices when a config does not pre-declare row counts.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("graph: %w", err)
	}
	defer f.Close()

	r, err := maybeGzip(f, path)
	if err != nil {
		return 0, err
	}

	scanner := bufio.NewScanner(r)
	// lines in these extracts can be long; grow the scan buffer generously.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for scanner.Scan() {
		n++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("graph: counting lines in %s: %w", path, err)
	}
	return n, nil
}

func maybeGzip(f *os.File, name string) (io.Reader, error) {
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("graph: opening gzip stream %s: %w", name, err)
		}
		return gz, nil
	}
	return f, nil
}

func openCSV(path string) (*csv.Reader, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("graph: %w", err)
	}
	r, err := maybeGzip(f, path)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	closer := f.Close
	if gz, ok := r.(*gzip.Reader); ok {
		closer = func() error {
			gz.Close()
			return f.Close()
		}
	}
	return csv.NewReader(r), closer, nil
}

func checkHeader(got, want []string, filename string) error {
	if len(got) < len(want) {
		return fmt.Errorf("graph: %s: expected header %v, got %v", filename, want, got)
	}
	for i, col := range want {
		if got[i] != col {
			return fmt.Errorf("graph: %s: expected column %d to be %q, got %q", filename, i, col, got[i])
		}
	}
	return nil
}

func loadVertices(path string, n int) ([]Vertex, error) {
	r, closer, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer closer()

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("graph: reading header of %s: %w", path, err)
	}
	if err := checkHeader(header, vertexCSVHeader, path); err != nil {
		return nil, err
	}

	vertices := make([]Vertex, n)
	seen := make([]bool, n)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graph: reading %s: %w", path, err)
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("graph: %s: bad vertex_id %q: %w", path, row[0], err)
		}
		if id < 0 || id >= n {
			return nil, fmt.Errorf("graph: %s: vertex_id %d out of declared range [0,%d)", path, id, n)
		}
		x, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("graph: %s: bad x %q: %w", path, row[1], err)
		}
		y, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("graph: %s: bad y %q: %w", path, row[2], err)
		}
		vertices[id] = Vertex{
			ID:         VertexID(id),
			Coordinate: Coordinate{Lon: x, Lat: y},
		}
		seen[id] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("graph: %s: missing row for vertex_id %d", path, i)
		}
	}
	return vertices, nil
}

func loadEdges(path string, n int, distUnit unit.DistanceUnit) ([]Edge, error) {
	r, closer, err := openCSV(path)
	if err != nil {
		return nil, err
	}
	defer closer()

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("graph: reading header of %s: %w", path, err)
	}
	if err := checkHeader(header, edgeCSVHeader, path); err != nil {
		return nil, err
	}

	// Rows are placed by their declared edge_id rather than file order,
	// matching the TomTom loader this is grounded on: a CSV extract is
	// not guaranteed to list edges in ID order.
	edges := make([]Edge, n)
	seen := make([]bool, n)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graph: reading %s: %w", path, err)
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("graph: %s: bad edge_id %q: %w", path, row[0], err)
		}
		if id < 0 || id >= n {
			return nil, fmt.Errorf("graph: %s: edge_id %d out of declared range [0,%d)", path, id, n)
		}
		src, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("graph: %s: bad src_vertex_id %q: %w", path, row[1], err)
		}
		dst, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("graph: %s: bad dst_vertex_id %q: %w", path, row[2], err)
		}
		class, ok := ParseRoadClass(row[3])
		if !ok {
			class = Unclassified
		}
		distVal, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, fmt.Errorf("graph: %s: bad distance %q: %w", path, row[4], err)
		}
		grade, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			return nil, fmt.Errorf("graph: %s: bad grade %q: %w", path, row[5], err)
		}
		edges[id] = Edge{
			ID:        EdgeID(id),
			Src:       VertexID(src),
			Dst:       VertexID(dst),
			RoadClass: class,
			Distance:  unit.NewDistance(distVal, distUnit),
			Grade:     grade,
		}
		seen[id] = true
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("graph: %s: missing row for edge_id %d", path, i)
		}
	}
	return edges, nil
}
