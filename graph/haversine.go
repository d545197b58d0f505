// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"math"

	"github.com/routecompass/routecompass/unit"
)

// earthRadiusKm is the mean radius used by the haversine great-circle
// approximation.
const earthRadiusKm = 6371.0088

// HaversineDistance returns the great-circle distance between two WGS84
// coordinates. It always under- or exactly-estimates the true road
// distance between the vertices it names, which is what makes it a
// valid admissible lower bound for every distance- or time-denominated
// traversal model's estimate.
func HaversineDistance(a, b Coordinate) unit.Distance {
	const deg2rad = math.Pi / 180

	lat1, lat2 := a.Lat*deg2rad, b.Lat*deg2rad
	dLat := (b.Lat - a.Lat) * deg2rad
	dLon := (b.Lon - a.Lon) * deg2rad

	sinDLat := math.Sin(dLat / 2)
	sinDLon := math.Sin(dLon / 2)
	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return unit.NewDistance(earthRadiusKm*c, unit.Kilometers)
}
