// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import "fmt"

// DistanceUnit names one of the distance units this module's edges,
// config, and state schema may be expressed in. The canonical/base unit
// used internally wherever a bare float64 distance is carried without an
// explicit unit (e.g. Edge.Distance) is Kilometers, matching the TomTom
// edge list convention this package's graph loader is grounded on.
type DistanceUnit uint8

const (
	Kilometers DistanceUnit = iota
	Meters
	Miles
)

func (u DistanceUnit) String() string {
	switch u {
	case Kilometers:
		return "kilometers"
	case Meters:
		return "meters"
	case Miles:
		return "miles"
	default:
		return fmt.Sprintf("DistanceUnit(%d)", uint8(u))
	}
}

// perKilometer converts one kilometer into u.
func (u DistanceUnit) perKilometer() float64 {
	switch u {
	case Meters:
		return 1000
	case Miles:
		return 0.621371
	default:
		return 1
	}
}

// Distance is a scalar quantity of length, stored internally in
// kilometers regardless of the unit it was constructed from.
type Distance float64

// ZeroDistance is the additive identity for Distance.
const ZeroDistance Distance = 0

// NewDistance builds a Distance from a value expressed in u.
func NewDistance(value float64, u DistanceUnit) Distance {
	return Distance(value / u.perKilometer())
}

// Value returns the distance in its canonical unit (kilometers).
func (d Distance) Value() float64 { return float64(d) }

// In returns d expressed as a plain float64 in unit u.
func (d Distance) In(u DistanceUnit) float64 {
	return float64(d) * u.perKilometer()
}

// Kind reports the dimension tag for Distance, used by the state model
// to reject cross-kind unit conversions.
func (Distance) Kind() Kind { return KindDistance }
