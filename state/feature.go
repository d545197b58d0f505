// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "github.com/routecompass/routecompass/unit"

// Feature declares one named accumulator a traversal model contributes
// to the schema: its kind (for unit-mismatch checking), its storage
// unit, and its initial value.
type Feature struct {
	Name    string
	Kind    unit.Kind
	Initial float64

	// DistanceUnit, TimeUnit, EnergyUnit name the unit this feature's
	// scalar is stored in. Only the field matching Kind is read; the
	// others are ignored. A Custom feature (Kind == unit.KindCustom)
	// carries no unit at all.
	DistanceUnit unit.DistanceUnit
	TimeUnit     unit.TimeUnit
	EnergyUnit   unit.EnergyUnit
}

// DistanceFeature declares a distance accumulator, analogous to the
// original's StateFeature::Distance{unit}.
func DistanceFeature(name string, u unit.DistanceUnit, initial unit.Distance) Feature {
	return Feature{Name: name, Kind: unit.KindDistance, DistanceUnit: u, Initial: initial.In(u)}
}

// TimeFeature declares a time accumulator.
func TimeFeature(name string, u unit.TimeUnit, initial unit.Time) Feature {
	return Feature{Name: name, Kind: unit.KindTime, TimeUnit: u, Initial: initial.In(u)}
}

// EnergyFeature declares an energy accumulator.
func EnergyFeature(name string, u unit.EnergyUnit, initial unit.Energy) Feature {
	return Feature{Name: name, Kind: unit.KindEnergy, EnergyUnit: u, Initial: initial.In(u)}
}

// CustomFeature declares a unitless accumulator for model-specific use.
func CustomFeature(name string, initial float64) Feature {
	return Feature{Name: name, Kind: unit.KindCustom, Initial: initial}
}
