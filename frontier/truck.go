// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frontier

import (
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
)

// TruckParameters describes the physical dimensions of the vehicle a
// query is routing for.
type TruckParameters struct {
	WeightKg float64
	HeightM  float64
	WidthM   float64
	LengthM  float64
}

// Restriction names the maximum dimensions a single edge permits. A
// zero field means that dimension is unrestricted.
type Restriction struct {
	MaxWeightKg float64
	MaxHeightM  float64
	MaxWidthM   float64
	MaxLengthM  float64
}

// Violates reports whether p exceeds any of r's restricted dimensions.
func (r Restriction) Violates(p TruckParameters) bool {
	return (r.MaxWeightKg > 0 && p.WeightKg > r.MaxWeightKg) ||
		(r.MaxHeightM > 0 && p.HeightM > r.MaxHeightM) ||
		(r.MaxWidthM > 0 && p.WidthM > r.MaxWidthM) ||
		(r.MaxLengthM > 0 && p.LengthM > r.MaxLengthM)
}

// TruckRestriction rejects an edge if any of its zero-or-more
// restrictions is violated by Truck.
type TruckRestriction struct {
	Truck          TruckParameters
	RestrictionsOf map[graph.EdgeID][]Restriction
}

// NewTruckRestriction builds a TruckRestriction, rejecting truck
// parameters that cannot describe a physical vehicle.
func NewTruckRestriction(truck TruckParameters, restrictionsOf map[graph.EdgeID][]Restriction) (*TruckRestriction, error) {
	switch {
	case truck.WeightKg < 0:
		return nil, InvalidVehicleParametersError{Field: "weight_kg", Value: truck.WeightKg}
	case truck.HeightM < 0:
		return nil, InvalidVehicleParametersError{Field: "height_m", Value: truck.HeightM}
	case truck.WidthM < 0:
		return nil, InvalidVehicleParametersError{Field: "width_m", Value: truck.WidthM}
	case truck.LengthM < 0:
		return nil, InvalidVehicleParametersError{Field: "length_m", Value: truck.LengthM}
	}
	return &TruckRestriction{Truck: truck, RestrictionsOf: restrictionsOf}, nil
}

func (t *TruckRestriction) ValidFrontier(edge graph.Edge, _ state.Vector, _ *state.Model, _ *graph.Edge) (bool, error) {
	for _, r := range t.RestrictionsOf[edge.ID] {
		if r.Violates(t.Truck) {
			return false, nil
		}
	}
	return true, nil
}
