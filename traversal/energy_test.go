// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traversal_test

import (
	"testing"

	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/traversal"
	"github.com/routecompass/routecompass/unit"
)

func TestSpeedGradeEnergyModelConstantPredictor(t *testing.T) {
	store := linearChain(t)
	speedOf := []unit.Speed{
		unit.NewSpeed(10, unit.KilometersPerHour),
		unit.NewSpeed(20, unit.KilometersPerHour),
		unit.NewSpeed(10, unit.KilometersPerHour),
	}
	rate := unit.NewEnergyRate(0.2, unit.KWhPerKilometer)
	model := traversal.NewSpeedGradeEnergyModel("energy", unit.KilowattHours, speedOf, nil, traversal.ConstantPredictor{Rate: rate})

	sm, err := state.Empty().Extend(model.StateFeatures())
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	s := sm.InitialState()

	e, _ := store.Edge(0)
	src, _ := store.Vertex(e.Src)
	dst, _ := store.Vertex(e.Dst)
	if err := model.TraverseEdge(traversal.Trajectory{Src: src, Edge: e, Dst: dst}, s, sm); err != nil {
		t.Fatalf("TraverseEdge: %v", err)
	}

	got, _ := sm.Get(s, "energy")
	want := rate.Energy(e.Distance).Value()
	if got != want {
		t.Errorf("energy = %v, want %v", got, want)
	}
}

func TestSpeedGradeEnergyModelMissingGradeRow(t *testing.T) {
	store := linearChain(t)
	speedOf := []unit.Speed{unit.NewSpeed(10, unit.KilometersPerHour)}
	gradeOf := []float64{} // declared but empty: every lookup must fail
	model := traversal.NewSpeedGradeEnergyModel("energy", unit.KilowattHours, speedOf, gradeOf, traversal.ConstantPredictor{})

	sm, _ := state.Empty().Extend(model.StateFeatures())
	s := sm.InitialState()

	e, _ := store.Edge(0)
	src, _ := store.Vertex(e.Src)
	dst, _ := store.Vertex(e.Dst)
	err := model.TraverseEdge(traversal.Trajectory{Src: src, Edge: e, Dst: dst}, s, sm)
	if _, ok := err.(traversal.MissingIDInTabularLookupError); !ok {
		t.Fatalf("TraverseEdge: got %v, want MissingIDInTabularLookupError", err)
	}
}

func TestSpeedGradeEnergyModelEstimateTraversalUsesMinRate(t *testing.T) {
	speedOf := []unit.Speed{
		unit.NewSpeed(10, unit.KilometersPerHour),
		unit.NewSpeed(20, unit.KilometersPerHour),
	}
	rates := []unit.EnergyRate{
		unit.NewEnergyRate(0.3, unit.KWhPerKilometer),
		unit.NewEnergyRate(0.1, unit.KWhPerKilometer),
	}
	predictor := tableRatePredictor{speedOf: speedOf, rates: rates}
	model := traversal.NewSpeedGradeEnergyModel("energy", unit.KilowattHours, speedOf, nil, predictor)

	src := graph.Vertex{Coordinate: graph.Coordinate{Lon: 0, Lat: 0}}
	dst := graph.Vertex{Coordinate: graph.Coordinate{Lon: 0, Lat: 1}}
	delta, err := model.EstimateTraversal(src, dst, nil)
	if err != nil {
		t.Fatalf("EstimateTraversal: %v", err)
	}

	sm, err := state.Empty().Extend(model.StateFeatures())
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	s := sm.InitialState()
	if err := delta.Apply(s, sm); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	d := graph.HaversineDistance(src.Coordinate, dst.Coordinate)
	want := rates[1].Energy(d).Value() // the smaller of the two tabulated rates
	got, _ := sm.Get(s, "energy")
	if got != want {
		t.Errorf("energy estimate = %v, want %v (min tabulated rate × haversine distance)", got, want)
	}
}

// tableRatePredictor returns rates[i] for speedOf[i], matched by exact
// speed, standing in for a trained model whose rate varies by input.
type tableRatePredictor struct {
	speedOf []unit.Speed
	rates   []unit.EnergyRate
}

func (p tableRatePredictor) Predict(speed unit.Speed, grade float64) (unit.EnergyRate, error) {
	for i, s := range p.speedOf {
		if s == speed {
			return p.rates[i], nil
		}
	}
	return 0, traversal.PredictionFailureError{Reason: "no matching row"}
}

func TestSpeedGradeEnergyModelNilGradeTableDefaultsToZero(t *testing.T) {
	store := linearChain(t)
	speedOf := []unit.Speed{unit.NewSpeed(10, unit.KilometersPerHour)}
	model := traversal.NewSpeedGradeEnergyModel("energy", unit.KilowattHours, speedOf, nil, traversal.ConstantPredictor{Rate: unit.NewEnergyRate(0.1, unit.KWhPerKilometer)})

	sm, _ := state.Empty().Extend(model.StateFeatures())
	s := sm.InitialState()

	e, _ := store.Edge(0)
	src, _ := store.Vertex(e.Src)
	dst, _ := store.Vertex(e.Dst)
	if err := model.TraverseEdge(traversal.Trajectory{Src: src, Edge: e, Dst: dst}, s, sm); err != nil {
		t.Fatalf("TraverseEdge: %v", err)
	}
}
