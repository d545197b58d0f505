// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traversal

import (
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/internal/numeric"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/unit"
)

// Predictor maps an edge's (speed, grade) onto an energy consumption
// rate, grounded on the original's SpeedGradePredictionModel trait
// (implemented there by a smartcore random-forest regressor).
type Predictor interface {
	Predict(speed unit.Speed, grade float64) (unit.EnergyRate, error)
}

// ConstantPredictor is a Predictor that ignores its inputs and always
// reports Rate — useful as a test double and as a coarse fallback
// when no trained model is configured.
type ConstantPredictor struct {
	Rate unit.EnergyRate
}

func (p ConstantPredictor) Predict(unit.Speed, float64) (unit.EnergyRate, error) {
	return p.Rate, nil
}

// SpeedGradeEnergyModel accumulates energy consumption from a per-edge
// speed table, an optional per-edge grade table, and a Predictor,
// grounded on the original's energy_model_ops.get_grade lookup and
// SmartcoreSpeedGradeModel.predict.
type SpeedGradeEnergyModel struct {
	Feature   string
	Unit      unit.EnergyUnit
	SpeedOf   []unit.Speed // indexed by graph.EdgeID
	GradeOf   []float64    // indexed by graph.EdgeID; nil means zero grade everywhere
	Predictor Predictor

	minRate unit.EnergyRate
}

// NewSpeedGradeEnergyModel builds a SpeedGradeEnergyModel accumulating
// onto feature, stored in u. gradeOf may be nil.
//
// It also asks predictor for the rate at every tabulated (speed,
// grade) pair and keeps the smallest as minRate, the same
// table-driven bound NewSpeedLookupModel takes over its fastest
// speed. A pair the predictor can't evaluate is simply excluded from
// the minimum rather than failing construction: a black-box predictor
// is free to reject inputs outside its training domain, and this
// model's estimate is only ever a lower bound, never a correctness
// requirement. If no pair evaluates cleanly, minRate stays zero.
func NewSpeedGradeEnergyModel(feature string, u unit.EnergyUnit, speedOf []unit.Speed, gradeOf []float64, predictor Predictor) *SpeedGradeEnergyModel {
	m := &SpeedGradeEnergyModel{Feature: feature, Unit: u, SpeedOf: speedOf, GradeOf: gradeOf, Predictor: predictor}

	var rates []float64
	for i, speed := range speedOf {
		grade := 0.0
		if i < len(gradeOf) {
			grade = gradeOf[i]
		}
		rate, err := predictor.Predict(speed, grade)
		if err != nil {
			continue
		}
		rates = append(rates, rate.Value())
	}
	if len(rates) > 0 {
		min, _ := numeric.Min(rates)
		m.minRate = unit.EnergyRate(min)
	}
	return m
}

func (m *SpeedGradeEnergyModel) speedFor(id graph.EdgeID) (unit.Speed, error) {
	if int(id) < 0 || int(id) >= len(m.SpeedOf) {
		return 0, MissingIDInTabularLookupError{EdgeID: id, Table: "speed table"}
	}
	return m.SpeedOf[id], nil
}

// getGrade returns the grade of id, or zero if no grade table was
// configured.
func (m *SpeedGradeEnergyModel) getGrade(id graph.EdgeID) (float64, error) {
	if m.GradeOf == nil {
		return 0, nil
	}
	if int(id) < 0 || int(id) >= len(m.GradeOf) {
		return 0, MissingIDInTabularLookupError{EdgeID: id, Table: "grade table"}
	}
	return m.GradeOf[id], nil
}

func (m *SpeedGradeEnergyModel) TraverseEdge(t Trajectory, s state.Vector, sm *state.Model) error {
	speed, err := m.speedFor(t.Edge.ID)
	if err != nil {
		return err
	}
	grade, err := m.getGrade(t.Edge.ID)
	if err != nil {
		return err
	}
	rate, err := m.Predictor.Predict(speed, grade)
	if err != nil {
		return PredictionFailureError{Reason: err.Error()}
	}
	energy := rate.Energy(t.Edge.Distance)
	if energy.Value() < 0 {
		return NegativeCostError{EdgeID: t.Edge.ID, Delta: energy.Value()}
	}
	return sm.AddEnergy(s, m.Feature, energy)
}

// AccessEdge is a no-op: this model has no turn-cost component.
func (m *SpeedGradeEnergyModel) AccessEdge(AccessTrajectory, state.Vector, *state.Model) error {
	return nil
}

// EstimateTraversal reports minRate times the remaining haversine
// distance: no edge in the table predicts a lower rate than minRate,
// so no real route from src to dst can consume energy more slowly
// than that rate over the straight-line distance, making
// minRate×haversine an admissible lower bound. If minRate came out at
// or below zero (a table dominated by downhill grades, say), zero is
// reported instead, since a negative rate is a looser but still
// admissible bound and callers never need to see actual negative
// energy out of an estimator.
func (m *SpeedGradeEnergyModel) EstimateTraversal(src, dst graph.Vertex, _ *state.Model) (Delta, error) {
	if m.minRate.Value() <= 0 {
		return nil, nil
	}
	d := graph.HaversineDistance(src.Coordinate, dst.Coordinate)
	if d.Value() == 0 {
		return nil, nil
	}
	return EnergyDelta(m.Feature, m.minRate.Energy(d)), nil
}

func (m *SpeedGradeEnergyModel) StateFeatures() []state.Feature {
	return []state.Feature{state.EnergyFeature(m.Feature, m.Unit, unit.ZeroEnergy)}
}

func (m *SpeedGradeEnergyModel) ObjectiveFeature() string { return m.Feature }
