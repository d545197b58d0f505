// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state_test

import (
	"testing"

	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/unit"
)

func buildModel(t *testing.T) *state.Model {
	t.Helper()
	m, err := state.Empty().Extend([]state.Feature{
		state.DistanceFeature("distance", unit.Kilometers, unit.ZeroDistance),
		state.TimeFeature("time", unit.Seconds, unit.ZeroTime),
	})
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	return m
}

func TestInitialStateAndGet(t *testing.T) {
	m := buildModel(t)
	v := m.InitialState()
	got, err := m.Get(v, "distance")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != 0 {
		t.Errorf("initial distance = %v, want 0", got)
	}
}

func TestAddDistanceConverts(t *testing.T) {
	m := buildModel(t)
	v := m.InitialState()
	if err := m.AddDistance(v, "distance", unit.NewDistance(500, unit.Meters)); err != nil {
		t.Fatalf("AddDistance: %v", err)
	}
	got, _ := m.Get(v, "distance")
	if got != 0.5 {
		t.Errorf("distance = %v, want 0.5 (km)", got)
	}
}

func TestAddDistanceUnitMismatch(t *testing.T) {
	m := buildModel(t)
	v := m.InitialState()
	err := m.AddTime(v, "distance", unit.NewTime(1, unit.Seconds))
	if err == nil {
		t.Fatal("expected UnitMismatchError, got nil")
	}
}

func TestUnknownFeature(t *testing.T) {
	m := buildModel(t)
	v := m.InitialState()
	if _, err := m.Get(v, "energy"); err == nil {
		t.Fatal("expected UnknownFeatureError, got nil")
	}
}

func TestExtendDuplicateName(t *testing.T) {
	base := buildModel(t)
	_, err := base.Extend([]state.Feature{state.DistanceFeature("distance", unit.Kilometers, unit.ZeroDistance)})
	if err == nil {
		t.Fatal("expected DuplicateNameError, got nil")
	}
}

func TestExtendIsImmutable(t *testing.T) {
	base := buildModel(t)
	_, err := base.Extend([]state.Feature{state.EnergyFeature("energy", unit.KilowattHours, unit.ZeroEnergy)})
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}
	// base itself must not have gained the new feature.
	v := base.InitialState()
	if len(v) != 2 {
		t.Errorf("base schema length changed after Extend: got %d, want 2", len(v))
	}
}

func TestVectorCloneIsIndependent(t *testing.T) {
	m := buildModel(t)
	v := m.InitialState()
	clone := v.Clone()
	if err := m.AddDistance(clone, "distance", unit.NewDistance(1, unit.Kilometers)); err != nil {
		t.Fatalf("AddDistance: %v", err)
	}
	orig, _ := m.Get(v, "distance")
	if orig != 0 {
		t.Errorf("mutating clone affected original: %v", orig)
	}
}

func TestVectorDominates(t *testing.T) {
	a := state.Vector{1, 2}
	b := state.Vector{1, 1}
	if !a.Dominates(b) {
		t.Error("a should dominate b")
	}
	if b.Dominates(a) {
		t.Error("b should not dominate a")
	}
}
