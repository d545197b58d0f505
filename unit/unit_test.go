// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit_test

import (
	"math"
	"testing"

	"github.com/routecompass/routecompass/unit"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDistanceConversion(t *testing.T) {
	d := unit.NewDistance(100, unit.Meters)
	if !approxEqual(d.Value(), 0.1, 1e-9) {
		t.Fatalf("100 meters should be 0.1 km, got %v", d.Value())
	}
	if !approxEqual(d.In(unit.Meters), 100, 1e-9) {
		t.Fatalf("round-trip through Meters failed: got %v", d.In(unit.Meters))
	}
}

func TestTravelTime(t *testing.T) {
	dist := unit.NewDistance(100, unit.Meters)
	speed := unit.NewSpeed(10, unit.KilometersPerHour)
	got := unit.TravelTime(dist, speed).In(unit.Seconds)
	want := 36.0 // (0.1km / 10kph) * 3600 = 36s
	if !approxEqual(got, want, 1e-6) {
		t.Fatalf("TravelTime = %v, want %v", got, want)
	}
}

func TestTravelTimeMilliseconds(t *testing.T) {
	dist := unit.NewDistance(100, unit.Meters)
	speed := unit.NewSpeed(10, unit.KilometersPerHour)
	got := unit.TravelTime(dist, speed).In(unit.Milliseconds)
	want := 36000.0
	if !approxEqual(got, want, 1e-3) {
		t.Fatalf("TravelTime(ms) = %v, want %v", got, want)
	}
}

func TestTravelTimeZeroSpeed(t *testing.T) {
	dist := unit.NewDistance(1, unit.Kilometers)
	speed := unit.Speed(0)
	got := unit.TravelTime(dist, speed)
	if got != 0 {
		t.Fatalf("TravelTime with zero speed should be zero, got %v", got)
	}
}

func TestEnergyRate(t *testing.T) {
	rate := unit.NewEnergyRate(0.25, unit.KWhPerKilometer)
	energy := rate.Energy(unit.NewDistance(10, unit.Kilometers))
	if !approxEqual(energy.Value(), 2.5, 1e-9) {
		t.Fatalf("energy = %v, want 2.5", energy.Value())
	}
}

func TestSpeedConversion(t *testing.T) {
	s := unit.NewSpeed(100, unit.KilometersPerHour)
	got := s.In(unit.MetersPerSecond)
	want := 27.7778
	if !approxEqual(got, want, 1e-3) {
		t.Fatalf("100kph in m/s = %v, want %v", got, want)
	}
}
