// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traversal

import (
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/unit"
)

// deltaOp is one unit-tagged increment a Delta applies to a named
// feature. Exactly one of distance/time/energy is meaningful,
// selected by kind.
type deltaOp struct {
	feature  string
	kind     unit.Kind
	distance unit.Distance
	time     unit.Time
	energy   unit.Energy
}

// Delta is an ordered, data-only description of the state updates
// EstimateTraversal would have made, had it been allowed to mutate
// state directly. Keeping it as data rather than a closure lets a
// caller apply it to a scratch clone and discard the clone, or inspect
// it in a test without a state.Model in hand.
type Delta []deltaOp

// DistanceDelta builds a single-operation Delta that adds amount to a
// distance feature.
func DistanceDelta(feature string, amount unit.Distance) Delta {
	return Delta{{feature: feature, kind: unit.KindDistance, distance: amount}}
}

// TimeDelta builds a single-operation Delta that adds amount to a time
// feature.
func TimeDelta(feature string, amount unit.Time) Delta {
	return Delta{{feature: feature, kind: unit.KindTime, time: amount}}
}

// EnergyDelta builds a single-operation Delta that adds amount to an
// energy feature.
func EnergyDelta(feature string, amount unit.Energy) Delta {
	return Delta{{feature: feature, kind: unit.KindEnergy, energy: amount}}
}

// Combine returns a Delta applying both d and other's operations, in
// that order.
func (d Delta) Combine(other Delta) Delta {
	out := make(Delta, 0, len(d)+len(other))
	out = append(out, d...)
	out = append(out, other...)
	return out
}

// Apply adds every operation in d onto v using sm's unit-aware
// accumulators, in order.
func (d Delta) Apply(v state.Vector, sm *state.Model) error {
	for _, op := range d {
		var err error
		switch op.kind {
		case unit.KindDistance:
			err = sm.AddDistance(v, op.feature, op.distance)
		case unit.KindTime:
			err = sm.AddTime(v, op.feature, op.time)
		case unit.KindEnergy:
			err = sm.AddEnergy(v, op.feature, op.energy)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
