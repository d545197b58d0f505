// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "github.com/routecompass/routecompass/unit"

// entry caches a feature's resolved index alongside its declaration,
// so the hot traversal loop looks indices up once at model-construction
// time instead of on every edge relaxation.
type entry struct {
	Feature
	index int
}

// Model is a fixed schema mapping feature names to (index, unit). It
// is the sole authority for unit conversions into and out of a Vector;
// traversal models never convert units themselves. A Model is
// immutable once built and is shared read-only across every search
// that runs against it.
type Model struct {
	order []entry
	byName map[string]*entry
}

// Empty returns a Model with no declared features.
func Empty() *Model {
	return &Model{byName: make(map[string]*entry)}
}

// Extend returns a new Model with features appended to the receiver's
// schema. It fails with DuplicateNameError if a name collides with an
// existing feature, either already in m or within features itself.
func (m *Model) Extend(features []Feature) (*Model, error) {
	out := &Model{
		order:  make([]entry, len(m.order), len(m.order)+len(features)),
		byName: make(map[string]*entry, len(m.byName)+len(features)),
	}
	copy(out.order, m.order)
	for name, e := range m.byName {
		out.byName[name] = e
	}
	for _, f := range features {
		if _, exists := out.byName[f.Name]; exists {
			return nil, DuplicateNameError{Name: f.Name}
		}
		out.order = append(out.order, entry{Feature: f, index: len(out.order)})
	}
	// byName must point into out.order's final backing array, so it is
	// rebuilt after every append above completes.
	for i := range out.order {
		out.byName[out.order[i].Name] = &out.order[i]
	}
	return out, nil
}

// InitialState returns a fresh Vector with each feature set to its
// configured initial value.
func (m *Model) InitialState() Vector {
	v := make(Vector, len(m.order))
	for i, e := range m.order {
		v[i] = Var(e.Initial)
	}
	return v
}

// NumFeatures returns the number of declared features.
func (m *Model) NumFeatures() int { return len(m.order) }

func (m *Model) lookup(name string) (*entry, error) {
	e, ok := m.byName[name]
	if !ok {
		return nil, UnknownFeatureError{Name: name}
	}
	return e, nil
}

// Get returns the raw scalar stored for name in state, in the
// feature's configured unit.
func (m *Model) Get(v Vector, name string) (float64, error) {
	e, err := m.lookup(name)
	if err != nil {
		return 0, err
	}
	return float64(v[e.index]), nil
}

// AddDistance unit-converts delta into the feature's stored unit and
// adds it in place. It fails with UnitMismatchError if name does not
// name a distance feature.
func (m *Model) AddDistance(v Vector, name string, delta unit.Distance) error {
	e, err := m.lookup(name)
	if err != nil {
		return err
	}
	if e.Kind != unit.KindDistance {
		return UnitMismatchError{Name: name, Have: "distance", Want: e.Kind.String()}
	}
	v[e.index] += Var(delta.In(e.DistanceUnit))
	return nil
}

// AddTime unit-converts delta into the feature's stored unit and adds
// it in place. It fails with UnitMismatchError if name does not name a
// time feature.
func (m *Model) AddTime(v Vector, name string, delta unit.Time) error {
	e, err := m.lookup(name)
	if err != nil {
		return err
	}
	if e.Kind != unit.KindTime {
		return UnitMismatchError{Name: name, Have: "time", Want: e.Kind.String()}
	}
	v[e.index] += Var(delta.In(e.TimeUnit))
	return nil
}

// AddEnergy unit-converts delta into the feature's stored unit and
// adds it in place. It fails with UnitMismatchError if name does not
// name an energy feature.
func (m *Model) AddEnergy(v Vector, name string, delta unit.Energy) error {
	e, err := m.lookup(name)
	if err != nil {
		return err
	}
	if e.Kind != unit.KindEnergy {
		return UnitMismatchError{Name: name, Have: "energy", Want: e.Kind.String()}
	}
	v[e.index] += Var(delta.In(e.EnergyUnit))
	return nil
}

// Feature returns the declared Feature for name.
func (m *Model) Feature(name string) (Feature, error) {
	e, err := m.lookup(name)
	if err != nil {
		return Feature{}, err
	}
	return e.Feature, nil
}

// Summary returns a name-keyed snapshot of every feature's current
// value, in its configured unit — the "summary of the final state"
// spec.md §6 requires in the result surface.
func (m *Model) Summary(v Vector) map[string]float64 {
	out := make(map[string]float64, len(m.order))
	for _, e := range m.order {
		out[e.Name] = float64(v[e.index])
	}
	return out
}
