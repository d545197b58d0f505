// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traversal

import (
	"fmt"

	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
)

// CompositeModel runs several component models over every edge and
// designates one of their objective features as the combined search
// objective, per the composition rule: every component still
// contributes its own state (distance, time, energy all populate
// together), but only the designated feature's delta becomes the
// edge's g-cost.
type CompositeModel struct {
	models    []Model
	objective string
}

// NewCompositeModel builds a CompositeModel running models in order
// and reporting objective — which must equal one component model's
// ObjectiveFeature — as the combined objective.
func NewCompositeModel(objective string, models ...Model) (*CompositeModel, error) {
	found := false
	for _, m := range models {
		if m.ObjectiveFeature() == objective {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("traversal: objective feature %q is not produced by any component model", objective)
	}
	return &CompositeModel{models: models, objective: objective}, nil
}

func (c *CompositeModel) TraverseEdge(t Trajectory, s state.Vector, sm *state.Model) error {
	for _, m := range c.models {
		if err := m.TraverseEdge(t, s, sm); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeModel) AccessEdge(t AccessTrajectory, s state.Vector, sm *state.Model) error {
	for _, m := range c.models {
		if err := m.AccessEdge(t, s, sm); err != nil {
			return err
		}
	}
	return nil
}

func (c *CompositeModel) EstimateTraversal(src, dst graph.Vertex, sm *state.Model) (Delta, error) {
	var out Delta
	for _, m := range c.models {
		d, err := m.EstimateTraversal(src, dst, sm)
		if err != nil {
			return nil, err
		}
		out = out.Combine(d)
	}
	return out, nil
}

func (c *CompositeModel) StateFeatures() []state.Feature {
	var out []state.Feature
	for _, m := range c.models {
		out = append(out, m.StateFeatures()...)
	}
	return out
}

func (c *CompositeModel) ObjectiveFeature() string { return c.objective }
