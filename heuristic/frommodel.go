// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heuristic

import (
	"github.com/routecompass/routecompass/cost"
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/traversal"
)

// modelEstimator adapts a traversal.Model's own EstimateTraversal into
// an Estimator, so a search's heuristic is automatically consistent
// with whatever objective feature that model was configured with.
type modelEstimator struct {
	model *state.Model
	tm    traversal.Model
}

// FromTraversalModel builds an Estimator that delegates to tm's
// EstimateTraversal, reading the resulting bound off tm's
// ObjectiveFeature. sm must be a state.Model already Extended with
// tm's StateFeatures.
func FromTraversalModel(tm traversal.Model, sm *state.Model) Estimator {
	return modelEstimator{model: sm, tm: tm}
}

func (e modelEstimator) Estimate(src, dst graph.Vertex) (cost.Cost, error) {
	delta, err := e.tm.EstimateTraversal(src, dst, e.model)
	if err != nil {
		return 0, err
	}
	before := e.model.InitialState()
	beforeObjective, err := e.model.Get(before, e.tm.ObjectiveFeature())
	if err != nil {
		return 0, err
	}

	after := before.Clone()
	if err := delta.Apply(after, e.model); err != nil {
		return 0, err
	}
	afterObjective, err := e.model.Get(after, e.tm.ObjectiveFeature())
	if err != nil {
		return 0, err
	}

	return cost.Cost(afterObjective - beforeObjective), nil
}
