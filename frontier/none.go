// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frontier

import (
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/state"
)

// NoRestriction admits every edge. It is the default frontier model
// when a query carries no vehicle- or class-based constraints.
type NoRestriction struct{}

func (NoRestriction) ValidFrontier(graph.Edge, state.Vector, *state.Model, *graph.Edge) (bool, error) {
	return true, nil
}
