// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heuristic

import (
	"github.com/routecompass/routecompass/cost"
	"github.com/routecompass/routecompass/graph"
)

// Estimator is a pure, admissible lower bound on the cost of reaching
// dst from src under the active traversal model's objective. It is
// injected into the search engine independently of the traversal
// model: the two are constructed separately and wired together at the
// call site, exactly as the original's SearchApp took a graph, a
// traversal model, and a Haversine estimator as three distinct
// arguments.
type Estimator interface {
	Estimate(src, dst graph.Vertex) (cost.Cost, error)
}
