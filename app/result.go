// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"github.com/routecompass/routecompass/cost"
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/search"
)

// Query names one edge-oriented route request: travel from somewhere
// on OriginEdge to somewhere on DestinationEdge.
type Query struct {
	OriginEdge      graph.EdgeID
	DestinationEdge graph.EdgeID
}

// SearchResult is one query's outcome. Err is set instead of aborting
// the batch when the query itself fails; Route and Cost are the zero
// value in that case.
type SearchResult struct {
	Query Query
	Route []search.EdgeTraversal
	Cost  cost.Cost
	Err   error
}
