// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"context"

	"github.com/routecompass/routecompass/cost"
	"github.com/routecompass/routecompass/graph"
)

// SearchEdgeOriented answers a query phrased as (origin_edge,
// destination_edge) rather than (origin_vertex, destination_vertex).
// The caller is understood to already be positioned on origin_edge, so
// the origin edge itself is never part of the returned route: the
// route is the vertex-level search from origin_edge's destination
// vertex to destination_edge's source vertex, with destination_edge
// appended so the route ends having actually reached the destination
// edge. When the two edges already share that vertex, the inner search
// is the trivial zero-length query and the route is just
// destination_edge on its own. If the two edges are the same edge, the
// query is trivially that one edge with no search at all.
func (e *Engine) SearchEdgeOriented(ctx context.Context, originEdge, destinationEdge graph.EdgeID) ([]EdgeTraversal, cost.Cost, error) {
	origin, err := e.Store.Edge(originEdge)
	if err != nil {
		return nil, 0, err
	}
	destination, err := e.Store.Edge(destinationEdge)
	if err != nil {
		return nil, 0, err
	}

	if originEdge == destinationEdge {
		return []EdgeTraversal{{EdgeID: originEdge}}, cost.Zero, nil
	}

	inner, innerCost, err := e.Search(ctx, origin.Dst, destination.Src)
	if err != nil {
		return nil, 0, err
	}

	state := e.StateModel.InitialState()
	var prevEdgePtr *graph.Edge
	if len(inner) > 0 {
		state = inner[len(inner)-1].ResultState
		last, err := e.Store.Edge(inner[len(inner)-1].EdgeID)
		if err != nil {
			return nil, 0, err
		}
		prevEdgePtr = &last
	}

	srcVertex, err := e.Store.Vertex(destination.Src)
	if err != nil {
		return nil, 0, err
	}
	dstVertex, err := e.Store.Vertex(destination.Dst)
	if err != nil {
		return nil, 0, err
	}

	tail, ok, err := e.relax(srcVertex, destination, dstVertex, prevEdgePtr, state)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, NoPathExistsError{Origin: destination.Src, Destination: destination.Dst}
	}

	route := make([]EdgeTraversal, 0, len(inner)+1)
	route = append(route, inner...)
	route = append(route, tail)

	return route, innerCost.Add(tail.AccessCost).Add(tail.TraversalCost), nil
}
