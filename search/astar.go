// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"container/heap"
	"context"
	"sort"

	"github.com/routecompass/routecompass/cost"
	"github.com/routecompass/routecompass/frontier"
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/heuristic"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/traversal"
)

// Engine runs a label-setting A* search against a shared, immutable
// graph and model set. An Engine has no mutable fields of its own:
// every field is read-only shared-read data per the concurrency
// model, so a single Engine can be used from many goroutines at once,
// each running its own Search concurrently.
type Engine struct {
	Store          *graph.Store
	TraversalModel traversal.Model
	FrontierModel  frontier.Model
	Heuristic      heuristic.Estimator
	StateModel     *state.Model
}

// NewEngine builds an Engine from its shared-read dependencies.
func NewEngine(store *graph.Store, tm traversal.Model, fm frontier.Model, h heuristic.Estimator, sm *state.Model) *Engine {
	return &Engine{Store: store, TraversalModel: tm, FrontierModel: fm, Heuristic: h, StateModel: sm}
}

// relax applies the access (if prevEdge is non-nil) and traversal
// models to one candidate successor edge, reading the before/after
// delta of the traversal model's objective feature as the edge's
// access and traversal cost. ok is false when the model rejected the
// edge (numeric error or a negative cost), which the caller treats as
// a prune of that one successor rather than a query-fatal error.
func (e *Engine) relax(src graph.Vertex, edge graph.Edge, dst graph.Vertex, prevEdge *graph.Edge, prevState state.Vector) (EdgeTraversal, bool, error) {
	scratch := prevState.Clone()
	objective := e.TraversalModel.ObjectiveFeature()

	var accessCost cost.Cost
	if prevEdge != nil {
		uVertex, err := e.Store.Vertex(prevEdge.Src)
		if err != nil {
			return EdgeTraversal{}, false, err
		}
		before, err := e.StateModel.Get(scratch, objective)
		if err != nil {
			return EdgeTraversal{}, false, err
		}
		err = e.TraversalModel.AccessEdge(traversal.AccessTrajectory{
			U: uVertex, PrevEdge: *prevEdge, V: src, NextEdge: edge, W: dst,
		}, scratch, e.StateModel)
		if err != nil {
			return EdgeTraversal{}, false, nil // numeric/model error: prune this successor only
		}
		after, err := e.StateModel.Get(scratch, objective)
		if err != nil {
			return EdgeTraversal{}, false, err
		}
		accessCost = cost.Cost(after - before)
	}

	beforeTraverse, err := e.StateModel.Get(scratch, objective)
	if err != nil {
		return EdgeTraversal{}, false, err
	}
	err = e.TraversalModel.TraverseEdge(traversal.Trajectory{Src: src, Edge: edge, Dst: dst}, scratch, e.StateModel)
	if err != nil {
		return EdgeTraversal{}, false, nil
	}
	afterTraverse, err := e.StateModel.Get(scratch, objective)
	if err != nil {
		return EdgeTraversal{}, false, err
	}
	traversalCost := cost.Cost(afterTraverse - beforeTraverse)

	if accessCost.IsNegative() || traversalCost.IsNegative() {
		return EdgeTraversal{}, false, nil // TraversalModelError::NegativeCost: skip, don't abort the query
	}

	return EdgeTraversal{
		EdgeID:        edge.ID,
		AccessCost:    accessCost,
		TraversalCost: traversalCost,
		ResultState:   scratch,
	}, true, nil
}

// sortedEdgeIDs returns out's keys in ascending order. Map iteration
// order is randomized per run, so relaxing successors in map order
// would assign FIFO sequence numbers inconsistently across runs
// whenever two successors tie on f_cost; a fixed EdgeID order keeps
// the tiebreaker (and so the returned route) deterministic.
func sortedEdgeIDs(out map[graph.EdgeID]graph.VertexID) []graph.EdgeID {
	ids := make([]graph.EdgeID, 0, len(out))
	for id := range out {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Search runs one label-setting A* search from origin to destination.
// It allocates and owns all of its mutable state (the frontier heap,
// best_g and solution maps, every label's state vector) for the
// duration of the call and shares none of it with any other Search.
func (e *Engine) Search(ctx context.Context, origin, destination graph.VertexID) ([]EdgeTraversal, cost.Cost, error) {
	if origin == destination {
		return nil, cost.Zero, nil
	}

	originVertex, err := e.Store.Vertex(origin)
	if err != nil {
		return nil, 0, err
	}
	destVertex, err := e.Store.Vertex(destination)
	if err != nil {
		return nil, 0, err
	}

	h0, err := e.Heuristic.Estimate(originVertex, destVertex)
	if err != nil {
		return nil, 0, err
	}

	bestG := map[graph.VertexID]cost.Cost{origin: cost.Zero}
	solution := make(map[graph.VertexID]SearchTreeBranch)
	seq := 0

	open := &labelHeap{}
	heap.Init(open)
	heap.Push(open, label{
		vertex: origin,
		gCost:  cost.Zero,
		fCost:  h0,
		state:  e.StateModel.InitialState(),
		seq:    seq,
	})
	seq++

	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, 0, CancelledError{}
		default:
		}

		cur := heap.Pop(open).(label)

		if cur.vertex == destination {
			route, err := reconstruct(e.Store, solution, origin, destination)
			if err != nil {
				return nil, 0, err
			}
			return route, cur.gCost, nil
		}

		if best, ok := bestG[cur.vertex]; ok && cur.gCost > best {
			continue // stale label: a cheaper one already settled this vertex
		}

		vVertex, err := e.Store.Vertex(cur.vertex)
		if err != nil {
			return nil, 0, err
		}

		var prevEdgePtr *graph.Edge
		if cur.hasPrev {
			prevEdge, err := e.Store.Edge(cur.prevEdge)
			if err != nil {
				return nil, 0, err
			}
			prevEdgePtr = &prevEdge
		}

		outEdges := e.Store.OutEdges(cur.vertex)
		for _, edgeID := range sortedEdgeIDs(outEdges) {
			dst := outEdges[edgeID]
			edge, err := e.Store.Edge(edgeID)
			if err != nil {
				return nil, 0, err
			}

			ok, err := e.FrontierModel.ValidFrontier(edge, cur.state, e.StateModel, prevEdgePtr)
			if err != nil {
				return nil, 0, err
			}
			if !ok {
				continue
			}

			dstVertex, err := e.Store.Vertex(dst)
			if err != nil {
				return nil, 0, err
			}

			et, ok, err := e.relax(vVertex, edge, dstVertex, prevEdgePtr, cur.state)
			if err != nil {
				return nil, 0, err
			}
			if !ok {
				continue
			}

			gPrime := cur.gCost.Add(et.AccessCost).Add(et.TraversalCost)
			if best, ok := bestG[dst]; ok && !(gPrime < best) {
				continue // not a strict improvement
			}

			hPrime, err := e.Heuristic.Estimate(dstVertex, destVertex)
			if err != nil {
				return nil, 0, err
			}
			fPrime := gPrime.Add(hPrime)

			bestG[dst] = gPrime
			solution[dst] = SearchTreeBranch{TerminalVertex: dst, EdgeTraversal: et}

			heap.Push(open, label{
				vertex:   dst,
				gCost:    gPrime,
				fCost:    fPrime,
				state:    et.ResultState,
				prevEdge: edgeID,
				hasPrev:  true,
				seq:      seq,
			})
			seq++
		}
	}

	return nil, 0, NoPathExistsError{Origin: origin, Destination: destination}
}
