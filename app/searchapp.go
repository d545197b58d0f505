// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/routecompass/routecompass/frontier"
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/heuristic"
	"github.com/routecompass/routecompass/search"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/traversal"
)

// SearchApp wires a graph store and a model set into one search.Engine
// at construction time, grounded on compass-app/src/main.rs's
// build-once, run-many shape: the graph and models are loaded exactly
// once and every subsequent query reuses the same read-only Engine.
type SearchApp struct {
	engine *search.Engine
	log    *slog.Logger
}

// New builds a SearchApp. log may be nil, in which case lifecycle
// events are discarded.
func New(store *graph.Store, tm traversal.Model, fm frontier.Model, h heuristic.Estimator, sm *state.Model, log *slog.Logger) *SearchApp {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SearchApp{
		engine: search.NewEngine(store, tm, fm, h, sm),
		log:    log,
	}
}

// RunEdgeOriented answers every query in queries concurrently,
// preserving input order in the returned slice. Queries fan out over
// an errgroup.Group, each writing its own result into its own index so
// no lock is needed; a failing query becomes that slot's
// SearchResult.Err rather than aborting the batch, per the per-query
// error-isolation policy every query result obeys. A panic inside one
// query's goroutine is recovered and becomes that slot's
// SearchResult.Err the same way, rather than crashing the rest of the
// batch with it.
func (a *SearchApp) RunEdgeOriented(ctx context.Context, queries []Query) ([]SearchResult, error) {
	results := make([]SearchResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					a.log.Warn("query panicked", "origin_edge", q.OriginEdge, "destination_edge", q.DestinationEdge, "panic", r)
					results[i] = SearchResult{Query: q, Err: fmt.Errorf("panic: %v", r)}
				}
			}()
			a.log.Info("query started", "origin_edge", q.OriginEdge, "destination_edge", q.DestinationEdge)
			route, c, searchErr := a.engine.SearchEdgeOriented(gctx, q.OriginEdge, q.DestinationEdge)
			if searchErr != nil {
				a.log.Warn("query failed", "origin_edge", q.OriginEdge, "destination_edge", q.DestinationEdge, "error", searchErr)
				results[i] = SearchResult{Query: q, Err: searchErr}
				return nil
			}
			a.log.Info("query finished", "origin_edge", q.OriginEdge, "destination_edge", q.DestinationEdge, "cost", c)
			results[i] = SearchResult{Query: q, Route: route, Cost: c}
			return nil
		})
	}
	// g.Wait only ever returns non-nil if one of the goroutines above
	// returned a non-nil error, which none of them do: per-query
	// failures are captured into results instead.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
