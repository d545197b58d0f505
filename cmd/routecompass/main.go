// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command routecompass loads a graph and a cost model from a TOML
// configuration file, runs the configured batch of edge-oriented
// queries against it, and prints one JSON record per query to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routecompass/routecompass/app"
	"github.com/routecompass/routecompass/config"
	"github.com/routecompass/routecompass/search"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/visualize"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel, logFormat, plotPath string

	cmd := &cobra.Command{
		Use:   "routecompass <config.toml>",
		Short: "Run a batch of least-cost routing queries against a TOML configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(logLevel, logFormat)
			return run(cmd.Context(), args[0], plotPath, log, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides ROUTECOMPASS_LOG_LEVEL")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log output format (text or json)")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write the first successful route to this PNG path")

	return cmd
}

// newLogger builds the base logger at the level named by --log-level,
// falling back to the ROUTECOMPASS_LOG_LEVEL environment variable when
// the flag is empty, and defaulting to info.
func newLogger(levelFlag, format string) *slog.Logger {
	level := levelFlag
	if level == "" {
		level = os.Getenv("ROUTECOMPASS_LOG_LEVEL")
	}

	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func run(ctx context.Context, configPath, plotPath string, log *slog.Logger, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	store, err := cfg.BuildGraph(log)
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}

	tm, err := cfg.BuildTraversalModel()
	if err != nil {
		return fmt.Errorf("building traversal model: %w", err)
	}
	fm, err := cfg.BuildFrontierModel()
	if err != nil {
		return fmt.Errorf("building frontier model: %w", err)
	}

	sm, err := state.Empty().Extend(tm.StateFeatures())
	if err != nil {
		return fmt.Errorf("building state model: %w", err)
	}

	h, err := cfg.BuildHeuristic(tm, sm)
	if err != nil {
		return fmt.Errorf("building heuristic: %w", err)
	}

	searchApp := app.New(store, tm, fm, h, sm, log)

	queries := cfg.BuildQueries()
	log.Info("running queries", "count", len(queries))
	results, err := searchApp.RunEdgeOriented(ctx, queries)
	if err != nil {
		return fmt.Errorf("running queries: %w", err)
	}

	enc := json.NewEncoder(out)
	var firstRoute []search.EdgeTraversal
	for _, r := range results {
		if firstRoute == nil && r.Err == nil {
			firstRoute = r.Route
		}
		if err := enc.Encode(resultRecord(r)); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	}

	if plotPath != "" {
		if firstRoute == nil {
			log.Warn("--plot given but no query succeeded; writing an empty plot", "path", plotPath)
		}
		if err := visualize.RenderRoute(plotPath, store, firstRoute); err != nil {
			return fmt.Errorf("rendering plot: %w", err)
		}
	}

	return nil
}

// edgeRecord is the JSON shape of one EdgeTraversal within a route.
type edgeRecord struct {
	EdgeID        int     `json:"edge_id"`
	AccessCost    float64 `json:"access_cost"`
	TraversalCost float64 `json:"traversal_cost"`
}

// queryResultRecord is the JSON shape of one query's outcome, per
// spec.md §6's result surface: origin, destination, per-edge
// traversal record, and a summary of the final state.
type queryResultRecord struct {
	OriginEdge      int          `json:"origin_edge"`
	DestinationEdge int          `json:"destination_edge"`
	Cost            float64      `json:"cost,omitempty"`
	Route           []edgeRecord `json:"route,omitempty"`
	FinalState      []float64    `json:"final_state,omitempty"`
	Error           string       `json:"error,omitempty"`
}

func resultRecord(r app.SearchResult) queryResultRecord {
	rec := queryResultRecord{
		OriginEdge:      int(r.Query.OriginEdge),
		DestinationEdge: int(r.Query.DestinationEdge),
	}
	if r.Err != nil {
		rec.Error = r.Err.Error()
		return rec
	}

	rec.Cost = float64(r.Cost)
	rec.Route = make([]edgeRecord, len(r.Route))
	for i, et := range r.Route {
		rec.Route[i] = edgeRecord{
			EdgeID:        int(et.EdgeID),
			AccessCost:    float64(et.AccessCost),
			TraversalCost: float64(et.TraversalCost),
		}
	}
	if len(r.Route) > 0 {
		final := r.Route[len(r.Route)-1].ResultState
		rec.FinalState = make([]float64, len(final))
		for i, v := range final {
			rec.FinalState[i] = float64(v)
		}
	}
	return rec
}
