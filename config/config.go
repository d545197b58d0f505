// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

// AppConfig is the decoded shape of the whole TOML configuration file:
// a graph source plus the model triple a search app runs against it,
// plus the batch of queries to run. The original Rust CLI picked one
// random (origin_edge, destination_edge) pair at startup with a
// "queries should be parsed from the user" TODO; this config format
// is that TODO done, as a `[[queries]]` array of tables.
type AppConfig struct {
	Graph   GraphConfig   `toml:"graph"`
	Search  SearchConfig  `toml:"search"`
	Queries []QueryConfig `toml:"queries"`
}

// QueryConfig names one edge-oriented route request.
type QueryConfig struct {
	OriginEdge      int `toml:"origin_edge"`
	DestinationEdge int `toml:"destination_edge"`
}

// GraphConfig names the edge-list-csv graph source, mirroring the
// original's TomTomGraphConfig (edge/vertex file paths, optional
// pre-declared row counts).
type GraphConfig struct {
	Type         string `toml:"type"`
	EdgeFile     string `toml:"edge_file"`
	VertexFile   string `toml:"vertex_file"`
	NEdges       int    `toml:"n_edges"`
	NVertices    int    `toml:"n_vertices"`
	DistanceUnit string `toml:"distance_unit"` // "kilometers" (default), "meters", "miles"
}

// SearchConfig names the three model configurations a search.Engine
// needs: how it costs an edge, which edges it may use at all, and how
// it estimates the remaining cost to the destination.
type SearchConfig struct {
	TraversalModel TraversalModelConfig `toml:"traversal_model"`
	FrontierModel  FrontierModelConfig  `toml:"frontier_model"`
	Heuristic      HeuristicConfig      `toml:"heuristic"`
}

// TraversalModelConfig's Kind selects among "distance", "speed_table",
// and "speed_grade_energy"; the remaining fields are interpreted
// according to Kind and ignored otherwise.
type TraversalModelConfig struct {
	Kind         string    `toml:"kind"`
	Feature      string    `toml:"feature"`
	DistanceUnit string    `toml:"distance_unit"`
	TimeUnit     string    `toml:"time_unit"`
	EnergyUnit   string    `toml:"energy_unit"`
	SpeedsKPH    []float64 `toml:"speeds_kph"` // indexed by graph.EdgeID
	Grades       []float64 `toml:"grades"`     // indexed by graph.EdgeID; omit for flat terrain

	// PredictorRateKWhPerKm configures the speed_grade_energy kind's
	// ConstantPredictor test double. Production deployments supply a
	// trained model out of band; see traversal.Predictor.
	PredictorRateKWhPerKm float64 `toml:"predictor_rate_kwh_per_km"`
}

// FrontierModelConfig's Kind selects among "none", "road_class", and
// "truck_restriction".
type FrontierModelConfig struct {
	Kind             string                         `toml:"kind"`
	ForbiddenClasses []string                       `toml:"forbidden_classes"`
	Truck            TruckConfig                    `toml:"truck"`
	Restrictions     map[string][]RestrictionConfig `toml:"restrictions"` // keyed by edge id
}

// TruckConfig mirrors frontier.TruckParameters.
type TruckConfig struct {
	WeightKg float64 `toml:"weight_kg"`
	HeightM  float64 `toml:"height_m"`
	WidthM   float64 `toml:"width_m"`
	LengthM  float64 `toml:"length_m"`
}

// RestrictionConfig mirrors frontier.Restriction.
type RestrictionConfig struct {
	MaxWeightKg float64 `toml:"max_weight_kg"`
	MaxHeightM  float64 `toml:"max_height_m"`
	MaxWidthM   float64 `toml:"max_width_m"`
	MaxLengthM  float64 `toml:"max_length_m"`
}

// HeuristicConfig's Kind is always "haversine" today; TravelSpeedKPH of
// zero reports a raw distance bound instead of a time bound.
type HeuristicConfig struct {
	Kind           string  `toml:"kind"`
	TravelSpeedKPH float64 `toml:"travel_speed_kph"`
}
