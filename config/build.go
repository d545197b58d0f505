// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"strconv"

	"github.com/routecompass/routecompass/frontier"
	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/heuristic"
	"github.com/routecompass/routecompass/state"
	"github.com/routecompass/routecompass/traversal"
	"github.com/routecompass/routecompass/unit"
)

func parseDistanceUnit(s string) (unit.DistanceUnit, error) {
	switch s {
	case "", "kilometers":
		return unit.Kilometers, nil
	case "meters":
		return unit.Meters, nil
	case "miles":
		return unit.Miles, nil
	default:
		return 0, UnknownUnitError{Field: "distance_unit", Value: s}
	}
}

func parseTimeUnit(s string) (unit.TimeUnit, error) {
	switch s {
	case "", "seconds":
		return unit.Seconds, nil
	default:
		return 0, UnknownUnitError{Field: "time_unit", Value: s}
	}
}

func parseEnergyUnit(s string) (unit.EnergyUnit, error) {
	switch s {
	case "", "kwh":
		return unit.KilowattHours, nil
	case "mj":
		return unit.MegaJoules, nil
	case "gge":
		return unit.GallonsGasolineEquivalent, nil
	default:
		return 0, UnknownUnitError{Field: "energy_unit", Value: s}
	}
}

// BuildGraph loads the graph store named by cfg's [graph] table.
func (c *AppConfig) BuildGraph(log *slog.Logger) (*graph.Store, error) {
	distUnit, err := parseDistanceUnit(c.Graph.DistanceUnit)
	if err != nil {
		return nil, err
	}
	return graph.Load(graph.LoadConfig{
		EdgeFile:     c.Graph.EdgeFile,
		VertexFile:   c.Graph.VertexFile,
		NEdges:       c.Graph.NEdges,
		NVertices:    c.Graph.NVertices,
		DistanceUnit: distUnit,
	}, log)
}

// BuildTraversalModel materializes the [search.traversal_model] table
// into a traversal.Model.
func (c *AppConfig) BuildTraversalModel() (traversal.Model, error) {
	m := c.Search.TraversalModel
	feature := m.Feature
	if feature == "" {
		feature = m.Kind
	}

	switch m.Kind {
	case "distance":
		distUnit, err := parseDistanceUnit(m.DistanceUnit)
		if err != nil {
			return nil, err
		}
		return traversal.NewDistanceModel(feature, distUnit), nil

	case "speed_table":
		if len(m.SpeedsKPH) == 0 {
			return nil, MissingFieldError{Model: "speed_table", Field: "speeds_kph"}
		}
		timeUnit, err := parseTimeUnit(m.TimeUnit)
		if err != nil {
			return nil, err
		}
		speeds := make([]unit.Speed, len(m.SpeedsKPH))
		for i, kph := range m.SpeedsKPH {
			speeds[i] = unit.NewSpeed(kph, unit.KilometersPerHour)
		}
		return traversal.NewSpeedLookupModel(feature, speeds, timeUnit)

	case "speed_grade_energy":
		if len(m.SpeedsKPH) == 0 {
			return nil, MissingFieldError{Model: "speed_grade_energy", Field: "speeds_kph"}
		}
		energyUnit, err := parseEnergyUnit(m.EnergyUnit)
		if err != nil {
			return nil, err
		}
		speeds := make([]unit.Speed, len(m.SpeedsKPH))
		for i, kph := range m.SpeedsKPH {
			speeds[i] = unit.NewSpeed(kph, unit.KilometersPerHour)
		}
		predictor := traversal.ConstantPredictor{Rate: unit.NewEnergyRate(m.PredictorRateKWhPerKm, unit.KWhPerKilometer)}
		return traversal.NewSpeedGradeEnergyModel(feature, energyUnit, speeds, m.Grades, predictor), nil

	default:
		return nil, UnknownModelKindError{Model: "traversal_model", Kind: m.Kind}
	}
}

// BuildFrontierModel materializes the [search.frontier_model] table
// into a frontier.Model.
func (c *AppConfig) BuildFrontierModel() (frontier.Model, error) {
	m := c.Search.FrontierModel

	switch m.Kind {
	case "", "none":
		return frontier.NoRestriction{}, nil

	case "road_class":
		classes := make([]graph.RoadClass, 0, len(m.ForbiddenClasses))
		for _, name := range m.ForbiddenClasses {
			rc, ok := graph.ParseRoadClass(name)
			if !ok {
				return nil, UnknownUnitError{Field: "forbidden_classes", Value: name}
			}
			classes = append(classes, rc)
		}
		return frontier.NewRoadClassRestriction(classes...), nil

	case "truck_restriction":
		truck := frontier.TruckParameters{
			WeightKg: m.Truck.WeightKg,
			HeightM:  m.Truck.HeightM,
			WidthM:   m.Truck.WidthM,
			LengthM:  m.Truck.LengthM,
		}
		restrictionsOf := make(map[graph.EdgeID][]frontier.Restriction, len(m.Restrictions))
		for key, rs := range m.Restrictions {
			id, err := strconv.Atoi(key)
			if err != nil {
				return nil, MissingFieldError{Model: "truck_restriction", Field: "restrictions[" + key + "]"}
			}
			converted := make([]frontier.Restriction, len(rs))
			for i, r := range rs {
				converted[i] = frontier.Restriction{
					MaxWeightKg: r.MaxWeightKg,
					MaxHeightM:  r.MaxHeightM,
					MaxWidthM:   r.MaxWidthM,
					MaxLengthM:  r.MaxLengthM,
				}
			}
			restrictionsOf[graph.EdgeID(id)] = converted
		}
		return frontier.NewTruckRestriction(truck, restrictionsOf)

	default:
		return nil, UnknownModelKindError{Model: "frontier_model", Kind: m.Kind}
	}
}

// BuildHeuristic materializes the [search.heuristic] table into a
// heuristic.Estimator. tm and sm must be the same traversal model and
// state model the resulting search.Engine runs against: a bare
// heuristic.Haversine estimate reads as the raw canonical unit
// (kilometers for a distance estimate, seconds for a travel-speed time
// estimate), so it is only admissible when the traversal model's
// objective feature is of that same kind and configured in that same
// canonical unit. When it isn't — e.g. a distance model configured in
// miles, or a distance model paired with a non-zero travel speed —
// BuildHeuristic
// instead returns heuristic.FromTraversalModel(tm, sm), which converts
// through sm the same way every other traversal-model cost does.
func (c *AppConfig) BuildHeuristic(tm traversal.Model, sm *state.Model) (heuristic.Estimator, error) {
	m := c.Search.Heuristic
	switch m.Kind {
	case "", "haversine":
		feature, err := sm.Feature(tm.ObjectiveFeature())
		if err != nil {
			return nil, err
		}
		switch feature.Kind {
		case unit.KindDistance:
			// A non-zero travel speed makes Haversine report seconds.
			if feature.DistanceUnit != unit.Kilometers || m.TravelSpeedKPH > 0 {
				return heuristic.FromTraversalModel(tm, sm), nil
			}
		case unit.KindTime:
			// A zero travel speed makes Haversine report kilometers.
			if feature.TimeUnit != unit.Seconds || m.TravelSpeedKPH <= 0 {
				return heuristic.FromTraversalModel(tm, sm), nil
			}
		default:
			// Energy (and any other non-distance, non-time kind) has no
			// canonical Haversine equivalent at all.
			return heuristic.FromTraversalModel(tm, sm), nil
		}
		return heuristic.Haversine{TravelSpeed: unit.NewSpeed(m.TravelSpeedKPH, unit.KilometersPerHour)}, nil
	default:
		return nil, UnknownModelKindError{Model: "heuristic", Kind: m.Kind}
	}
}
