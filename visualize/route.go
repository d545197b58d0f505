// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visualize

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/routecompass/routecompass/graph"
	"github.com/routecompass/routecompass/search"
)

// RenderRoute projects route's vertex coordinates (longitude on X,
// latitude on Y) onto a line plot and writes it as a PNG to path. An
// empty route still produces a (blank) plot rather than an error.
func RenderRoute(path string, store *graph.Store, route []search.EdgeTraversal) error {
	points, err := routePoints(store, route)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Route"
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.Add(plotter.NewGrid())

	if len(points) > 0 {
		line, err := plotter.NewLine(points)
		if err != nil {
			return err
		}
		p.Add(line)

		markers, err := plotter.NewScatter(points)
		if err != nil {
			return err
		}
		p.Add(markers)
	}

	return p.Save(16*vg.Centimeter, 12*vg.Centimeter, path)
}

// routePoints walks route in order, emitting each edge's source vertex
// followed by the final edge's destination vertex.
func routePoints(store *graph.Store, route []search.EdgeTraversal) (plotter.XYs, error) {
	if len(route) == 0 {
		return nil, nil
	}

	points := make(plotter.XYs, 0, len(route)+1)
	for i, et := range route {
		edge, err := store.Edge(et.EdgeID)
		if err != nil {
			return nil, fmt.Errorf("visualize: %w", err)
		}
		if i == 0 {
			src, err := store.Vertex(edge.Src)
			if err != nil {
				return nil, fmt.Errorf("visualize: %w", err)
			}
			points = append(points, plotter.XY{X: src.Coordinate.Lon, Y: src.Coordinate.Lat})
		}
		dst, err := store.Vertex(edge.Dst)
		if err != nil {
			return nil, fmt.Errorf("visualize: %w", err)
		}
		points = append(points, plotter.XY{X: dst.Coordinate.Lon, Y: dst.Coordinate.Lat})
	}
	return points, nil
}
