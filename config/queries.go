// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/routecompass/routecompass/app"
	"github.com/routecompass/routecompass/graph"
)

// BuildQueries converts the decoded `[[queries]]` tables into the
// app.Query batch a SearchApp runs.
func (c *AppConfig) BuildQueries() []app.Query {
	queries := make([]app.Query, len(c.Queries))
	for i, q := range c.Queries {
		queries[i] = app.Query{
			OriginEdge:      graph.EdgeID(q.OriginEdge),
			DestinationEdge: graph.EdgeID(q.DestinationEdge),
		}
	}
	return queries
}
