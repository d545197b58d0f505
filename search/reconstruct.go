// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import "github.com/routecompass/routecompass/graph"

// reconstruct walks solution from destination back to origin, reading
// each branch's edge to find its predecessor vertex, then reverses the
// accumulated list — grounded on search_tree_branch.rs's spanning-tree
// shape and the teacher's own backward-walk-then-reverse pattern in
// path's Shortest.To.
func reconstruct(store *graph.Store, solution map[graph.VertexID]SearchTreeBranch, origin, destination graph.VertexID) ([]EdgeTraversal, error) {
	if origin == destination {
		return nil, nil
	}

	var route []EdgeTraversal
	cur := destination
	for cur != origin {
		branch, ok := solution[cur]
		if !ok {
			return nil, ReconstructionMissingVertexError{VertexID: cur}
		}
		route = append(route, branch.EdgeTraversal)

		edge, err := store.Edge(branch.EdgeTraversal.EdgeID)
		if err != nil {
			return nil, err
		}
		cur = edge.Src
	}

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, nil
}
