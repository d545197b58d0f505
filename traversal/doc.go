// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traversal defines the TraversalModel capability the search
// engine relaxes an edge against, and the built-in model family:
// distance-only, table-driven speed/time, and speed-and-grade energy
// consumption. A composite model sums several of these onto one
// objective feature so a search can, for example, minimize time while
// still reporting distance and energy in the result state.
package traversal
