// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph implements an immutable, edge-oriented directed road
// network: vertices, edges, and per-vertex forward/reverse adjacency.
// IDs are dense array indices assigned at construction time and the
// store never mutates after Build returns.
package graph
