// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search implements the label-setting A* engine: a min-heap
// frontier keyed on f-cost with FIFO tiebreaking, lazy deletion of
// stale labels against a best-known-cost map, and reconstruction of
// the winning route from a spanning search tree.
package search
