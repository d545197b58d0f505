// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config decodes and materializes the TOML-shaped configuration
// file that names a graph source and a [traversal, frontier, heuristic]
// model triple for the search app to run against.
package config
