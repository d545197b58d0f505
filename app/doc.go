// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app wires a graph store and a model set into a search.Engine
// once, then answers many edge-oriented route queries against it
// concurrently, preserving the caller's input order in its output.
package app
