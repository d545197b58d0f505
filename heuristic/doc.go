// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heuristic supplies the admissible cost estimator the search
// engine consults to prioritize its frontier: a pure function of
// (src, dst) independent of any particular edge.
package heuristic
