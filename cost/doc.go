// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cost defines the scalar cost type shared by the heuristic,
// traversal, and search packages: a non-negative float64 with
// saturating addition at +Inf.
package cost
