// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import "math"

// Cost is a non-negative scalar accumulated along a route. Its unit is
// whatever the active traversal model's objective feature is
// denominated in (distance, time, or energy) — Cost itself carries no
// unit tag, so callers must not mix costs from differing objectives.
type Cost float64

// Zero is the additive identity.
const Zero Cost = 0

// Inf represents an unreachable or inadmissible cost.
var Inf = Cost(math.Inf(1))

// Add returns a+b, saturating at Inf rather than overflowing.
func (a Cost) Add(b Cost) Cost {
	sum := a + b
	if math.IsInf(float64(sum), 1) {
		return Inf
	}
	return sum
}

// Less reports whether a orders strictly before b.
func (a Cost) Less(b Cost) bool { return a < b }

// IsNegative reports whether a is below zero, which every traversal
// and access cost must never be.
func (a Cost) IsNegative() bool { return a < 0 }
