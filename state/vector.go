// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

// Var is one scalar component of a Vector.
type Var float64

// Vector is an ordered sequence of StateVars whose length and
// per-index meaning are fixed by a Model's schema. Vectors are owned
// by their caller (typically a search label); Clone is used before
// any in-place mutation so the caller's own copy is never disturbed —
// copy-on-write per relaxation, as spec'd.
type Vector []Var

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Dominates reports whether every component of v is greater than or
// equal to the matching component of other — the monotone-accumulator
// property every traversal model's TraverseEdge must preserve.
func (v Vector) Dominates(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] < other[i] {
			return false
		}
	}
	return true
}
