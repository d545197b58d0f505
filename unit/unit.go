// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unit

import "fmt"

// Uniter is implemented by every dimensioned quantity in this package. It
// lets generic code read a quantity's raw scalar without knowing its
// concrete type.
type Uniter interface {
	// Value returns the quantity expressed in its own canonical base unit.
	Value() float64
}

// Kind identifies which of the routing engine's quantities a StateFeature
// carries. It is the dimension tag state.Model uses to reject an
// add_<kind> call against a feature of the wrong kind.
type Kind uint8

const (
	// KindCustom is used for features with no unit semantics attached.
	KindCustom Kind = iota
	KindDistance
	KindTime
	KindEnergy
	KindSpeed
)

func (k Kind) String() string {
	switch k {
	case KindDistance:
		return "distance"
	case KindTime:
		return "time"
	case KindEnergy:
		return "energy"
	case KindSpeed:
		return "speed"
	default:
		return "custom"
	}
}

// ErrUnitMismatch describes a value of one Kind used against a unit
// belonging to a different Kind. No function in this package returns
// it; the state model reports such mismatches as state.UnitMismatchError.
type ErrUnitMismatch struct {
	Have, Want Kind
}

func (e ErrUnitMismatch) Error() string {
	return fmt.Sprintf("unit: mismatch, have %v, want %v", e.Have, e.Want)
}
