// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import "fmt"

// UnknownModelKindError is returned when a traversal, frontier, or
// heuristic model's "kind" discriminator doesn't match any model this
// module implements.
type UnknownModelKindError struct {
	Model string // "traversal_model", "frontier_model", or "heuristic"
	Kind  string
}

func (e UnknownModelKindError) Error() string {
	return fmt.Sprintf("config: unknown %s kind %q", e.Model, e.Kind)
}

// UnknownUnitError is returned when a *_unit field names a unit this
// module doesn't recognize.
type UnknownUnitError struct {
	Field string
	Value string
}

func (e UnknownUnitError) Error() string {
	return fmt.Sprintf("config: unknown value %q for %s", e.Value, e.Field)
}

// MissingFieldError is returned when a required field for the
// selected model kind was left at its zero value.
type MissingFieldError struct {
	Model string
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("config: %s requires %s", e.Model, e.Field)
}
