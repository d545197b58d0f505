// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import "fmt"

// UnknownFeatureError is returned when a model or caller references a
// feature name the schema does not declare.
type UnknownFeatureError struct {
	Name string
}

func (e UnknownFeatureError) Error() string {
	return fmt.Sprintf("state: unknown feature %q", e.Name)
}

// DuplicateNameError is returned by Extend when two features share a name.
type DuplicateNameError struct {
	Name string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("state: duplicate feature name %q", e.Name)
}

// UnitMismatchError is returned when an add_<kind> call targets a
// feature of a different Kind (e.g. add_time against a distance
// feature).
type UnitMismatchError struct {
	Name       string
	Have, Want string
}

func (e UnitMismatchError) Error() string {
	return fmt.Sprintf("state: feature %q is %s, not %s", e.Name, e.Want, e.Have)
}
