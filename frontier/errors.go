// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frontier

import "fmt"

// InvalidVehicleParametersError is returned when a frontier model is
// constructed with physically nonsensical vehicle parameters, such as
// a negative weight or dimension.
type InvalidVehicleParametersError struct {
	Field string
	Value float64
}

func (e InvalidVehicleParametersError) Error() string {
	return fmt.Sprintf("frontier: invalid vehicle parameter %s = %v", e.Field, e.Value)
}
