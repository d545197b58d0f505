// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traversal

import (
	"fmt"

	"github.com/routecompass/routecompass/graph"
)

// NegativeCostError is returned when a TraverseEdge or AccessEdge call
// would leave its ObjectiveFeature lower than it was before the call —
// every cost contribution a model produces must be non-negative.
type NegativeCostError struct {
	EdgeID graph.EdgeID
	Delta  float64
}

func (e NegativeCostError) Error() string {
	return fmt.Sprintf("traversal: edge %d produced negative cost delta %v", e.EdgeID, e.Delta)
}

// MissingIDInTabularLookupError is returned when a table-driven model
// (speed, grade, heading) has no row for an edge ID.
type MissingIDInTabularLookupError struct {
	EdgeID graph.EdgeID
	Table  string
}

func (e MissingIDInTabularLookupError) Error() string {
	return fmt.Sprintf("traversal: edge %d missing from %s", e.EdgeID, e.Table)
}

// PredictionFailureError is returned when an energy predictor cannot
// produce a rate for its inputs.
type PredictionFailureError struct {
	Reason string
}

func (e PredictionFailureError) Error() string {
	return fmt.Sprintf("traversal: prediction failed: %s", e.Reason)
}

// NumericError wraps a failure in a supporting numeric computation,
// such as a haversine estimate given non-finite coordinates.
type NumericError struct {
	Err error
}

func (e NumericError) Error() string { return fmt.Sprintf("traversal: numeric error: %v", e.Err) }
func (e NumericError) Unwrap() error { return e.Err }

// FileReadError is returned when a model fails to load a backing table
// (speed, grade, heading, prediction model) from disk.
type FileReadError struct {
	Path string
	Err  error
}

func (e FileReadError) Error() string {
	return fmt.Sprintf("traversal: failed to read %s: %v", e.Path, e.Err)
}
func (e FileReadError) Unwrap() error { return e.Err }
