// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frontier defines the edge-admissibility predicate the search
// engine consults before relaxing a candidate edge: NoRestriction,
// RoadClassRestriction, and TruckRestriction.
package frontier
