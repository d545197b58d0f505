// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state implements the traversal state model: a schema mapping
// named features (distance, time, energy, ...) to (index, unit) pairs,
// and the flat scalar vector a search carries along a path. The schema
// is the sole authority for unit conversions when reading or writing
// state — traversal models never convert units themselves.
package state
