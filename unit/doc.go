// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unit provides dimensioned scalar types for the quantities the
// routing engine accumulates: distance, speed, time, and energy (rate).
// Each quantity carries its canonical base unit plus a small closed set
// of display/config units, with a New* constructor from and an In
// method into each of those units; conversion
// never happens silently inside the search or traversal model packages,
// only at the edges where a schema or config value names a unit.
package unit
