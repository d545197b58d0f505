// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric holds small slice helpers shared by the traversal
// models, adapted from the teacher module's own floats helpers.
package numeric
