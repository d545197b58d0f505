// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package visualize renders a solved route to a PNG, plotting the
// route's vertex coordinates as a line with point markers; the rest of
// the graph is not drawn.
// It has no effect on search semantics: it is a presentation
// convenience reached only when the CLI's --plot flag is set.
package visualize
