// Copyright 2026 The Diorama Authors. All rights reserved.

package shape

// Plane generates a unit quad on the XZ plane, centered at
// the origin, with its normal pointing up the Y axis and
// UVs spanning [0,1] on both axes.
func Plane() *Geometry {
	var g Geometry
	g.vertex(-0.5, 0, -0.5, 0, 1, 0, 0, 0)
	g.vertex(-0.5, 0, 0.5, 0, 1, 0, 0, 1)
	g.vertex(0.5, 0, 0.5, 0, 1, 0, 1, 1)
	g.vertex(0.5, 0, -0.5, 0, 1, 0, 1, 0)
	g.Indices = append(g.Indices, 0, 1, 2, 0, 2, 3)
	g.span(PartAll)
	return &g
}
