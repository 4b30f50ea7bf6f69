// Copyright 2026 The Diorama Authors. All rights reserved.

package shape

import "math"

// Cylinder generates a cylinder of base radius 1 standing
// on the XZ plane, spanning y in [0,1]. taper scales the
// top radius: 1 produces a straight cylinder, values in
// (0,1) a tapered one and 0 a cone. The side wall, top cap
// and bottom cap occupy separate part spans; a cone has an
// empty top span.
func Cylinder(segments int, taper float32) *Geometry {
	if segments < 3 {
		panic("shape: cylinder tessellation too coarse")
	}
	if taper < 0 || taper > 1 {
		panic("shape: cylinder taper out of range")
	}
	var g Geometry

	// Side wall. The normal of a linearly tapered wall
	// tilts up by the radius loss per unit height.
	k := 1 - taper
	inv := float32(1 / math.Sqrt(float64(1+k*k)))
	for i, ring := range [2]struct{ y, r float32 }{{1, taper}, {0, 1}} {
		for j := 0; j <= segments; j++ {
			u := float64(j) / float64(segments)
			sin, cos := sincos(u * 2 * math.Pi)
			g.vertex(ring.r*cos, ring.y, ring.r*sin, cos*inv, k*inv, sin*inv, float32(u), float32(i))
		}
	}
	cols := uint32(segments + 1)
	for j := 0; j < segments; j++ {
		i0 := uint32(j)
		i1 := i0 + cols
		g.Indices = append(g.Indices, i0, i0+1, i1, i0+1, i1+1, i1)
	}
	g.span(PartSides)

	endcap := func(y, r, ny float32) {
		center := uint32(g.VertexCount())
		g.vertex(0, y, 0, 0, ny, 0, 0.5, 0.5)
		for j := 0; j <= segments; j++ {
			u := float64(j) / float64(segments)
			sin, cos := sincos(u * 2 * math.Pi)
			g.vertex(r*cos, y, r*sin, 0, ny, 0, 0.5+cos/2, 0.5+sin/2)
		}
		for j := 0; j < segments; j++ {
			i0 := center + 1 + uint32(j)
			if ny > 0 {
				g.Indices = append(g.Indices, center, i0+1, i0)
			} else {
				g.Indices = append(g.Indices, center, i0, i0+1)
			}
		}
	}

	if taper > 0 {
		endcap(1, taper, 1)
	}
	g.span(PartTop)
	endcap(0, 1, -1)
	g.span(PartBottom)
	return &g
}
