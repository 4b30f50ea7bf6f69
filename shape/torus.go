// Copyright 2026 The Diorama Authors. All rights reserved.

package shape

import "math"

// Torus generates a torus of major radius 1 lying in the XY
// plane, centered at the origin with the Z axis through its
// hole. tube is the minor (tube) radius. segments runs
// around the major circle, rings around the tube.
func Torus(segments, rings int, tube float32) *Geometry {
	if segments < 3 || rings < 3 {
		panic("shape: torus tessellation too coarse")
	}
	if tube <= 0 {
		panic("shape: torus tube radius must be positive")
	}
	var g Geometry
	for i := 0; i <= segments; i++ {
		u := float64(i) / float64(segments)
		usin, ucos := sincos(u * 2 * math.Pi)
		for j := 0; j <= rings; j++ {
			v := float64(j) / float64(rings)
			vsin, vcos := sincos(v * 2 * math.Pi)
			r := 1 + tube*vcos
			g.vertex(r*ucos, r*usin, tube*vsin, vcos*ucos, vcos*usin, vsin, float32(u), float32(v))
		}
	}
	cols := uint32(rings + 1)
	for i := 0; i < segments; i++ {
		for j := 0; j < rings; j++ {
			i0 := uint32(i)*cols + uint32(j)
			i1 := i0 + cols
			g.Indices = append(g.Indices, i0, i0+1, i1, i0+1, i1+1, i1)
		}
	}
	g.span(PartAll)
	return &g
}
