// Copyright 2026 The Diorama Authors. All rights reserved.

package shape

import "math"

// Sphere generates a unit-radius sphere centered at the
// origin, tessellated into the given number of longitude
// segments and latitude rings. UVs wrap once around the
// equator and run pole to pole.
func Sphere(segments, rings int) *Geometry {
	if segments < 3 || rings < 2 {
		panic("shape: sphere tessellation too coarse")
	}
	return lathe(segments, rings, func(v float64) (y, r, ny, nr float32) {
		sin, cos := sincos(v * math.Pi)
		return cos, sin, cos, sin
	})
}

// Dome generates the upper half of a unit-radius sphere,
// with its base circle on the XZ plane and apex at (0,1,0).
// The base is open.
func Dome(segments, rings int) *Geometry {
	if segments < 3 || rings < 1 {
		panic("shape: dome tessellation too coarse")
	}
	return lathe(segments, rings, func(v float64) (y, r, ny, nr float32) {
		sin, cos := sincos(v * math.Pi / 2)
		return cos, sin, cos, sin
	})
}

// lathe revolves a profile around the Y axis. profile maps
// v in [0,1] to a height, a radius, and the axial/radial
// components of the surface normal.
func lathe(segments, rings int, profile func(v float64) (y, r, ny, nr float32)) *Geometry {
	var g Geometry
	for i := 0; i <= rings; i++ {
		v := float64(i) / float64(rings)
		y, r, ny, nr := profile(v)
		for j := 0; j <= segments; j++ {
			u := float64(j) / float64(segments)
			sin, cos := sincos(u * 2 * math.Pi)
			g.vertex(r*cos, y, r*sin, nr*cos, ny, nr*sin, float32(u), float32(v))
		}
	}
	cols := uint32(segments + 1)
	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			i0 := uint32(i)*cols + uint32(j)
			i1 := i0 + cols
			g.Indices = append(g.Indices, i0, i0+1, i1, i0+1, i1+1, i1)
		}
	}
	g.span(PartAll)
	return &g
}
