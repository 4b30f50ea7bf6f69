// Copyright 2026 The Diorama Authors. All rights reserved.

package shape

// Box generates a unit cube centered at the origin. Each of
// the six faces has its own vertices so that normals stay
// flat, and UVs span [0,1] per face.
func Box() *Geometry {
	// Normal, then the axes mapping U and V onto the face.
	faces := [6]struct{ n, u, v [3]float32 }{
		{n: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{n: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{n: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	}
	var g Geometry
	for _, f := range faces {
		base := uint32(g.VertexCount())
		for _, c := range [4][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}} {
			var p [3]float32
			for i := range p {
				p[i] = f.n[i]*0.5 + f.u[i]*c[0] + f.v[i]*c[1]
			}
			g.vertex(p[0], p[1], p[2], f.n[0], f.n[1], f.n[2], c[0]+0.5, c[1]+0.5)
		}
		g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	g.span(PartAll)
	return &g
}
