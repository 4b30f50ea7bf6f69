// Copyright 2026 The Diorama Authors. All rights reserved.

// Package shape generates indexed geometry for a small set
// of primitive meshes. Generators run on the CPU and return
// data in the layout that package driver consumes; they are
// meant to be called once, during scene setup.
package shape

import (
	"math"

	"github.com/diorama-gl/diorama/driver"
)

// Part identifies an independently drawable region of a
// generated mesh. Parts of the cylinder family can be drawn
// selectively; other shapes expose a single span covering
// the whole mesh.
type Part int

// Parts.
const (
	PartSides Part = 1 << iota
	PartTop
	PartBottom

	PartAll = PartSides | PartTop | PartBottom
)

// Span is a contiguous index range belonging to one part.
type Span struct {
	Part  Part
	First int
	Count int
}

// Geometry is a generated mesh. Verts and Indices follow
// the driver.MeshData layout; Parts tiles Indices without
// gaps or overlap, in ascending First order.
type Geometry struct {
	Verts   []float32
	Indices []uint32
	Parts   []Span
}

// MeshData returns g's vertex/index data for upload.
// The returned value aliases g's slices.
func (g *Geometry) MeshData() *driver.MeshData {
	return &driver.MeshData{Verts: g.Verts, Indices: g.Indices}
}

// VertexCount returns the number of vertices in g.
func (g *Geometry) VertexCount() int { return len(g.Verts) / driver.VertexFloats }

// vertex appends one interleaved vertex.
func (g *Geometry) vertex(px, py, pz, nx, ny, nz, u, v float32) {
	g.Verts = append(g.Verts, px, py, pz, nx, ny, nz, u, v)
}

// span appends a part span covering all indices added since
// the previous span (or since the start of the buffer).
func (g *Geometry) span(part Part) {
	first := 0
	if n := len(g.Parts); n > 0 {
		last := g.Parts[n-1]
		first = last.First + last.Count
	}
	g.Parts = append(g.Parts, Span{part, first, len(g.Indices) - first})
}

func sincos(rad float64) (sin, cos float32) {
	s, c := math.Sincos(rad)
	return float32(s), float32(c)
}
