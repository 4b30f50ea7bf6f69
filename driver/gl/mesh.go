// Copyright 2026 The Diorama Authors. All rights reserved.

package gl

import (
	"fmt"

	"github.com/diorama-gl/diorama/driver"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// mesh implements driver.Mesh over one vertex array with
// interleaved attributes and a 32-bit index buffer.
type mesh struct {
	vao      uint32
	vbo      uint32
	ebo      uint32
	indexLen int
}

func newMesh(data *driver.MeshData) (*mesh, error) {
	switch {
	case data == nil:
		return nil, fmt.Errorf(glPrefix + "nil mesh data")
	case len(data.Verts) == 0 || len(data.Verts)%driver.VertexFloats != 0:
		return nil, fmt.Errorf(glPrefix+"vertex buffer length %d not a multiple of %d",
			len(data.Verts), driver.VertexFloats)
	case len(data.Indices) == 0 || len(data.Indices)%3 != 0:
		return nil, fmt.Errorf(glPrefix+"index buffer length %d not a multiple of 3",
			len(data.Indices))
	}
	vertLen := uint32(len(data.Verts) / driver.VertexFloats)
	for _, i := range data.Indices {
		if i >= vertLen {
			return nil, fmt.Errorf(glPrefix+"index %d out of bounds [0, %d)", i, vertLen)
		}
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Verts)*4, gl.Ptr(data.Verts), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	const stride = driver.VertexFloats * 4
	gl.VertexAttribPointer(0, driver.PositionFloats, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, driver.NormalFloats, gl.FLOAT, false, stride,
		gl.PtrOffset(driver.PositionFloats*4))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, driver.TexCoordFloats, gl.FLOAT, false, stride,
		gl.PtrOffset((driver.PositionFloats+driver.NormalFloats)*4))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	return &mesh{
		vao:      vao,
		vbo:      vbo,
		ebo:      ebo,
		indexLen: len(data.Indices),
	}, nil
}

// Draw renders count indices starting at index first.
// Out-of-bounds ranges are silently ignored.
func (m *mesh) Draw(first, count int) {
	if first < 0 || count < 1 || first+count > m.indexLen {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, gl.PtrOffset(first*4))
	gl.BindVertexArray(0)
}

// Len returns the total number of indices.
func (m *mesh) Len() int { return m.indexLen }

// Free invalidates the mesh and releases its resources.
func (m *mesh) Free() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	*m = mesh{}
}
