// Copyright 2026 The Diorama Authors. All rights reserved.

// Package gl implements driver interfaces using the OpenGL
// 4.1 core profile.
//
// The driver requires an OpenGL context to be current on the
// calling thread when Open is called, and every call through
// the returned GPU and its resources must happen on that same
// thread. Context creation and buffer swapping belong to the
// window layer; see package wsi.
package gl

import (
	"fmt"

	"github.com/diorama-gl/diorama/driver"
	"github.com/go-gl/gl/v4.1-core/gl"
)

const driverName = "opengl"

const glPrefix = "gl: "

// Driver implements driver.Driver and driver.GPU.
type Driver struct {
	open bool
	lim  driver.Limits
}

func init() {
	driver.Register(&Driver{})
}

// Open initializes the OpenGL bindings and queries the
// context's limits. It fails with driver.ErrNoContext when
// no context is current on the calling thread.
func (d *Driver) Open() (driver.GPU, error) {
	if d.open {
		return d, nil
	}
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", driver.ErrNoContext, err)
	}
	var units, size int32
	gl.GetIntegerv(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS, &units)
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &size)
	d.lim = driver.Limits{
		MaxTextureUnits: int(units),
		MaxTextureSize:  int(size),
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	d.open = true
	return d, nil
}

// Name returns the driver name.
func (d *Driver) Name() string { return driverName }

// Close deinitializes the driver. Resources created through
// the GPU must be freed beforehand.
func (d *Driver) Close() {
	if d == nil {
		return
	}
	d.open = false
	d.lim = driver.Limits{}
}

// NewProgram compiles and links a shading program.
func (d *Driver) NewProgram(vertexSrc, fragmentSrc string) (driver.Program, error) {
	return newProgram(vertexSrc, fragmentSrc)
}

// NewTexture creates a 2D texture with a full mipmap chain.
func (d *Driver) NewTexture(img *driver.Image) (driver.Texture, error) {
	return newTexture(d, img)
}

// NewMesh uploads indexed geometry.
func (d *Driver) NewMesh(data *driver.MeshData) (driver.Mesh, error) {
	return newMesh(data)
}

// Limits returns the limits of the device.
func (d *Driver) Limits() driver.Limits { return d.lim }

// Viewport sets the drawable region to the given size.
func (d *Driver) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color buffer to the given value and the
// depth buffer to its maximum.
func (d *Driver) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
