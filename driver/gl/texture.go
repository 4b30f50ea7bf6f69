// Copyright 2026 The Diorama Authors. All rights reserved.

package gl

import (
	"fmt"

	"github.com/diorama-gl/diorama/driver"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// texture implements driver.Texture.
type texture struct {
	d      *Driver
	handle uint32
}

func newTexture(d *Driver, img *driver.Image) (*texture, error) {
	switch {
	case img == nil:
		return nil, fmt.Errorf(glPrefix + "nil image")
	case img.Width < 1 || img.Height < 1:
		return nil, fmt.Errorf(glPrefix+"invalid image size %dx%d", img.Width, img.Height)
	case img.Width > d.lim.MaxTextureSize || img.Height > d.lim.MaxTextureSize:
		return nil, fmt.Errorf(glPrefix+"image size %dx%d exceeds limit %d",
			img.Width, img.Height, d.lim.MaxTextureSize)
	case img.Channels != 3 && img.Channels != 4:
		return nil, fmt.Errorf(glPrefix+"invalid channel count %d", img.Channels)
	case len(img.Pix) != img.Width*img.Height*4:
		return nil, fmt.Errorf(glPrefix+"pixel buffer length %d for %dx%d image",
			len(img.Pix), img.Width, img.Height)
	}

	// Pixel data is always RGBA-ordered; the source channel
	// count only selects the internal format.
	internal := int32(gl.RGBA8)
	if img.Channels == 3 {
		internal = gl.RGB8
	}
	var handle uint32
	gl.GenTextures(1, &handle)
	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(img.Width), int32(img.Height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &texture{d, handle}, nil
}

// Bind binds the texture to the given texture unit.
func (t *texture) Bind(unit int) error {
	if unit < 0 || unit >= t.d.lim.MaxTextureUnits {
		return fmt.Errorf(glPrefix+"texture unit %d out of bounds [0, %d)",
			unit, t.d.lim.MaxTextureUnits)
	}
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	return nil
}

// Free invalidates the texture and releases its resources.
func (t *texture) Free() {
	gl.DeleteTextures(1, &t.handle)
	t.handle = 0
}
