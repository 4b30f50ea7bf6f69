// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import (
	"errors"
	"fmt"

	"github.com/diorama-gl/diorama/driver"
	"github.com/diorama-gl/diorama/internal/imgio"
)

const texPrefix = "texture: "

// Texture registration errors. Register wraps one of these
// in every failure it returns, so callers can classify with
// errors.Is.
var (
	// ErrDecode means that an image file could not be
	// read or parsed.
	ErrDecode = errors.New(texPrefix + "cannot decode image")

	// ErrUnsupportedFormat means that an image decoded to
	// a channel layout other than RGB or RGBA.
	ErrUnsupportedFormat = errors.New(texPrefix + "unsupported image format")

	// ErrTextureLimit means that a registry already holds
	// MaxTextures entries.
	ErrTextureLimit = errors.New(texPrefix + "texture unit capacity exceeded")
)

// TextureRegistry owns a fixed-capacity table of uploaded
// textures, indexed by caller-chosen tags. An entry's slot
// is its registration order; BindAll binds each texture to
// the unit of the same index.
//
// Tags are expected to be unique. The registry does not
// enforce this: registering a duplicate tag appends a new
// entry that lookups never reach, since lookup returns the
// first match in registration order.
//
// A registry is populated during scene setup and read-only
// afterwards; it is not safe for concurrent mutation.
type TextureRegistry struct {
	gpu     driver.GPU
	entries []textureEntry
}

type textureEntry struct {
	tag string
	tex driver.Texture
}

// NewTextureRegistry creates an empty registry that uploads
// through gpu.
func NewTextureRegistry(gpu driver.GPU) *TextureRegistry {
	return &TextureRegistry{gpu: gpu}
}

// Register decodes the image file at path and uploads it as
// a new texture under tag. The texture is created with
// wrap-repeat addressing, linear filtering and a full
// mipmap chain.
//
// Only images with 3 (RGB) or 4 (RGBA) color channels are
// accepted. On failure the registry is left unchanged and
// the error wraps ErrDecode, ErrUnsupportedFormat or
// ErrTextureLimit.
func (r *TextureRegistry) Register(path, tag string) error {
	if len(r.entries) >= MaxTextures {
		return fmt.Errorf("%w: cannot register %q", ErrTextureLimit, tag)
	}
	img, err := imgio.Load(path)
	if err != nil {
		if errors.Is(err, imgio.ErrUnsupportedLayout) {
			return fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	tex, err := r.gpu.NewTexture(img)
	if err != nil {
		return fmt.Errorf(texPrefix+"register %q: %w", tag, err)
	}
	r.entries = append(r.entries, textureEntry{tag, tex})
	return nil
}

// BindAll binds every registered texture to the texture
// unit matching its slot, in registration order. It must be
// called after registration completes and before any draw
// that references a texture by tag.
func (r *TextureRegistry) BindAll() error {
	for i := range r.entries {
		if err := r.entries[i].tex.Bind(i); err != nil {
			return fmt.Errorf(texPrefix+"bind %q to unit %d: %w", r.entries[i].tag, i, err)
		}
	}
	return nil
}

// FindSlot returns the unit slot of the first texture
// registered under tag. The slot is -1 when no texture
// matches.
func (r *TextureRegistry) FindSlot(tag string) (slot int, ok bool) {
	for i := range r.entries {
		if r.entries[i].tag == tag {
			return i, true
		}
	}
	return -1, false
}

// FindHandle returns the texture registered under tag.
// It is meant for diagnostics; the draw path addresses
// textures by slot.
func (r *TextureRegistry) FindHandle(tag string) (driver.Texture, bool) {
	for i := range r.entries {
		if r.entries[i].tag == tag {
			return r.entries[i].tex, true
		}
	}
	return nil, false
}

// Len returns the number of registered textures.
func (r *TextureRegistry) Len() int { return len(r.entries) }

// ReleaseAll frees every texture and empties the registry.
// It is idempotent. The registry can be populated again
// afterwards.
func (r *TextureRegistry) ReleaseAll() {
	for i := range r.entries {
		r.entries[i].tex.Free()
	}
	r.entries = nil
}
