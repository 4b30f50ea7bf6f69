// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import "github.com/go-gl/mathgl/mgl32"

const matPrefix = "material: "

// Material defines the surface lighting properties to be
// applied to geometry during rendering. The fields mirror
// the shader's material uniform block.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialRegistry holds named material definitions for a
// scene. The zero value is an empty registry ready for use.
//
// Like TextureRegistry, it does not enforce tag uniqueness;
// Find returns the first definition whose tag matches, in
// definition order.
type MaterialRegistry struct {
	defs []Material
}

// Define appends m to the registry.
func (r *MaterialRegistry) Define(m Material) { r.defs = append(r.defs, m) }

// Find returns the first material defined under tag.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for i := range r.defs {
		if r.defs[i].Tag == tag {
			return r.defs[i], true
		}
	}
	return Material{}, false
}

// Len returns the number of defined materials.
func (r *MaterialRegistry) Len() int { return len(r.defs) }
