// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import (
	"github.com/diorama-gl/diorama/driver"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names that the shading program must declare.
// Camera state (view/projection matrices) is pushed by the
// application, not by State, and is not listed here.
const (
	uniformModel       = "model"
	uniformColor       = "objectColor"
	uniformUseTexture  = "bUseTexture"
	uniformTexture     = "objectTexture"
	uniformUVScale     = "UVscale"
	uniformUseLighting = "bUseLighting"

	uniformMatAmbientColor    = "material.ambientColor"
	uniformMatAmbientStrength = "material.ambientStrength"
	uniformMatDiffuseColor    = "material.diffuseColor"
	uniformMatSpecularColor   = "material.specularColor"
	uniformMatShininess       = "material.shininess"
)

// State dispatches per-draw uniform state to a shading
// program. It is a thin layer over driver.Program: every
// Set call pushes immediately, with no client-side caching
// or diffing, and pushed values stick until overwritten by
// a later call. There is no per-draw scoping.
//
// Tag lookups go through the registries given to NewState.
// A miss never fails; see SetTexture and SetMaterial for
// what each pushes in that case.
type State struct {
	prog      driver.Program
	textures  *TextureRegistry
	materials *MaterialRegistry
}

// NewState creates a State that pushes to prog and resolves
// tags through the given registries.
func NewState(prog driver.Program, textures *TextureRegistry, materials *MaterialRegistry) *State {
	return &State{
		prog:      prog,
		textures:  textures,
		materials: materials,
	}
}

// SetModelMatrix pushes m as the current model matrix.
func (s *State) SetModelMatrix(m mgl32.Mat4) {
	s.prog.SetMat4(uniformModel, m)
}

// SetTransform composes a model matrix from the given
// factors (see ComposeTransform) and pushes it.
func (s *State) SetTransform(scale, rotation, translation [3]float32) {
	s.SetModelMatrix(ComposeTransform(scale, rotation, translation))
}

// SetSolidColor pushes c as the current object color and
// disables texture sampling. Solid color and texture are
// mutually exclusive per draw; whichever was set last wins.
func (s *State) SetSolidColor(c mgl32.Vec4) {
	s.prog.SetVec4(uniformColor, c)
	s.prog.SetBool(uniformUseTexture, false)
}

// SetTexture enables texture sampling and pushes the unit
// slot of the texture registered under tag. An unresolved
// tag pushes the sentinel slot -1 instead of failing, which
// degrades the draw's appearance; a diagnostic is logged.
// The object color from a previous SetSolidColor call is
// left as is, unused while sampling is enabled.
func (s *State) SetTexture(tag string) {
	slot, ok := s.textures.FindSlot(tag)
	if !ok {
		Logger().Debug(texPrefix+"unknown tag; pushing sentinel slot", "tag", tag)
	}
	s.prog.SetBool(uniformUseTexture, true)
	s.prog.SetInt(uniformTexture, int32(slot))
}

// SetUVScale pushes the texture coordinate multipliers.
func (s *State) SetUVScale(u, v float32) {
	s.prog.SetVec2(uniformUVScale, mgl32.Vec2{u, v})
}

// SetMaterial pushes the five fields of the material defined
// under tag. An unresolved tag pushes nothing, so whatever
// material was pushed before remains in effect; a diagnostic
// is logged.
func (s *State) SetMaterial(tag string) {
	m, ok := s.materials.Find(tag)
	if !ok {
		Logger().Debug(matPrefix+"unknown tag; keeping current uniforms", "tag", tag)
		return
	}
	s.prog.SetVec3(uniformMatAmbientColor, m.AmbientColor)
	s.prog.SetFloat(uniformMatAmbientStrength, m.AmbientStrength)
	s.prog.SetVec3(uniformMatDiffuseColor, m.DiffuseColor)
	s.prog.SetVec3(uniformMatSpecularColor, m.SpecularColor)
	s.prog.SetFloat(uniformMatShininess, m.Shininess)
}
