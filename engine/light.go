// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Light defines a point light source. The fields mirror the
// shader's lightSources[] uniform block element.
type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// lightUniform returns the uniform name of field for the
// light source at index i, such as "lightSources[0].position".
func lightUniform(i int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", i, field)
}

// SetLights pushes up to MaxLights light sources as uniform
// arrays and enables lighting. Excess lights are ignored.
// An empty slice disables lighting; array elements keep
// whatever values were pushed before.
func (s *State) SetLights(lights []Light) {
	if len(lights) > MaxLights {
		lights = lights[:MaxLights]
	}
	s.prog.SetBool(uniformUseLighting, len(lights) > 0)
	for i := range lights {
		l := &lights[i]
		s.prog.SetVec3(lightUniform(i, "position"), l.Position)
		s.prog.SetVec3(lightUniform(i, "ambientColor"), l.AmbientColor)
		s.prog.SetVec3(lightUniform(i, "diffuseColor"), l.DiffuseColor)
		s.prog.SetVec3(lightUniform(i, "specularColor"), l.SpecularColor)
		s.prog.SetFloat(lightUniform(i, "focalStrength"), l.FocalStrength)
		s.prog.SetFloat(lightUniform(i, "specularIntensity"), l.SpecularIntensity)
	}
}
