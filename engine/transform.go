// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import "github.com/go-gl/mathgl/mgl32"

// ComposeTransform builds a model matrix from scale factors,
// per-axis rotation angles in degrees and a translation.
// The factors apply to a mesh in scale, X rotation, Y
// rotation, Z rotation, translation order, so the composed
// matrix is
//
//	T * Rx * Ry * Rz * S
//
// Scene descriptions and mesh generators rely on this
// ordering; it is part of the engine's contract.
func ComposeTransform(scale, rotation, translation [3]float32) mgl32.Mat4 {
	t := mgl32.Translate3D(translation[0], translation[1], translation[2])
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotation[0]))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotation[1]))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotation[2]))
	s := mgl32.Scale3D(scale[0], scale[1], scale[2])
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}
