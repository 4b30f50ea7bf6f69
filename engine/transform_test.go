// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestComposeTransform(t *testing.T) {
	m := ComposeTransform([3]float32{2, 1, 1}, [3]float32{0, 90, 0}, [3]float32{1, 0, 0})

	want := mgl32.Translate3D(1, 0, 0).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90))).
		Mul4(mgl32.Scale3D(2, 1, 1))
	if !m.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("ComposeTransform:\nhave %v\nwant %v", m, want)
	}

	// Scale first, then rotate, then translate: the unit X
	// point scales to (2,0,0), rotates about Y onto -Z and
	// shifts by (1,0,0).
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if want := (mgl32.Vec4{1, 0, -2, 1}); !p.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("ComposeTransform applied to point:\nhave %v\nwant %v", p, want)
	}
}

func TestComposeTransformIdentity(t *testing.T) {
	m := ComposeTransform([3]float32{1, 1, 1}, [3]float32{}, [3]float32{})
	if want := mgl32.Ident4(); !m.ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("ComposeTransform:\nhave %v\nwant identity", m)
	}
}

func TestComposeTransformDegrees(t *testing.T) {
	m := ComposeTransform([3]float32{1, 1, 1}, [3]float32{0, 180, 0}, [3]float32{})
	p := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if want := (mgl32.Vec4{-1, 0, 0, 1}); !p.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("ComposeTransform with 180 degrees:\nhave %v\nwant %v", p, want)
	}
}

// Rotation axes must apply in X, Y, Z order; swapping the
// order changes the result whenever more than one axis is
// nonzero.
func TestComposeTransformOrder(t *testing.T) {
	scale := [3]float32{1, 1, 1}
	rot := [3]float32{90, 90, 0}

	m := ComposeTransform(scale, rot, [3]float32{})
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rot[0]))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rot[1]))

	if want := rx.Mul4(ry); !m.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("ComposeTransform:\nhave %v\nwant %v", m, want)
	}
	if swapped := ry.Mul4(rx); m.ApproxEqualThreshold(swapped, 1e-5) {
		t.Fatal("ComposeTransform: X/Y rotation order swap went unnoticed")
	}
}
