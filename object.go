// Copyright 2026 The Diorama Authors. All rights reserved.

package diorama

import (
	"errors"
	"fmt"
)

// MeshKind names a primitive mesh.
type MeshKind string

// Mesh kinds.
const (
	MeshPlane           MeshKind = "plane"
	MeshBox             MeshKind = "box"
	MeshSphere          MeshKind = "sphere"
	MeshHalfSphere      MeshKind = "half_sphere"
	MeshCylinder        MeshKind = "cylinder"
	MeshTaperedCylinder MeshKind = "tapered_cylinder"
	MeshCone            MeshKind = "cone"
	MeshTorus           MeshKind = "torus"
)

// Valid reports whether k names a known mesh kind.
func (k MeshKind) Valid() bool {
	switch k {
	case MeshPlane, MeshBox, MeshSphere, MeshHalfSphere,
		MeshCylinder, MeshTaperedCylinder, MeshCone, MeshTorus:
		return true
	}
	return false
}

// HasParts reports whether k is of the cylinder family,
// whose side wall and caps can be drawn selectively.
func (k MeshKind) HasParts() bool {
	switch k {
	case MeshCylinder, MeshTaperedCylinder, MeshCone:
		return true
	}
	return false
}

// Parts selects which regions of a cylinder-family mesh to
// draw. The zero value draws nothing; omit the field to
// draw every part.
type Parts struct {
	Sides  bool `yaml:"sides"`
	Top    bool `yaml:"top"`
	Bottom bool `yaml:"bottom"`
}

// Object is one draw command: a primitive mesh, the
// transform placing it in the world, and its appearance.
//
// The transform applies scale, then the X, Y and Z
// rotations (in degrees, in that order), then translation.
//
// Appearance: when Texture is set, the object samples that
// texture tag, tiled by UVScale; otherwise, when Color is
// set, the object is that solid color. An object may set
// neither, in which case it inherits whatever appearance
// state the previous object left behind. Material names the
// reflectance set; a dangling material tag leaves the
// previous material in effect.
type Object struct {
	Name        string      `yaml:"name,omitempty"`
	Mesh        MeshKind    `yaml:"mesh"`
	Parts       *Parts      `yaml:"parts,omitempty"`
	Scale       [3]float32  `yaml:"scale,omitempty"`
	Rotation    [3]float32  `yaml:"rotation,omitempty"`
	Translation [3]float32  `yaml:"translation,omitempty"`
	Color       *[4]float32 `yaml:"color,omitempty"`
	Texture     string      `yaml:"texture,omitempty"`
	UVScale     [2]float32  `yaml:"uv_scale,omitempty"`
	Material    string      `yaml:"material,omitempty"`
}

func (o *Object) validate() error {
	if o.Mesh == "" {
		return errors.New("no mesh kind")
	}
	if !o.Mesh.Valid() {
		return fmt.Errorf("unknown mesh kind %q", o.Mesh)
	}
	if o.Parts != nil && !o.Mesh.HasParts() {
		return fmt.Errorf("mesh kind %q has no selectable parts", o.Mesh)
	}
	if o.Color != nil && !colorInRange(o.Color[:]) {
		return errors.New("color components must be in [0,1]")
	}
	return nil
}
