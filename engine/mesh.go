// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import (
	"fmt"

	"github.com/diorama-gl/diorama"
	"github.com/diorama-gl/diorama/driver"
	"github.com/diorama-gl/diorama/shape"
)

const meshPrefix = "mesh: "

// Mesh tessellation used when uploading primitives.
// Scene descriptions select meshes by kind only, so every
// scene shares these.
const (
	meshSegments   = 48
	sphereRings    = 24
	domeRings      = 12
	torusRings     = 24
	torusTube      = 0.25
	taperedTopSize = 0.5
)

// MeshLibrary generates and uploads primitive geometry on
// demand and issues draw calls over it. Each mesh kind is
// uploaded at most once; Load on an already loaded kind has
// no effect.
type MeshLibrary struct {
	gpu    driver.GPU
	meshes map[diorama.MeshKind]meshEntry
}

type meshEntry struct {
	mesh  driver.Mesh
	parts []shape.Span
}

// NewMeshLibrary creates an empty library that uploads
// through gpu.
func NewMeshLibrary(gpu driver.GPU) *MeshLibrary {
	return &MeshLibrary{
		gpu:    gpu,
		meshes: make(map[diorama.MeshKind]meshEntry),
	}
}

// Load generates the geometry for kind and uploads it.
// Calling it again for the same kind has no effect.
func (l *MeshLibrary) Load(kind diorama.MeshKind) error {
	if _, ok := l.meshes[kind]; ok {
		return nil
	}
	var geom *shape.Geometry
	switch kind {
	case diorama.MeshPlane:
		geom = shape.Plane()
	case diorama.MeshBox:
		geom = shape.Box()
	case diorama.MeshSphere:
		geom = shape.Sphere(meshSegments, sphereRings)
	case diorama.MeshHalfSphere:
		geom = shape.Dome(meshSegments, domeRings)
	case diorama.MeshCylinder:
		geom = shape.Cylinder(meshSegments, 1)
	case diorama.MeshTaperedCylinder:
		geom = shape.Cylinder(meshSegments, taperedTopSize)
	case diorama.MeshCone:
		geom = shape.Cylinder(meshSegments, 0)
	case diorama.MeshTorus:
		geom = shape.Torus(meshSegments, torusRings, torusTube)
	default:
		return fmt.Errorf(meshPrefix+"unknown kind %q", kind)
	}
	mesh, err := l.gpu.NewMesh(geom.MeshData())
	if err != nil {
		return fmt.Errorf(meshPrefix+"upload %q: %w", kind, err)
	}
	l.meshes[kind] = meshEntry{mesh, geom.Parts}
	return nil
}

// Loaded returns whether kind has been uploaded.
func (l *MeshLibrary) Loaded(kind diorama.MeshKind) bool {
	_, ok := l.meshes[kind]
	return ok
}

// Draw renders the mesh of the given kind using whatever
// program and uniform state is current. parts selects which
// spans of a partitioned mesh to render; nil draws the whole
// mesh. Kinds without distinct parts ignore the selection.
// Drawing a kind that was never loaded is a logged no-op.
func (l *MeshLibrary) Draw(kind diorama.MeshKind, parts *diorama.Parts) {
	entry, ok := l.meshes[kind]
	if !ok {
		Logger().Debug(meshPrefix+"kind not loaded; skipping draw", "kind", string(kind))
		return
	}
	if parts == nil || !kind.HasParts() {
		entry.mesh.Draw(0, entry.mesh.Len())
		return
	}
	var mask shape.Part
	if parts.Sides {
		mask |= shape.PartSides
	}
	if parts.Top {
		mask |= shape.PartTop
	}
	if parts.Bottom {
		mask |= shape.PartBottom
	}
	for _, span := range entry.parts {
		if span.Part&mask != 0 && span.Count > 0 {
			entry.mesh.Draw(span.First, span.Count)
		}
	}
}

// Free releases every uploaded mesh and empties the library.
func (l *MeshLibrary) Free() {
	for kind, entry := range l.meshes {
		entry.mesh.Free()
		delete(l.meshes, kind)
	}
}
