// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import (
	"errors"
	"fmt"

	"github.com/diorama-gl/diorama"
	"github.com/diorama-gl/diorama/driver"
	"github.com/go-gl/mathgl/mgl32"
)

const scnPrefix = "scene: "

// errPrepared means that PrepareScene ran more than once.
var errPrepared = errors.New(scnPrefix + "session already prepared")

// Session renders one scene description. It owns the
// texture/material registries and the mesh library, and
// drives uniform state through a State bound to the
// program given to NewSession.
//
// The lifecycle is strict: NewSession, one PrepareScene,
// any number of RenderScene calls, Close. All methods must
// be called from the thread that owns the graphics context.
type Session struct {
	gpu       driver.GPU
	prog      driver.Program
	textures  *TextureRegistry
	materials *MaterialRegistry
	meshes    *MeshLibrary
	state     *State
	scene     *diorama.Scene
	prepared  bool
}

// NewSession creates a session that renders through gpu
// using prog. The program must declare the uniform name
// contract that State pushes; it remains owned by the
// caller and is not freed by Close.
func NewSession(gpu driver.GPU, prog driver.Program) *Session {
	textures := NewTextureRegistry(gpu)
	materials := new(MaterialRegistry)
	return &Session{
		gpu:       gpu,
		prog:      prog,
		textures:  textures,
		materials: materials,
		meshes:    NewMeshLibrary(gpu),
		state:     NewState(prog, textures, materials),
	}
}

// PrepareScene registers scene's textures, binds them to
// their unit slots, defines its materials, pushes its light
// sources and uploads the geometry of every mesh kind the
// scene uses. It must run exactly once, before the first
// RenderScene.
//
// A texture that fails to register is logged and skipped;
// draws referencing its tag degrade as described by
// State.SetTexture. Any other failure aborts preparation.
func (s *Session) PrepareScene(scene *diorama.Scene) error {
	if s.prepared {
		return errPrepared
	}
	s.prog.Use()
	for i := range scene.Textures {
		ref := &scene.Textures[i]
		if err := s.textures.Register(ref.Path, ref.Tag); err != nil {
			Logger().Warn(scnPrefix+"texture registration failed", "tag", ref.Tag, "err", err)
		}
	}
	if err := s.textures.BindAll(); err != nil {
		return fmt.Errorf(scnPrefix+"prepare: %w", err)
	}
	for i := range scene.Materials {
		m := &scene.Materials[i]
		s.materials.Define(Material{
			Tag:             m.Tag,
			AmbientColor:    mgl32.Vec3(m.AmbientColor),
			AmbientStrength: m.AmbientStrength,
			DiffuseColor:    mgl32.Vec3(m.DiffuseColor),
			SpecularColor:   mgl32.Vec3(m.SpecularColor),
			Shininess:       m.Shininess,
		})
	}
	lights := make([]Light, len(scene.Lights))
	for i := range scene.Lights {
		l := &scene.Lights[i]
		lights[i] = Light{
			Position:          mgl32.Vec3(l.Position),
			AmbientColor:      mgl32.Vec3(l.AmbientColor),
			DiffuseColor:      mgl32.Vec3(l.DiffuseColor),
			SpecularColor:     mgl32.Vec3(l.SpecularColor),
			FocalStrength:     l.FocalStrength,
			SpecularIntensity: l.SpecularIntensity,
		}
	}
	s.state.SetLights(lights)
	for i := range scene.Objects {
		if err := s.meshes.Load(scene.Objects[i].Mesh); err != nil {
			return fmt.Errorf(scnPrefix+"prepare: %w", err)
		}
	}
	s.scene = scene
	s.prepared = true
	return nil
}

// RenderScene draws every object of the prepared scene in
// script order. For each object it pushes the transform,
// then the appearance (texture or solid color, then
// material) and then issues the draw; uniform state sticks
// across objects, so an object that selects no appearance
// of its own inherits the previous one.
//
// Calling RenderScene before PrepareScene is a logged no-op.
func (s *Session) RenderScene() {
	if !s.prepared {
		Logger().Debug(scnPrefix + "render without prepare; skipping")
		return
	}
	s.prog.Use()
	for i := range s.scene.Objects {
		o := &s.scene.Objects[i]
		s.state.SetTransform(o.Scale, o.Rotation, o.Translation)
		switch {
		case o.Texture != "":
			s.state.SetTexture(o.Texture)
			s.state.SetUVScale(o.UVScale[0], o.UVScale[1])
		case o.Color != nil:
			s.state.SetSolidColor(mgl32.Vec4(*o.Color))
		}
		if o.Material != "" {
			s.state.SetMaterial(o.Material)
		}
		s.meshes.Draw(o.Mesh, o.Parts)
	}
}

// Close releases every texture and mesh the session
// uploaded. The program given to NewSession is not freed.
// A closed session may be prepared again.
func (s *Session) Close() {
	s.textures.ReleaseAll()
	s.meshes.Free()
	s.scene = nil
	s.prepared = false
}
