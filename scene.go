// Copyright 2026 The Diorama Authors. All rights reserved.

// Package diorama describes static composite 3D scenes.
// A scene names the textures and materials it needs, the
// lights that illuminate it and an ordered list of objects,
// each a primitive mesh with a transform and an appearance.
// Scenes are plain data, typically authored in YAML and
// rendered by package engine.
package diorama

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxLights is the maximum number of simultaneous light
// sources a scene may declare. It matches the light array
// of the shading contract.
const MaxLights = 4

// TextureRef names an image file to be registered under a
// tag. Paths are resolved by the renderer, typically
// relative to an asset directory.
type TextureRef struct {
	Tag  string `yaml:"tag"`
	Path string `yaml:"path"`
}

// Material is a named reflectance property set. Color
// components are in [0,1].
type Material struct {
	Tag             string     `yaml:"tag"`
	AmbientColor    [3]float32 `yaml:"ambient_color"`
	AmbientStrength float32    `yaml:"ambient_strength"`
	DiffuseColor    [3]float32 `yaml:"diffuse_color"`
	SpecularColor   [3]float32 `yaml:"specular_color"`
	Shininess       float32    `yaml:"shininess"`
}

// Light is one positional light source. Color components
// are in [0,1]; FocalStrength is the specular exponent
// contribution of the source and SpecularIntensity scales
// its specular term.
type Light struct {
	Position          [3]float32 `yaml:"position"`
	AmbientColor      [3]float32 `yaml:"ambient_color"`
	DiffuseColor      [3]float32 `yaml:"diffuse_color"`
	SpecularColor     [3]float32 `yaml:"specular_color"`
	FocalStrength     float32    `yaml:"focal_strength"`
	SpecularIntensity float32    `yaml:"specular_intensity"`
}

// Scene is a complete scene description. Object order is
// the render order.
type Scene struct {
	Textures  []TextureRef `yaml:"textures,omitempty"`
	Materials []Material   `yaml:"materials,omitempty"`
	Lights    []Light      `yaml:"lights,omitempty"`
	Objects   []Object     `yaml:"objects"`
}

// Load reads and parses the scene description at path.
func Load(path string) (*Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("diorama: %w", err)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("diorama: %q: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scene description and validates it.
// Unknown fields are rejected. Objects that omit scale or
// uv_scale default to (1,1,1) and (1,1) respectively.
func Parse(b []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	for i := range s.Objects {
		o := &s.Objects[i]
		if o.Scale == [3]float32{} {
			o.Scale = [3]float32{1, 1, 1}
		}
		if o.UVScale == [2]float32{} {
			o.UVScale = [2]float32{1, 1}
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scene for structural errors: unknown
// mesh kinds, part selections on meshes without parts,
// out-of-range colors and too many lights. It does not
// resolve texture or material tags; a dangling tag is a
// render-time concern and degrades instead of failing.
func (s *Scene) Validate() error {
	var errs []error
	if len(s.Lights) > MaxLights {
		errs = append(errs, fmt.Errorf("scene has %d lights; limit is %d", len(s.Lights), MaxLights))
	}
	for i := range s.Materials {
		m := &s.Materials[i]
		if m.Tag == "" {
			errs = append(errs, fmt.Errorf("material %d has no tag", i))
		}
		for _, c := range [][3]float32{m.AmbientColor, m.DiffuseColor, m.SpecularColor} {
			if !colorInRange(c[:]) {
				errs = append(errs, fmt.Errorf("material %q: color components must be in [0,1]", m.Tag))
				break
			}
		}
		if m.AmbientStrength < 0 || m.AmbientStrength > 1 {
			errs = append(errs, fmt.Errorf("material %q: ambient strength must be in [0,1]", m.Tag))
		}
		if m.Shininess < 0 {
			errs = append(errs, fmt.Errorf("material %q: negative shininess", m.Tag))
		}
	}
	for i := range s.Textures {
		t := &s.Textures[i]
		if t.Tag == "" || t.Path == "" {
			errs = append(errs, fmt.Errorf("texture %d needs both tag and path", i))
		}
	}
	for i := range s.Lights {
		l := &s.Lights[i]
		for _, c := range [][3]float32{l.AmbientColor, l.DiffuseColor, l.SpecularColor} {
			if !colorInRange(c[:]) {
				errs = append(errs, fmt.Errorf("light %d: color components must be in [0,1]", i))
				break
			}
		}
	}
	for i := range s.Objects {
		if err := s.Objects[i].validate(); err != nil {
			errs = append(errs, fmt.Errorf("object %d (%s): %w", i, s.Objects[i].Name, err))
		}
	}
	return errors.Join(errs...)
}

func colorInRange(c []float32) bool {
	for _, v := range c {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}
