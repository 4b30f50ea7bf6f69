// Copyright 2026 The Diorama Authors. All rights reserved.

package diorama

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const sceneDoc = `
textures:
  - tag: granite
    path: textures/granite.jpg
materials:
  - tag: gold
    ambient_color: [0.2, 0.2, 0.1]
    ambient_strength: 0.3
    diffuse_color: [0.3, 0.3, 0.2]
    specular_color: [0.6, 0.5, 0.4]
    shininess: 22.0
lights:
  - position: [-4.0, 7.0, 2.0]
    ambient_color: [0.18, 0.17, 0.16]
    diffuse_color: [0.7, 0.65, 0.6]
    specular_color: [0.9, 0.85, 0.8]
    focal_strength: 32.0
    specular_intensity: 0.45
objects:
  - name: countertop
    mesh: plane
    scale: [12.0, 1.0, 6.0]
    texture: granite
    uv_scale: [4.0, 4.0]
    material: gold
  - name: bauble
    mesh: cylinder
    parts: {sides: true, bottom: true}
    rotation: [0.0, 45.0, 0.0]
    translation: [1.0, 0.0, -2.0]
    color: [0.5, 0.5, 0.5, 1.0]
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sceneDoc))
	if err != nil {
		t.Fatalf("Parse: unexpected error:\n%#v", err)
	}
	if len(s.Textures) != 1 || s.Textures[0].Tag != "granite" {
		t.Fatalf("Parse: textures: %#v", s.Textures)
	}
	if len(s.Materials) != 1 || s.Materials[0].Shininess != 22 {
		t.Fatalf("Parse: materials: %#v", s.Materials)
	}
	if len(s.Lights) != 1 || s.Lights[0].FocalStrength != 32 {
		t.Fatalf("Parse: lights: %#v", s.Lights)
	}
	if len(s.Objects) != 2 {
		t.Fatalf("Parse: objects: %#v", s.Objects)
	}
	top := s.Objects[0]
	if top.Mesh != MeshPlane || top.Scale != [3]float32{12, 1, 6} || top.UVScale != [2]float32{4, 4} {
		t.Fatalf("Parse: countertop: %#v", top)
	}
	if top.Color != nil {
		t.Fatal("Parse: countertop has a color")
	}
	bauble := s.Objects[1]
	if bauble.Parts == nil || !bauble.Parts.Sides || bauble.Parts.Top || !bauble.Parts.Bottom {
		t.Fatalf("Parse: bauble parts: %#v", bauble.Parts)
	}
	if bauble.Color == nil || *bauble.Color != [4]float32{0.5, 0.5, 0.5, 1} {
		t.Fatalf("Parse: bauble color: %#v", bauble.Color)
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte("objects:\n  - mesh: box\n"))
	if err != nil {
		t.Fatalf("Parse: unexpected error:\n%#v", err)
	}
	o := s.Objects[0]
	if o.Scale != [3]float32{1, 1, 1} {
		t.Fatalf("Parse: default scale is %v", o.Scale)
	}
	if o.UVScale != [2]float32{1, 1} {
		t.Fatalf("Parse: default uv scale is %v", o.UVScale)
	}
	if o.Rotation != [3]float32{} || o.Translation != [3]float32{} {
		t.Fatalf("Parse: default transform: %#v", o)
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte("objects:\n  - mesh: box\n    colour: [1, 1, 1, 1]\n"))
	if err == nil {
		t.Fatal("Parse: unknown field did not fail")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			"unknown mesh",
			"objects:\n  - mesh: dodecahedron\n",
			"unknown mesh kind",
		},
		{
			"missing mesh",
			"objects:\n  - name: thing\n",
			"no mesh kind",
		},
		{
			"parts on sphere",
			"objects:\n  - mesh: sphere\n    parts: {sides: true}\n",
			"no selectable parts",
		},
		{
			"color out of range",
			"objects:\n  - mesh: box\n    color: [2, 0, 0, 1]\n",
			"must be in [0,1]",
		},
		{
			"texture without path",
			"textures:\n  - tag: granite\nobjects:\n  - mesh: box\n",
			"tag and path",
		},
		{
			"material shininess",
			"materials:\n  - tag: dull\n    shininess: -1\nobjects:\n  - mesh: box\n",
			"negative shininess",
		},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.doc))
		if err == nil {
			t.Errorf("%s: Parse did not fail", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q does not mention %q", c.name, err, c.want)
		}
	}
}

func TestValidateLightCount(t *testing.T) {
	var b strings.Builder
	b.WriteString("lights:\n")
	for i := 0; i <= MaxLights; i++ {
		b.WriteString("  - position: [0, 1, 0]\n")
	}
	b.WriteString("objects:\n  - mesh: box\n")
	_, err := Parse([]byte(b.String()))
	if err == nil {
		t.Fatalf("Parse: %d lights did not fail", MaxLights+1)
	}
}

func TestRoundTrip(t *testing.T) {
	s, err := Parse([]byte(sceneDoc))
	if err != nil {
		t.Fatalf("Parse: unexpected error:\n%#v", err)
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: unexpected error:\n%#v", err)
	}
	s2, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse (round trip): unexpected error:\n%#v", err)
	}
	if len(s2.Objects) != len(s.Objects) {
		t.Fatalf("round trip: %d objects, not %d", len(s2.Objects), len(s.Objects))
	}
	for i := range s.Objects {
		a, b := s.Objects[i], s2.Objects[i]
		if a.Name != b.Name || a.Mesh != b.Mesh || a.Scale != b.Scale ||
			a.Rotation != b.Rotation || a.Translation != b.Translation ||
			a.Texture != b.Texture || a.UVScale != b.UVScale || a.Material != b.Material {
			t.Fatalf("round trip: object %d differs:\n%#v\n%#v", i, a, b)
		}
	}
}

func TestMeshKinds(t *testing.T) {
	for _, k := range []MeshKind{
		MeshPlane, MeshBox, MeshSphere, MeshHalfSphere,
		MeshCylinder, MeshTaperedCylinder, MeshCone, MeshTorus,
	} {
		if !k.Valid() {
			t.Errorf("MeshKind %q reported invalid", k)
		}
	}
	if MeshKind("prism").Valid() {
		t.Error(`MeshKind "prism" reported valid`)
	}
	if MeshSphere.HasParts() || !MeshCone.HasParts() {
		t.Error("MeshKind.HasParts misreports the cylinder family")
	}
}
