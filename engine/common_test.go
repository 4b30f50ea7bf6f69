// Copyright 2026 The Diorama Authors. All rights reserved.

package engine

import (
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/diorama-gl/diorama/driver"
	"github.com/go-gl/mathgl/mgl32"
)

// testGPU implements driver.GPU in memory for testing the
// registries and the session without a graphics context.
type testGPU struct {
	textures []*testTexture
	meshes   []*testMesh
	failTex  error
}

func (g *testGPU) NewProgram(vertexSrc, fragmentSrc string) (driver.Program, error) {
	return newTestProg(), nil
}

func (g *testGPU) NewTexture(img *driver.Image) (driver.Texture, error) {
	if g.failTex != nil {
		return nil, g.failTex
	}
	tex := &testTexture{img: img, unit: -1}
	g.textures = append(g.textures, tex)
	return tex, nil
}

func (g *testGPU) NewMesh(data *driver.MeshData) (driver.Mesh, error) {
	mesh := &testMesh{data: data}
	g.meshes = append(g.meshes, mesh)
	return mesh, nil
}

func (g *testGPU) Limits() driver.Limits {
	return driver.Limits{MaxTextureUnits: 16, MaxTextureSize: 4096}
}

func (g *testGPU) Viewport(width, height int) {}
func (g *testGPU) Clear(r, gr, b, a float32)  {}

type testTexture struct {
	img   *driver.Image
	unit  int
	freed bool
}

func (tex *testTexture) Bind(unit int) error {
	if tex.freed {
		return errors.New("bind of freed texture")
	}
	tex.unit = unit
	return nil
}

func (tex *testTexture) Free() { tex.freed = true }

type testMesh struct {
	data  *driver.MeshData
	draws [][2]int
	freed bool
}

func (m *testMesh) Draw(first, count int) { m.draws = append(m.draws, [2]int{first, count}) }
func (m *testMesh) Len() int              { return len(m.data.Indices) }
func (m *testMesh) Free()                 { m.freed = true }

// testProg records every uniform push, keyed by name, and
// the order in which names were pushed.
type testProg struct {
	ints   map[string]int32
	floats map[string]float32
	bools  map[string]bool
	vec2s  map[string]mgl32.Vec2
	vec3s  map[string]mgl32.Vec3
	vec4s  map[string]mgl32.Vec4
	mat4s  map[string]mgl32.Mat4
	order  []string
	inUse  int
}

func newTestProg() *testProg {
	return &testProg{
		ints:   make(map[string]int32),
		floats: make(map[string]float32),
		bools:  make(map[string]bool),
		vec2s:  make(map[string]mgl32.Vec2),
		vec3s:  make(map[string]mgl32.Vec3),
		vec4s:  make(map[string]mgl32.Vec4),
		mat4s:  make(map[string]mgl32.Mat4),
	}
}

func (p *testProg) Use() { p.inUse++ }

func (p *testProg) SetInt(name string, v int32) {
	p.ints[name] = v
	p.order = append(p.order, name)
}

func (p *testProg) SetFloat(name string, v float32) {
	p.floats[name] = v
	p.order = append(p.order, name)
}

func (p *testProg) SetBool(name string, v bool) {
	p.bools[name] = v
	p.order = append(p.order, name)
}

func (p *testProg) SetVec2(name string, v mgl32.Vec2) {
	p.vec2s[name] = v
	p.order = append(p.order, name)
}

func (p *testProg) SetVec3(name string, v mgl32.Vec3) {
	p.vec3s[name] = v
	p.order = append(p.order, name)
}

func (p *testProg) SetVec4(name string, v mgl32.Vec4) {
	p.vec4s[name] = v
	p.order = append(p.order, name)
}

func (p *testProg) SetMat4(name string, v mgl32.Mat4) {
	p.mat4s[name] = v
	p.order = append(p.order, name)
}

func (p *testProg) Free() {}

// pushed returns how many pushes p received.
func (p *testProg) pushed() int { return len(p.order) }

// writeRGBA writes a png file with a 4-channel layout and
// returns its path.
func writeRGBA(t *testing.T, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	return writeImage(t, name+".png", func(f *os.File) error { return png.Encode(f, img) })
}

// writeRGB writes a jpeg file, which decodes with a
// 3-channel layout, and returns its path.
func writeRGB(t *testing.T, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 5)
	}
	return writeImage(t, name+".jpg", func(f *os.File) error {
		return jpeg.Encode(f, img, nil)
	})
}

// writeGray writes a png file with a single-channel layout,
// which texture registration must reject, and returns its
// path.
func writeGray(t *testing.T, name string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	return writeImage(t, name+".png", func(f *os.File) error { return png.Encode(f, img) })
}

func writeImage(t *testing.T, name string, encode func(*os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("os.Create: unexpected error:\n%#v", err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		t.Fatalf("encode %s: unexpected error:\n%#v", name, err)
	}
	return path
}
