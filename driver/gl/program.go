// Copyright 2026 The Diorama Authors. All rights reserved.

package gl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// program implements driver.Program.
type program struct {
	handle uint32
	// Uniform locations by name. Names the program does
	// not declare cache the -1 the API reports, so misses
	// stay silent and cheap.
	locs map[string]int32
}

func newProgram(vertexSrc, fragmentSrc string) (*program, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)
	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &n)
		lg := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(handle, n, nil, gl.Str(lg))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf(glPrefix+"cannot link program:\n%s", strings.TrimRight(lg, "\x00"))
	}
	return &program{
		handle: handle,
		locs:   make(map[string]int32),
	}, nil
}

func compileShader(typ uint32, src string) (uint32, error) {
	handle := gl.CreateShader(typ)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(handle, 1, csrc, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &n)
		lg := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(handle, n, nil, gl.Str(lg))
		gl.DeleteShader(handle)
		stage := "fragment shader"
		if typ == gl.VERTEX_SHADER {
			stage = "vertex shader"
		}
		return 0, fmt.Errorf(glPrefix+"cannot compile %s:\n%s", stage, strings.TrimRight(lg, "\x00"))
	}
	return handle, nil
}

// loc returns the location of the named uniform, caching
// lookups. It is -1 for names the program does not declare.
func (p *program) loc(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.locs[name] = loc
	return loc
}

// Use makes the program current.
func (p *program) Use() { gl.UseProgram(p.handle) }

func (p *program) SetInt(name string, v int32) {
	if loc := p.loc(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (p *program) SetFloat(name string, v float32) {
	if loc := p.loc(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

func (p *program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *program) SetVec2(name string, v mgl32.Vec2) {
	if loc := p.loc(name); loc >= 0 {
		gl.Uniform2fv(loc, 1, &v[0])
	}
}

func (p *program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.loc(name); loc >= 0 {
		gl.Uniform3fv(loc, 1, &v[0])
	}
}

func (p *program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.loc(name); loc >= 0 {
		gl.Uniform4fv(loc, 1, &v[0])
	}
}

func (p *program) SetMat4(name string, v mgl32.Mat4) {
	if loc := p.loc(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

// Free invalidates the program and releases its resources.
func (p *program) Free() {
	gl.DeleteProgram(p.handle)
	p.handle = 0
	p.locs = nil
}
