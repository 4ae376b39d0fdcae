// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl33 implements gfx.Device on an OpenGL 3.3 core profile context.
package gl33

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/rs/zerolog"

	"github.com/qmcloud/triangle/gfx"
)

// Device issues gfx calls to the OpenGL context current on the calling
// thread.
type Device struct {
	log zerolog.Logger
}

var _ gfx.Device = (*Device)(nil)

// Init loads the OpenGL function pointers. A context must already be current.
func Init(log zerolog.Logger) (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}
	log.Info().
		Str("version", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("loaded OpenGL")
	return &Device{log: log}, nil
}

func (d *Device) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Device) ClearColor(c gfx.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) NewBuffer(data []float32) gfx.Buffer {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	return gfx.Buffer(vbo)
}

func (d *Device) NewVertexArray() gfx.VertexArray {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	return gfx.VertexArray(vao)
}

func (d *Device) BindVertexArray(va gfx.VertexArray) {
	gl.BindVertexArray(uint32(va))
}

func (d *Device) VertexAttrib(index uint32, components, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, components, gl.FLOAT, false, stride, offset)
	gl.EnableVertexAttribArray(index)
}

var shaderTypes = map[gfx.ShaderKind]uint32{
	gfx.VertexShader:   gl.VERTEX_SHADER,
	gfx.FragmentShader: gl.FRAGMENT_SHADER,
}

func (d *Device) CompileShader(kind gfx.ShaderKind, src string) (gfx.Shader, error) {
	typ, ok := shaderTypes[kind]
	if !ok {
		return 0, fmt.Errorf("%w: unsupported shader kind %v", gfx.ErrCompile, kind)
	}

	shader := gl.CreateShader(typ)
	csource, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %w: %s", kind, gfx.ErrCompile, strings.TrimRight(log, "\x00\n"))
	}
	d.log.Debug().Stringer("kind", kind).Uint32("shader", shader).Msg("compiled shader")
	return gfx.Shader(shader), nil
}

func (d *Device) LinkProgram(shaders ...gfx.Shader) (gfx.Program, error) {
	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, uint32(s))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", gfx.ErrLink, strings.TrimRight(log, "\x00\n"))
	}
	return gfx.Program(program), nil
}

func (d *Device) UseProgram(p gfx.Program) {
	gl.UseProgram(uint32(p))
}

func (d *Device) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

func (d *Device) DeleteShader(s gfx.Shader) {
	gl.DeleteShader(uint32(s))
}

func (d *Device) DeleteProgram(p gfx.Program) {
	gl.DeleteProgram(uint32(p))
}

func (d *Device) DeleteBuffer(b gfx.Buffer) {
	vbo := uint32(b)
	gl.DeleteBuffers(1, &vbo)
}

func (d *Device) DeleteVertexArray(va gfx.VertexArray) {
	vao := uint32(va)
	gl.DeleteVertexArrays(1, &vao)
}
