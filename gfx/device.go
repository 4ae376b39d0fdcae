// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfx describes the small slice of a graphics API needed to put a
// single triangle on screen, plus the resources built on top of it.
//
// A Device must only be used from the goroutine (and OS thread) that owns the
// current context.
package gfx

// Opaque object names handed out by a Device. Zero is never a valid name.
type (
	Buffer      uint32
	VertexArray uint32
	Shader      uint32
	Program     uint32
)

// ShaderKind selects the pipeline stage a shader is compiled for.
type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// Device is implemented by gl33 for desktop OpenGL and by gfxtest for tests.
type Device interface {
	Viewport(x, y, width, height int32)
	ClearColor(c Color)
	// Clear clears the color buffer.
	Clear()

	// NewBuffer creates an array buffer, binds it and uploads data with
	// static usage.
	NewBuffer(data []float32) Buffer
	// NewVertexArray creates a vertex array and binds it.
	NewVertexArray() VertexArray
	BindVertexArray(va VertexArray)
	// VertexAttrib describes float attribute index in the currently bound
	// buffer and enables it. Stride and offset are in bytes.
	VertexAttrib(index uint32, components, stride int32, offset uintptr)

	// CompileShader returns the driver's info log wrapped in ErrCompile on
	// failure. The failed shader object is already deleted in that case.
	CompileShader(kind ShaderKind, src string) (Shader, error)
	// LinkProgram attaches shaders and links them. The failed program
	// object is already deleted when ErrLink is returned.
	LinkProgram(shaders ...Shader) (Program, error)
	UseProgram(p Program)

	// DrawTriangles draws count vertices from first as a triangle list.
	DrawTriangles(first, count int32)

	DeleteShader(s Shader)
	DeleteProgram(p Program)
	DeleteBuffer(b Buffer)
	DeleteVertexArray(va VertexArray)
}
