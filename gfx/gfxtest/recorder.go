// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfxtest provides a gfx.Device that records calls instead of
// talking to a driver.
package gfxtest

import (
	"fmt"
	"strings"

	"github.com/qmcloud/triangle/gfx"
)

// Recorder implements gfx.Device. Every call is appended to Calls as a short
// textual form such as "NewBuffer(9) = 1".
type Recorder struct {
	Calls []string

	// FailCompile makes CompileShader fail for the given stage.
	FailCompile map[gfx.ShaderKind]string
	// FailLink makes LinkProgram fail with this log when non-empty.
	FailLink string

	// Uploads holds the data passed to NewBuffer, by buffer name.
	Uploads map[gfx.Buffer][]float32

	next uint32
	live map[string]int
}

var _ gfx.Device = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Uploads: map[gfx.Buffer][]float32{},
		live:    map[string]int{},
	}
}

func (r *Recorder) record(format string, args ...any) {
	r.Calls = append(r.Calls, fmt.Sprintf(format, args...))
}

func (r *Recorder) name(kind string) uint32 {
	r.next++
	r.live[kind]++
	return r.next
}

func (r *Recorder) drop(kind string) {
	r.live[kind]--
}

// Live returns how many objects of kind ("buffer", "vertexarray", "shader",
// "program") were created and not yet deleted.
func (r *Recorder) Live(kind string) int {
	return r.live[kind]
}

// Count returns how many recorded calls start with prefix.
func (r *Recorder) Count(prefix string) int {
	n := 0
	for _, c := range r.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps object accounting.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
}

func (r *Recorder) ClearColor(c gfx.Color) {
	r.record("ClearColor(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
}

func (r *Recorder) Clear() {
	r.record("Clear()")
}

func (r *Recorder) NewBuffer(data []float32) gfx.Buffer {
	b := gfx.Buffer(r.name("buffer"))
	r.Uploads[b] = append([]float32(nil), data...)
	r.record("NewBuffer(%d) = %d", len(data), b)
	return b
}

func (r *Recorder) NewVertexArray() gfx.VertexArray {
	va := gfx.VertexArray(r.name("vertexarray"))
	r.record("NewVertexArray() = %d", va)
	return va
}

func (r *Recorder) BindVertexArray(va gfx.VertexArray) {
	r.record("BindVertexArray(%d)", va)
}

func (r *Recorder) VertexAttrib(index uint32, components, stride int32, offset uintptr) {
	r.record("VertexAttrib(%d, %d, %d, %d)", index, components, stride, offset)
}

func (r *Recorder) CompileShader(kind gfx.ShaderKind, src string) (gfx.Shader, error) {
	if log, ok := r.FailCompile[kind]; ok {
		r.record("CompileShader(%s) failed", kind)
		return 0, fmt.Errorf("%s shader: %w: %s", kind, gfx.ErrCompile, log)
	}
	s := gfx.Shader(r.name("shader"))
	r.record("CompileShader(%s) = %d", kind, s)
	return s, nil
}

func (r *Recorder) LinkProgram(shaders ...gfx.Shader) (gfx.Program, error) {
	if r.FailLink != "" {
		r.record("LinkProgram%v failed", shaders)
		return 0, fmt.Errorf("%w: %s", gfx.ErrLink, r.FailLink)
	}
	p := gfx.Program(r.name("program"))
	r.record("LinkProgram%v = %d", shaders, p)
	return p, nil
}

func (r *Recorder) UseProgram(p gfx.Program) {
	r.record("UseProgram(%d)", p)
}

func (r *Recorder) DrawTriangles(first, count int32) {
	r.record("DrawTriangles(%d, %d)", first, count)
}

func (r *Recorder) DeleteShader(s gfx.Shader) {
	r.drop("shader")
	r.record("DeleteShader(%d)", s)
}

func (r *Recorder) DeleteProgram(p gfx.Program) {
	r.drop("program")
	r.record("DeleteProgram(%d)", p)
}

func (r *Recorder) DeleteBuffer(b gfx.Buffer) {
	r.drop("buffer")
	r.record("DeleteBuffer(%d)", b)
}

func (r *Recorder) DeleteVertexArray(va gfx.VertexArray) {
	r.drop("vertexarray")
	r.record("DeleteVertexArray(%d)", va)
}
