// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//go:build js && !wasm

// Command triangleweb draws the triangle into a browser canvas with WebGL. It
// is built with GopherJS.
package main

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
	"github.com/gopherjs/webgl"

	"github.com/qmcloud/triangle/gfx"
)

// WebGL 1 speaks GLSL ES 1.00, so the desktop sources cannot be reused.
const (
	vertexSource = `
attribute vec3 aPos;

void main() {
	gl_Position = vec4(aPos, 1.0);
}
`
	fragmentSource = `
precision mediump float;

void main() {
	gl_FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`
)

func main() {
	document := js.Global.Get("document")
	canvas := document.Call("createElement", "canvas")
	canvas.Set("width", 800)
	canvas.Set("height", 600)
	document.Get("body").Call("appendChild", canvas)

	gl, err := webgl.NewContext(canvas, webgl.DefaultAttributes())
	if err != nil {
		js.Global.Call("alert", "Failed to create WebGL context: "+err.Error())
		return
	}

	program, err := newProgram(gl)
	if err != nil {
		js.Global.Get("console").Call("error", err.Error())
		return
	}

	vbo := gl.CreateBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, gfx.TriangleVertices(), gl.STATIC_DRAW)

	pos := gl.GetAttribLocation(program, "aPos")
	gl.EnableVertexAttribArray(pos)
	gl.VertexAttribPointer(pos, gfx.PositionComponents, gl.FLOAT, false, 0, 0)

	running := true
	js.Global.Call("addEventListener", "keydown", func(ev *js.Object) {
		if ev.Get("key").String() == "Escape" {
			running = false
		}
	})

	c := gfx.DefaultClearColor
	var frame func(float64)
	frame = func(float64) {
		if !running {
			gl.DeleteBuffer(vbo)
			gl.DeleteProgram(program)
			return
		}
		gl.Viewport(0, 0, canvas.Get("width").Int(), canvas.Get("height").Int())
		gl.ClearColor(c.R, c.G, c.B, c.A)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(program)
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
		js.Global.Call("requestAnimationFrame", frame)
	}
	js.Global.Call("requestAnimationFrame", frame)
}

func compile(gl *webgl.Context, typ int, src string) (*js.Object, error) {
	s := gl.CreateShader(typ)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if !gl.GetShaderParameterb(s, gl.COMPILE_STATUS) {
		log := gl.GetShaderInfoLog(s)
		gl.DeleteShader(s)
		return nil, fmt.Errorf("%w: %s", gfx.ErrCompile, log)
	}
	return s, nil
}

func newProgram(gl *webgl.Context) (*js.Object, error) {
	vs, err := compile(gl, gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compile(gl, gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	p := gl.CreateProgram()
	gl.AttachShader(p, vs)
	gl.AttachShader(p, fs)
	gl.LinkProgram(p)
	if !gl.GetProgramParameterb(p, gl.LINK_STATUS) {
		log := gl.GetProgramInfoLog(p)
		gl.DeleteProgram(p)
		return nil, fmt.Errorf("%w: %s", gfx.ErrLink, log)
	}
	return p, nil
}
