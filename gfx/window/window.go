// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens a GLFW window with an OpenGL 3.3 core context.
//
// GLFW must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread before calling Open.
package window

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	ErrInit   = errors.New("window: failed to initialize GLFW")
	ErrCreate = errors.New("window: failed to create window")
)

// Options configures Open.
type Options struct {
	Width, Height int
	Title         string
}

// Window is an open window whose context is current on the calling thread.
type Window struct {
	w        *glfw.Window
	onResize func(width, height int)
}

// Open initializes GLFW, creates the window and makes its context current.
// GLFW is terminated again if the window cannot be created.
func Open(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfwClientAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, glfwContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, glfwContextVersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwForwardCompatible)

	w, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrCreate, err)
	}

	win := &Window{w: w}
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if win.onResize != nil {
			win.onResize(width, height)
		}
	})
	w.MakeContextCurrent()
	return win, nil
}

// OnResize registers fn to receive framebuffer sizes in pixels. It is called
// once immediately with the current size.
func (win *Window) OnResize(fn func(width, height int)) {
	win.onResize = fn
	if fn != nil {
		fn(win.w.GetFramebufferSize())
	}
}

// ProcessInput requests close when Escape is held.
func (win *Window) ProcessInput() {
	if win.w.GetKey(glfw.KeyEscape) == glfw.Press {
		win.w.SetShouldClose(true)
	}
}

func (win *Window) ShouldClose() bool {
	return win.w.ShouldClose()
}

func (win *Window) SwapBuffers() {
	win.w.SwapBuffers()
}

// PollEvents processes pending window-system events, running callbacks.
func (win *Window) PollEvents() {
	glfw.PollEvents()
}

// Close destroys the window and terminates GLFW.
func (win *Window) Close() {
	win.w.Destroy()
	glfw.Terminate()
}
