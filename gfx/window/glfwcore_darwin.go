// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//go:build darwin

package window

import "github.com/go-gl/glfw/v3.3/glfw"

// macOS only hands out core profiles to forward-compatible contexts.
const (
	glfwClientAPI           = glfw.OpenGLAPI
	glfwContextVersionMajor = 3
	glfwContextVersionMinor = 3
	glfwForwardCompatible   = glfw.True
)
