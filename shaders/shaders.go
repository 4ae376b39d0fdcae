// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders bundles the GLSL sources for the triangle.
package shaders

import "embed"

// File names of the two stages, relative to a shader directory.
const (
	Vertex   = "triangle.vert.glsl"
	Fragment = "triangle.frag.glsl"
)

//go:embed *.glsl
var FS embed.FS
