// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app builds the triangle scene and drives the frame loop.
package app

import (
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/qmcloud/triangle/gfx"
	"github.com/qmcloud/triangle/internal/config"
	"github.com/qmcloud/triangle/shaders"
)

// Scene owns every device resource the program creates.
type Scene struct {
	Mesh    *gfx.Mesh
	Program gfx.Program // zero for variants without shaders
	Clear   gfx.Color
}

// Setup uploads the triangle and, for variants that draw, builds the shader
// program from shaderFS. Nothing is left allocated on error.
func Setup(dev gfx.Device, cfg config.Config, shaderFS fs.FS, log zerolog.Logger) (*Scene, error) {
	mesh, err := gfx.NewMesh(dev, gfx.TriangleVertices(), gfx.PositionComponents, cfg.Variant.HasProgram())
	if err != nil {
		return nil, err
	}
	s := &Scene{Mesh: mesh, Clear: cfg.ClearColor}
	log.Debug().Int32("vertices", mesh.Count).Msg("uploaded vertex buffer")

	if !cfg.Variant.HasProgram() {
		return s, nil
	}

	vert, err := gfx.LoadShaderSource(shaderFS, shaders.Vertex)
	if err != nil {
		s.Release(dev)
		return nil, err
	}
	frag, err := gfx.LoadShaderSource(shaderFS, shaders.Fragment)
	if err != nil {
		s.Release(dev)
		return nil, err
	}

	s.Program, err = gfx.NewProgram(dev, vert, frag, log)
	if err != nil {
		s.Release(dev)
		return nil, fmt.Errorf("build shader program: %w", err)
	}
	return s, nil
}

// Frame renders one frame: clear, then at most one draw call.
func (s *Scene) Frame(dev gfx.Device) {
	dev.ClearColor(s.Clear)
	dev.Clear()
	if s.Program == 0 || !s.Mesh.Drawable() {
		return
	}
	dev.UseProgram(s.Program)
	s.Mesh.Draw(dev)
}

// Release deletes the vertex array, the buffer and the program.
func (s *Scene) Release(dev gfx.Device) {
	s.Mesh.Release(dev)
	if s.Program != 0 {
		dev.DeleteProgram(s.Program)
		s.Program = 0
	}
}
