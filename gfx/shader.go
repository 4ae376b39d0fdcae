// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
)

var (
	ErrCompile = errors.New("gfx: shader compilation failed")
	ErrLink    = errors.New("gfx: program link failed")
)

// LoadShaderSource reads the whole shader file at path from fsys.
func LoadShaderSource(fsys fs.FS, path string) (string, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("load shader %s: %w", path, err)
	}
	return string(b), nil
}

// NewProgram compiles the vertex and fragment stages and links them, logging
// each step as it completes. The intermediate shader objects are deleted
// whether or not linking succeeds.
func NewProgram(dev Device, vertexSrc, fragmentSrc string, log zerolog.Logger) (Program, error) {
	vs, err := dev.CompileShader(VertexShader, vertexSrc)
	if err != nil {
		return 0, err
	}
	defer dev.DeleteShader(vs)
	log.Info().Msg("Compiled vertex shader")

	frag, err := dev.CompileShader(FragmentShader, fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer dev.DeleteShader(frag)
	log.Info().Msg("Compiled fragment shader")

	p, err := dev.LinkProgram(vs, frag)
	if err != nil {
		return 0, err
	}
	log.Info().Uint32("program", uint32(p)).Msg("Linked shader program")
	return p, nil
}
