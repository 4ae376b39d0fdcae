// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the start-up settings of the triangle program.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/qmcloud/triangle/gfx"
)

// Variant selects which resources the program creates.
type Variant string

const (
	// VariantBuffer uploads the vertex buffer and only clears each frame.
	VariantBuffer Variant = "buffer"
	// VariantTriangle draws with shaders read from the shader directory.
	VariantTriangle Variant = "triangle"
	// VariantEmbedded draws with the shaders compiled into the binary.
	VariantEmbedded Variant = "embedded"
)

// Variants lists the accepted variants in display order.
var Variants = []Variant{VariantBuffer, VariantTriangle, VariantEmbedded}

// HasProgram reports whether the variant compiles a shader program.
func (v Variant) HasProgram() bool {
	return v == VariantTriangle || v == VariantEmbedded
}

var ErrInvalid = errors.New("config: invalid")

// Config is the full set of start-up settings.
type Config struct {
	Width, Height int
	Title         string
	Variant       Variant
	ShaderDir     string
	ClearColor    gfx.Color
	Debug         bool
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		Width:      800,
		Height:     600,
		Title:      "I am learning opengl",
		Variant:    VariantTriangle,
		ShaderDir:  "./shaders",
		ClearColor: gfx.DefaultClearColor,
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	known := false
	for _, v := range Variants {
		if c.Variant == v {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown variant %q (want one of %v)", ErrInvalid, c.Variant, Variants)
	}
	if c.Variant == VariantTriangle && c.ShaderDir == "" {
		return fmt.Errorf("%w: empty shader directory", ErrInvalid)
	}
	if err := c.ClearColor.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Flags binds the settings to a flag set. Parsed values are applied to c by
// the returned function, which also validates the result.
func (c *Config) Flags(fs *pflag.FlagSet) func() error {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	variant := fs.String("variant", string(c.Variant), fmt.Sprintf("what to render: one of %v", Variants))
	fs.StringVar(&c.ShaderDir, "shaders", c.ShaderDir, "directory holding triangle.vert.glsl and triangle.frag.glsl")
	clearColor := fs.Float32Slice("clear-color", c.ClearColor.Slice(), "clear color as r,g,b,a in [0,1]")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")

	return func() error {
		c.Variant = Variant(*variant)
		col, err := gfx.ColorFromSlice(*clearColor)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		c.ClearColor = col
		return c.Validate()
	}
}
