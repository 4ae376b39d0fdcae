// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import "fmt"

// Color is a linear RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// DefaultClearColor is the dark grey the window is cleared to each frame.
var DefaultClearColor = Color{R: 0.2, G: 0.2, B: 0.2, A: 1.0}

// ColorFromSlice builds a Color from exactly four channel values.
func ColorFromSlice(v []float32) (Color, error) {
	if len(v) != 4 {
		return Color{}, fmt.Errorf("color needs 4 channels, got %d", len(v))
	}
	c := Color{R: v[0], G: v[1], B: v[2], A: v[3]}
	if err := c.Validate(); err != nil {
		return Color{}, err
	}
	return c, nil
}

// Validate reports a channel outside [0, 1].
func (c Color) Validate() error {
	for i, v := range [4]float32{c.R, c.G, c.B, c.A} {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("color channel %d out of range [0,1]: %v", i, v)
		}
	}
	return nil
}

// Slice returns the channels in RGBA order.
func (c Color) Slice() []float32 {
	return []float32{c.R, c.G, c.B, c.A}
}
