// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"

	"github.com/qmcloud/triangle/gfx"
)

// Surface is the window side of the frame loop.
type Surface interface {
	ProcessInput()
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// Run renders frames until the surface asks to close or ctx is done and
// returns how many frames were presented. It must be called on the thread that
// owns the graphics context.
func Run(ctx context.Context, surf Surface, dev gfx.Device, s *Scene) int {
	frames := 0
	for !surf.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		surf.ProcessInput()
		s.Frame(dev)
		surf.SwapBuffers()
		surf.PollEvents()
		frames++
	}
	return frames
}
