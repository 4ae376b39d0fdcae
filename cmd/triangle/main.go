// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command triangle opens a window and draws a single triangle until Escape is
// pressed or the window is closed.
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/qmcloud/triangle/gfx/gl33"
	"github.com/qmcloud/triangle/gfx/window"
	"github.com/qmcloud/triangle/internal/app"
	"github.com/qmcloud/triangle/internal/config"
	"github.com/qmcloud/triangle/internal/logging"
	"github.com/qmcloud/triangle/shaders"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg := config.Default()
	var applyFlags func() error

	cmd := &cobra.Command{
		Use:           "triangle",
		Short:         "Draw a triangle with OpenGL 3.3",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return applyFlags()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.New(os.Stderr, cfg.Debug)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, log)
		},
	}
	applyFlags = cfg.Flags(cmd.Flags())

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		logging.New(os.Stderr, false).Error().Err(err).Msg("triangle failed")
		os.Exit(-1)
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	win, err := window.Open(window.Options{Width: cfg.Width, Height: cfg.Height, Title: cfg.Title})
	if err != nil {
		return err
	}
	defer win.Close()
	log.Info().Int("width", cfg.Width).Int("height", cfg.Height).Msg("Created window")

	dev, err := gl33.Init(log)
	if err != nil {
		return err
	}
	win.OnResize(func(width, height int) {
		dev.Viewport(0, 0, int32(width), int32(height))
	})

	scene, err := app.Setup(dev, cfg, shaderFS(cfg), log)
	if err != nil {
		return err
	}
	defer scene.Release(dev)

	frames := app.Run(ctx, win, dev, scene)
	reason := "window closed"
	if errors.Is(ctx.Err(), context.Canceled) {
		reason = "interrupted"
	}
	log.Info().Int("frames", frames).Str("reason", reason).Msg("Exiting")
	return nil
}

func shaderFS(cfg config.Config) fs.FS {
	if cfg.Variant == config.VariantEmbedded {
		return shaders.FS
	}
	return os.DirFS(cfg.ShaderDir)
}
