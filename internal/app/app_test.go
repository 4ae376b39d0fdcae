// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmcloud/triangle/gfx"
	"github.com/qmcloud/triangle/gfx/gfxtest"
	"github.com/qmcloud/triangle/internal/config"
	"github.com/qmcloud/triangle/shaders"
)

var nopLog = zerolog.New(io.Discard)

func shaderDir() fs.FS {
	return fstest.MapFS{
		shaders.Vertex:   {Data: []byte("vertex source")},
		shaders.Fragment: {Data: []byte("fragment source")},
	}
}

func withVariant(v config.Variant) config.Config {
	cfg := config.Default()
	cfg.Variant = v
	return cfg
}

func TestSetupTriangle(t *testing.T) {
	dev := gfxtest.NewRecorder()
	s, err := Setup(dev, withVariant(config.VariantTriangle), shaderDir(), nopLog)
	require.NoError(t, err)

	assert.True(t, s.Mesh.Drawable())
	assert.NotZero(t, s.Program)
	assert.Equal(t, 1, dev.Live("buffer"))
	assert.Equal(t, 1, dev.Live("vertexarray"))
	assert.Equal(t, 1, dev.Live("program"))
	assert.Zero(t, dev.Live("shader"))
}

func TestSetupBuffer(t *testing.T) {
	dev := gfxtest.NewRecorder()
	// The buffer variant never reads shaders, so an empty FS is fine.
	s, err := Setup(dev, withVariant(config.VariantBuffer), fstest.MapFS{}, nopLog)
	require.NoError(t, err)

	assert.False(t, s.Mesh.Drawable())
	assert.Zero(t, s.Program)
	assert.Equal(t, 1, dev.Live("buffer"))
	assert.Zero(t, dev.Count("CompileShader"))
}

func TestSetupEmbedded(t *testing.T) {
	dev := gfxtest.NewRecorder()
	s, err := Setup(dev, withVariant(config.VariantEmbedded), shaders.FS, nopLog)
	require.NoError(t, err)
	assert.NotZero(t, s.Program)
}

func TestSetupMissingShaderReleases(t *testing.T) {
	dev := gfxtest.NewRecorder()
	fsys := fstest.MapFS{shaders.Vertex: {Data: []byte("vertex source")}}

	_, err := Setup(dev, withVariant(config.VariantTriangle), fsys, nopLog)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Zero(t, dev.Live("buffer"))
	assert.Zero(t, dev.Live("vertexarray"))
}

func TestSetupCompileFailureReleases(t *testing.T) {
	dev := gfxtest.NewRecorder()
	dev.FailCompile = map[gfx.ShaderKind]string{gfx.VertexShader: "bad"}

	_, err := Setup(dev, withVariant(config.VariantTriangle), shaderDir(), nopLog)
	require.ErrorIs(t, err, gfx.ErrCompile)
	assert.Zero(t, dev.Live("buffer"))
	assert.Zero(t, dev.Live("vertexarray"))
	assert.Zero(t, dev.Live("shader"))
	assert.Zero(t, dev.Live("program"))
}

func TestFrame(t *testing.T) {
	dev := gfxtest.NewRecorder()
	cfg := withVariant(config.VariantTriangle)
	cfg.ClearColor = gfx.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}
	s, err := Setup(dev, cfg, shaderDir(), nopLog)
	require.NoError(t, err)

	dev.Reset()
	s.Frame(dev)
	assert.Equal(t, []string{
		"ClearColor(0.25, 0.5, 0.75, 1)",
		"Clear()",
		"UseProgram(5)",
		"BindVertexArray(1)",
		"DrawTriangles(0, 3)",
	}, dev.Calls)
}

func TestFrameBufferOnlyClears(t *testing.T) {
	dev := gfxtest.NewRecorder()
	s, err := Setup(dev, withVariant(config.VariantBuffer), nil, nopLog)
	require.NoError(t, err)

	dev.Reset()
	s.Frame(dev)
	assert.Equal(t, []string{"ClearColor(0.2, 0.2, 0.2, 1)", "Clear()"}, dev.Calls)
}

func TestRelease(t *testing.T) {
	dev := gfxtest.NewRecorder()
	s, err := Setup(dev, withVariant(config.VariantTriangle), shaderDir(), nopLog)
	require.NoError(t, err)

	dev.Reset()
	s.Release(dev)
	assert.Equal(t, []string{"DeleteVertexArray(1)", "DeleteBuffer(2)", "DeleteProgram(5)"}, dev.Calls)
}

type fakeSurface struct {
	closeAfter int
	frames     int
	escape     bool
	calls      []string
}

func (f *fakeSurface) ProcessInput() {
	f.calls = append(f.calls, "input")
	if f.escape {
		f.closeAfter = f.frames
	}
}

func (f *fakeSurface) ShouldClose() bool { return f.frames >= f.closeAfter }

func (f *fakeSurface) SwapBuffers() {
	f.calls = append(f.calls, "swap")
}

func (f *fakeSurface) PollEvents() {
	f.calls = append(f.calls, "poll")
	f.frames++
}

func TestRunUntilClose(t *testing.T) {
	dev := gfxtest.NewRecorder()
	s, err := Setup(dev, withVariant(config.VariantTriangle), shaderDir(), nopLog)
	require.NoError(t, err)
	dev.Reset()

	surf := &fakeSurface{closeAfter: 3}
	n := Run(context.Background(), surf, dev, s)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, dev.Count("DrawTriangles"))
	assert.Equal(t, []string{"input", "swap", "poll", "input", "swap", "poll", "input", "swap", "poll"}, surf.calls)
}

func TestRunEscapeFinishesFrame(t *testing.T) {
	dev := gfxtest.NewRecorder()
	s, err := Setup(dev, withVariant(config.VariantBuffer), nil, nopLog)
	require.NoError(t, err)

	surf := &fakeSurface{closeAfter: 100, escape: true}
	n := Run(context.Background(), surf, dev, s)
	assert.Equal(t, 1, n)
}

func TestRunCancelled(t *testing.T) {
	dev := gfxtest.NewRecorder()
	s, err := Setup(dev, withVariant(config.VariantBuffer), nil, nopLog)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := Run(ctx, &fakeSurface{closeAfter: 100}, dev, s)
	assert.Zero(t, n)
}
