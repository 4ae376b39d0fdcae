// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmcloud/triangle/gfx"
	"github.com/qmcloud/triangle/gfx/gfxtest"
)

func TestTriangleVertices(t *testing.T) {
	v := gfx.TriangleVertices()
	require.Len(t, v, 9)
	assert.Equal(t, []float32{-0.5, -0.5, 0, 0.5, -0.5, 0, 0, 0.5, 0}, v)

	// Callers may scribble on their copy.
	v[0] = 42
	assert.Equal(t, float32(-0.5), gfx.TriangleVertices()[0])
}

func TestNewMeshWithVertexArray(t *testing.T) {
	dev := gfxtest.NewRecorder()
	m, err := gfx.NewMesh(dev, gfx.TriangleVertices(), gfx.PositionComponents, true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"NewVertexArray() = 1",
		"NewBuffer(9) = 2",
		"VertexAttrib(0, 3, 12, 0)",
	}, dev.Calls)
	assert.Equal(t, int32(3), m.Count)
	assert.True(t, m.Drawable())
	assert.Equal(t, gfx.TriangleVertices(), dev.Uploads[m.Buffer])
}

func TestNewMeshBufferOnly(t *testing.T) {
	dev := gfxtest.NewRecorder()
	m, err := gfx.NewMesh(dev, gfx.TriangleVertices(), gfx.PositionComponents, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"NewBuffer(9) = 1"}, dev.Calls)
	assert.False(t, m.Drawable())

	dev.Reset()
	m.Draw(dev)
	assert.Empty(t, dev.Calls)
}

func TestNewMeshRejectsBadData(t *testing.T) {
	dev := gfxtest.NewRecorder()

	_, err := gfx.NewMesh(dev, nil, 3, true)
	assert.ErrorIs(t, err, gfx.ErrEmptyMesh)

	_, err = gfx.NewMesh(dev, []float32{1, 2, 3, 4}, 3, true)
	assert.Error(t, err)

	_, err = gfx.NewMesh(dev, []float32{1, 2, 3}, 0, true)
	assert.Error(t, err)

	assert.Empty(t, dev.Calls, "nothing should reach the device")
}

func TestMeshDrawAndRelease(t *testing.T) {
	dev := gfxtest.NewRecorder()
	m, err := gfx.NewMesh(dev, gfx.TriangleVertices(), gfx.PositionComponents, true)
	require.NoError(t, err)

	dev.Reset()
	m.Draw(dev)
	assert.Equal(t, []string{"BindVertexArray(1)", "DrawTriangles(0, 3)"}, dev.Calls)

	dev.Reset()
	m.Release(dev)
	assert.Equal(t, []string{"DeleteVertexArray(1)", "DeleteBuffer(2)"}, dev.Calls)
	assert.Zero(t, dev.Live("buffer"))
	assert.Zero(t, dev.Live("vertexarray"))

	// Second release is a no-op.
	dev.Reset()
	m.Release(dev)
	assert.Empty(t, dev.Calls)
}
