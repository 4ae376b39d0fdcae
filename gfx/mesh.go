// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"errors"
	"fmt"
)

const sizeofFloat32 = 4

// PositionComponents is the number of floats per vertex in TriangleVertices.
const PositionComponents = 3

// TriangleVertices returns the three positions of the demo triangle in
// normalized device coordinates. A fresh slice is returned on every call.
func TriangleVertices() []float32 {
	return []float32{
		-0.5, -0.5, 0.0,
		0.5, -0.5, 0.0,
		0.0, 0.5, 0.0,
	}
}

var ErrEmptyMesh = errors.New("gfx: mesh has no vertices")

// Mesh is vertex data resident on the device.
type Mesh struct {
	Buffer      Buffer
	VertexArray VertexArray // zero when the mesh was uploaded without one
	Count       int32       // number of vertices
}

// NewMesh uploads vertices, which hold components floats per vertex, once.
// When withVertexArray is set, a vertex array is created and bound before the
// buffer so that it records attribute 0 as the vertex position.
func NewMesh(dev Device, vertices []float32, components int, withVertexArray bool) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyMesh
	}
	if components <= 0 || len(vertices)%components != 0 {
		return nil, fmt.Errorf("gfx: %d floats is not a whole number of %d-component vertices", len(vertices), components)
	}

	m := &Mesh{Count: int32(len(vertices) / components)}
	if withVertexArray {
		m.VertexArray = dev.NewVertexArray()
	}
	m.Buffer = dev.NewBuffer(vertices)
	if withVertexArray {
		dev.VertexAttrib(0, int32(components), int32(components*sizeofFloat32), 0)
	}
	return m, nil
}

// Drawable reports whether the mesh carries an attribute layout to draw with.
func (m *Mesh) Drawable() bool {
	return m.VertexArray != 0
}

// Draw issues a single triangle-list draw over the whole mesh. Meshes without
// a vertex array are not drawn.
func (m *Mesh) Draw(dev Device) {
	if !m.Drawable() {
		return
	}
	dev.BindVertexArray(m.VertexArray)
	dev.DrawTriangles(0, m.Count)
}

// Release deletes the vertex array, then the buffer.
func (m *Mesh) Release(dev Device) {
	if m.VertexArray != 0 {
		dev.DeleteVertexArray(m.VertexArray)
		m.VertexArray = 0
	}
	if m.Buffer != 0 {
		dev.DeleteBuffer(m.Buffer)
		m.Buffer = 0
	}
}
