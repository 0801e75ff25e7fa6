// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/gogpu/gputypes"

// vector3Stride is the byte size of one float32x3 attribute.
const vector3Stride = 12

// Shader locations of the vertex attributes.
const (
	PositionLocation = 0
	ColorLocation    = 1
	NormalLocation   = 2
)

// IndexFormat is the format of the triangle index buffer, which is
// always 32 bit.
const IndexFormat = gputypes.IndexFormatUint32

// PointLayouts returns the vertex buffer layouts for drawing the
// geometry as point sprites. Each point is one instance of a quad,
// so the attributes step per instance.
func (g *Geometry) PointLayouts() []gputypes.VertexBufferLayout {
	ls := []gputypes.VertexBufferLayout{
		attributeLayout(PositionLocation, gputypes.VertexStepModeInstance),
	}
	if g.HasColor() {
		ls = append(ls, attributeLayout(ColorLocation, gputypes.VertexStepModeInstance))
	}
	return ls
}

// MeshLayouts returns the vertex buffer layouts for drawing the
// geometry as an indexed triangle mesh.
func (g *Geometry) MeshLayouts() []gputypes.VertexBufferLayout {
	ls := []gputypes.VertexBufferLayout{
		attributeLayout(PositionLocation, gputypes.VertexStepModeVertex),
	}
	if g.HasColor() {
		ls = append(ls, attributeLayout(ColorLocation, gputypes.VertexStepModeVertex))
	}
	if g.Normals != nil {
		ls = append(ls, attributeLayout(NormalLocation, gputypes.VertexStepModeVertex))
	}
	return ls
}

// PrimitiveState returns the primitive state for drawing the geometry:
// triangle lists with no culling, because point sprite quads always
// face the camera and meshes are drawn double sided.
func (g *Geometry) PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

func attributeLayout(loc uint32, step gputypes.VertexStepMode) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: vector3Stride,
		StepMode:    step,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: loc},
		},
	}
}
