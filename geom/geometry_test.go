// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/cloudview/colorize"
)

const standardTol = float32(1.0e-6)

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, got.X, standardTol)
	tolassert.EqualTol(t, want.Y, got.Y, standardTol)
	tolassert.EqualTol(t, want.Z, got.Z, standardTol)
}

// quad is a unit square in the z = 0 plane, as two counter clockwise
// triangles seen from +z.
var (
	quadV = [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	quadF = [][3]int64{{0, 1, 2}, {0, 2, 3}}
)

func TestMeshRoundTrip(t *testing.T) {
	g, err := Mesh(quadV, quadF, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertex())
	assert.Equal(t, 2, g.NumFace())
	assert.True(t, g.IsMesh())
	assert.False(t, g.HasColor())

	want := [][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	assert.Equal(t, want, Unflatten(g.Positions))
	assert.Equal(t, math32.ArrayU32{0, 1, 2, 0, 2, 3}, g.Index)
	assert.Equal(t, [3]uint32{0, 2, 3}, g.Face(1))
}

func TestFacesAlwaysUint32(t *testing.T) {
	idx, err := Faces([][3]uint8{{2, 1, 0}})
	require.NoError(t, err)
	assert.Equal(t, math32.ArrayU32{2, 1, 0}, idx)

	big := [][3]int{{70000, 70001, 70002}}
	idx, err = Faces(big)
	require.NoError(t, err)
	assert.Equal(t, math32.ArrayU32{70000, 70001, 70002}, idx)

	_, err = Faces([][3]int{{0, -1, 2}})
	assert.ErrorIs(t, err, ErrIndexRange)
}

func TestIndexRange(t *testing.T) {
	_, err := Mesh(quadV, [][3]int{{0, 1, 4}}, nil)
	assert.ErrorIs(t, err, ErrIndexRange)
}

func TestNormals(t *testing.T) {
	g, err := Mesh(quadV, quadF, nil)
	require.NoError(t, err)
	for f := 0; f < g.NumFace(); f++ {
		assertVec(t, math32.Vec3(0, 0, 1), vec3(g.FaceNormals, f))
	}
	for i := 0; i < g.NumVertex(); i++ {
		assertVec(t, math32.Vec3(0, 0, 1), g.Normal(i))
	}

	// a right angle fold: vertex normals on the crease average both faces
	foldV := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	foldF := [][3]int{{0, 1, 2}, {0, 3, 1}}
	g, err = Mesh(foldV, foldF, nil)
	require.NoError(t, err)
	assertVec(t, math32.Vec3(0, 0, 1), vec3(g.FaceNormals, 0))
	assertVec(t, math32.Vec3(0, 1, 0), vec3(g.FaceNormals, 1))
	s := 1 / math32.Sqrt(2)
	assertVec(t, math32.Vec3(0, s, s), g.Normal(0))
	assertVec(t, math32.Vec3(0, s, s), g.Normal(1))
	assertVec(t, math32.Vec3(0, 0, 1), g.Normal(2))
	assertVec(t, math32.Vec3(0, 1, 0), g.Normal(3))
}

func TestDegenerateFaceNormal(t *testing.T) {
	g, err := Mesh([][3]float32{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}}, [][3]int{{0, 1, 2}}, nil)
	require.NoError(t, err)
	assert.Equal(t, math32.Vector3{}, vec3(g.FaceNormals, 0))
	assert.False(t, math32.IsNaN(g.Normal(0).X))
}

func TestPointsWithColors(t *testing.T) {
	pts := [][3]float32{{0, 0, 0}, {1, 2, 3}}
	_, err := Points(pts, colorize.Buffer{1, 0, 0})
	assert.ErrorIs(t, err, colorize.ErrShapeMismatch)

	g, err := Points(pts, colorize.Buffer{1, 0, 0, 0, 1, 0})
	require.NoError(t, err)
	assert.False(t, g.IsMesh())
	assert.True(t, g.HasColor())
	assert.Equal(t, math32.Vec3(0, 1, 0), g.Color(1))
	assert.Nil(t, g.Normals)
	assert.Equal(t, math32.Vec3(1, 2, 3), g.BBox.Max)
	assert.Equal(t, math32.Vec3(0, 0, 0), g.BBox.Min)
}

func TestUpdateKeepsOmittedFields(t *testing.T) {
	g, err := Mesh(quadV, quadF, colorize.Buffer{0, 0, 0, 1, 1, 1, 0, 0, 0, 1, 1, 1})
	require.NoError(t, err)
	v0 := g.Version()

	// move the square up: index and colors are kept, normals recomputed
	moved := Positions([][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}})
	require.NoError(t, g.Update(Change{Positions: moved}))
	assert.Equal(t, math32.ArrayU32{0, 1, 2, 0, 2, 3}, g.Index)
	assert.True(t, g.HasColor())
	assertVec(t, math32.Vec3(0, -1, 0), g.Normal(0))
	assert.Greater(t, g.Version(), v0)

	// new faces reverse winding
	idx, err := Faces([][3]int{{0, 2, 1}, {0, 3, 2}})
	require.NoError(t, err)
	require.NoError(t, g.Update(Change{Index: idx}))
	assertVec(t, math32.Vec3(0, 1, 0), g.Normal(0))

	require.NoError(t, g.Update(Change{DropColors: true}))
	assert.False(t, g.HasColor())
}

func TestUpdateIsAtomic(t *testing.T) {
	g, err := Mesh(quadV, quadF, nil)
	require.NoError(t, err)
	pos := g.Positions
	normals := g.Normals
	v := g.Version()

	// fewer vertices than the index needs
	err = g.Update(Change{Positions: Positions([][3]float32{{0, 0, 0}, {1, 1, 1}})})
	assert.ErrorIs(t, err, ErrIndexRange)
	assert.Equal(t, pos, g.Positions)
	assert.Equal(t, normals, g.Normals)
	assert.Equal(t, v, g.Version())

	err = g.Update(Change{Colors: colorize.Buffer{1, 1, 1}})
	assert.ErrorIs(t, err, colorize.ErrShapeMismatch)
	assert.False(t, g.HasColor())

	err = g.Update(Change{Positions: math32.ArrayF32{1, 2}})
	assert.Error(t, err)
	assert.Equal(t, 4, g.NumVertex())
}

func TestUpdateVertexCountDropsStaleColors(t *testing.T) {
	g, err := Points([][3]float32{{0, 0, 0}}, colorize.Buffer{1, 0, 0})
	require.NoError(t, err)
	require.NoError(t, g.Update(Change{Positions: Positions([][3]float32{{0, 0, 0}, {1, 1, 1}})}))
	assert.False(t, g.HasColor())
	assert.Equal(t, 2, g.NumVertex())
}

func TestLayouts(t *testing.T) {
	g, err := Points([][3]float32{{0, 0, 0}}, colorize.Buffer{1, 0, 0})
	require.NoError(t, err)
	ls := g.PointLayouts()
	require.Len(t, ls, 2)
	assert.Equal(t, gputypes.VertexStepModeInstance, ls[0].StepMode)
	assert.Equal(t, uint32(ColorLocation), ls[1].Attributes[0].ShaderLocation)

	g, err = Mesh(quadV, quadF, nil)
	require.NoError(t, err)
	ls = g.MeshLayouts()
	require.Len(t, ls, 2)
	assert.Equal(t, gputypes.VertexFormatFloat32x3, ls[1].Attributes[0].Format)
	assert.Equal(t, gputypes.PrimitiveTopologyTriangleList, g.PrimitiveState().Topology)
}
