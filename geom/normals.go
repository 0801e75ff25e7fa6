// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "cogentcore.org/core/math32"

// FaceNormals returns the unit normal of each triangle, from the cross
// product of its two edges leaving the first vertex, so that counter
// clockwise winding faces the viewer. Degenerate triangles get a zero normal.
func FaceNormals(pos math32.ArrayF32, index math32.ArrayU32) math32.ArrayF32 {
	nf := len(index) / 3
	fn := make(math32.ArrayF32, 3*nf)
	for f := 0; f < nf; f++ {
		v0 := vec3(pos, int(index[3*f]))
		v1 := vec3(pos, int(index[3*f+1]))
		v2 := vec3(pos, int(index[3*f+2]))
		n := v1.Sub(v0).Cross(v2.Sub(v0))
		setVec3(fn, f, normalize(n))
	}
	return fn
}

// VertexNormals returns the unit normal of each vertex, as the
// normalized sum of the normals of the faces using it.
// Vertices not used by any face get a zero normal.
func VertexNormals(pos math32.ArrayF32, index math32.ArrayU32, faceNormals math32.ArrayF32) math32.ArrayF32 {
	vn := make(math32.ArrayF32, len(pos))
	for f := 0; f < len(index)/3; f++ {
		n := vec3(faceNormals, f)
		for k := 0; k < 3; k++ {
			vi := int(index[3*f+k])
			setVec3(vn, vi, vec3(vn, vi).Add(n))
		}
	}
	for i := 0; i < len(vn)/3; i++ {
		setVec3(vn, i, normalize(vec3(vn, i)))
	}
	return vn
}

func normalize(v math32.Vector3) math32.Vector3 {
	l := v.Length()
	if l == 0 {
		return math32.Vector3{}
	}
	return v.MulScalar(1 / l)
}

// ComputeNormals recomputes the face and vertex normals of a mesh.
// It does nothing for point clouds.
func (g *Geometry) ComputeNormals() {
	if g.Index == nil {
		return
	}
	g.FaceNormals = FaceNormals(g.Positions, g.Index)
	g.Normals = VertexNormals(g.Positions, g.Index, g.FaceNormals)
}
