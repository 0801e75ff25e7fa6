// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom builds GPU-ready vertex buffers (positions, optional
// per-vertex colors, optional uint32 triangle indexes and normals)
// from raw coordinate and face arrays.
package geom

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"

	"cogentcore.org/cloudview/colorize"
)

// ErrIndexRange is returned for face indexes that are negative or
// not less than the number of vertices.
var ErrIndexRange = errors.New("geom: face index out of range")

// Geometry holds the vertex buffers for one point cloud or mesh.
// All per-vertex buffers are flat with 3 float32 values per vertex,
// and Index has 3 uint32 values per triangle.
//
// Geometry takes ownership of the buffers given to [Build] and
// [Geometry.Update]; callers must not modify them afterwards.
type Geometry struct {

	// Positions has the vertex positions.
	Positions math32.ArrayF32

	// Colors has the per-vertex colors in [0,1], or is nil if the
	// default color is used.
	Colors math32.ArrayF32

	// Index has the triangle vertex indexes, or is nil for point clouds.
	Index math32.ArrayU32

	// Normals has the per-vertex normals, computed for meshes.
	Normals math32.ArrayF32

	// FaceNormals has the per-triangle normals, computed for meshes.
	FaceNormals math32.ArrayF32

	// BBox is the bounding box of the positions.
	BBox math32.Box3

	// version is incremented on every successful change.
	version uint64
}

// Build returns a new [Geometry] from flat positions, an optional
// triangle index (nil for a point cloud), and optional colors
// (nil for the default color).
// Use [Positions] and [Faces] to convert raw arrays.
func Build(positions math32.ArrayF32, index math32.ArrayU32, colors colorize.Buffer) (*Geometry, error) {
	g := &Geometry{}
	err := g.Update(Change{Positions: positions, Index: index, Colors: colors})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Points converts raw positions and builds a point cloud [Geometry].
func Points[P colorize.Number](positions [][3]P, colors colorize.Buffer) (*Geometry, error) {
	return Build(Positions(positions), nil, colors)
}

// Mesh converts raw positions and faces and builds a mesh [Geometry]
// with normals.
func Mesh[P, F colorize.Number](positions [][3]P, faces [][3]F, colors colorize.Buffer) (*Geometry, error) {
	idx, err := Faces(faces)
	if err != nil {
		return nil, err
	}
	return Build(Positions(positions), idx, colors)
}

// NumVertex returns the number of vertices.
func (g *Geometry) NumVertex() int {
	return len(g.Positions) / 3
}

// NumFace returns the number of triangles.
func (g *Geometry) NumFace() int {
	return len(g.Index) / 3
}

// HasColor returns whether the geometry has per-vertex colors.
func (g *Geometry) HasColor() bool {
	return len(g.Colors) > 0
}

// IsMesh returns whether the geometry has a triangle index.
func (g *Geometry) IsMesh() bool {
	return g.Index != nil
}

// Version returns a counter incremented on every successful change,
// which hosts can compare to know when buffers need uploading.
func (g *Geometry) Version() uint64 {
	return g.version
}

// Vertex returns the position of vertex i.
func (g *Geometry) Vertex(i int) math32.Vector3 {
	return vec3(g.Positions, i)
}

// Color returns the color of vertex i, which must have colors.
func (g *Geometry) Color(i int) math32.Vector3 {
	return vec3(g.Colors, i)
}

// Normal returns the normal of vertex i, which must be a mesh.
func (g *Geometry) Normal(i int) math32.Vector3 {
	return vec3(g.Normals, i)
}

// Face returns the vertex indexes of triangle i.
func (g *Geometry) Face(i int) [3]uint32 {
	return [3]uint32{g.Index[3*i], g.Index[3*i+1], g.Index[3*i+2]}
}

// Change has the buffers to replace in [Geometry.Update].
// Nil fields keep their prior value.
type Change struct {
	// Positions are the new vertex positions.
	Positions math32.ArrayF32

	// Index is the new triangle index.
	Index math32.ArrayU32

	// Colors are the new per-vertex colors.
	Colors colorize.Buffer

	// DropColors removes the colors, so the default color is used.
	DropColors bool
}

// Update replaces any subset of positions, index and colors.
// Everything is validated before any state changes, so on error the
// geometry is unchanged. Normals are recomputed whenever positions or
// the index change on a mesh. If the number of vertices changes and no
// new colors are given, the old colors are dropped because they no
// longer match; recomputing them is up to the caller.
func (g *Geometry) Update(ch Change) error {
	pos := g.Positions
	if ch.Positions != nil {
		pos = ch.Positions
	}
	if len(pos)%3 != 0 {
		return fmt.Errorf("geom: positions length %d is not a multiple of 3", len(pos))
	}
	n := len(pos) / 3
	idx := g.Index
	if ch.Index != nil {
		idx = ch.Index
	}
	if err := checkIndex(idx, n); err != nil {
		return err
	}
	clrs := g.Colors
	switch {
	case ch.Colors != nil:
		if len(ch.Colors) != 3*n {
			return &colorize.ShapeMismatchError{Got: ch.Colors.Len(), Expected: n}
		}
		clrs = math32.ArrayF32(ch.Colors)
	case ch.DropColors:
		clrs = nil
	case len(clrs) > 0 && len(clrs) != 3*n:
		slog.Debug("geom: dropping colors after vertex count change", "colors", len(clrs)/3, "vertices", n)
		clrs = nil
	}

	posChanged := ch.Positions != nil
	var normals, faceNormals math32.ArrayF32
	if idx != nil {
		if posChanged || ch.Index != nil || g.Normals == nil {
			faceNormals = FaceNormals(pos, idx)
			normals = VertexNormals(pos, idx, faceNormals)
		} else {
			faceNormals, normals = g.FaceNormals, g.Normals
		}
	}

	// validated: commit
	g.Positions = pos
	g.Index = idx
	g.Colors = clrs
	g.Normals = normals
	g.FaceNormals = faceNormals
	if posChanged || g.version == 0 {
		g.BBox = bounds(pos)
	}
	g.version++
	return nil
}

func checkIndex(idx math32.ArrayU32, n int) error {
	if len(idx)%3 != 0 {
		return fmt.Errorf("geom: index length %d is not a multiple of 3", len(idx))
	}
	for i, v := range idx {
		if int(v) >= n {
			return fmt.Errorf("%w: face %d has index %d, number of vertices is %d", ErrIndexRange, i/3, v, n)
		}
	}
	return nil
}

func bounds(pos math32.ArrayF32) math32.Box3 {
	bb := math32.B3Empty()
	for i := 0; i < len(pos)/3; i++ {
		bb.ExpandByPoint(vec3(pos, i))
	}
	return bb
}

func vec3(a math32.ArrayF32, i int) math32.Vector3 {
	return math32.Vec3(a[3*i], a[3*i+1], a[3*i+2])
}

func setVec3(a math32.ArrayF32, i int, v math32.Vector3) {
	a[3*i], a[3*i+1], a[3*i+2] = v.X, v.Y, v.Z
}
