// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"slices"

	"cogentcore.org/core/math32"

	"cogentcore.org/cloudview/xyz"
)

// RenderClasses define the different classes of rendering,
// in drawing order.
type RenderClasses int32

const (
	RClassNone RenderClasses = iota
	RClassOpaqueUniform
	RClassOpaqueVertex
	RClassPoints
	RClassTransUniform
	RClassTransVertex
	RClassWireframe
)

// RenderClass returns the render class of the given drawable.
func RenderClass(d *xyz.Drawable) RenderClasses {
	switch {
	case d.IsPoints():
		return RClassPoints
	case d.Surface == nil:
		return RClassNone
	case d.Surface.Wireframe:
		return RClassWireframe
	}
	mt := d.Surface
	vertex := mt.VertexColors && d.Geometry.HasColor()
	switch {
	case mt.IsTransparent() && vertex:
		return RClassTransVertex
	case mt.IsTransparent():
		return RClassTransUniform
	case vertex:
		return RClassOpaqueVertex
	}
	return RClassOpaqueUniform
}

// sortDrawables returns the drawables in drawing order: by render class,
// opaque front to back, and transparent back to front,
// as z sorting is key for blending.
func sortDrawables(ds []*xyz.Drawable, mvp *math32.Matrix4) []*xyz.Drawable {
	type item struct {
		d  *xyz.Drawable
		rc RenderClasses
		z  float32
	}
	items := make([]item, 0, len(ds))
	for _, d := range ds {
		if d.Geometry == nil || d.Geometry.NumVertex() == 0 {
			continue
		}
		rc := RenderClass(d)
		if rc == RClassNone {
			continue
		}
		items = append(items, item{d: d, rc: rc, z: d.Geometry.BBox.MVProjToNDC(mvp).Min.Z})
	}
	slices.SortStableFunc(items, func(a, b item) int {
		if a.rc != b.rc {
			return int(a.rc - b.rc)
		}
		switch {
		case a.z == b.z:
			return 0
		case (a.z < b.z) == (a.rc < RClassTransUniform):
			return -1
		}
		return 1
	})
	sorted := make([]*xyz.Drawable, len(items))
	for i, it := range items {
		sorted[i] = it.d
	}
	return sorted
}
