// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz composes point clouds and triangle meshes into views
// with a camera, orbit controls, and lights, ready for a [Host] to
// render. Objects own their [Drawable]s; views only reference them,
// so several views can show the same objects.
package xyz

import (
	"image"

	"cogentcore.org/cloudview/geom"
	"cogentcore.org/cloudview/sprite"
)

// Object is anything that can be shown in a [View].
type Object interface {

	// Drawables returns the drawables owned by the object, in drawing order.
	Drawables() []*Drawable
}

// SliderObject is an [Object] that has a slider control to show next to
// the views containing it.
type SliderObject interface {
	Object

	// Slider returns the slider, or nil if there is none.
	Slider() *Slider
}

// Drawable pairs a geometry with the material used to draw it.
// Exactly one of Points and Surface is set.
type Drawable struct {

	// Name of the drawable, for debugging.
	Name string

	// Geometry has the vertex buffers.
	Geometry *geom.Geometry

	// Points is the point sprite material, for point clouds.
	Points *sprite.Material

	// Surface is the lit material, for meshes and their wireframes.
	Surface *MeshMaterial
}

// IsPoints returns whether the drawable is drawn as point sprites.
func (d *Drawable) IsPoints() bool {
	return d.Points != nil
}

// Host renders views, for example to a window or an offscreen image.
type Host interface {

	// Render draws the view into dst, which has the size of the view.
	Render(v *View, dst *image.RGBA) error
}
