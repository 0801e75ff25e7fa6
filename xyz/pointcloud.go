// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/math32"

	"cogentcore.org/cloudview/colorize"
	"cogentcore.org/cloudview/geom"
	"cogentcore.org/cloudview/sprite"
)

// PointCloudOptions are the options for [NewPointCloud].
type PointCloudOptions struct {

	// Color is any color input accepted by [colorize.Classify]:
	// a constant, one scalar per point, or one RGB triple per point.
	// If nil, points use the default red.
	Color any

	// Radius is the point size; see [sprite.Uniforms.PointSize].
	// A value of 1 suits a cloud of a few thousand points in [-0.5, 0.5]^3.
	// Zero takes the default.
	Radius float32 `default:"1"`

	// ConstantSize keeps the point size fixed in pixels.
	ConstantSize bool

	// Spherical is the intensity of the edge darkening that mimics
	// spheres. Zero takes the default unless Flat is set.
	Spherical float32 `default:"2"`

	// Flat draws flat discs, without edge darkening.
	Flat bool

	// Resolver resolves Color; if nil, a new resolver with the
	// default colormap is used.
	Resolver *colorize.Resolver
}

// DefaultPointCloudOptions returns the options from the given settings,
// or from the default settings if nil.
func DefaultPointCloudOptions(s *Settings) *PointCloudOptions {
	if s == nil {
		s = DefaultSettings()
	}
	return &PointCloudOptions{Radius: s.Radius, Spherical: s.Spherical, Flat: s.Spherical == 0, Resolver: newResolver(s)}
}

// Defaults sets the default options.
func (po *PointCloudOptions) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(po))
}

// withDefaults returns a copy of the options with the zero
// sizes replaced by their defaults.
func (po *PointCloudOptions) withDefaults() *PointCloudOptions {
	def := &PointCloudOptions{}
	def.Defaults()
	o := *po
	if o.Radius <= 0 {
		o.Radius = def.Radius
	}
	switch {
	case o.Flat:
		o.Spherical = 0
	case o.Spherical == 0:
		o.Spherical = def.Spherical
	}
	return &o
}

func newResolver(s *Settings) *colorize.Resolver {
	cm, err := colorize.Named(s.Colormap)
	if err != nil {
		slog.Error("xyz: using default colormap", "err", err)
		cm = colorize.Default()
	}
	return colorize.NewResolver(cm, false)
}

// PointCloud is a set of points drawn as point sprites.
type PointCloud struct {

	// Name of the point cloud.
	Name string

	// Resolver resolves color inputs and keeps the range of the last
	// scalar field, for colorbars.
	Resolver *colorize.Resolver

	drawable *Drawable
	slider   *Slider
}

// NewPointCloud returns a new point cloud of the given points.
// If opts is nil, [DefaultPointCloudOptions] are used.
func NewPointCloud[P colorize.Number](points [][3]P, opts *PointCloudOptions) (*PointCloud, error) {
	if opts == nil {
		opts = DefaultPointCloudOptions(nil)
	}
	opts = opts.withDefaults()
	pc := &PointCloud{Name: "pointcloud", Resolver: opts.Resolver}
	if pc.Resolver == nil {
		pc.Resolver = newResolver(DefaultSettings())
	}
	pos := geom.Positions(points)
	clr, err := pc.resolve(opts.Color, len(points))
	if err != nil {
		return nil, err
	}
	g, err := geom.Build(pos, nil, clr)
	if err != nil {
		return nil, err
	}
	u := sprite.Uniforms{PointSize: opts.Radius, Spherical: opts.Spherical}
	d := sprite.Defines{ConstantDisplaySize: opts.ConstantSize, UseColor: clr != nil}
	pc.drawable = &Drawable{Name: pc.Name, Geometry: g, Points: sprite.NewMaterial(u, d)}
	return pc, nil
}

// resolve returns nil for a nil color.
func (pc *PointCloud) resolve(color any, n int) (colorize.Buffer, error) {
	if color == nil {
		return nil, nil
	}
	return pc.Resolver.ResolveAny(color, n)
}

// Drawables returns the point sprite drawable.
func (pc *PointCloud) Drawables() []*Drawable {
	return []*Drawable{pc.drawable}
}

// Geometry returns the geometry of the points.
func (pc *PointCloud) Geometry() *geom.Geometry {
	return pc.drawable.Geometry
}

// Material returns the point sprite material.
func (pc *PointCloud) Material() *sprite.Material {
	return pc.drawable.Points
}

// Radius returns the current point size.
func (pc *PointCloud) Radius() float32 {
	return pc.drawable.Points.Uniforms().PointSize
}

// Len returns the number of points.
func (pc *PointCloud) Len() int {
	return pc.drawable.Geometry.NumVertex()
}

// PointCloudChange has the properties to change in [PointCloud.Update].
type PointCloudChange struct {

	// Positions are new flat point positions; see [geom.Positions].
	Positions math32.ArrayF32

	// Color is a new color input. When the positions or the color
	// change, the points use this color, or the default red if nil.
	Color any

	// Radius is a new point size, if > 0.
	Radius float32
}

// Update changes the point cloud. New positions or a new color rebuild
// the color buffer: a nil Color then means the default red, as when
// constructing. A new radius alone only sets a uniform.
// Nothing changes if the update fails.
func (pc *PointCloud) Update(ch PointCloudChange) error {
	m := pc.drawable.Points
	if ch.Positions != nil || ch.Color != nil {
		n := pc.Len()
		if ch.Positions != nil {
			if len(ch.Positions)%3 != 0 {
				return fmt.Errorf("xyz.PointCloud: positions length %d is not a multiple of 3", len(ch.Positions))
			}
			n = len(ch.Positions) / 3
		}
		clr, err := pc.resolve(ch.Color, n)
		if err != nil {
			return err
		}
		err = pc.drawable.Geometry.Update(geom.Change{Positions: ch.Positions, Colors: clr, DropColors: clr == nil})
		if err != nil {
			return err
		}
		d := m.Defines()
		d.UseColor = clr != nil
		m.SetDefines(d)
	}
	if ch.Radius > 0 {
		pc.setRadius(ch.Radius)
	}
	return nil
}

func (pc *PointCloud) setRadius(r float32) {
	if err := pc.drawable.Points.SetUniform(sprite.PointSize, r); err != nil {
		slog.Error(err.Error())
	}
}

// WithSlider adds a slider controlling the point size and returns the
// point cloud. Zero arguments take defaults from the current radius:
// min radius/4, max radius*2, and step radius/16.
func (pc *PointCloud) WithSlider(min, max, step float32) *PointCloud {
	r := pc.Radius()
	if min == 0 {
		min = r / 4
	}
	if max == 0 {
		max = r * 2
	}
	if step == 0 {
		step = r / 16
	}
	pc.slider = NewSlider("radius", r, min, max, step)
	pc.slider.OnChange(pc.setRadius)
	return pc
}

// Slider returns the point size slider, or nil if there is none.
func (pc *PointCloud) Slider() *Slider {
	return pc.slider
}
