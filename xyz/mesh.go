// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"

	"cogentcore.org/cloudview/colorize"
	"cogentcore.org/cloudview/geom"
)

// MeshOptions are the options for [NewMesh] and [MeshChange].
type MeshOptions struct {

	// ConstantColor colors the whole mesh; white if nil.
	// It accepts a [colorize.Constant], a [color.Color], or an RGB triple.
	ConstantColor any

	// FaceOpacity is the opacity of the faces with a constant color.
	// Zero takes the default of opaque faces.
	FaceOpacity float32 `default:"1"`

	// VertexColor has a scalar or an RGB color per vertex, and takes
	// precedence over ConstantColor.
	VertexColor any

	// LineColor is the color of the wireframe overlay; gray if zero.
	LineColor color.RGBA

	// LineOpacity is the opacity of the wireframe overlay, which is only
	// drawn when it is > 0.
	LineOpacity float32

	// Resolver resolves VertexColor; if nil, the mesh keeps its own
	// resolver with the default colormap.
	Resolver *colorize.Resolver
}

// DefaultMeshOptions returns the default mesh options: opaque white
// faces and no wireframe.
func DefaultMeshOptions() *MeshOptions {
	mo := &MeshOptions{}
	mo.Defaults()
	return mo
}

// Defaults sets the default options.
func (mo *MeshOptions) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(mo))
	mo.LineColor = colors.FromRGB(0xaa, 0xaa, 0xaa)
}

// withDefaults returns a copy of the options with the zero
// opacity and line color replaced by their defaults.
func (mo *MeshOptions) withDefaults() *MeshOptions {
	def := DefaultMeshOptions()
	o := *mo
	if o.FaceOpacity <= 0 {
		o.FaceOpacity = def.FaceOpacity
	}
	if o.LineColor == (color.RGBA{}) {
		o.LineColor = def.LineColor
	}
	return &o
}

// Mesh is a triangle mesh, colored by a constant or per vertex,
// with an optional wireframe overlay drawn from the same geometry.
type Mesh struct {

	// Name of the mesh.
	Name string

	// Resolver resolves vertex color inputs and keeps the range of the
	// last scalar field, for colorbars.
	Resolver *colorize.Resolver

	surface   *Drawable
	wireframe *Drawable
}

// NewMesh returns a new mesh with the given vertices and triangles.
// If opts is nil, [DefaultMeshOptions] are used.
func NewMesh[P, F colorize.Number](v [][3]P, f [][3]F, opts *MeshOptions) (*Mesh, error) {
	idx, err := geom.Faces(f)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultMeshOptions()
	}
	ms := &Mesh{Name: "mesh", Resolver: opts.Resolver}
	if ms.Resolver == nil {
		ms.Resolver = newResolver(DefaultSettings())
	}
	pos := geom.Positions(v)
	surf, wire, clr, err := materials(ms.Resolver, opts, len(v))
	if err != nil {
		return nil, err
	}
	g, err := geom.Build(pos, idx, clr)
	if err != nil {
		return nil, err
	}
	ms.surface = &Drawable{Name: ms.Name, Geometry: g, Surface: surf}
	ms.setWireframe(wire)
	return ms, nil
}

// materials returns the surface and wireframe materials and vertex
// colors for the given options and number of vertices.
func materials(rs *colorize.Resolver, opts *MeshOptions, n int) (surf, wire *MeshMaterial, clr colorize.Buffer, err error) {
	opts = opts.withDefaults()
	if opts.VertexColor != nil {
		clr, err = rs.ResolveAny(opts.VertexColor, n)
		if err != nil {
			return
		}
		surf = NewLambertMaterial()
	} else {
		c := colors.FromRGB(255, 255, 255)
		if opts.ConstantColor != nil {
			var spec colorize.Spec
			spec, err = colorize.Classify(opts.ConstantColor, 1)
			if err != nil {
				return
			}
			cs, ok := spec.(colorize.Constant)
			if !ok {
				err = colorize.ErrInvalidColorShape
				return
			}
			c = colorize.ToRGBA(cs.Vector3())
		}
		surf = NewStandardMaterial(c, opts.FaceOpacity)
	}
	if opts.LineOpacity > 0 {
		wire = NewWireframeMaterial(opts.LineColor, opts.LineOpacity)
	}
	return
}

func (ms *Mesh) setWireframe(wire *MeshMaterial) {
	if wire == nil {
		ms.wireframe = nil
		return
	}
	ms.wireframe = &Drawable{Name: ms.Name + "-wireframe", Geometry: ms.surface.Geometry, Surface: wire}
}

// Drawables returns the surface and, if any, the wireframe overlay.
func (ms *Mesh) Drawables() []*Drawable {
	if ms.wireframe != nil {
		return []*Drawable{ms.surface, ms.wireframe}
	}
	return []*Drawable{ms.surface}
}

// Geometry returns the geometry shared by the surface and wireframe.
func (ms *Mesh) Geometry() *geom.Geometry {
	return ms.surface.Geometry
}

// Material returns the surface material.
func (ms *Mesh) Material() *MeshMaterial {
	return ms.surface.Surface
}

// Wireframe returns the wireframe material, or nil.
func (ms *Mesh) Wireframe() *MeshMaterial {
	if ms.wireframe == nil {
		return nil
	}
	return ms.wireframe.Surface
}

// MeshChange has the properties to change in [Mesh.Update].
// Nil fields keep their current value.
type MeshChange struct {

	// Positions are new flat vertex positions; see [geom.Positions].
	Positions math32.ArrayF32

	// Index is a new triangle index; see [geom.Faces].
	Index math32.ArrayU32

	// Options replace the colors and materials.
	Options *MeshOptions
}

// Update changes any of the vertices, triangles and materials.
// Nothing changes if the update fails. When the number of vertices
// changes without new options, vertex colors are dropped; see
// [geom.Geometry.Update].
func (ms *Mesh) Update(ch MeshChange) error {
	g := ms.surface.Geometry
	gc := geom.Change{Positions: ch.Positions, Index: ch.Index}
	var surf, wire *MeshMaterial
	rs := ms.Resolver
	prev := rs.State
	if ch.Options != nil {
		if ch.Options.Resolver != nil {
			rs = ch.Options.Resolver
			prev = rs.State
		}
		n := g.NumVertex()
		if ch.Positions != nil {
			n = len(ch.Positions) / 3
		}
		var clr colorize.Buffer
		var err error
		surf, wire, clr, err = materials(rs, ch.Options, n)
		if err != nil {
			return err
		}
		gc.Colors = clr
		gc.DropColors = clr == nil
	}
	if err := g.Update(gc); err != nil {
		rs.State = prev
		return err
	}
	ms.Resolver = rs
	if ch.Options != nil {
		ms.surface.Surface = surf
		ms.setWireframe(wire)
	} else if !g.HasColor() && ms.surface.Surface.VertexColors {
		ms.surface.Surface = NewStandardMaterial(colors.FromRGB(255, 255, 255), 1)
	}
	return nil
}
