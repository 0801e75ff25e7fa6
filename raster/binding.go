// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"github.com/gogpu/gputypes"

	"cogentcore.org/cloudview/sprite"
	"cogentcore.org/cloudview/xyz"
)

// binding is the host state of one drawable, as a GPU host keeps it in
// its pipelines and buffers: the program, the uniform block, and the
// vertex buffer layouts of the geometry.
type binding struct {

	// program is the point sprite program, for points.
	program *sprite.Program

	// uniforms are the uniforms as of the last sync.
	uniforms sprite.Uniforms

	// uniformsVersion is the material uniforms version of the last sync.
	uniformsVersion uint64

	// block is the uniform block of the last frame.
	block []byte

	layouts   []gputypes.VertexBufferLayout
	primitive gputypes.PrimitiveState

	// geometry is the geometry version the layouts were made for.
	geometry uint64
}

// bind returns the binding of the drawable, updated for what changed
// since the last frame. A stale point material gets its program again,
// which compiles only for defines not in the program cache. Uniform
// changes never do.
func (r *Renderer) bind(d *xyz.Drawable, mvp *math32.Matrix4, viewport math32.Vector2) (*binding, error) {
	if r.bindings == nil {
		r.bindings = map[*xyz.Drawable]*binding{}
	}
	b, ok := r.bindings[d]
	if !ok {
		b = &binding{}
		r.bindings[d] = b
	}
	g := d.Geometry
	if !ok || b.geometry != g.Version() {
		if d.IsPoints() {
			b.layouts = g.PointLayouts()
		} else {
			b.layouts = g.MeshLayouts()
		}
		b.primitive = g.PrimitiveState()
		b.geometry = g.Version()
		slog.Debug("raster: bound geometry", "name", d.Name, "buffers", len(b.layouts), "version", b.geometry)
	}
	if !d.IsPoints() {
		return b, nil
	}
	mt := d.Points
	if b.program == nil || mt.Stale() || b.program.Defines != mt.Defines() {
		p, err := mt.Program()
		if err != nil {
			return nil, fmt.Errorf("raster: %s: %w", d.Name, err)
		}
		b.program = p
	}
	// other hosts may have synced the material already
	if !ok || mt.NeedsUpdate() || b.uniformsVersion != mt.UniformsVersion() {
		b.uniforms = mt.Uniforms()
		b.uniformsVersion = mt.UniformsVersion()
	}
	mt.Synced()
	b.block = mt.UniformBlock(mvp, viewport)
	return b, nil
}

// Bound returns the number of drawables with host state.
func (r *Renderer) Bound() int {
	return len(r.bindings)
}
