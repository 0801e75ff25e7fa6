// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/cloudview/sprite"
	"cogentcore.org/cloudview/xyz"
)

// drawPoints draws each point as a screen aligned square sprite through
// the point sprite stages, with the defines of the bound program and the
// synced uniforms. Fragments with alpha below one half blend without
// writing depth, so antialiased edges do not hide points behind.
func (f *frame) drawPoints(d *xyz.Drawable, b *binding, mvp *math32.Matrix4) {
	g := d.Geometry
	u, df := b.uniforms, b.program.Defines
	u.PointSize *= f.scale
	useColor := df.UseColor && g.HasColor()
	df.UseColor = useColor
	for i := range g.NumVertex() {
		var c math32.Vector3
		if useColor {
			c = g.Color(i)
		}
		out := sprite.Vertex(g.Vertex(i), mvp, u, df, c)
		if out.Clip.W <= 0 || out.Size <= 0 {
			continue
		}
		p := f.screen(out.Clip)
		h := out.Size / 2
		x0, y0 := p.X-h, p.Y-h
		minX, maxX := max(int(math32.Floor(x0)), 0), min(int(math32.Ceil(p.X+h)), f.width)
		minY, maxY := max(int(math32.Floor(y0)), 0), min(int(math32.Ceil(p.Y+h)), f.height)
		for y := minY; y < maxY; y++ {
			for x := minX; x < maxX; x++ {
				coord := math32.Vec2((float32(x)+.5-x0)/out.Size, (float32(y)+.5-y0)/out.Size)
				fc, ok := sprite.Fragment(coord, out, u.Spherical)
				if !ok {
					continue
				}
				f.plot(x, y, p.Z, math32.Vec3(fc.X, fc.Y, fc.Z), fc.W, fc.W >= 0.5)
			}
		}
	}
}
