// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"cogentcore.org/core/math32"

	"cogentcore.org/cloudview/colorize"
	"cogentcore.org/cloudview/xyz"
)

// lighting has the lights of a view, for per vertex shading.
type lighting struct {
	ambient math32.Vector3
	dirs    []*xyz.DirLight
	eye     math32.Vector3
}

// shade returns the lit color of a vertex with the given base color,
// position and unit normal.
func (lt *lighting) shade(mt *xyz.MeshMaterial, base, pos, n math32.Vector3) math32.Vector3 {
	c := base.Mul(lt.ambient)
	for _, dl := range lt.dirs {
		l := dl.ToLight()
		nl := n.Dot(l)
		if nl <= 0 {
			continue
		}
		rad := dl.Radiance()
		c = c.Add(base.Mul(rad).MulScalar(nl))
		if mt.Shading != xyz.Standard || mt.Reflective <= 0 {
			continue
		}
		h := l.Add(lt.eye.Sub(pos).Normal()).Normal()
		if nh := n.Dot(h); nh > 0 {
			c = c.Add(rad.MulScalar(mt.Reflective * math32.Pow(nh, mt.Shiny)))
		}
	}
	return math32.Vec3(math32.Clamp(c.X, 0, 1), math32.Clamp(c.Y, 0, 1), math32.Clamp(c.Z, 0, 1))
}

// project returns the screen positions of all vertices of d, and
// whether each is in front of the camera.
func (f *frame) project(d *xyz.Drawable, mvp *math32.Matrix4) ([]math32.Vector3, []bool) {
	g := d.Geometry
	n := g.NumVertex()
	scr := make([]math32.Vector3, n)
	ok := make([]bool, n)
	for i := range n {
		clip := math32.Vector4FromVector3(g.Vertex(i), 1).MulMatrix4(mvp)
		if clip.W <= 0 {
			continue
		}
		scr[i] = f.screen(clip)
		ok[i] = true
	}
	return scr, ok
}

// drawSurface draws the lit triangles of a mesh, with colors computed
// at the vertices and interpolated. Back faces are dropped unless the
// material is double sided, in which case they are lit from behind.
func (f *frame) drawSurface(d *xyz.Drawable, mvp *math32.Matrix4, lt *lighting) {
	g := d.Geometry
	mt := d.Surface
	scr, ok := f.project(d, mvp)
	vertex := mt.VertexColors && g.HasColor()
	uniform := colorize.ConstantFromColor(mt.Color).Vector3()
	alpha := float32(1)
	if mt.IsTransparent() {
		alpha = mt.Opacity
	}
	for fi := range g.NumFace() {
		tri := g.Face(fi)
		if !ok[tri[0]] || !ok[tri[1]] || !ok[tri[2]] {
			continue
		}
		p := [3]math32.Vector3{scr[tri[0]], scr[tri[1]], scr[tri[2]]}
		// screen y points down, so front faces wind clockwise here
		front := edge(p[0], p[1], p[2]) < 0
		if !front && !mt.DoubleSided {
			continue
		}
		var c [3]math32.Vector3
		for k, vi := range tri {
			i := int(vi)
			base := uniform
			if vertex {
				base = g.Color(i)
			}
			nrm := g.Normal(i)
			if !front {
				nrm = nrm.Negate()
			}
			c[k] = lt.shade(mt, base, g.Vertex(i), nrm)
		}
		f.fillTriangle(p, c, alpha, alpha >= 1)
	}
}

// edge returns twice the signed area of the triangle a, b, c.
func edge(a, b, c math32.Vector3) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// fillTriangle fills the pixels whose centers are inside the triangle,
// interpolating depth and color.
func (f *frame) fillTriangle(p [3]math32.Vector3, c [3]math32.Vector3, alpha float32, write bool) {
	area := edge(p[0], p[1], p[2])
	if area == 0 {
		return
	}
	minX := max(int(math32.Floor(min(p[0].X, p[1].X, p[2].X))), 0)
	maxX := min(int(math32.Ceil(max(p[0].X, p[1].X, p[2].X))), f.width-1)
	minY := max(int(math32.Floor(min(p[0].Y, p[1].Y, p[2].Y))), 0)
	maxY := min(int(math32.Ceil(max(p[0].Y, p[1].Y, p[2].Y))), f.height-1)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			pt := math32.Vec3(float32(x)+.5, float32(y)+.5, 0)
			w0 := edge(p[1], p[2], pt) / area
			w1 := edge(p[2], p[0], pt) / area
			w2 := edge(p[0], p[1], pt) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*p[0].Z + w1*p[1].Z + w2*p[2].Z
			cl := c[0].MulScalar(w0).Add(c[1].MulScalar(w1)).Add(c[2].MulScalar(w2))
			f.plot(x, y, z, cl, alpha, write)
		}
	}
}

// drawWireframe draws each triangle edge once as an unlit line.
func (f *frame) drawWireframe(d *xyz.Drawable, mvp *math32.Matrix4, bias float32) {
	g := d.Geometry
	mt := d.Surface
	scr, ok := f.project(d, mvp)
	c := colorize.ConstantFromColor(mt.Color).Vector3()
	alpha := mt.Opacity
	if !mt.Transparent {
		alpha = 1
	}
	drawn := make(map[[2]uint32]bool)
	for fi := range g.NumFace() {
		tri := g.Face(fi)
		for k := range 3 {
			a, b := tri[k], tri[(k+1)%3]
			key := [2]uint32{min(a, b), max(a, b)}
			if drawn[key] || !ok[a] || !ok[b] {
				continue
			}
			drawn[key] = true
			f.drawLine(scr[a], scr[b], c, alpha, bias)
		}
	}
}

// drawLine draws a line between two screen points, one pixel wide at
// the view resolution.
func (f *frame) drawLine(a, b, c math32.Vector3, alpha, bias float32) {
	d := b.Sub(a)
	steps := int(math32.Ceil(max(math32.Abs(d.X), math32.Abs(d.Y))))
	w := max(int(f.scale), 1)
	for s := 0; s <= steps; s++ {
		t := float32(0)
		if steps > 0 {
			t = float32(s) / float32(steps)
		}
		p := a.Add(d.MulScalar(t))
		x0 := int(math32.Floor(p.X)) - w/2
		y0 := int(math32.Floor(p.Y)) - w/2
		for y := y0; y < y0+w; y++ {
			for x := x0; x < x0+w; x++ {
				f.plot(x, y, p.Z-bias, c, alpha, false)
			}
		}
	}
}
