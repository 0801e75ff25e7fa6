// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster is an offscreen software [xyz.Host]: it renders views
// on the CPU with the same point sprite stages as the GPU shader, and
// Lambert or specular lit meshes with wireframe overlays.
// It is used for headless rendering and for testing.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"cogentcore.org/core/math32"
	"github.com/anthonynsimon/bild/transform"

	"cogentcore.org/cloudview/colorize"
	"cogentcore.org/cloudview/xyz"
)

// Renderer renders views into images on the CPU.
type Renderer struct {

	// Supersample is the number of samples per pixel along each axis.
	// The frame is rendered at that multiple of the view size and
	// downsampled, which antialiases mesh edges.
	Supersample int

	// WireDepthBias is subtracted from the depth of wireframe lines so
	// they are not hidden by their own surface.
	WireDepthBias float32

	// Frames is the number of frames rendered.
	Frames int

	// bindings has the host state of every drawable rendered so far.
	bindings map[*xyz.Drawable]*binding
}

// NewRenderer returns a new renderer with default settings.
func NewRenderer() *Renderer {
	return &Renderer{Supersample: 1, WireDepthBias: 1e-4}
}

// Render renders the view into dst.
func (r *Renderer) Render(v *xyz.View, dst *image.RGBA) error {
	sz := dst.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return fmt.Errorf("raster.Renderer: empty destination image %v", sz)
	}
	ss := max(r.Supersample, 1)
	cam := v.Camera()
	// the camera may be shared by views of other sizes
	mvp := cam.ViewProjectionAspect(float32(sz.X) / float32(sz.Y))
	viewport := math32.Vec2(float32(sz.X*ss), float32(sz.Y*ss))

	f := newFrame(sz.X*ss, sz.Y*ss, float32(ss), colorize.ConstantFromColor(v.Background).Vector3())
	ambient, dirs := v.Lighting()
	lt := &lighting{ambient: ambient, dirs: dirs, eye: cam.Pos}

	for _, d := range sortDrawables(v.Drawables, &mvp) {
		b, err := r.bind(d, &mvp, viewport)
		if err != nil {
			return err
		}
		switch {
		case d.IsPoints():
			f.drawPoints(d, b, &mvp)
		case d.Surface == nil:
			slog.Warn("raster: skipping drawable without a material", "name", d.Name)
		case d.Surface.Wireframe:
			f.drawWireframe(d, &mvp, r.WireDepthBias)
		default:
			f.drawSurface(d, &mvp, lt)
		}
	}

	img := f.image()
	if ss > 1 {
		img = transform.Resize(img, sz.X, sz.Y, transform.Linear)
	}
	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Src)
	r.Frames++
	slog.Debug("raster: rendered view", "title", v.Title, "drawables", len(v.Drawables), "size", sz, "supersample", ss)
	return nil
}

// frame is the color and depth buffer of one render.
type frame struct {
	width, height int

	// scale is the supersampling factor, which scales pixel sizes.
	scale float32

	color []math32.Vector3
	depth []float32
}

func newFrame(width, height int, scale float32, bg math32.Vector3) *frame {
	f := &frame{width: width, height: height, scale: scale}
	n := width * height
	f.color = make([]math32.Vector3, n)
	f.depth = make([]float32, n)
	for i := range n {
		f.color[i] = bg
		f.depth[i] = math32.Inf(1)
	}
	return f
}

// screen returns the pixel coordinates and NDC depth of a clip position.
func (f *frame) screen(clip math32.Vector4) math32.Vector3 {
	ndc := clip.PerspDiv()
	return math32.Vec3((ndc.X+1)/2*float32(f.width), (1-ndc.Y)/2*float32(f.height), ndc.Z)
}

// plot blends c with the given alpha into pixel x, y if z passes the
// depth test, and writes the depth if write is true.
func (f *frame) plot(x, y int, z float32, c math32.Vector3, alpha float32, write bool) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height || z < -1 || z > 1 {
		return
	}
	i := y*f.width + x
	if z >= f.depth[i] {
		return
	}
	if alpha >= 1 {
		f.color[i] = c
	} else {
		f.color[i] = f.color[i].MulScalar(1 - alpha).Add(c.MulScalar(alpha))
	}
	if write {
		f.depth[i] = z
	}
}

// image returns the color buffer as an image.
func (f *frame) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i, c := range f.color {
		img.SetRGBA(i%f.width, i/f.width, colorize.ToRGBA(c))
	}
	return img
}
