// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/cloudview/colorize"
	"cogentcore.org/cloudview/sprite"
	"cogentcore.org/cloudview/xyz"
)

var white = color.RGBA{255, 255, 255, 255}

// quadAt returns a unit square centered on the z axis at the given depth.
func quadAt(z float64) ([][3]float64, [][3]int) {
	v := [][3]float64{{-.5, -.5, z}, {.5, -.5, z}, {.5, .5, z}, {-.5, .5, z}}
	f := [][3]int{{0, 1, 2}, {0, 2, 3}}
	return v, f
}

// testView returns a 64x64 view looking at the origin from (0, 0, 3).
func testView(objs ...xyz.Object) *xyz.View {
	v := xyz.NewViewWith(xyz.ViewOptions{Width: 64, Height: 64}, objs...)
	cm := v.Camera()
	cm.Pos = math32.Vec3(0, 0, 3)
	cm.LookAtOrigin()
	return v
}

func render(t *testing.T, v *xyz.View) *image.RGBA {
	img, err := v.Render(NewRenderer())
	require.NoError(t, err)
	return img
}

func spritePoints(t *testing.T, pts [][3]float64, clr any, spherical float32) *xyz.PointCloud {
	pc, err := xyz.NewPointCloud(pts, &xyz.PointCloudOptions{Color: clr, Radius: 20, ConstantSize: true, Spherical: spherical, Flat: spherical == 0})
	require.NoError(t, err)
	return pc
}

func TestRenderBackground(t *testing.T) {
	img := render(t, testView())
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(32, 32))
}

func TestRenderPoint(t *testing.T) {
	img := render(t, testView(spritePoints(t, [][3]float64{{0, 0, 0}}, nil, 0)))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(32, 32))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(38, 30))
	assert.Equal(t, white, img.RGBAAt(0, 0))
	// outside the inscribed circle
	assert.Equal(t, white, img.RGBAAt(23, 23))
	assert.Equal(t, white, img.RGBAAt(32, 45))
}

func TestRenderPointSpherical(t *testing.T) {
	img := render(t, testView(spritePoints(t, [][3]float64{{0, 0, 0}}, [3]float64{1, 0, 0}, 2)))
	center := img.RGBAAt(32, 32)
	edge := img.RGBAAt(40, 32)
	assert.Greater(t, center.R, edge.R)
	assert.Greater(t, center.R, uint8(250))
	assert.InDelta(t, 163, int(edge.R), 2)
	assert.Equal(t, uint8(0), edge.G)
}

func TestRenderPointDepth(t *testing.T) {
	green := color.RGBA{0, 255, 0, 255}
	pts := [][3]float64{{0, 0, 1}, {0, 0, -1}}
	img := render(t, testView(spritePoints(t, pts, [][3]float64{{0, 1, 0}, {0, 0, 1}}, 0)))
	assert.Equal(t, green, img.RGBAAt(32, 32))

	pts[0], pts[1] = pts[1], pts[0]
	img = render(t, testView(spritePoints(t, pts, [][3]float64{{0, 0, 1}, {0, 1, 0}}, 0)))
	assert.Equal(t, green, img.RGBAAt(32, 32))
}

func TestRenderPointPerspectiveSize(t *testing.T) {
	pc, err := xyz.NewPointCloud([][3]float64{{0, 0, 0}}, &xyz.PointCloudOptions{Radius: 3})
	require.NoError(t, err)
	v := testView(pc)
	near := render(t, v)
	v.Camera().Pos = math32.Vec3(0, 0, 6)
	v.Camera().LookAtOrigin()
	far := render(t, v)

	// size 10 * 3 / 3 = 10 pixels, then 5 pixels
	assert.NotEqual(t, white, near.RGBAAt(35, 32))
	assert.Equal(t, white, far.RGBAAt(35, 32))
	assert.NotEqual(t, white, far.RGBAAt(32, 32))
}

func TestRenderMesh(t *testing.T) {
	qv, qf := quadAt(0)
	ms, err := xyz.NewMesh(qv, qf, nil)
	require.NoError(t, err)
	img := render(t, testView(ms))

	// ambient 0.8, the key light is edge on
	c := img.RGBAAt(32, 32)
	assert.InDelta(t, 204, int(c.R), 3)
	assert.Equal(t, c.R, c.G)
	assert.Equal(t, c.R, c.B)
	assert.Equal(t, white, img.RGBAAt(2, 2))
}

func TestRenderMeshLit(t *testing.T) {
	qv, qf := quadAt(0)
	ms, err := xyz.NewMesh(qv, qf, &xyz.MeshOptions{ConstantColor: colorize.RGB(1, 0, 0), FaceOpacity: 1})
	require.NoError(t, err)
	v := testView(ms)
	v.Lights.ValueByKey("key").(*xyz.DirLight).Pos = math32.Vec3(0, 0, 1)
	img := render(t, v)
	c := img.RGBAAt(32, 32)
	assert.Equal(t, uint8(255), c.R)
	assert.Greater(t, c.G, uint8(0))

	v.Lights.ValueByKey("key").AsLightBase().On = false
	img = render(t, v)
	assert.InDelta(t, 204, int(img.RGBAAt(32, 32).R), 1)
	assert.Equal(t, uint8(0), img.RGBAAt(32, 32).G)
}

func TestRenderBackFaces(t *testing.T) {
	qv, qf := quadAt(0)
	ms, err := xyz.NewMesh(qv, qf, nil)
	require.NoError(t, err)
	v := testView(ms)
	v.Camera().Pos = math32.Vec3(0, 0, -3)
	v.Camera().LookAtOrigin()

	img := render(t, v)
	assert.InDelta(t, 204, int(img.RGBAAt(32, 32).R), 3)

	ms.Material().DoubleSided = false
	img = render(t, v)
	assert.Equal(t, white, img.RGBAAt(32, 32))
}

func TestRenderWireframe(t *testing.T) {
	qv, qf := quadAt(0)
	ms, err := xyz.NewMesh(qv, qf, &xyz.MeshOptions{FaceOpacity: 1, LineOpacity: 1, LineColor: colors.FromRGB(0, 0, 0)})
	require.NoError(t, err)
	img := render(t, testView(ms))

	// the shared diagonal passes through the center
	black := 0
	for y := 30; y <= 33; y++ {
		for x := 30; x <= 33; x++ {
			if img.RGBAAt(x, y) == (color.RGBA{0, 0, 0, 255}) {
				black++
			}
		}
	}
	assert.Greater(t, black, 0)
	assert.InDelta(t, 204, int(img.RGBAAt(36, 26).R), 3)
}

func TestRenderTransparent(t *testing.T) {
	rv, rf := quadAt(0)
	red, err := xyz.NewMesh(rv, rf, &xyz.MeshOptions{ConstantColor: colorize.RGB(1, 0, 0), FaceOpacity: 1})
	require.NoError(t, err)
	bv, bf := quadAt(0.5)
	blue, err := xyz.NewMesh(bv, bf, &xyz.MeshOptions{ConstantColor: colorize.RGB(0, 0, 1), FaceOpacity: 0.5})
	require.NoError(t, err)

	// the transparent mesh comes first, but is drawn last
	img := render(t, testView(blue, red))
	c := img.RGBAAt(32, 32)
	assert.InDelta(t, 102, int(c.R), 3)
	assert.InDelta(t, 102, int(c.B), 3)
	assert.Equal(t, uint8(0), c.G)
}

func TestRenderSupersample(t *testing.T) {
	qv, qf := quadAt(0)
	ms, err := xyz.NewMesh(qv, qf, nil)
	require.NoError(t, err)
	r := NewRenderer()
	r.Supersample = 2
	img, err := testView(ms).Render(r)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	assert.InDelta(t, 204, int(img.RGBAAt(32, 32).R), 3)
	assert.Equal(t, white, img.RGBAAt(1, 1))
	assert.Equal(t, 1, r.Frames)
}

func TestRenderEmptyImage(t *testing.T) {
	r := NewRenderer()
	assert.Error(t, r.Render(testView(), image.NewRGBA(image.Rectangle{})))
	assert.Equal(t, 0, r.Frames)
}

func TestRenderShaderState(t *testing.T) {
	pc, err := xyz.NewPointCloud([][3]float64{{0, 0, 0}}, &xyz.PointCloudOptions{Radius: 20, ConstantSize: true, Flat: true})
	require.NoError(t, err)
	pc.WithSlider(0, 0, 0)
	m := pc.Material()
	cache := sprite.NewCache(4, func(wgsl string) ([]byte, error) { return make([]byte, 8), nil })
	m.Cache = cache
	v := testView(pc)
	r := NewRenderer()

	img, err := v.Render(r)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Compiles())
	assert.False(t, m.NeedsUpdate())
	assert.Equal(t, 1, r.Bound())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(32, 32))

	// a define change compiles once
	require.NoError(t, pc.Update(xyz.PointCloudChange{Color: [3]float64{0, 0, 1}}))
	assert.True(t, m.Stale())
	img, err = v.Render(r)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Compiles())
	assert.False(t, m.Stale())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(32, 32))

	// a uniform change never compiles
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(38, 30))
	pc.Slider().SetValue(5)
	assert.True(t, m.NeedsUpdate())
	img, err = v.Render(r)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Compiles())
	assert.False(t, m.NeedsUpdate())
	assert.Equal(t, white, img.RGBAAt(38, 30))

	// the first defines are still cached
	require.NoError(t, pc.Update(xyz.PointCloudChange{Positions: math32.ArrayF32{0, 0, 0}}))
	_, err = v.Render(r)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Compiles())
	assert.Equal(t, 1, r.Bound())
}

func TestRenderCompileError(t *testing.T) {
	pc := spritePoints(t, [][3]float64{{0, 0, 0}}, nil, 0)
	pc.Material().Cache = sprite.NewCache(1, func(wgsl string) ([]byte, error) { return nil, assert.AnError })
	r := NewRenderer()
	_, err := testView(pc).Render(r)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, r.Frames)
}

func TestRenderSharedCamera(t *testing.T) {
	a := xyz.NewViewWith(xyz.ViewOptions{Width: 64, Height: 64})
	b := xyz.NewViewWith(xyz.ViewOptions{Width: 256, Height: 64, Share: a.CameraHandle()})
	before := a.Camera().ProjectionMatrix
	img, err := b.Render(NewRenderer())
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 256, 64), img.Bounds())
	assert.Equal(t, float32(1), a.Camera().Aspect)
	assert.Equal(t, before, a.Camera().ProjectionMatrix)
}

func TestRenderClasses(t *testing.T) {
	qv, qf := quadAt(0)
	ms, err := xyz.NewMesh(qv, qf, &xyz.MeshOptions{FaceOpacity: 0.5, LineOpacity: 1})
	require.NoError(t, err)
	pc := spritePoints(t, [][3]float64{{0, 0, 0}}, nil, 0)
	ds := append(ms.Drawables(), pc.Drawables()...)
	assert.Equal(t, RClassTransUniform, RenderClass(ds[0]))
	assert.Equal(t, RClassWireframe, RenderClass(ds[1]))
	assert.Equal(t, RClassPoints, RenderClass(ds[2]))

	opaque, err := xyz.NewMesh(qv, qf, &xyz.MeshOptions{VertexColor: []float64{0, 1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, RClassOpaqueVertex, RenderClass(opaque.Drawables()[0]))

	mvp := testView().Camera().ViewProjection()
	sorted := sortDrawables(append(ds, opaque.Drawables()...), &mvp)
	require.Len(t, sorted, 4)
	assert.Same(t, opaque.Drawables()[0], sorted[0])
	assert.Same(t, ds[2], sorted[1])
	assert.Same(t, ds[0], sorted[2])
	assert.Same(t, ds[1], sorted[3])
}

func TestRenderEndToEnd(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	pts := make([][3]float64, 5000)
	for i := range pts {
		pts[i] = [3]float64{rnd.Float64()/2 - .25, rnd.Float64()/2 - .25, rnd.Float64()/2 - .25}
	}
	opts := xyz.DefaultPointCloudOptions(nil)
	opts.Color = colorize.Column(pts, 0)
	pc, err := xyz.NewPointCloud(pts, opts)
	require.NoError(t, err)
	img := render(t, testView(pc))
	assert.NotEqual(t, white, img.RGBAAt(32, 32))
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, white, img.RGBAAt(63, 63))
	assert.True(t, pc.Resolver.IsScalarField())
}
