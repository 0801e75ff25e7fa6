// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/colors"
	"github.com/goforj/godump"
)

// ViewOptions are the options for [NewViewWith].
// Zero Width and Height take the settings values.
type ViewOptions struct {

	// Width of the view in pixels.
	Width int

	// Height of the view in pixels.
	Height int

	// Projection of a new camera.
	Projection Projection

	// Share is the camera handle of another view, to show the same
	// camera and respond to the same controls. If nil, the view gets
	// a new camera.
	Share *CameraHandle

	// Title shown below the view, if any.
	Title string

	// Settings for the camera and lights; [DefaultSettings] if nil.
	Settings *Settings
}

// View composes objects with a camera, orbit controls and lights,
// for a [Host] to render. It references the drawables of its objects
// without owning them.
type View struct {

	// Title shown below the view, if any.
	Title string

	// Width of the view in pixels.
	Width int

	// Height of the view in pixels.
	Height int

	// Drawables of all the objects, in drawing order.
	Drawables []*Drawable

	// Sliders of the objects that have one, to show above the view.
	Sliders []*Slider

	// Lights of the view, by name.
	Lights ordmap.Map[string, Light]

	// Background color.
	Background color.RGBA

	camera *CameraHandle
}

// NewView returns a new view of the given objects with the default
// settings: a perspective camera at (.8, .5, .8) looking at the origin,
// a directional key light and an ambient light.
func NewView(objects ...Object) *View {
	return NewViewWith(DefaultSettings().ViewOptions(), objects...)
}

// NewViewWith returns a new view of the given objects with the given options.
func NewViewWith(opts ViewOptions, objects ...Object) *View {
	s := opts.Settings
	if s == nil {
		s = DefaultSettings()
	}
	v := &View{Title: opts.Title, Width: opts.Width, Height: opts.Height, Background: colors.FromRGB(255, 255, 255)}
	if v.Width <= 0 {
		v.Width = s.Width
	}
	if v.Height <= 0 {
		v.Height = s.Height
	}
	for _, ob := range objects {
		v.Drawables = append(v.Drawables, ob.Drawables()...)
		if so, ok := ob.(SliderObject); ok {
			if sl := so.Slider(); sl != nil {
				v.Sliders = append(v.Sliders, sl)
			}
		}
	}
	if opts.Share != nil {
		v.camera = opts.Share.Acquire()
	} else {
		cam := NewCamera(s.CameraPos, opts.Projection, float32(v.Width)/float32(v.Height))
		cam.FOV = s.FOV
		cam.UpdateMatrix()
		v.camera = NewCameraHandle(cam)
	}
	NewDirLight(v, "key", s.DirLumens, DirectSun, s.DirLightPos)
	NewAmbientLight(v, "ambient", s.AmbientLumens, DirectSun)
	slog.Debug("xyz: new view", "drawables", len(v.Drawables), "sliders", len(v.Sliders), "shared", opts.Share != nil)
	return v
}

// CameraHandle returns the camera handle of the view, to share with other views.
// It is nil after [View.Release].
func (v *View) CameraHandle() *CameraHandle {
	return v.camera
}

// Camera returns the camera of the view.
func (v *View) Camera() *Camera {
	return v.camera.Camera
}

// Controls returns the orbit controls of the view.
func (v *View) Controls() *OrbitControls {
	return v.camera.Controls
}

// Release drops the reference of the view to its camera handle.
func (v *View) Release() {
	if v.camera == nil {
		return
	}
	v.camera.Release()
	v.camera = nil
}

// Render renders the view with the given host into a new image.
func (v *View) Render(h Host) (*image.RGBA, error) {
	if v.camera == nil {
		return nil, fmt.Errorf("xyz.View: render after release")
	}
	img := image.NewRGBA(image.Rect(0, 0, v.Width, v.Height))
	if err := h.Render(v, img); err != nil {
		return nil, err
	}
	return img, nil
}

// drawableSummary is the debug summary of a [Drawable].
type drawableSummary struct {
	Name     string
	Kind     string
	Vertices int
	Faces    int
	HasColor bool
	Defines  string
	Radius   float32
	Opacity  float32
}

// viewSummary is the debug summary of a [View].
type viewSummary struct {
	Title     string
	Size      image.Point
	Camera    [3]float32
	Target    [3]float32
	Refs      int
	Lights    []string
	Sliders   int
	Drawables []drawableSummary
}

// Dump returns a readable summary of the view, its camera and drawables,
// for debugging.
func (v *View) Dump() string {
	vs := viewSummary{Title: v.Title, Size: image.Pt(v.Width, v.Height), Lights: v.Lights.Keys(), Sliders: len(v.Sliders)}
	if v.camera != nil {
		cm := v.camera.Camera
		vs.Camera = [3]float32{cm.Pos.X, cm.Pos.Y, cm.Pos.Z}
		vs.Target = [3]float32{cm.Target.X, cm.Target.Y, cm.Target.Z}
		vs.Refs = v.camera.Refs()
	}
	for _, d := range v.Drawables {
		ds := drawableSummary{Name: d.Name, Vertices: d.Geometry.NumVertex(), Faces: d.Geometry.NumFace(), HasColor: d.Geometry.HasColor()}
		if d.IsPoints() {
			ds.Kind = "points"
			ds.Defines = d.Points.Defines().String()
			ds.Radius = d.Points.Uniforms().PointSize
		} else {
			ds.Kind = "mesh"
			if d.Surface.Wireframe {
				ds.Kind = "wireframe"
			}
			ds.Opacity = d.Surface.Opacity
		}
		vs.Drawables = append(vs.Drawables, ds)
	}
	return godump.DumpStr(vs)
}
