// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"log/slog"

	"github.com/brunoga/deep"
)

// OrbitControls moves a camera around its target from pointer input:
// dragging orbits, shift dragging pans, and scrolling zooms.
// Views sharing a [CameraHandle] share the controls, so input in one
// view moves the camera of all of them.
type OrbitControls struct {

	// Camera is the controlled camera.
	Camera *Camera

	// RotateSpeed is the orbit angle in degrees per pixel dragged.
	RotateSpeed float32

	// PanSpeed is the pan distance per pixel dragged, relative to the
	// distance to the target.
	PanSpeed float32

	// ZoomSpeed is the zoom fraction per scroll unit.
	ZoomSpeed float32

	// Disabled ignores all input.
	Disabled bool

	// saved cameras, by name
	saved map[string]*Camera
}

// NewOrbitControls returns controls for the given camera, saving the
// initial camera as "default".
func NewOrbitControls(cam *Camera) *OrbitControls {
	oc := &OrbitControls{Camera: cam, RotateSpeed: 0.5, PanSpeed: 0.002, ZoomSpeed: 0.05}
	oc.Save("default")
	return oc
}

// Drag handles a pointer drag by dx, dy pixels: it orbits the camera
// around its target, or pans it if pan is true.
func (oc *OrbitControls) Drag(dx, dy float32, pan bool) {
	if oc.Disabled {
		return
	}
	if pan {
		d := oc.Camera.Distance() * oc.PanSpeed
		oc.Camera.Pan(dx*d, -dy*d)
		return
	}
	oc.Camera.Orbit(-dx*oc.RotateSpeed, -dy*oc.RotateSpeed)
}

// Scroll handles a scroll wheel change: positive moves away from the target.
func (oc *OrbitControls) Scroll(delta float32) {
	if oc.Disabled {
		return
	}
	oc.Camera.Zoom(delta * oc.ZoomSpeed)
}

// Save saves a copy of the current camera with given name;
// it can be restored later with [OrbitControls.Restore].
func (oc *OrbitControls) Save(name string) {
	if oc.saved == nil {
		oc.saved = make(map[string]*Camera)
	}
	oc.saved[name] = deep.MustCopy(oc.Camera)
}

// Restore sets the camera to the one saved with the given name.
// The camera keeps its identity, so all views sharing it see the change.
func (oc *OrbitControls) Restore(name string) error {
	cam, ok := oc.saved[name]
	if !ok {
		return fmt.Errorf("xyz.OrbitControls: saved camera %q not found", name)
	}
	*oc.Camera = *deep.MustCopy(cam)
	slog.Debug("xyz: restored camera", "name", name)
	return nil
}

// Reset restores the default camera.
func (oc *OrbitControls) Reset() {
	if err := oc.Restore("default"); err != nil {
		slog.Error(err.Error())
	}
}

// CameraHandle is a reference counted camera and its controls, shared
// by every view created with it in [ViewOptions.Share].
type CameraHandle struct {

	// Camera is the shared camera.
	Camera *Camera

	// Controls are the shared orbit controls.
	Controls *OrbitControls

	refs int
}

// NewCameraHandle returns a handle for the given camera with one reference,
// creating orbit controls for it.
func NewCameraHandle(cam *Camera) *CameraHandle {
	return &CameraHandle{Camera: cam, Controls: NewOrbitControls(cam), refs: 1}
}

// Acquire adds a reference to the handle and returns it.
func (h *CameraHandle) Acquire() *CameraHandle {
	h.refs++
	return h
}

// Release drops a reference to the handle, returning true if it was the
// last one, after which the controls are disabled.
func (h *CameraHandle) Release() bool {
	if h.refs <= 0 {
		slog.Warn("xyz: CameraHandle released more times than acquired")
		return false
	}
	h.refs--
	if h.refs == 0 {
		h.Controls.Disabled = true
		return true
	}
	return false
}

// Refs returns the number of references to the handle.
func (h *CameraHandle) Refs() int {
	return h.refs
}
