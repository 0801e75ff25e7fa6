// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Projection is the kind of camera projection.
type Projection int32

const (
	// Perspective shrinks objects with distance.
	Perspective Projection = iota

	// Orthographic keeps sizes independent of distance, showing
	// the [-1,1] square around the camera axis.
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "Orthographic"
	}
	return "Perspective"
}

// Camera defines the view onto the scene: its position, the target it
// looks at, and its projection.
type Camera struct {

	// Pos is the position of the camera.
	Pos math32.Vector3

	// Target is where the camera is pointing at. It moves with panning,
	// and orbiting keeps the distance to it.
	Target math32.Vector3

	// UpDir is the up direction of the camera.
	UpDir math32.Vector3

	// Projection is perspective or orthographic.
	Projection Projection

	// FOV is the vertical field of view in degrees, for perspective.
	FOV float32

	// Aspect ratio (width/height).
	Aspect float32

	// Near plane distance.
	Near float32

	// Far plane distance.
	Far float32

	// View transforms world into camera-centered coordinates.
	View math32.Matrix4 `json:"-"`

	// ProjectionMatrix transforms camera coordinates into clip coordinates.
	ProjectionMatrix math32.Matrix4 `json:"-"`
}

// NewCamera returns a camera at the given position looking at the origin.
func NewCamera(pos math32.Vector3, proj Projection, aspect float32) *Camera {
	cm := &Camera{}
	cm.Defaults()
	cm.Pos = pos
	cm.Projection = proj
	cm.Aspect = aspect
	cm.LookAtOrigin()
	return cm
}

// Defaults sets the default camera parameters.
func (cm *Camera) Defaults() {
	cm.FOV = 50
	cm.Aspect = 1
	cm.Near = .01
	cm.Far = 1000
	cm.Pos.Set(0, 0, 10)
	cm.UpDir = math32.Vec3(0, 1, 0)
}

// UpdateMatrix updates the view and projection matrices.
func (cm *Camera) UpdateMatrix() {
	cm.View = *ViewMatrix(cm.Pos, cm.Target, cm.UpDir)
	cm.ProjectionMatrix = cm.projection(cm.Aspect)
}

// projection returns the projection matrix for the given aspect ratio.
// Orthographic views show the [-1,1] square and keep the target in
// front of the near plane.
func (cm *Camera) projection(aspect float32) math32.Matrix4 {
	var pm math32.Matrix4
	if cm.Projection == Orthographic {
		pm.SetOrthographic(2, 2, cm.Near-cm.Distance(), cm.Far)
	} else {
		pm.SetPerspective(cm.FOV, aspect, cm.Near, cm.Far)
	}
	return pm
}

// ViewProjection returns the combined projection * view matrix.
func (cm *Camera) ViewProjection() math32.Matrix4 {
	var vp math32.Matrix4
	vp.MulMatrices(&cm.ProjectionMatrix, &cm.View)
	return vp
}

// ViewProjectionAspect returns the combined projection * view matrix
// for the given aspect ratio, leaving the camera unchanged.
// Hosts use it for views of differing sizes sharing one camera.
func (cm *Camera) ViewProjectionAspect(aspect float32) math32.Matrix4 {
	view := ViewMatrix(cm.Pos, cm.Target, cm.UpDir)
	pm := cm.projection(aspect)
	var vp math32.Matrix4
	vp.MulMatrices(&pm, view)
	return vp
}

// ViewMatrix returns the view matrix of a camera at pos
// facing target, with the given up vector.
func ViewMatrix(pos, target, up math32.Vector3) *math32.Matrix4 {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(pos, target, up))
	var cview math32.Matrix4
	cview.SetTransform(pos, lookq, math32.Vec3(1, 1, 1))
	view, err := cview.Inverse()
	if err != nil {
		return math32.Identity4()
	}
	return view
}

// LookAt points the camera at given target location, using given up direction,
// and sets the Target, UpDir fields for future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.UpdateMatrix()
}

// LookAtOrigin points the camera at origin with Y axis pointing up.
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAtTarget points the camera at current target using current up direction.
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pos.Sub(cm.Target)
}

// Distance returns the distance from the camera to its target.
func (cm *Camera) Distance() float32 {
	return cm.ViewVector().Length()
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir.Set(0, 0, 1)
	}
	dir := normal(ctdir)
	up := cm.UpDir
	right := normal(up.Cross(dir))

	ctdir = rotate(ctdir, up, math32.DegToRad(delX))
	ctdir = rotate(ctdir, right, math32.DegToRad(delY))
	cm.Pos = cm.Target.Add(ctdir)
	cm.UpDir = normal(rotate(up, right, math32.DegToRad(delY)))
	cm.LookAtTarget()
}

// Pan moves the camera along the given 2D axes (left/right, up/down),
// in the plane of the current view, and moves the target by the same
// increment.
func (cm *Camera) Pan(delX, delY float32) {
	dir := normal(cm.ViewVector())
	right := normal(cm.UpDir.Cross(dir))
	up := dir.Cross(right)
	td := right.MulScalar(-delX).Add(up.MulScalar(-delY))
	cm.Pos = cm.Pos.Add(td)
	cm.Target = cm.Target.Add(td)
	cm.UpdateMatrix()
}

// Zoom moves along the view axis by the given fraction of the distance
// to the target: positive moves away, negative moves closer.
// It never moves past the target.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis == (math32.Vector3{}) {
		ctaxis.Set(0, 0, 1)
	}
	if zoomPct <= -1 {
		return
	}
	cm.Pos = cm.Pos.Add(ctaxis.MulScalar(zoomPct))
	cm.UpdateMatrix()
}

// rotate rotates v around the axis by angle radians.
func rotate(v, axis math32.Vector3, angle float32) math32.Vector3 {
	return v.MulQuat(math32.NewQuatAxisAngle(normal(axis), angle))
}

func normal(v math32.Vector3) math32.Vector3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.DivScalar(l)
}
