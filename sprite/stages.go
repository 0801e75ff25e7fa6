// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import "cogentcore.org/core/math32"

// DefaultColor is the color of points when [UseColor] is off.
var DefaultColor = math32.Vec3(1, 0, 0)

// EdgeRadius is the squared distance from the sprite center, in sprite
// coordinates, beyond which fragments are discarded.
const EdgeRadius = 0.25

// VertexOut is the output of the per point stage for one point.
type VertexOut struct {

	// Clip is the clip space position of the point center.
	Clip math32.Vector4

	// Size is the diameter of the point in pixels.
	Size float32

	// Color is the point color.
	Color math32.Vector3
}

// Vertex is the per point stage: it projects the point and computes
// its size in pixels and its color. The color argument is only used
// with [UseColor].
func Vertex(pos math32.Vector3, mvp *math32.Matrix4, u Uniforms, d Defines, color math32.Vector3) VertexOut {
	var out VertexOut
	out.Clip = math32.Vector4FromVector3(pos, 1).MulMatrix4(mvp)
	if d.ConstantDisplaySize {
		out.Size = u.PointSize
	} else {
		out.Size = 10 * u.PointSize / out.Clip.W
	}
	if d.UseColor {
		out.Color = color
	} else {
		out.Color = DefaultColor
	}
	return out
}

// Fragment is the per fragment stage: coord is the position within the
// sprite in [0,1]^2. It returns false if the fragment is discarded,
// which happens strictly outside the inscribed circle. Otherwise it
// returns the color darkened towards the edge by spherical, and the
// antialiasing alpha.
func Fragment(coord math32.Vector2, in VertexOut, spherical float32) (math32.Vector4, bool) {
	d := coord.SubScalar(0.5)
	f := d.Dot(d)
	if f > EdgeRadius || in.Size <= 0 {
		return math32.Vector4{}, false
	}
	delta := 1.25 / in.Size
	alpha := 1 - SmoothStep(EdgeRadius-delta, EdgeRadius, f)
	return math32.Vec4(
		math32.Clamp(in.Color.X-spherical*f, 0, 1),
		math32.Clamp(in.Color.Y-spherical*f, 0, 1),
		math32.Clamp(in.Color.Z-spherical*f, 0, 1),
		alpha), true
}

// SmoothStep is the Hermite interpolation between 0 at e0 and 1 at e1,
// as in WGSL smoothstep. It requires e0 < e1.
func SmoothStep(e0, e1, x float32) float32 {
	t := math32.Clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}
