// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sprite provides the point sprite shader used to draw point
// clouds: every point is a screen aligned disc with a fake spherical
// shading gradient, drawn at a constant pixel size or scaled by
// perspective, with an antialiased circular edge.
//
// The shader is WGSL with #ifdef style compile time defines.
// A [Material] holds the defines and uniforms for one point cloud:
// changing a define requires a new [Program], changing a uniform does not.
// [Vertex] and [Fragment] are the CPU reference versions of the two
// shader stages, used for software rendering and testing.
package sprite

import (
	_ "embed"
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
)

// Source is the WGSL source of the point sprite shader, before
// preprocessing.
//
//go:embed pointsprite.wgsl
var Source string

// Names of the compile time defines.
const (
	// ConstantDisplaySize makes the point size a fixed number of pixels,
	// instead of shrinking with distance from the camera.
	ConstantDisplaySize = "CONSTANT_DISPLAY_SIZE"

	// UseColor reads the color of each point from the color attribute,
	// instead of using the default red.
	UseColor = "USE_COLOR"
)

// Names of the uniforms.
const (
	PointSize = "pointSize"
	Spherical = "spherical"
)

var (
	// ErrUnknownDefine is returned for a define name the shader does not use.
	ErrUnknownDefine = errors.New("sprite: unknown define")

	// ErrUnknownUniform is returned for a uniform name the shader does not have.
	ErrUnknownUniform = errors.New("sprite: unknown uniform")
)

// Defines is the set of compile time defines of the shader.
// It is comparable and identifies a compiled [Program].
type Defines struct {
	ConstantDisplaySize bool
	UseColor            bool
}

// Set turns the named define on or off.
func (d *Defines) Set(name string, on bool) error {
	switch name {
	case ConstantDisplaySize:
		d.ConstantDisplaySize = on
	case UseColor:
		d.UseColor = on
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDefine, name)
	}
	return nil
}

// Has returns whether the named define is on.
func (d Defines) Has(name string) bool {
	switch name {
	case ConstantDisplaySize:
		return d.ConstantDisplaySize
	case UseColor:
		return d.UseColor
	}
	return false
}

// Map returns the defines that are on, for the preprocessor.
func (d Defines) Map() map[string]bool {
	m := map[string]bool{}
	if d.ConstantDisplaySize {
		m[ConstantDisplaySize] = true
	}
	if d.UseColor {
		m[UseColor] = true
	}
	return m
}

func (d Defines) String() string {
	var on []string
	if d.ConstantDisplaySize {
		on = append(on, ConstantDisplaySize)
	}
	if d.UseColor {
		on = append(on, UseColor)
	}
	return "{" + strings.Join(on, " ") + "}"
}

// Uniforms are the per draw values of the shader.
type Uniforms struct {

	// PointSize is the point diameter: in pixels with
	// [ConstantDisplaySize], otherwise in units scaled by 10 / clip w.
	PointSize float32 `default:"1"`

	// Spherical is the intensity of the darkening gradient towards the
	// edge of each point: 0 gives a flat disc.
	Spherical float32 `default:"2"`
}

// Set sets the named uniform.
func (u *Uniforms) Set(name string, v float32) error {
	switch name {
	case PointSize:
		u.PointSize = v
	case Spherical:
		u.Spherical = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUniform, name)
	}
	return nil
}

// Get returns the named uniform.
func (u Uniforms) Get(name string) (float32, error) {
	switch name {
	case PointSize:
		return u.PointSize, nil
	case Spherical:
		return u.Spherical, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUniform, name)
}
