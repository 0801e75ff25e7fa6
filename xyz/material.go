// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/colors"
	"github.com/brunoga/deep"
)

// Shading is the lighting model of a [MeshMaterial].
type Shading int32

const (
	// Lambert is diffuse only lighting, used with vertex colors.
	Lambert Shading = iota

	// Standard adds a specular highlight to diffuse lighting.
	Standard
)

// MeshMaterial describes how a mesh surface or its wireframe is drawn.
// The main color is used for both ambient and diffuse color.
type MeshMaterial struct {

	// Shading is the lighting model.
	Shading Shading

	// Color is the surface color when VertexColors is off.
	Color color.RGBA

	// Opacity of the surface in [0,1].
	Opacity float32 `min:"0" max:"1"`

	// Transparent enables blending with Opacity.
	Transparent bool

	// VertexColors uses the per-vertex colors of the geometry.
	VertexColors bool

	// DoubleSided draws both sides of every face, with no culling.
	DoubleSided bool

	// Wireframe draws the triangle edges only.
	Wireframe bool

	// Shiny is the specular shininess exponent, for [Standard] shading.
	Shiny float32

	// Reflective is the specular strength, for [Standard] shading.
	Reflective float32
}

// IsTransparent returns whether drawing needs blending.
func (mt *MeshMaterial) IsTransparent() bool {
	return mt.Transparent && mt.Opacity < 1
}

// Material templates. Objects get their own deep copies,
// so that changing one object's material never affects another.
var (
	lambertTemplate = &MeshMaterial{
		Shading:      Lambert,
		Color:        colors.FromRGB(255, 255, 255),
		Opacity:      1,
		VertexColors: true,
		DoubleSided:  true,
	}

	standardTemplate = &MeshMaterial{
		Shading:     Standard,
		Color:       colors.FromRGB(255, 255, 255),
		Opacity:     1,
		Transparent: true,
		DoubleSided: true,
		Shiny:       30,
		Reflective:  0.2,
	}

	wireframeTemplate = &MeshMaterial{
		Shading:     Standard,
		Color:       colors.FromRGB(0xaa, 0xaa, 0xaa),
		Transparent: true,
		DoubleSided: true,
		Wireframe:   true,
	}
)

// NewLambertMaterial returns a vertex colored, double sided, Lambert material.
func NewLambertMaterial() *MeshMaterial {
	return deep.MustCopy(lambertTemplate)
}

// NewStandardMaterial returns a double sided, transparent material
// with the given constant color and opacity.
func NewStandardMaterial(c color.RGBA, opacity float32) *MeshMaterial {
	mt := deep.MustCopy(standardTemplate)
	mt.Color = c
	mt.Opacity = opacity
	return mt
}

// NewWireframeMaterial returns a transparent wireframe material
// with the given line color and opacity.
func NewWireframeMaterial(c color.RGBA, opacity float32) *MeshMaterial {
	mt := deep.MustCopy(wireframeTemplate)
	mt.Color = c
	mt.Opacity = opacity
	return mt
}
