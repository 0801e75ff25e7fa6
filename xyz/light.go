// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Light represents a light that illuminates a view.
// Lights are stored on the [View] by name.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light, which matters since lights are accessed by name.
	Name string

	// On is whether the light is turned on.
	On bool

	// Lumens is the brightness/intensity/strength of the light in normalized 0-1 units.
	// It is just multiplied by the color, and is convenient for easily modulating overall brightness.
	Lumens float32 `min:"0" step:"0.1"`

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// Radiance returns the light color scaled by its lumens,
// or zero if the light is off.
func (lb *LightBase) Radiance() math32.Vector3 {
	if !lb.On {
		return math32.Vector3{}
	}
	c := lb.Color
	return math32.Vec3(float32(c.R), float32(c.G), float32(c.B)).MulScalar(lb.Lumens / 255)
}

// AmbientLight provides diffuse uniform lighting; typically only one of these in a [View].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds an ambient light to the given view, with given name,
// standard color, and lumens (0-1 normalized).
func NewAmbientLight(v *View, name string, lumens float32, color LightColors) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = LightColorMap[color]
	lt.Lumens = lumens
	v.AddLight(lt)
	return lt
}

// DirLight is directional light, which is assumed to project light toward
// the origin based on its position, with no attenuation, like the Sun.
// Only the direction of the position matters, not its distance.
type DirLight struct {
	LightBase

	// Pos is the position of the light; it points at the origin,
	// so this determines its direction.
	Pos math32.Vector3
}

// NewDirLight adds a directional light to the given view, with given name,
// standard color, and lumens (0-1 normalized), positioned at pos.
func NewDirLight(v *View, name string, lumens float32, color LightColors, pos math32.Vector3) *DirLight {
	lt := &DirLight{}
	lt.Name = name
	lt.On = true
	lt.Color = LightColorMap[color]
	lt.Lumens = lumens
	lt.Pos = pos
	v.AddLight(lt)
	return lt
}

// ToLight returns the unit vector from any lit point towards the light.
func (dl *DirLight) ToLight() math32.Vector3 {
	return normal(dl.Pos)
}

// AddLight adds the given light to the view, replacing any light
// with the same name.
func (v *View) AddLight(lt Light) {
	v.Lights.Add(lt.AsLightBase().Name, lt)
}

// Lighting returns the total ambient radiance and the directional
// lights that are on.
func (v *View) Lighting() (ambient math32.Vector3, dirs []*DirLight) {
	for _, lt := range v.Lights.Values() {
		switch l := lt.(type) {
		case *AmbientLight:
			ambient = ambient.Add(l.Radiance())
		case *DirLight:
			if l.On {
				dirs = append(dirs, l)
			}
		}
	}
	return
}

// LightColors are standard light colors for different light sources.
type LightColors int32

const (
	DirectSun LightColors = iota
	Halogen
	Overcast
	FluorWarm
	FluorCool
)

// LightColorMap provides a map of named light colors.
// See http://planetpixelemporium.com/tutorialpages/light.html
var LightColorMap = map[LightColors]color.RGBA{
	DirectSun: {255, 255, 255, 255},
	Halogen:   {255, 241, 224, 255},
	Overcast:  {201, 226, 255, 255},
	FluorWarm: {255, 244, 229, 255},
	FluorCool: {212, 235, 255, 255},
}
