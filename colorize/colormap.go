// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors/colormap"
	"cogentcore.org/core/math32"
)

// DefaultColormap is the name of the colormap used when none is given.
const DefaultColormap = "Viridis"

// Colormap maps a normalized scalar in [0,1] to a color.
// Any alpha channel in the result is discarded.
type Colormap interface {
	Map(v float32) color.Color
}

// Func is a [Colormap] defined by a plain function.
type Func func(v float32) color.Color

func (f Func) Map(v float32) color.Color {
	return f(v)
}

// Grayscale maps 0 to black and 1 to white.
var Grayscale = Func(func(v float32) color.Color {
	g := uint16(math32.Clamp(v, 0, 1) * 0xffff)
	return color.RGBA64{R: g, G: g, B: g, A: 0xffff}
})

// FromMap returns a [Colormap] backed by a [colormap.Map].
func FromMap(cm *colormap.Map) Colormap {
	return mapColormap{cm}
}

type mapColormap struct {
	cm *colormap.Map
}

func (mc mapColormap) Map(v float32) color.Color {
	return mc.cm.Map(v)
}

// Named returns the [colormap.AvailableMaps] entry of the given name.
func Named(name string) (Colormap, error) {
	cm, ok := colormap.AvailableMaps[name]
	if !ok {
		return nil, fmt.Errorf("colorize: colormap %q not found", name)
	}
	return FromMap(cm), nil
}

// Default returns the [DefaultColormap], falling back on [Grayscale]
// (with a logged error) if it is not available.
func Default() Colormap {
	cm, err := Named(DefaultColormap)
	if errors.Log(err) != nil {
		return Grayscale
	}
	return cm
}

// channels returns the straight (non alpha-premultiplied) RGB
// components of c in [0,1].
func channels(c color.Color) (r, g, b float32) {
	if c == nil {
		return 0, 0, 0
	}
	cr, cg, cb, ca := c.RGBA()
	if ca == 0 {
		return 0, 0, 0
	}
	a := float64(ca)
	return float32(float64(cr) / a), float32(float64(cg) / a), float32(float64(cb) / a)
}

// Lookup applies cm to v and returns the RGB components in [0,1].
func Lookup(cm Colormap, v float32) math32.Vector3 {
	r, g, b := channels(cm.Map(v))
	return math32.Vec3(r, g, b)
}
