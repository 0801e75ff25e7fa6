// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import (
	"image"
	"image/draw"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ColorbarOptions are the layout parameters for [Colorbar].
type ColorbarOptions struct {
	// Length is the size of the color gradient along its axis, in pixels.
	Length int

	// Thickness is the size of the color gradient across its axis, in pixels.
	Thickness int

	// Vertical draws the gradient bottom (min) to top (max) instead of
	// left (min) to right (max).
	Vertical bool

	// NoLabels omits the min and max value labels.
	NoLabels bool
}

// Defaults sets the default colorbar size.
func (co *ColorbarOptions) Defaults() {
	if co.Length <= 0 {
		co.Length = 360
	}
	if co.Thickness <= 0 {
		co.Thickness = 24
	}
}

// Colorbar renders a legend for the last scalar field resolved by rs,
// labeled with its min and max values.
func (rs *Resolver) Colorbar(opts ColorbarOptions) (*image.RGBA, error) {
	if !rs.State.Valid {
		return nil, ErrNoScalarField
	}
	return Colorbar(rs.colormap(), rs.State, opts), nil
}

// Colorbar renders a gradient of cm with the min and max of st as labels.
func Colorbar(cm Colormap, st ScalarFieldState, opts ColorbarOptions) *image.RGBA {
	opts.Defaults()
	face := basicfont.Face7x13
	lo := strconv.FormatFloat(float64(st.Range.Min), 'g', 4, 32)
	hi := strconv.FormatFloat(float64(st.Range.Max), 'g', 4, 32)
	lineH := face.Metrics().Height.Ceil()
	labelW := max(font.MeasureString(face, lo).Ceil(), font.MeasureString(face, hi).Ceil())
	pad := 4
	if opts.NoLabels {
		lineH, labelW, pad = 0, 0, 0
	}

	var sz image.Point
	if opts.Vertical {
		sz = image.Pt(opts.Thickness+labelW+pad, opts.Length+lineH)
	} else {
		sz = image.Pt(opts.Length+labelW, opts.Thickness+lineH+pad)
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	den := float32(max(opts.Length-1, 1))
	for i := 0; i < opts.Length; i++ {
		c := ToRGBA(Lookup(cm, float32(i)/den))
		for j := 0; j < opts.Thickness; j++ {
			if opts.Vertical {
				img.SetRGBA(j, lineH/2+opts.Length-1-i, c)
			} else {
				img.SetRGBA(labelW/2+i, j, c)
			}
		}
	}
	if opts.NoLabels {
		return img
	}

	dr := &font.Drawer{Dst: img, Src: image.Black, Face: face}
	ascent := face.Metrics().Ascent.Ceil()
	if opts.Vertical {
		x := opts.Thickness + pad
		dr.Dot = fixed.P(x, lineH/2+opts.Length-1+ascent/2)
		dr.DrawString(lo)
		dr.Dot = fixed.P(x, lineH/2+ascent/2)
		dr.DrawString(hi)
		return img
	}
	y := opts.Thickness + pad + ascent
	dr.Dot = fixed.P(0, y)
	dr.DrawString(lo)
	dr.Dot = fixed.P(sz.X-font.MeasureString(face, hi).Ceil(), y)
	dr.DrawString(hi)
	return img
}
