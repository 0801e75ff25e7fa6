// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// tab10 is the ten color categorical palette used for
// distinguishing point clouds merged into one.
var tab10 = [10]color.RGBA{
	colors.FromRGB(0x1f, 0x77, 0xb4),
	colors.FromRGB(0xff, 0x7f, 0x0e),
	colors.FromRGB(0x2c, 0xa0, 0x2c),
	colors.FromRGB(0xd6, 0x27, 0x28),
	colors.FromRGB(0x94, 0x67, 0xbd),
	colors.FromRGB(0x8c, 0x56, 0x4b),
	colors.FromRGB(0xe3, 0x77, 0xc2),
	colors.FromRGB(0x7f, 0x7f, 0x7f),
	colors.FromRGB(0xbc, 0xbd, 0x22),
	colors.FromRGB(0x17, 0xbe, 0xcf),
}

// Tab10 returns the i-th categorical color, cycling after 10.
// Negative indices count from the end.
func Tab10(i int) Constant {
	n := len(tab10)
	return ConstantFromColor(tab10[(i%n+n)%n])
}

// ToRGBA converts a color with components in [0,1] to an opaque
// 8-bit color, clamping out of range components.
func ToRGBA(c math32.Vector3) color.RGBA {
	return color.RGBA{R: to8(c.X), G: to8(c.Y), B: to8(c.Z), A: 255}
}

func to8(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}
