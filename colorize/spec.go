// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorize converts the different kinds of color input accepted
// by point clouds and meshes into dense per-element RGB buffers that can
// be uploaded directly as a vertex color attribute.
//
// A color input is a [Spec], which is one of:
//   - [Constant]: a single RGB triple used for every element.
//   - [ScalarField]: one value per element, min-max normalized and
//     mapped through a [Colormap].
//   - [PerElementRGB]: one RGB triple per element, optionally
//     normalized per channel.
//
// Raw caller arrays are turned into a Spec at the boundary by [Classify],
// and a [Resolver] turns a Spec into a [Buffer].
package colorize

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
	"golang.org/x/exp/constraints"
)

// Number is the set of numeric element types accepted for raw color
// and coordinate arrays.
type Number interface {
	constraints.Integer | constraints.Float
}

// Spec is a color input: one of [Constant], [ScalarField] or [PerElementRGB].
type Spec interface {
	isSpec()
}

// Constant is a single RGB color applied to every element.
// Components are expected to already be in [0,1].
type Constant struct {
	R, G, B float32
}

func (Constant) isSpec() {}

// RGB returns a [Constant] with the given components.
func RGB(r, g, b float32) Constant {
	return Constant{R: r, G: g, B: b}
}

// ConstantFromColor returns a [Constant] from a standard Go color,
// discarding alpha.
func ConstantFromColor(c color.Color) Constant {
	r, g, b := channels(c)
	return Constant{R: r, G: g, B: b}
}

// Vector3 returns the color as a [math32.Vector3].
func (c Constant) Vector3() math32.Vector3 {
	return math32.Vec3(c.R, c.G, c.B)
}

// ScalarField has one scalar value per element, which is mapped through
// a [Colormap] after min-max normalization.
type ScalarField []float32

func (ScalarField) isSpec() {}

// PerElementRGB has one RGB triple per element.
type PerElementRGB [][3]float32

func (PerElementRGB) isSpec() {}

// Scalars returns a [ScalarField] converted from any numeric slice.
// The result never aliases v.
func Scalars[T Number](v []T) ScalarField {
	sf := make(ScalarField, len(v))
	for i, x := range v {
		sf[i] = float32(x)
	}
	return sf
}

// RGBs returns a [PerElementRGB] converted from any numeric N x 3 array.
// The result never aliases v.
func RGBs[T Number](v [][3]T) PerElementRGB {
	pe := make(PerElementRGB, len(v))
	for i, x := range v {
		pe[i] = [3]float32{float32(x[0]), float32(x[1]), float32(x[2])}
	}
	return pe
}

// Column returns the given column of an N x 3 array as a [ScalarField],
// for coloring by one coordinate channel.
func Column[T Number](v [][3]T, col int) ScalarField {
	sf := make(ScalarField, len(v))
	for i, x := range v {
		sf[i] = float32(x[col])
	}
	return sf
}

// Classify turns a raw color array into a [Spec] for a component with
// n elements. It is the only place where the shape of a color input is
// inspected:
//   - a Spec is returned as is.
//   - a [3]T array is a [Constant].
//   - a []T of length 3 with components in [0,1] is a [Constant] unless
//     n is 3; any other []T is a [ScalarField]. A mis-sized list of three
//     scalars outside [0,1] thus fails in [Resolver.Resolve], but one
//     within [0,1] still reads as a color: use [Scalars] to be explicit.
//   - a [][3]T array is a [PerElementRGB].
//   - a [][]T array with rows of width 3 is a [PerElementRGB], and with
//     rows of width 1 is a [ScalarField].
//
// Anything else fails with [ErrInvalidColorShape]. Lengths are not
// checked here; that happens in [Resolver.Resolve].
func Classify(v any, n int) (Spec, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil color", ErrInvalidColorShape)
	case Spec:
		return x, nil
	case color.Color:
		return ConstantFromColor(x), nil
	case [3]float32:
		return RGB(x[0], x[1], x[2]), nil
	case [3]float64:
		return RGB(float32(x[0]), float32(x[1]), float32(x[2])), nil
	case []float32:
		return classifySlice(x, n), nil
	case []float64:
		return classifySlice(x, n), nil
	case []int:
		return classifySlice(x, n), nil
	case []int32:
		return classifySlice(x, n), nil
	case []int64:
		return classifySlice(x, n), nil
	case []uint8:
		return classifySlice(x, n), nil
	case []uint32:
		return classifySlice(x, n), nil
	case [][3]float32:
		return RGBs(x), nil
	case [][3]float64:
		return RGBs(x), nil
	case [][3]int:
		return RGBs(x), nil
	case [][3]uint8:
		return RGBs(x), nil
	case [][]float32:
		return classifyRows(x)
	case [][]float64:
		return classifyRows(x)
	case [][]int:
		return classifyRows(x)
	}
	return nil, fmt.Errorf("%w: unsupported color type %T", ErrInvalidColorShape, v)
}

func classifySlice[T Number](v []T, n int) Spec {
	if len(v) == 3 && n != 3 && isUnit(v) {
		return RGB(float32(v[0]), float32(v[1]), float32(v[2]))
	}
	return Scalars(v)
}

// isUnit returns whether all values are in [0,1].
func isUnit[T Number](v []T) bool {
	for _, x := range v {
		if !(x >= 0 && x <= 1) {
			return false
		}
	}
	return true
}

func classifyRows[T Number](v [][]T) (Spec, error) {
	if len(v) == 0 {
		return PerElementRGB{}, nil
	}
	width := len(v[0])
	for i, row := range v {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, row 0 has width %d", ErrInvalidColorShape, i, len(row), width)
		}
	}
	switch width {
	case 1:
		sf := make(ScalarField, len(v))
		for i, row := range v {
			sf[i] = float32(row[0])
		}
		return sf, nil
	case 3:
		pe := make(PerElementRGB, len(v))
		for i, row := range v {
			pe[i] = [3]float32{float32(row[0]), float32(row[1]), float32(row[2])}
		}
		return pe, nil
	}
	return nil, fmt.Errorf("%w: second dimension is %d (must be 1 or 3)", ErrInvalidColorShape, width)
}
