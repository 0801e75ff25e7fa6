// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import (
	"fmt"
	"log/slog"
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// Buffer is a dense per-element RGB color buffer with 3 float32 values
// per element, in the layout used for vertex color attributes.
type Buffer []float32

// Len returns the number of elements in the buffer.
func (b Buffer) Len() int {
	return len(b) / 3
}

// At returns the color of element i.
func (b Buffer) At(i int) math32.Vector3 {
	return math32.Vec3(b[3*i], b[3*i+1], b[3*i+2])
}

// Set sets the color of element i.
func (b Buffer) Set(i int, c math32.Vector3) {
	b[3*i], b[3*i+1], b[3*i+2] = c.X, c.Y, c.Z
}

// DegeneratePolicy determines how a scalar field whose min equals its
// max is normalized.
type DegeneratePolicy int32

const (
	// DegenerateMidpoint maps every value to the colormap midpoint.
	DegenerateMidpoint DegeneratePolicy = iota

	// DegenerateZero maps every value to the colormap start.
	DegenerateZero

	// DegenerateError fails with [ErrDegenerateRange].
	DegenerateError
)

func (dp DegeneratePolicy) String() string {
	switch dp {
	case DegenerateMidpoint:
		return "Midpoint"
	case DegenerateZero:
		return "Zero"
	case DegenerateError:
		return "Error"
	}
	return fmt.Sprintf("DegeneratePolicy(%d)", int32(dp))
}

// ScalarFieldState records the range of the last scalar field that
// was resolved, for colorbar and legend rendering.
type ScalarFieldState struct {
	// Range is the observed min and max of the scalar values.
	Range minmax.F32

	// Valid is whether a scalar field has been resolved.
	Valid bool
}

// Resolver turns color [Spec]s into [Buffer]s.
// The zero value is usable and resolves scalar fields with the
// [Default] colormap.
type Resolver struct {
	// Colormap maps normalized scalar values to colors.
	// If nil, [Default] is used.
	Colormap Colormap

	// Normalize remaps each channel of a [PerElementRGB] input to the
	// full [0,1] range. Scalar fields are always normalized.
	Normalize bool

	// Degenerate is the policy for scalar fields with min == max.
	Degenerate DegeneratePolicy

	// State has the range of the last resolved scalar field.
	State ScalarFieldState
}

// NewResolver returns a new [Resolver] using the given colormap,
// which may be nil for the default.
func NewResolver(cm Colormap, normalize bool) *Resolver {
	return &Resolver{Colormap: cm, Normalize: normalize}
}

// IsScalarField returns whether a scalar field has been resolved.
func (rs *Resolver) IsScalarField() bool {
	return rs.State.Valid
}

// colormap returns the colormap to use, setting the default if unset.
func (rs *Resolver) colormap() Colormap {
	if rs.Colormap == nil {
		rs.Colormap = Default()
	}
	return rs.Colormap
}

// Resolve returns a dense RGB buffer with one color per element for
// a component with n elements. The input is never modified.
// On error, the resolver state is unchanged.
func (rs *Resolver) Resolve(spec Spec, n int) (Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("colorize: negative element count %d", n)
	}
	switch s := spec.(type) {
	case Constant:
		return rs.constant(s, n), nil
	case PerElementRGB:
		return rs.perElement(s, n)
	case ScalarField:
		return rs.scalarField(s, n)
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidColorShape, spec)
}

// ResolveAny classifies v with [Classify] and resolves it.
func (rs *Resolver) ResolveAny(v any, n int) (Buffer, error) {
	spec, err := Classify(v, n)
	if err != nil {
		return nil, err
	}
	return rs.Resolve(spec, n)
}

func (rs *Resolver) constant(c Constant, n int) Buffer {
	buf := make(Buffer, 3*n)
	for i := 0; i < n; i++ {
		buf[3*i], buf[3*i+1], buf[3*i+2] = c.R, c.G, c.B
	}
	return buf
}

func (rs *Resolver) perElement(pe PerElementRGB, n int) (Buffer, error) {
	if len(pe) != n {
		return nil, shapeMismatch(len(pe), n)
	}
	buf := make(Buffer, 3*n)
	for i, c := range pe {
		buf[3*i], buf[3*i+1], buf[3*i+2] = c[0], c[1], c[2]
	}
	if !rs.Normalize || n == 0 {
		zeroNaN(buf)
		return buf, nil
	}
	for ch := 0; ch < 3; ch++ {
		var rng minmax.F32
		rng.Set(float32(math.MaxFloat32), float32(-math.MaxFloat32))
		for i := 0; i < n; i++ {
			v := buf[3*i+ch]
			if math32.IsNaN(v) {
				continue
			}
			rng.Min = min(rng.Min, v)
			rng.Max = max(rng.Max, v)
		}
		r := rng.Range()
		for i := 0; i < n; i++ {
			v := buf[3*i+ch]
			switch {
			case math32.IsNaN(v) || rng.Min > rng.Max:
				v = 0
			case r > 0:
				v = (v - rng.Min) / r
			default:
				v = 0
			}
			buf[3*i+ch] = v
		}
	}
	return buf, nil
}

// zeroNaN replaces NaN values by 0.
func zeroNaN(buf Buffer) {
	for i, v := range buf {
		if math32.IsNaN(v) {
			buf[i] = 0
		}
	}
}

func (rs *Resolver) scalarField(sf ScalarField, n int) (Buffer, error) {
	if len(sf) != n {
		return nil, shapeMismatch(len(sf), n)
	}
	var rng minmax.F32
	rng.Set(float32(math.MaxFloat32), float32(-math.MaxFloat32))
	for _, v := range sf {
		if math32.IsNaN(v) {
			continue
		}
		rng.Min = min(rng.Min, v)
		rng.Max = max(rng.Max, v)
	}
	if n == 0 || rng.Min > rng.Max { // empty or all NaN
		rng.Set(0, 0)
	}
	degenerate := rng.Min == rng.Max
	if degenerate && rs.Degenerate == DegenerateError {
		return nil, fmt.Errorf("%w: all %d values are %g", ErrDegenerateRange, n, rng.Min)
	}
	cm := rs.colormap()
	buf := make(Buffer, 3*n)
	// computed in float64 so that the max maps to exactly 1
	m, r := float64(rng.Min), float64(rng.Max)-float64(rng.Min)
	for i, v := range sf {
		var x float32
		switch {
		case math32.IsNaN(v):
			x = v
		case degenerate && rs.Degenerate == DegenerateMidpoint:
			x = 0.5
		case degenerate:
			x = 0
		default:
			x = float32((float64(v) - m) / r)
		}
		buf.Set(i, Lookup(cm, x))
	}
	rs.State = ScalarFieldState{Range: rng, Valid: true}
	slog.Debug("colorize: resolved scalar field", "n", n, "min", rng.Min, "max", rng.Max, "degenerate", degenerate)
	return buf, nil
}
