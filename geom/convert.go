// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"cogentcore.org/core/base/slicesx"
	"cogentcore.org/core/math32"

	"cogentcore.org/cloudview/colorize"
)

// Positions converts an N x 3 array of any numeric type to a flat
// float32 position buffer.
func Positions[P colorize.Number](v [][3]P) math32.ArrayF32 {
	return PositionsInto(nil, v)
}

// PositionsInto is like [Positions] but reuses the storage of dst
// when it is large enough.
func PositionsInto[P colorize.Number](dst math32.ArrayF32, v [][3]P) math32.ArrayF32 {
	dst = slicesx.SetLength(dst, 3*len(v))
	for i, p := range v {
		dst[3*i], dst[3*i+1], dst[3*i+2] = float32(p[0]), float32(p[1]), float32(p[2])
	}
	return dst
}

// Faces flattens an M x 3 array of vertex indexes into a uint32 index
// buffer, preserving triangle order and winding. The index is always
// uint32, whatever the input type: a narrower index silently produces
// wrong geometry for large meshes on many renderers.
// Negative indexes fail with [ErrIndexRange]; the upper bound is
// checked against the vertex count by [Build].
func Faces[F colorize.Number](f [][3]F) (math32.ArrayU32, error) {
	idx := make(math32.ArrayU32, 3*len(f))
	for i, tri := range f {
		for k, v := range tri {
			if v < 0 || float64(v) > float64(^uint32(0)) {
				return nil, fmt.Errorf("%w: face %d has index %v", ErrIndexRange, i, v)
			}
			idx[3*i+k] = uint32(v)
		}
	}
	return idx, nil
}

// Unflatten returns the positions as an N x 3 array.
func Unflatten(a math32.ArrayF32) [][3]float32 {
	v := make([][3]float32, len(a)/3)
	for i := range v {
		v[i] = [3]float32{a[3*i], a[3*i+1], a[3*i+2]}
	}
	return v
}
