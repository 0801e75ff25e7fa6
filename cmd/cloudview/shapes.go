// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"math/rand"
)

// RandomPoints returns n points uniformly distributed in [-0.5, 0.5]^3.
func RandomPoints(rnd *rand.Rand, n int) [][3]float64 {
	pts := make([][3]float64, n)
	for i := range pts {
		pts[i] = [3]float64{rnd.Float64() - .5, rnd.Float64() - .5, rnd.Float64() - .5}
	}
	return pts
}

// GaussianCloud returns n points normally distributed around center
// with the given standard deviation.
func GaussianCloud(rnd *rand.Rand, n int, center [3]float64, sigma float64) [][3]float64 {
	pts := make([][3]float64, n)
	for i := range pts {
		for k := range 3 {
			pts[i][k] = center[k] + sigma*rnd.NormFloat64()
		}
	}
	return pts
}

// Sphere returns the vertices and triangles of a UV sphere centered on
// the origin, with the given number of segments around its axis and
// rings from pole to pole. Triangles wind counter clockwise seen from
// outside.
func Sphere(radius float64, segments, rings int) ([][3]float64, [][3]int) {
	segments = max(segments, 3)
	rings = max(rings, 2)
	var v [][3]float64
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		sp, cp := math.Sincos(phi)
		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			st, ct := math.Sincos(theta)
			v = append(v, [3]float64{radius * sp * st, radius * cp, radius * sp * ct})
		}
	}
	var f [][3]int
	row := segments + 1
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := r*row + s
			b := a + row
			if r > 0 {
				f = append(f, [3]int{a, b, a + 1})
			}
			if r < rings-1 {
				f = append(f, [3]int{a + 1, b, b + 1})
			}
		}
	}
	return v, f
}
