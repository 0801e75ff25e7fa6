// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import "cogentcore.org/cloudview/colorize"

// Composite returns one point cloud showing all the given clouds,
// each in its own color from the [colorize.Tab10] palette.
// The joint cloud is recentered on its mean and divided by its largest
// coordinate above the mean, so it fits the default view.
// The Color of opts is ignored; if opts is nil the defaults are used.
func Composite[P colorize.Number](opts *PointCloudOptions, clouds ...[][3]P) (*PointCloud, error) {
	var n int
	for _, c := range clouds {
		n += len(c)
	}
	pts := make([][3]float64, 0, n)
	for _, c := range clouds {
		for _, p := range c {
			pts = append(pts, [3]float64{float64(p[0]), float64(p[1]), float64(p[2])})
		}
	}
	var mu [3]float64
	for _, p := range pts {
		for k := range 3 {
			mu[k] += p[k]
		}
	}
	if n > 0 {
		for k := range 3 {
			mu[k] /= float64(n)
		}
	}
	scale := 0.0
	for _, p := range pts {
		for k := range 3 {
			scale = max(scale, p[k]-mu[k])
		}
	}
	if scale == 0 {
		scale = 1
	}
	for i := range pts {
		for k := range 3 {
			pts[i][k] = (pts[i][k] - mu[k]) / scale
		}
	}

	clr := make(colorize.PerElementRGB, 0, n)
	for i, c := range clouds {
		t := colorize.Tab10(i)
		for range c {
			clr = append(clr, [3]float32{t.R, t.G, t.B})
		}
	}

	o := DefaultPointCloudOptions(nil)
	if opts != nil {
		*o = *opts
	}
	o.Color = clr
	if o.Resolver == nil {
		o.Resolver = colorize.NewResolver(nil, false)
	}
	pc, err := NewPointCloud(pts, o)
	if err != nil {
		return nil, err
	}
	pc.Name = "composite"
	pc.drawable.Name = pc.Name
	return pc, nil
}
