// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cloudview renders demo point clouds and meshes to PNG images,
// without a window or a GPU.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/cli"

	"cogentcore.org/cloudview/colorize"
	"cogentcore.org/cloudview/raster"
	"cogentcore.org/cloudview/xyz"
)

// Config is the configuration information for the cloudview cli.
type Config struct {

	// Output is the PNG file to write the view to.
	Output string `posarg:"0" required:"-" default:"cloudview.png"`

	// Scene is the demo to render: points, mesh, or composite.
	Scene string `flag:"scene" default:"points"`

	// Settings is an optional TOML or YAML settings file
	// for the view, camera, lights and colormap.
	Settings string `flag:"s,settings"`

	// Points is the number of random points.
	Points int `default:"2000"`

	// Seed is the random seed for the points.
	Seed int64 `default:"1"`

	// Radius is the point size; the settings value if 0.
	Radius float32

	// Supersample is the number of samples per pixel along each axis.
	Supersample int `default:"2"`

	// Colorbar is an optional PNG file to write the colorbar of the
	// scalar field to.
	Colorbar string

	// Dump prints a summary of the view.
	Dump bool

	// Watch re-renders the view every time the settings file changes,
	// until interrupted.
	Watch bool
}

func main() { //types:skip
	opts := cli.DefaultOptions("cloudview", "Cloudview renders point clouds and meshes to images.")
	cli.Run(opts, &Config{}, Render)
}

// Render renders the configured scene to the output file.
func Render(c *Config) error { //cli:cmd -root
	s := xyz.DefaultSettings()
	if c.Settings != "" {
		var err error
		s, err = xyz.OpenSettings(c.Settings)
		if err != nil {
			return err
		}
	}
	if err := renderScene(c, s); err != nil {
		return err
	}
	if !c.Watch {
		return nil
	}
	if c.Settings == "" {
		return errors.New("cloudview: watch needs a settings file")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return xyz.WatchSettings(ctx, c.Settings, func(s *xyz.Settings) {
		if err := renderScene(c, s); err != nil {
			slog.Error("cloudview: rendering", "err", err)
		}
	})
}

func renderScene(c *Config, s *xyz.Settings) error {
	if c.Radius > 0 {
		s.Radius = c.Radius
	}
	obj, rs, err := NewScene(c, s)
	if err != nil {
		return err
	}
	v := xyz.NewViewWith(s.ViewOptions(), obj)
	defer v.Release()
	if c.Dump {
		fmt.Fprintln(os.Stdout, v.Dump())
	}

	r := raster.NewRenderer()
	r.Supersample = c.Supersample
	img, err := v.Render(r)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, c.Output); err != nil {
		return err
	}
	slog.Info("cloudview: saved view", "scene", c.Scene, "file", c.Output, "size", img.Bounds().Size())

	if c.Colorbar == "" {
		return nil
	}
	if !rs.IsScalarField() {
		slog.Warn("cloudview: no colorbar, the scene has no scalar field", "scene", c.Scene)
		return nil
	}
	cb, err := rs.Colorbar(colorize.ColorbarOptions{})
	if err != nil {
		return err
	}
	if err := imagex.Save(cb, c.Colorbar); err != nil {
		return err
	}
	slog.Info("cloudview: saved colorbar", "file", c.Colorbar, "range", rs.State.Range)
	return nil
}

// NewScene returns the configured demo object and the resolver of its
// colors.
func NewScene(c *Config, s *xyz.Settings) (xyz.Object, *colorize.Resolver, error) {
	rnd := rand.New(rand.NewSource(c.Seed))
	switch c.Scene {
	case "points":
		pts := RandomPoints(rnd, max(c.Points, 1))
		opts := xyz.DefaultPointCloudOptions(s)
		opts.Color = colorize.Column(pts, 2)
		pc, err := xyz.NewPointCloud(pts, opts)
		if err != nil {
			return nil, nil, err
		}
		return pc.WithSlider(0, 0, 0), pc.Resolver, nil
	case "mesh":
		v, f := Sphere(0.4, 24, 16)
		opts := xyz.DefaultMeshOptions()
		opts.VertexColor = colorize.Column(v, 1)
		opts.LineOpacity = 0.3
		cm, err := colorize.Named(s.Colormap)
		if err != nil {
			return nil, nil, err
		}
		opts.Resolver = colorize.NewResolver(cm, false)
		ms, err := xyz.NewMesh(v, f, opts)
		if err != nil {
			return nil, nil, err
		}
		return ms, ms.Resolver, nil
	case "composite":
		n := max(c.Points/3, 1)
		clouds := make([][][3]float64, 3)
		for i := range clouds {
			clouds[i] = GaussianCloud(rnd, n, [3]float64{float64(i), float64(i % 2), 0}, 0.3)
		}
		pc, err := xyz.Composite(xyz.DefaultPointCloudOptions(s), clouds...)
		if err != nil {
			return nil, nil, err
		}
		return pc, pc.Resolver, nil
	}
	return nil, nil, fmt.Errorf("cloudview: unknown scene %q (must be points, mesh or composite)", c.Scene)
}
