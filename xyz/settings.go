// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/math32"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the defaults for new views and objects.
// They can be loaded from a TOML or YAML file with [OpenSettings].
type Settings struct {

	// Width of new views in pixels.
	Width int `default:"400" toml:"width" yaml:"width"`

	// Height of new views in pixels.
	Height int `default:"400" toml:"height" yaml:"height"`

	// Projection of new cameras.
	Projection Projection `toml:"projection" yaml:"projection"`

	// Title of new views.
	Title string `toml:"title" yaml:"title"`

	// CameraPos is the position of new cameras, looking at the origin.
	CameraPos math32.Vector3 `toml:"camera_pos" yaml:"camera_pos"`

	// FOV is the vertical field of view of perspective cameras, in degrees.
	FOV float32 `default:"50" toml:"fov" yaml:"fov"`

	// DirLightPos is the position of the directional key light.
	DirLightPos math32.Vector3 `toml:"dir_light_pos" yaml:"dir_light_pos"`

	// DirLumens is the intensity of the directional key light.
	DirLumens float32 `default:"0.3" toml:"dir_lumens" yaml:"dir_lumens"`

	// AmbientLumens is the intensity of the ambient light.
	AmbientLumens float32 `default:"0.8" toml:"ambient_lumens" yaml:"ambient_lumens"`

	// Colormap is the name of the colormap for scalar fields.
	Colormap string `default:"Viridis" toml:"colormap" yaml:"colormap"`

	// Radius is the default point size of point clouds.
	Radius float32 `default:"1" toml:"radius" yaml:"radius"`

	// Spherical is the default spherical shading of point clouds.
	Spherical float32 `default:"2" toml:"spherical" yaml:"spherical"`
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(s))
	s.CameraPos = math32.Vec3(.8, .5, .8)
	s.DirLightPos = math32.Vec3(.5, 1, 0)
}

// DefaultSettings returns new default settings.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// ViewOptions returns view options with the view fields of the settings.
func (s *Settings) ViewOptions() ViewOptions {
	var vo ViewOptions
	errors.Log(copier.Copy(&vo, s))
	vo.Settings = s
	return vo
}

// OpenSettings returns the default settings overridden by those in the
// given TOML (.toml) or YAML (.yaml, .yml) file. Fields missing from the
// file keep their defaults. A leading ~ in filename is the home directory.
func OpenSettings(filename string) (*Settings, error) {
	s := DefaultSettings()
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, s)
	default:
		return nil, fmt.Errorf("xyz.OpenSettings: unsupported settings file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("xyz.OpenSettings: %s: %w", filename, err)
	}
	return s, nil
}

// SaveSettings saves the settings to the given TOML or YAML file,
// based on its extension.
func SaveSettings(s *Settings, filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	var b []byte
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(s)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(s)
	default:
		return fmt.Errorf("xyz.SaveSettings: unsupported settings file extension %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
