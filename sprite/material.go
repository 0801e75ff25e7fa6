// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"encoding/binary"
	"math"

	"cogentcore.org/core/math32"
)

// UniformBlockSize is the byte size of the uniform block:
// mvp mat4x4, viewport vec2, pointSize and spherical.
const UniformBlockSize = 80

// Material is the shader state of one point cloud: its defines and
// uniforms. Changing a define makes the program stale, so that the
// next call to [Material.Program] gets a program compiled for the new
// defines. Changing a uniform only updates the uniform block.
//
// A Material is used from one goroutine at a time.
type Material struct {

	// Cache to get programs from; [DefaultCache] if nil.
	Cache *Cache

	defines  Defines
	uniforms Uniforms

	// program is the current program, nil if stale.
	program *Program

	definesVersion  uint64
	uniformsVersion uint64

	// needsUpdate is set by any change and cleared by Synced.
	needsUpdate bool
}

// NewMaterial returns a new material with the given uniforms and defines.
func NewMaterial(u Uniforms, d Defines) *Material {
	return &Material{uniforms: u, defines: d, needsUpdate: true}
}

// Defines returns the current defines.
func (m *Material) Defines() Defines {
	return m.defines
}

// Uniforms returns the current uniforms.
func (m *Material) Uniforms() Uniforms {
	return m.uniforms
}

// SetDefine turns on the named define. If it was off, the program is
// now stale and will be recompiled (or fetched from the cache).
func (m *Material) SetDefine(name string) error {
	return m.setDefine(name, true)
}

// ClearDefine turns off the named define, making the program stale
// if it was on.
func (m *Material) ClearDefine(name string) error {
	return m.setDefine(name, false)
}

// SetDefines replaces all the defines.
func (m *Material) SetDefines(d Defines) {
	if d == m.defines {
		return
	}
	m.defines = d
	m.definesChanged()
}

func (m *Material) setDefine(name string, on bool) error {
	d := m.defines
	if err := d.Set(name, on); err != nil {
		return err
	}
	m.SetDefines(d)
	return nil
}

func (m *Material) definesChanged() {
	m.program = nil
	m.definesVersion++
	m.needsUpdate = true
}

// SetUniform sets the named uniform. It never makes the program stale.
func (m *Material) SetUniform(name string, v float32) error {
	if err := m.uniforms.Set(name, v); err != nil {
		return err
	}
	m.uniformsVersion++
	m.needsUpdate = true
	return nil
}

// Stale returns whether the program must be obtained again because
// the defines changed.
func (m *Material) Stale() bool {
	return m.program == nil
}

// Program returns the program for the current defines.
func (m *Material) Program() (*Program, error) {
	if m.program != nil {
		return m.program, nil
	}
	c := m.Cache
	if c == nil {
		c = DefaultCache
	}
	p, err := c.Program(m.defines)
	if err != nil {
		return nil, err
	}
	m.program = p
	return p, nil
}

// DefinesVersion is incremented on every change of the defines.
func (m *Material) DefinesVersion() uint64 {
	return m.definesVersion
}

// UniformsVersion is incremented on every change of a uniform.
func (m *Material) UniformsVersion() uint64 {
	return m.uniformsVersion
}

// NeedsUpdate returns whether the material changed since the host
// last called [Material.Synced].
func (m *Material) NeedsUpdate() bool {
	return m.needsUpdate
}

// Synced records that the host has uploaded the current state.
func (m *Material) Synced() {
	m.needsUpdate = false
}

// UniformBlock returns the uniform block to upload for drawing with
// the given model view projection matrix into a viewport of the
// given size in pixels.
func (m *Material) UniformBlock(mvp *math32.Matrix4, viewport math32.Vector2) []byte {
	b := make([]byte, UniformBlockSize)
	put := func(i int, v float32) {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	for i, v := range mvp {
		put(i, v)
	}
	put(16, viewport.X)
	put(17, viewport.Y)
	put(18, m.uniforms.PointSize)
	put(19, m.uniforms.Spherical)
	return b
}
