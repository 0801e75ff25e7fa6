// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/gogpu/naga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompile returns the source bytes padded to whole words, so tests
// can check what was compiled without depending on a shader compiler.
func fakeCompile(wgsl string) ([]byte, error) {
	b := []byte(wgsl)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	return b, nil
}

func testMaterial(d Defines) *Material {
	m := NewMaterial(Uniforms{PointSize: 1, Spherical: 2}, d)
	m.Cache = NewCache(4, fakeCompile)
	return m
}

func TestDefineChangeRecompiles(t *testing.T) {
	m := testMaterial(Defines{})
	p0, err := m.Program()
	require.NoError(t, err)
	assert.Equal(t, 1, m.Cache.Compiles())
	assert.False(t, m.Stale())
	assert.NotContains(t, p0.WGSL, "out.color = in.color;")

	require.NoError(t, m.SetDefine(UseColor))
	assert.True(t, m.Stale())
	assert.Equal(t, uint64(1), m.DefinesVersion())
	p1, err := m.Program()
	require.NoError(t, err)
	assert.Equal(t, 2, m.Cache.Compiles())
	assert.NotSame(t, p0, p1)
	assert.True(t, p1.Defines.UseColor)
	assert.Contains(t, p1.WGSL, "out.color = in.color;")
	// the color attribute is an input as well as an output
	assert.Equal(t, 2, strings.Count(p1.WGSL, "@location(1) color"))
	assert.NotContains(t, p1.WGSL, "out.color = vec3<f32>(1.0, 0.0, 0.0);")

	// back to the first define set: cached
	require.NoError(t, m.ClearDefine(UseColor))
	p2, err := m.Program()
	require.NoError(t, err)
	assert.Same(t, p0, p2)
	assert.Equal(t, 2, m.Cache.Compiles())
}

func TestSettingSameDefineKeepsProgram(t *testing.T) {
	m := testMaterial(Defines{ConstantDisplaySize: true})
	_, err := m.Program()
	require.NoError(t, err)
	require.NoError(t, m.SetDefine(ConstantDisplaySize))
	assert.False(t, m.Stale())
	assert.Equal(t, uint64(0), m.DefinesVersion())
}

func TestUniformChangeDoesNotRecompile(t *testing.T) {
	m := testMaterial(Defines{})
	p0, err := m.Program()
	require.NoError(t, err)
	m.Synced()
	assert.False(t, m.NeedsUpdate())

	require.NoError(t, m.SetUniform(PointSize, 3))
	require.NoError(t, m.SetUniform(Spherical, 0))
	assert.True(t, m.NeedsUpdate())
	assert.False(t, m.Stale())
	assert.Equal(t, uint64(2), m.UniformsVersion())
	assert.Equal(t, Uniforms{PointSize: 3, Spherical: 0}, m.Uniforms())

	p1, err := m.Program()
	require.NoError(t, err)
	assert.Same(t, p0, p1)
	assert.Equal(t, 1, m.Cache.Compiles())
}

func TestUnknownNames(t *testing.T) {
	m := testMaterial(Defines{})
	assert.ErrorIs(t, m.SetDefine("USE_TEXTURE"), ErrUnknownDefine)
	assert.ErrorIs(t, m.SetUniform("opacity", 1), ErrUnknownUniform)
	assert.Equal(t, uint64(0), m.UniformsVersion())
	_, err := m.Uniforms().Get("opacity")
	assert.ErrorIs(t, err, ErrUnknownUniform)
}

func TestSharedCache(t *testing.T) {
	c := NewCache(4, fakeCompile)
	a := testMaterial(Defines{UseColor: true})
	b := testMaterial(Defines{UseColor: true})
	a.Cache, b.Cache = c, c
	pa, err := a.Program()
	require.NoError(t, err)
	pb, err := b.Program()
	require.NoError(t, err)
	assert.Same(t, pa, pb)
	assert.Equal(t, 1, c.Compiles())
	assert.Equal(t, 1, c.Len())
	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestUniformBlock(t *testing.T) {
	m := testMaterial(Defines{})
	mvp := cameraAt(2)
	b := m.UniformBlock(mvp, math32.Vec2(400, 300))
	require.Len(t, b, UniformBlockSize)
	at := func(i int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	assert.Equal(t, mvp[0], at(0))
	assert.Equal(t, mvp[15], at(15))
	assert.Equal(t, float32(400), at(16))
	assert.Equal(t, float32(300), at(17))
	assert.Equal(t, float32(1), at(18))
	assert.Equal(t, float32(2), at(19))
}

func TestDefinesString(t *testing.T) {
	assert.Equal(t, "{}", Defines{}.String())
	assert.Equal(t, "{CONSTANT_DISPLAY_SIZE USE_COLOR}", Defines{ConstantDisplaySize: true, UseColor: true}.String())
	assert.True(t, Defines{UseColor: true}.Has(UseColor))
	assert.False(t, Defines{UseColor: true}.Has(ConstantDisplaySize))
}

func TestShaderCompilation(t *testing.T) {
	for _, d := range []Defines{{}, {UseColor: true}, {ConstantDisplaySize: true}, {true, true}} {
		t.Run(d.String(), func(t *testing.T) {
			c := NewCache(1, naga.Compile)
			p, err := c.Program(d)
			if err != nil {
				if strings.Contains(err.Error(), "not yet implemented") || strings.Contains(err.Error(), "not supported") {
					t.Skipf("naga feature not yet implemented: %v", err)
				}
				t.Fatalf("failed to compile point sprite shader: %v", err)
			}
			require.NotEmpty(t, p.SPIRV)
			assert.Equal(t, uint32(0x07230203), p.SPIRV[0])
		})
	}
}
