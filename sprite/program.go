// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sprite

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/naga"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Entry points of the shader.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// Program is the point sprite shader compiled for one set of [Defines].
// Programs are immutable and shared between materials.
type Program struct {

	// Defines the program was compiled with.
	Defines Defines

	// WGSL is the preprocessed shader source.
	WGSL string

	// SPIRV is the compiled shader as little-endian 32 bit words.
	SPIRV []uint32
}

// CompileFunc compiles WGSL source to SPIR-V bytes.
type CompileFunc func(wgsl string) ([]byte, error)

// Cache compiles programs and keeps the most recently used ones.
// It is safe for concurrent use.
type Cache struct {
	compile  CompileFunc
	programs *expirable.LRU[Defines, *Program]
	compiles atomic.Int64
}

// DefaultCacheSize is the number of programs kept by [DefaultCache].
// There are only four combinations of the defines.
const DefaultCacheSize = 8

// DefaultCache is the program cache used by materials that do not
// set their own, compiling with naga.
var DefaultCache = NewCache(DefaultCacheSize, naga.Compile)

// NewCache returns a new program cache of the given size that
// compiles with the given function.
func NewCache(size int, compile CompileFunc) *Cache {
	onEvict := func(d Defines, _ *Program) {
		slog.Debug("sprite: program evicted", "defines", d)
	}
	return &Cache{
		compile:  compile,
		programs: expirable.NewLRU[Defines, *Program](size, onEvict, 0),
	}
}

// Program returns the program for the given defines, compiling it
// if it is not cached.
func (c *Cache) Program(d Defines) (*Program, error) {
	if p, ok := c.programs.Get(d); ok {
		slog.Debug("sprite: program cache hit", "defines", d)
		return p, nil
	}
	p, err := c.Compile(d)
	if err != nil {
		return nil, err
	}
	c.programs.Add(d, p)
	return p, nil
}

// Compile preprocesses and compiles a new program for the given
// defines, without using the cache.
func (c *Cache) Compile(d Defines) (*Program, error) {
	src, err := Preprocess(Source, d.Map())
	if err != nil {
		return nil, err
	}
	c.compiles.Add(1)
	b, err := c.compile(src)
	if err != nil {
		return nil, fmt.Errorf("sprite: failed to compile shader %v: %w", d, err)
	}
	slog.Debug("sprite: compiled program", "defines", d, "bytes", len(b))
	return &Program{Defines: d, WGSL: src, SPIRV: Words(b)}, nil
}

// Compiles returns the number of compilations done by the cache.
func (c *Cache) Compiles() int {
	return int(c.compiles.Load())
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	return c.programs.Len()
}

// Purge removes all cached programs.
func (c *Cache) Purge() {
	c.programs.Purge()
}

// Words converts SPIR-V bytes to little-endian 32 bit words.
func Words(b []byte) []uint32 {
	w := make([]uint32, len(b)/4)
	for i := range w {
		w[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return w
}
