// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package renderable has small scenes built from glgpu resources.
package renderable

import (
	"fmt"
	"io/fs"
	"path"

	"cogentcore.org/glwrap/assets"
	"cogentcore.org/glwrap/glgpu"
	"cogentcore.org/glwrap/glgpu/driver"
)

// Renderable is something that can draw itself with the current
// context and owns the resources it draws with.
type Renderable interface {
	glgpu.Deletable

	// Draw binds the resources and issues the draw calls.
	Draw() error

	// Program returns the shader program, for reloading.
	Program() *glgpu.Program
}

// Names are the names accepted by [New].
var Names = []string{"triangle", "quad"}

// New returns the named renderable, reading its shaders from the
// program directories in shaders (typically [assets.Shaders] or an
// os.DirFS of a shader directory being edited).
func New(name string, d driver.Driver, shaders fs.FS) (Renderable, error) {
	var r Renderable
	var err error
	switch name {
	case "triangle":
		r, err = NewFirstTriangle(d, shaders)
	case "quad":
		r, err = NewTexturedQuad(d, shaders, nil)
	default:
		return nil, fmt.Errorf("renderable.New: unknown renderable %q, must be one of %v", name, Names)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// programFromDir builds the program in the given directory of shaders.
func programFromDir(d driver.Driver, shaders fs.FS, dir string, attribs ...string) (*glgpu.Program, error) {
	return glgpu.ProgramFromFS(d, shaders, path.Join(dir, assets.VertexShaderFile), path.Join(dir, assets.FragmentShaderFile), attribs...)
}
