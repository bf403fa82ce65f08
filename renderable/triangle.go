// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderable

import (
	"io/fs"

	"cogentcore.org/core/math32"
	"cogentcore.org/glwrap/assets"
	"cogentcore.org/glwrap/glgpu"
	"cogentcore.org/glwrap/glgpu/driver"
)

// FirstTriangle draws a single flat colored triangle.
type FirstTriangle struct {
	drv     driver.Driver
	vao     *glgpu.VertexArray
	vbo     *glgpu.BufferObject[glgpu.PositionVertex]
	program *glgpu.Program

	// Color of the triangle.
	Color math32.Vector4
}

var _ Renderable = (*FirstTriangle)(nil)

// NewFirstTriangle creates the triangle with the simple_color program
// from shaders.
func NewFirstTriangle(d driver.Driver, shaders fs.FS) (*FirstTriangle, error) {
	ft := &FirstTriangle{drv: d, Color: math32.Vec4(1, 0.5, 0.2, 1)}
	vertices := []glgpu.PositionVertex{
		{Position: math32.Vec3(-0.5, -0.5, 0)}, // left
		{Position: math32.Vec3(0.5, -0.5, 0)},  // right
		{Position: math32.Vec3(0, 0.5, 0)},     // top
	}
	var err error
	if ft.vao, err = glgpu.NewVertexArrayBound(d); err != nil {
		return nil, err
	}
	if ft.vbo, err = glgpu.NewBufferObject(d, glgpu.ArrayBuffer, glgpu.StaticDraw, vertices); err != nil {
		ft.Delete()
		return nil, err
	}
	if err = ft.vao.SetLayout(ft.vbo.Layout()); err != nil {
		ft.Delete()
		return nil, err
	}
	if ft.program, err = programFromDir(d, shaders, assets.SimpleColor, "position"); err != nil {
		ft.Delete()
		return nil, err
	}
	return ft, nil
}

// Program returns the simple_color program.
func (ft *FirstTriangle) Program() *glgpu.Program {
	return ft.program
}

func (ft *FirstTriangle) Draw() error {
	if err := ft.vao.Bind(); err != nil {
		return err
	}
	if err := ft.vbo.Bind(); err != nil {
		return err
	}
	if err := ft.program.Bind(); err != nil {
		return err
	}
	if err := ft.program.SetUniformVector4("color", ft.Color); err != nil {
		return err
	}
	glgpu.DrawPrimitive(ft.drv, glgpu.Triangles, ft.vbo.Len())
	return nil
}

func (ft *FirstTriangle) Delete() error {
	return glgpu.DeleteAll(ft.program, ft.vbo, ft.vao)
}
