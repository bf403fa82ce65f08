// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderable

import (
	"image"
	"image/color"
	"io/fs"

	"cogentcore.org/core/math32"
	"cogentcore.org/glwrap/assets"
	"cogentcore.org/glwrap/glgpu"
	"cogentcore.org/glwrap/glgpu/driver"
)

// TexturedQuad draws an indexed, textured quad using all three
// attributes of [glgpu.TexturedVertex].
type TexturedQuad struct {
	drv     driver.Driver
	vao     *glgpu.VertexArray
	vbo     *glgpu.BufferObject[glgpu.TexturedVertex]
	ebo     *glgpu.BufferObject[glgpu.Index]
	texture *glgpu.Texture
	program *glgpu.Program
}

var _ Renderable = (*TexturedQuad)(nil)

// quadVertices are the corners of the quad, counter-clockwise from
// the bottom left.
func quadVertices() []glgpu.TexturedVertex {
	white := math32.Vec4(1, 1, 1, 1)
	return []glgpu.TexturedVertex{
		{Position: math32.Vec3(-0.5, -0.5, 0), Color: white, TexCoord: math32.Vec2(0, 0)},
		{Position: math32.Vec3(0.5, -0.5, 0), Color: white, TexCoord: math32.Vec2(1, 0)},
		{Position: math32.Vec3(0.5, 0.5, 0), Color: white, TexCoord: math32.Vec2(1, 1)},
		{Position: math32.Vec3(-0.5, 0.5, 0), Color: white, TexCoord: math32.Vec2(0, 1)},
	}
}

var quadIndexes = []glgpu.Index{0, 1, 2, 2, 3, 0}

// NewTexturedQuad creates the quad with the textured program from
// shaders, showing img, or a checkerboard if img is nil.
func NewTexturedQuad(d driver.Driver, shaders fs.FS, img image.Image) (*TexturedQuad, error) {
	if img == nil {
		img = Checkerboard(64, 8)
	}
	tq := &TexturedQuad{drv: d}
	var err error
	if tq.vao, err = glgpu.NewVertexArrayBound(d); err != nil {
		return nil, err
	}
	if tq.vbo, err = glgpu.NewBufferObject(d, glgpu.ArrayBuffer, glgpu.StaticDraw, quadVertices()); err != nil {
		tq.Delete()
		return nil, err
	}
	// the element buffer binding is recorded in the bound vertex array
	if tq.ebo, err = glgpu.NewBufferObject(d, glgpu.ElementArrayBuffer, glgpu.StaticDraw, quadIndexes); err != nil {
		tq.Delete()
		return nil, err
	}
	if err = tq.vao.SetLayout(tq.vbo.Layout()); err != nil {
		tq.Delete()
		return nil, err
	}
	if tq.texture, err = glgpu.NewTexture(d, img); err != nil {
		tq.Delete()
		return nil, err
	}
	if tq.program, err = programFromDir(d, shaders, assets.Textured, "position", "color", "texCoord"); err != nil {
		tq.Delete()
		return nil, err
	}
	return tq, nil
}

// Program returns the textured program.
func (tq *TexturedQuad) Program() *glgpu.Program {
	return tq.program
}

// Texture returns the texture shown on the quad.
func (tq *TexturedQuad) Texture() *glgpu.Texture {
	return tq.texture
}

func (tq *TexturedQuad) Draw() error {
	if err := tq.vao.Bind(); err != nil {
		return err
	}
	if err := tq.texture.Activate(0); err != nil {
		return err
	}
	if err := tq.program.Bind(); err != nil {
		return err
	}
	if err := tq.program.SetUniform1i("tex", 0); err != nil {
		return err
	}
	return glgpu.DrawElements(tq.drv, glgpu.Triangles, tq.ebo.Len(), glgpu.Uint32)
}

func (tq *TexturedQuad) Delete() error {
	return glgpu.DeleteAll(tq.program, tq.texture, tq.ebo, tq.vbo, tq.vao)
}

// Checkerboard returns a size x size image of black and white squares
// with the given number of cells per side.
func Checkerboard(size, cells int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := max(size/max(cells, 1), 1)
	for y := range size {
		for x := range size {
			c := color.RGBA{255, 255, 255, 255}
			if (x/cell+y/cell)%2 == 1 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
