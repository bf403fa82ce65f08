// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package renderable

import (
	"image"
	"image/color"
	"testing"
	"testing/fstest"

	"cogentcore.org/glwrap/assets"
	"cogentcore.org/glwrap/glgpu"
	"cogentcore.org/glwrap/glgpu/driver"
	"cogentcore.org/glwrap/glgpu/driver/fakegl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstTriangle(t *testing.T) {
	d := fakegl.New()
	ft, err := NewFirstTriangle(d, assets.Shaders)
	require.NoError(t, err)

	pos, ok := d.Attrib(0)
	require.True(t, ok)
	assert.True(t, pos.Enabled)
	assert.Equal(t, int32(3), pos.Size)
	assert.Equal(t, int32(12), pos.Stride)
	data, _ := d.Buffer(pos.Buffer)
	assert.Len(t, data, 36)

	d.Reset()
	require.NoError(t, ft.Draw())
	assert.True(t, d.Called("DrawArrays(4, 0, 3)"))
	assert.True(t, ft.Program().IsBound())
	loc, err := ft.Program().UniformLocation("color")
	require.NoError(t, err)
	assert.Equal(t, [4]float32{1, 0.5, 0.2, 1}, d.Uniform(loc))

	require.NoError(t, ft.Delete())
	require.NoError(t, ft.Delete())
	assert.Equal(t, 0, d.Programs())
	assert.Equal(t, 1, d.Count("DeleteBuffer"))
	assert.Equal(t, 1, d.Count("DeleteVertexArray"))
	assert.ErrorIs(t, ft.Draw(), glgpu.ErrDeleted)
}

func TestFirstTriangleShaderError(t *testing.T) {
	d := fakegl.New()
	shaders := fstest.MapFS{
		"simple_color/vertex_shader.glsl":   {Data: []byte("#version 410 core\nvoid main() {}\n")},
		"simple_color/fragment_shader.glsl": {Data: []byte("#version 410 core\nbad\n")},
	}
	d.CompileFailMarker = "bad"
	_, err := NewFirstTriangle(d, shaders)
	assert.ErrorContains(t, err, "compilation failed")
	// everything created before the failure is released
	assert.Equal(t, 1, d.Count("DeleteBuffer"))
	assert.Equal(t, 1, d.Count("DeleteVertexArray"))

	_, err = NewFirstTriangle(d, fstest.MapFS{})
	assert.Error(t, err)
}

func TestTexturedQuad(t *testing.T) {
	d := fakegl.New()
	tq, err := NewTexturedQuad(d, assets.Shaders, nil)
	require.NoError(t, err)

	for i, offset := range []int{0, 12, 28} {
		at, ok := d.Attrib(uint32(i))
		require.True(t, ok)
		assert.True(t, at.Enabled)
		assert.Equal(t, offset, at.Offset)
		assert.Equal(t, int32(36), at.Stride)
	}
	ebo := d.Bound(driver.ELEMENT_ARRAY_BUFFER_BINDING)
	assert.Equal(t, uint32(tq.ebo.Handle()), ebo)
	idx, _ := d.Buffer(ebo)
	assert.Len(t, idx, 24)
	require.NoError(t, tq.vao.Unbind())
	assert.False(t, tq.ebo.IsBound())
	assert.Equal(t, image.Pt(64, 64), tq.Texture().Size())

	d.Reset()
	require.NoError(t, tq.Draw())
	assert.True(t, d.Called("DrawElements(4, 6, 5125, 0)"))
	assert.Equal(t, driver.Enum(driver.TEXTURE0), d.ActiveUnit())
	loc, err := tq.Program().UniformLocation("tex")
	require.NoError(t, err)
	assert.Equal(t, int32(0), d.Uniform(loc))

	require.NoError(t, tq.Delete())
	assert.Equal(t, 2, d.Count("DeleteBuffer"))
	assert.Equal(t, 1, d.Count("DeleteTexture"))
	assert.Equal(t, 0, d.Programs())
}

func TestNew(t *testing.T) {
	d := fakegl.New()
	for _, name := range Names {
		r, err := New(name, d, assets.Shaders)
		require.NoError(t, err, name)
		require.NoError(t, r.Draw(), name)
		require.NoError(t, r.Delete(), name)
	}
	_, err := New("cube", d, assets.Shaders)
	assert.ErrorContains(t, err, `unknown renderable "cube"`)
}

func TestCheckerboard(t *testing.T) {
	img := Checkerboard(16, 4)
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, black, img.RGBAAt(4, 0))
	assert.Equal(t, black, img.RGBAAt(0, 4))
	assert.Equal(t, white, img.RGBAAt(5, 5))
	assert.Equal(t, white, Checkerboard(3, 0).RGBAAt(0, 0))
}
