// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/glwrap/glgpu/driver"
	"cogentcore.org/glwrap/glgpu/driver/fakegl"
	"github.com/stretchr/testify/assert"
)

func TestDraw(t *testing.T) {
	d := fakegl.New()
	DrawPrimitive(d, Triangles, 3)
	assert.True(t, d.Called("DrawArrays(4, 0, 3)"))
	DrawArrays(d, LineStrip, 2, 5)
	assert.True(t, d.Called("DrawArrays(3, 2, 5)"))

	assert.NoError(t, DrawElements(d, Triangles, 6, Uint32))
	assert.True(t, d.Called("DrawElements(4, 6, 5125, 0)"))
	assert.NoError(t, DrawElements(d, TriangleFan, 4, Uint16))
	assert.ErrorContains(t, DrawElements(d, Triangles, 6, Float32), "invalid index type")
	assert.Equal(t, 2, d.Count("DrawElements"))
}

func TestClear(t *testing.T) {
	d := fakegl.New()
	ClearColor(d, color.RGBA{255, 0, 0, 255})
	assert.Equal(t, [4]float32{1, 0, 0, 1}, d.ClearValue())

	Clear(d, true, true)
	assert.True(t, d.Called("Clear(16640)"))
	Clear(d, true, false)
	assert.True(t, d.Called("Clear(16384)"))
}

func TestViewportDepth(t *testing.T) {
	d := fakegl.New()
	Viewport(d, image.Rect(0, 0, 800, 600))
	assert.Equal(t, [4]int32{0, 0, 800, 600}, d.ViewportValue())

	DepthTest(d, true)
	assert.True(t, d.Enabled(driver.DEPTH_TEST))
	DepthTest(d, false)
	assert.False(t, d.Enabled(driver.DEPTH_TEST))
}

func TestPrimitiveTypes(t *testing.T) {
	for _, p := range PrimitiveTypesValues() {
		if p == Points {
			assert.Zero(t, p.GL())
			continue
		}
		assert.NotZero(t, p.GL(), p.String())
	}
	assert.Equal(t, "TriangleStrip", TriangleStrip.String())
}

func TestDeleteAll(t *testing.T) {
	d := fakegl.New()
	va, _ := NewVertexArray(d)
	bo, _ := NewBufferObject(d, ArrayBuffer, StaticDraw, []PositionVertex{{}})
	pr, _ := NewProgram(d, testVertex, testFragment)
	assert.NoError(t, DeleteAll(pr, bo, nil, va))
	assert.NoError(t, DeleteAll(pr, bo, va))
	assert.Equal(t, 1, d.Count("DeleteProgram"))
	assert.Equal(t, 1, d.Count("DeleteBuffer"))
	assert.Equal(t, 1, d.Count("DeleteVertexArray"))

	var tx *Texture
	var sh *Shader
	assert.NoError(t, DeleteAll(tx, sh))
}
