// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/glwrap/glgpu/driver"
)

// PrimitiveTypes are the primitive assembly modes for draw calls.
type PrimitiveTypes int32 //enums:enum

const (
	Points PrimitiveTypes = iota
	Lines
	LineStrip
	LineLoop
	Triangles
	TriangleStrip
	TriangleFan
)

var glPrimitives = map[PrimitiveTypes]driver.Enum{
	Points:        driver.POINTS,
	Lines:         driver.LINES,
	LineStrip:     driver.LINE_STRIP,
	LineLoop:      driver.LINE_LOOP,
	Triangles:     driver.TRIANGLES,
	TriangleStrip: driver.TRIANGLE_STRIP,
	TriangleFan:   driver.TRIANGLE_FAN,
}

// GL returns the GL primitive mode.
func (pt PrimitiveTypes) GL() driver.Enum {
	return glPrimitives[pt]
}

// All of the following operate on the current context with the
// current program, vertex array and buffers.

// DrawPrimitive draws count vertices starting at the first one.
func DrawPrimitive(d driver.Driver, prim PrimitiveTypes, count int) {
	DrawArrays(d, prim, 0, count)
}

// DrawArrays draws count vertices starting at first (non-indexed).
func DrawArrays(d driver.Driver, prim PrimitiveTypes, first, count int) {
	d.DrawArrays(prim.GL(), int32(first), int32(count))
}

// DrawElements draws count indexes of the given type from the start of
// the bound element array buffer. typ must be Uint8, Uint16 or Uint32.
func DrawElements(d driver.Driver, prim PrimitiveTypes, count int, typ Types) error {
	switch typ {
	case Uint8, Uint16, Uint32:
	default:
		return fmt.Errorf("glgpu.DrawElements: invalid index type %s", typ)
	}
	d.DrawElements(prim.GL(), int32(count), typ.GL(), 0)
	return nil
}

// Clear clears the given buffers of the current render target.
func Clear(d driver.Driver, color, depth bool) {
	bits := driver.Enum(0)
	if color {
		bits |= driver.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= driver.DEPTH_BUFFER_BIT
	}
	d.Clear(bits)
}

// ClearColor sets the color used by Clear.
func ClearColor(d driver.Driver, c color.Color) {
	r, g, b, a := c.RGBA()
	d.ClearColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
}

// Viewport sets the rendering viewport to the given rectangle.
func Viewport(d driver.Driver, rect image.Rectangle) {
	d.Viewport(int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Dx()), int32(rect.Dy()))
}

// DepthTest turns depth testing on or off.
func DepthTest(d driver.Driver, on bool) {
	if on {
		d.Enable(driver.DEPTH_TEST)
	} else {
		d.Disable(driver.DEPTH_TEST)
	}
}
