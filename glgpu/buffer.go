// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"runtime"
	"unsafe"

	"cogentcore.org/glwrap/glgpu/driver"
)

// BufferTypes are the buffer binding targets.
type BufferTypes int32 //enums:enum

const (
	// ArrayBuffer holds vertex data (GL_ARRAY_BUFFER).
	ArrayBuffer BufferTypes = iota

	// ElementArrayBuffer holds indexes for indexed drawing (GL_ELEMENT_ARRAY_BUFFER).
	ElementArrayBuffer

	// UniformBuffer holds uniform block data (GL_UNIFORM_BUFFER).
	UniformBuffer
)

var bufferTargets = map[BufferTypes]driver.Enum{
	ArrayBuffer:        driver.ARRAY_BUFFER,
	ElementArrayBuffer: driver.ELEMENT_ARRAY_BUFFER,
	UniformBuffer:      driver.UNIFORM_BUFFER,
}

var bufferBindings = map[BufferTypes]driver.Enum{
	ArrayBuffer:        driver.ARRAY_BUFFER_BINDING,
	ElementArrayBuffer: driver.ELEMENT_ARRAY_BUFFER_BINDING,
	UniformBuffer:      driver.UNIFORM_BUFFER_BINDING,
}

// Target returns the GL bind target.
func (bt BufferTypes) Target() driver.Enum {
	return bufferTargets[bt]
}

// Binding returns the GL query that reports the buffer bound to Target.
func (bt BufferTypes) Binding() driver.Enum {
	return bufferBindings[bt]
}

// BufferUsages are hints for how buffer data will be accessed.
// See https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
type BufferUsages int32 //enums:enum

const (
	// StaticDraw data is set once and drawn many times.
	StaticDraw BufferUsages = iota

	// DynamicDraw data is changed often and drawn many times.
	DynamicDraw

	// StreamDraw data is set once and drawn a few times.
	StreamDraw

	StaticRead
	DynamicRead
	StreamRead
	StaticCopy
	DynamicCopy
	StreamCopy
)

var bufferUsages = map[BufferUsages]driver.Enum{
	StaticDraw:  driver.STATIC_DRAW,
	DynamicDraw: driver.DYNAMIC_DRAW,
	StreamDraw:  driver.STREAM_DRAW,
	StaticRead:  driver.STATIC_READ,
	DynamicRead: driver.DYNAMIC_READ,
	StreamRead:  driver.STREAM_READ,
	StaticCopy:  driver.STATIC_COPY,
	DynamicCopy: driver.DYNAMIC_COPY,
	StreamCopy:  driver.STREAM_COPY,
}

// GL returns the GL usage enum.
func (bu BufferUsages) GL() driver.Enum {
	return bufferUsages[bu]
}

// BufferObject owns a GL buffer holding a slice of vertex records of type T.
// The Go side keeps its own copy of the data, which is what was last
// transferred to the driver.
type BufferObject[T Vertex] struct {
	drv    driver.Driver
	handle Handle
	typ    BufferTypes
	usage  BufferUsages
	data   []T

	cleanup runtime.Cleanup
}

var _ Bindable = (*BufferObject[PositionVertex])(nil)
var _ Deletable = (*BufferObject[PositionVertex])(nil)

// NewBufferObject generates a buffer, binds it to its target and
// transfers data to it. The data slice is copied.
func NewBufferObject[T Vertex](d driver.Driver, typ BufferTypes, usage BufferUsages, data []T) (*BufferObject[T], error) {
	if d == nil {
		return nil, ErrNoDriver
	}
	h := Handle(d.GenBuffer())
	if !h.Valid() {
		return nil, fmt.Errorf("glgpu.NewBufferObject %s: %w", typ, ErrInvalidHandle)
	}
	bo := &BufferObject[T]{drv: d, handle: h, typ: typ, usage: usage}
	bo.cleanup = track(bo, d, h, driver.Driver.DeleteBuffer)
	bo.data = append([]T(nil), data...)
	d.BindBuffer(typ.Target(), uint32(h))
	bo.transfer()
	return bo, nil
}

// Handle returns the buffer handle, zero after Delete.
func (bo *BufferObject[T]) Handle() Handle {
	return bo.handle
}

// Type returns the buffer binding target type.
func (bo *BufferObject[T]) Type() BufferTypes {
	return bo.typ
}

// Usage returns the usage hint given at construction.
func (bo *BufferObject[T]) Usage() BufferUsages {
	return bo.usage
}

// Len returns the number of records in the buffer.
func (bo *BufferObject[T]) Len() int {
	return len(bo.data)
}

// Data returns the Go-side copy of the buffer contents. It must not be
// modified; use SetData or Update.
func (bo *BufferObject[T]) Data() []T {
	return bo.data
}

// Layout returns the vertex layout of T.
func (bo *BufferObject[T]) Layout() Layout {
	return LayoutOf[T]()
}

// Bytes returns the buffer contents as raw bytes, as transferred to the driver.
func (bo *BufferObject[T]) Bytes() []byte {
	return bytesOf(bo.data)
}

// Bind binds the buffer to its target.
func (bo *BufferObject[T]) Bind() error {
	if !bo.handle.Valid() {
		return ErrDeleted
	}
	bo.drv.BindBuffer(bo.typ.Target(), uint32(bo.handle))
	return nil
}

// Unbind binds zero to the buffer's target.
func (bo *BufferObject[T]) Unbind() error {
	if !bo.handle.Valid() {
		return ErrDeleted
	}
	bo.drv.BindBuffer(bo.typ.Target(), 0)
	return nil
}

// IsBound returns true if this buffer is bound to its target.
func (bo *BufferObject[T]) IsBound() bool {
	if !bo.handle.Valid() {
		return false
	}
	return bo.drv.GetInteger(bo.typ.Binding()) == int32(bo.handle)
}

// SetData replaces the buffer contents, re-specifying the GL data store
// (glBufferData). This leaves the buffer bound.
func (bo *BufferObject[T]) SetData(data []T) error {
	if err := bo.Bind(); err != nil {
		return err
	}
	bo.data = append(bo.data[:0], data...)
	bo.transfer()
	return nil
}

// Update overwrites records starting at record index offset
// (glBufferSubData). The range must lie within the current data.
// This leaves the buffer bound.
func (bo *BufferObject[T]) Update(offset int, data []T) error {
	if offset < 0 || offset > len(bo.data)-len(data) {
		return fmt.Errorf("glgpu.BufferObject Update: %d records at offset %d out of bounds for length %d", len(data), offset, len(bo.data))
	}
	if err := bo.Bind(); err != nil {
		return err
	}
	copy(bo.data[offset:], data)
	var v T
	bo.drv.BufferSubData(bo.typ.Target(), offset*int(unsafe.Sizeof(v)), bytesOf(data))
	return nil
}

// Delete deletes the GL buffer. Further calls are no-ops.
func (bo *BufferObject[T]) Delete() error {
	if bo == nil || !bo.handle.Valid() {
		return nil
	}
	bo.cleanup.Stop()
	bo.drv.DeleteBuffer(uint32(bo.handle))
	bo.handle = 0
	return nil
}

// transfer sends the data to the bound buffer.
func (bo *BufferObject[T]) transfer() {
	bo.drv.BufferData(bo.typ.Target(), bytesOf(bo.data), bo.usage.GL())
}

// bytesOf returns a byte view of the memory of s, without copying.
func bytesOf[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(s[0])))
}
