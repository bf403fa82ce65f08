// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"runtime"

	"cogentcore.org/glwrap/glgpu/driver"
)

// VertexArray owns a GL vertex array object, which records the vertex
// attribute setup and the element buffer binding made while it is bound.
type VertexArray struct {
	drv     driver.Driver
	handle  Handle
	cleanup runtime.Cleanup
}

var _ Bindable = (*VertexArray)(nil)
var _ Deletable = (*VertexArray)(nil)

// NewVertexArray generates a new vertex array object.
func NewVertexArray(d driver.Driver) (*VertexArray, error) {
	if d == nil {
		return nil, ErrNoDriver
	}
	h := Handle(d.GenVertexArray())
	if !h.Valid() {
		return nil, fmt.Errorf("glgpu.NewVertexArray: %w", ErrInvalidHandle)
	}
	va := &VertexArray{drv: d, handle: h}
	va.cleanup = track(va, d, h, driver.Driver.DeleteVertexArray)
	return va, nil
}

// NewVertexArrayBound generates a new vertex array object and binds it.
func NewVertexArrayBound(d driver.Driver) (*VertexArray, error) {
	va, err := NewVertexArray(d)
	if err != nil {
		return nil, err
	}
	if err := va.Bind(); err != nil {
		return nil, err
	}
	return va, nil
}

// Handle returns the vertex array handle, zero after Delete.
func (va *VertexArray) Handle() Handle {
	return va.handle
}

func (va *VertexArray) Bind() error {
	if !va.handle.Valid() {
		return ErrDeleted
	}
	va.drv.BindVertexArray(uint32(va.handle))
	return nil
}

func (va *VertexArray) Unbind() error {
	if !va.handle.Valid() {
		return ErrDeleted
	}
	va.drv.BindVertexArray(0)
	return nil
}

func (va *VertexArray) IsBound() bool {
	if !va.handle.Valid() {
		return false
	}
	return va.drv.GetInteger(driver.VERTEX_ARRAY_BINDING) == int32(va.handle)
}

// SetLayout binds the vertex array and sets up and enables all the
// attributes of l, reading from the currently bound array buffer.
func (va *VertexArray) SetLayout(l Layout) error {
	if err := va.Bind(); err != nil {
		return err
	}
	return l.Setup(va.drv)
}

// Delete deletes the vertex array object. Further calls are no-ops.
func (va *VertexArray) Delete() error {
	if va == nil || !va.handle.Valid() {
		return nil
	}
	va.cleanup.Stop()
	va.drv.DeleteVertexArray(uint32(va.handle))
	va.handle = 0
	return nil
}
