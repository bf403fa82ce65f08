// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"cogentcore.org/glwrap/glgpu/driver"
)

// VertexAttribute describes one field of a vertex record for the driver:
// where it lives within the record and how to read it.
// It is an immutable value once constructed.
type VertexAttribute struct {

	// Index is the attribute location in the vertex shader.
	Index uint32

	// Size is the number of components (1 to 4).
	Size int

	// Role is the semantic meaning of the attribute.
	Role AttributeRoles

	// Type is the component type; Float32 for all built-in vertices.
	Type Types

	// Normalized maps integer components to [0,1] or [-1,1].
	Normalized bool

	// Stride is the byte size of the whole vertex record.
	Stride int

	// Offset is the byte offset of this attribute within the record.
	Offset int
}

// NewVertexAttribute returns a Float32 attribute.
func NewVertexAttribute(index uint32, size int, role AttributeRoles, normalized bool, stride, offset int) VertexAttribute {
	return VertexAttribute{
		Index:      index,
		Size:       size,
		Role:       role,
		Type:       Float32,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	}
}

// Bytes returns the number of bytes taken by the attribute in each vertex.
func (va VertexAttribute) Bytes() int {
	return va.Size * va.Type.Bytes()
}

// End returns the byte offset just past the attribute.
func (va VertexAttribute) End() int {
	return va.Offset + va.Bytes()
}

func (va VertexAttribute) String() string {
	return fmt.Sprintf("%d:\t%s\t%s[%d]\t(offset: %d, stride: %d)", va.Index, va.Role, va.Type, va.Size, va.Offset, va.Stride)
}

// Validate checks the attribute on its own: component count, type,
// and that it fits in its stride.
func (va VertexAttribute) Validate() error {
	if va.Size < 1 || va.Size > 4 {
		return fmt.Errorf("glgpu.VertexAttribute %d: size %d must be between 1 and 4", va.Index, va.Size)
	}
	if va.Type.Bytes() == 0 {
		return fmt.Errorf("glgpu.VertexAttribute %d: undefined component type %s", va.Index, va.Type)
	}
	if va.Offset < 0 || va.Stride < 0 {
		return fmt.Errorf("glgpu.VertexAttribute %d: negative offset %d or stride %d", va.Index, va.Offset, va.Stride)
	}
	if va.Stride > 0 && va.End() > va.Stride {
		return fmt.Errorf("glgpu.VertexAttribute %d: ends at byte %d, past stride %d", va.Index, va.End(), va.Stride)
	}
	return nil
}

// Setup describes the attribute to the driver (glVertexAttribPointer)
// for the currently bound vertex array and array buffer.
func (va VertexAttribute) Setup(d driver.Driver) error {
	if d == nil {
		return ErrNoDriver
	}
	if err := va.Validate(); err != nil {
		return err
	}
	d.VertexAttribPointer(va.Index, int32(va.Size), va.Type.GL(), va.Normalized, int32(va.Stride), va.Offset)
	return nil
}

// Enable enables the attribute array in the bound vertex array.
func (va VertexAttribute) Enable(d driver.Driver) {
	d.EnableVertexAttribArray(va.Index)
}

// Disable disables the attribute array in the bound vertex array.
func (va VertexAttribute) Disable(d driver.Driver) {
	d.DisableVertexAttribArray(va.Index)
}
