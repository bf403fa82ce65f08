// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/glwrap/glgpu/driver"
)

// Layout is the memory layout of one vertex type: the byte size of a
// vertex record and the ordered attributes within it.
// Layouts are checked when constructed with [NewLayout], without any
// driver involvement.
type Layout struct {

	// Size is the byte size of one vertex, which is also the stride
	// of every attribute.
	Size int

	// Attributes in increasing offset order.
	Attributes []VertexAttribute
}

// NewLayout returns a validated layout.
func NewLayout(size int, attrs ...VertexAttribute) (Layout, error) {
	l := Layout{Size: size, Attributes: attrs}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate checks that every attribute is valid and uses Size as its
// stride, that offsets strictly increase without overlap, and that the
// attributes exactly fill Size (when there are any).
func (l Layout) Validate() error {
	if l.Size <= 0 {
		return fmt.Errorf("glgpu.Layout: size %d must be positive", l.Size)
	}
	sum := 0
	end := 0
	indexes := make(map[uint32]bool, len(l.Attributes))
	for i, va := range l.Attributes {
		if err := va.Validate(); err != nil {
			return err
		}
		if va.Stride != l.Size {
			return fmt.Errorf("glgpu.Layout: attribute %d stride %d != layout size %d", va.Index, va.Stride, l.Size)
		}
		if indexes[va.Index] {
			return fmt.Errorf("glgpu.Layout: duplicate attribute index %d", va.Index)
		}
		indexes[va.Index] = true
		if i > 0 && va.Offset < end {
			return fmt.Errorf("glgpu.Layout: attribute %d at offset %d overlaps previous attribute ending at %d", va.Index, va.Offset, end)
		}
		end = va.End()
		sum += va.Bytes()
	}
	if len(l.Attributes) > 0 && sum != l.Size {
		return fmt.Errorf("glgpu.Layout: attributes take %d bytes, layout size is %d", sum, l.Size)
	}
	return nil
}

// Stride returns the byte distance between consecutive vertices.
func (l Layout) Stride() int {
	return l.Size
}

// Clone returns a copy of the layout that shares no memory with l.
func (l Layout) Clone() Layout {
	return Layout{Size: l.Size, Attributes: slices.Clone(l.Attributes)}
}

// AttributeByRole returns the first attribute with the given role.
func (l Layout) AttributeByRole(role AttributeRoles) (VertexAttribute, bool) {
	for _, va := range l.Attributes {
		if va.Role == role {
			return va, true
		}
	}
	return VertexAttribute{}, false
}

// Setup sets up and enables every attribute for the currently
// bound vertex array and array buffer.
func (l Layout) Setup(d driver.Driver) error {
	for _, va := range l.Attributes {
		if err := va.Setup(d); err != nil {
			return err
		}
		va.Enable(d)
	}
	return nil
}

// Disable disables every attribute of the layout.
func (l Layout) Disable(d driver.Driver) {
	for _, va := range l.Attributes {
		va.Disable(d)
	}
}

func (l Layout) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Layout (size: %d)\n", l.Size)
	for _, va := range l.Attributes {
		b.WriteString(va.String())
		b.WriteByte('\n')
	}
	return b.String()
}
