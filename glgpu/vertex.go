// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// float32Size is the size of a float32 component in bytes.
const float32Size = 4

// Vertex is a vertex record type with a fixed memory layout.
// Layout is called on the zero value, so it must not depend on the
// receiver's contents.
type Vertex interface {
	Layout() Layout
}

// LayoutOf returns the layout of vertex type T.
func LayoutOf[T Vertex]() Layout {
	var v T
	return v.Layout()
}

// TexCoordVertex is a bare texture coordinate.
type TexCoordVertex struct {
	TexCoord math32.Vector2
}

var texCoordLayout = errors.Must1(NewLayout(2*float32Size,
	NewVertexAttribute(0, 2, TexCoord, false, 2*float32Size, 0),
))

func (TexCoordVertex) Layout() Layout { return texCoordLayout.Clone() }

// PositionVertex is a bare 3D position.
type PositionVertex struct {
	Position math32.Vector3
}

var positionLayout = errors.Must1(NewLayout(3*float32Size,
	NewVertexAttribute(0, 3, Position, false, 3*float32Size, 0),
))

func (PositionVertex) Layout() Layout { return positionLayout.Clone() }

// ColorVertex is a bare RGBA color.
type ColorVertex struct {
	Color math32.Vector4
}

var colorLayout = errors.Must1(NewLayout(4*float32Size,
	NewVertexAttribute(0, 4, Color, false, 4*float32Size, 0),
))

func (ColorVertex) Layout() Layout { return colorLayout.Clone() }

// Index is an element index, for ElementArrayBuffer objects.
// It has no vertex attributes.
type Index uint32

var indexLayout = errors.Must1(NewLayout(4))

func (Index) Layout() Layout { return indexLayout.Clone() }

// RGBVertex is a position with an RGB color.
type RGBVertex struct {
	Position math32.Vector3
	Color    math32.Vector3
}

var rgbLayout = errors.Must1(NewLayout(6*float32Size,
	NewVertexAttribute(0, 3, Position, false, 6*float32Size, 0),
	NewVertexAttribute(1, 3, Color, false, 6*float32Size, 3*float32Size),
))

func (RGBVertex) Layout() Layout { return rgbLayout.Clone() }

// TexturedVertex is a position with an RGBA color and a texture coordinate.
type TexturedVertex struct {
	Position math32.Vector3
	Color    math32.Vector4
	TexCoord math32.Vector2
}

var texturedLayout = errors.Must1(NewLayout(9*float32Size,
	NewVertexAttribute(0, 3, Position, false, 9*float32Size, 0),
	NewVertexAttribute(1, 4, Color, false, 9*float32Size, 3*float32Size),
	NewVertexAttribute(2, 2, TexCoord, false, 9*float32Size, 7*float32Size),
))

func (TexturedVertex) Layout() Layout { return texturedLayout.Clone() }
