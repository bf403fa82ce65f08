// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "cogentcore.org/glwrap/glgpu/driver"

// See: https://www.khronos.org/opengl/wiki/Vertex_Specification

// Types are the component data types of a vertex attribute.
type Types int32 //enums:enum

const (
	UndefinedType Types = iota
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
)

// TypeSizes gives our data type sizes in bytes
var TypeSizes = map[Types]int{
	Int8:    1,
	Uint8:   1,
	Int16:   2,
	Uint16:  2,
	Int32:   4,
	Uint32:  4,
	Float32: 4,
}

var typeToGL = map[Types]driver.Enum{
	Int8:    driver.BYTE,
	Uint8:   driver.UNSIGNED_BYTE,
	Int16:   driver.SHORT,
	Uint16:  driver.UNSIGNED_SHORT,
	Int32:   driver.INT,
	Uint32:  driver.UNSIGNED_INT,
	Float32: driver.FLOAT,
}

// Bytes returns number of bytes for this type
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

// GL returns the OpenGL type enum (GL_FLOAT etc).
func (tp Types) GL() driver.Enum {
	return typeToGL[tp]
}

// AttributeRoles are the semantic roles of a vertex attribute.
type AttributeRoles int32 //enums:enum

const (
	// Position is the vertex position in model space.
	Position AttributeRoles = iota

	// Color is a per-vertex RGB or RGBA color.
	Color

	// TexCoord is a texture (UV) coordinate.
	TexCoord

	// Normal is the vertex normal.
	Normal
)
