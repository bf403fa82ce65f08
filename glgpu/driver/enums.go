// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

// OpenGL enumerant values used by glgpu.
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR = 0x0

	POINTS         = 0x0
	LINES          = 0x1
	LINE_LOOP      = 0x2
	LINE_STRIP     = 0x3
	TRIANGLES      = 0x4
	TRIANGLE_STRIP = 0x5
	TRIANGLE_FAN   = 0x6

	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406

	ARRAY_BUFFER                 = 0x8892
	ELEMENT_ARRAY_BUFFER         = 0x8893
	ARRAY_BUFFER_BINDING         = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING = 0x8895
	UNIFORM_BUFFER               = 0x8A11
	UNIFORM_BUFFER_BINDING       = 0x8A28
	VERTEX_ARRAY_BINDING         = 0x85B5

	STREAM_DRAW  = 0x88E0
	STREAM_READ  = 0x88E1
	STREAM_COPY  = 0x88E2
	STATIC_DRAW  = 0x88E4
	STATIC_READ  = 0x88E5
	STATIC_COPY  = 0x88E6
	DYNAMIC_DRAW = 0x88E8
	DYNAMIC_READ = 0x88E9
	DYNAMIC_COPY = 0x88EA

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	GEOMETRY_SHADER = 0x8DD9
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84
	CURRENT_PROGRAM = 0x8B8D

	TEXTURE_2D         = 0x0DE1
	TEXTURE_BINDING_2D = 0x8069
	TEXTURE0           = 0x84C0
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	LINEAR             = 0x2601
	CLAMP_TO_EDGE      = 0x812F
	RGBA               = 0x1908
	RGBA8              = 0x8058

	DEPTH_BUFFER_BIT = 0x00000100
	COLOR_BUFFER_BIT = 0x00004000
	DEPTH_TEST       = 0x0B71

	VENDOR   = 0x1F00
	RENDERER = 0x1F01
	VERSION  = 0x1F02
)
