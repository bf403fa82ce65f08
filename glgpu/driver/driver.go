// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver defines the OpenGL entry points used by glgpu.
// The [Driver] interface is implemented on top of go-gl by package
// gogl, and in memory by package fakegl for tests that have no
// graphics context.
//
// All methods must be called on the thread that owns the current
// OpenGL context.
package driver

// Enum is an OpenGL enumerant (GLenum / GLbitfield).
type Enum uint32

// Driver is the set of OpenGL calls made by the glgpu wrappers.
// Handles are plain uint32 values and 0 is never a valid handle.
type Driver interface {
	GenBuffer() uint32
	BindBuffer(target Enum, buf uint32)
	BufferData(target Enum, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	DeleteBuffer(buf uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	VertexAttribPointer(index uint32, size int32, typ Enum, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	CreateShader(typ Enum) uint32
	ShaderSource(sh uint32, src string)
	CompileShader(sh uint32)
	GetShaderi(sh uint32, pname Enum) int32
	GetShaderInfoLog(sh uint32) string
	DeleteShader(sh uint32)

	CreateProgram() uint32
	AttachShader(prog, sh uint32)
	DetachShader(prog, sh uint32)
	BindAttribLocation(prog, index uint32, name string)
	LinkProgram(prog uint32)
	GetProgrami(prog uint32, pname Enum) int32
	GetProgramInfoLog(prog uint32) string
	UseProgram(prog uint32)
	DeleteProgram(prog uint32)

	GetUniformLocation(prog uint32, name string) int32
	Uniform1f(loc int32, v float32)
	Uniform1i(loc int32, v int32)
	Uniform3f(loc int32, x, y, z float32)
	Uniform4f(loc int32, x, y, z, w float32)
	UniformMatrix4fv(loc int32, m *[16]float32)

	GenTexture() uint32
	ActiveTexture(unit Enum)
	BindTexture(target Enum, tex uint32)
	TexParameteri(target, pname Enum, param int32)
	TexImage2D(target Enum, level, internalFormat, width, height int32, format, typ Enum, pix []byte)
	DeleteTexture(tex uint32)

	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, typ Enum, offset int)

	Clear(mask Enum)
	ClearColor(r, g, b, a float32)
	Viewport(x, y, width, height int32)
	Enable(cap Enum)
	Disable(cap Enum)

	GetInteger(pname Enum) int32
	GetString(name Enum) string
	GetError() Enum
}
