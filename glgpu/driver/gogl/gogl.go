// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gogl implements [driver.Driver] on top of the go-gl
// OpenGL 4.1 core profile bindings.
package gogl

import (
	"fmt"
	"strings"

	"cogentcore.org/glwrap/glgpu/driver"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Driver calls straight through to go-gl.
type Driver struct{}

var _ driver.Driver = (*Driver)(nil)

// New initializes the go-gl function pointers and returns a Driver.
// An OpenGL context must be current on the calling thread.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gogl: gl.Init: %w", err)
	}
	return &Driver{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (d *Driver) Version() string {
	return d.GetString(driver.VERSION)
}

func (d *Driver) GenBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (d *Driver) BindBuffer(target driver.Enum, buf uint32) {
	gl.BindBuffer(uint32(target), buf)
}

func (d *Driver) BufferData(target driver.Enum, data []byte, usage driver.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
}

func (d *Driver) BufferSubData(target driver.Enum, offset int, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.BufferSubData(uint32(target), offset, len(data), gl.Ptr(data))
}

func (d *Driver) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (d *Driver) GenVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (d *Driver) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ driver.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(typ), normalized, stride, uintptr(offset))
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Driver) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (d *Driver) CreateShader(typ driver.Enum) uint32 {
	return gl.CreateShader(uint32(typ))
}

func (d *Driver) ShaderSource(sh uint32, src string) {
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(sh, 1, csources, nil)
	free()
}

func (d *Driver) CompileShader(sh uint32) {
	gl.CompileShader(sh)
}

func (d *Driver) GetShaderi(sh uint32, pname driver.Enum) int32 {
	var v int32
	gl.GetShaderiv(sh, uint32(pname), &v)
	return v
}

func (d *Driver) GetShaderInfoLog(sh uint32) string {
	n := d.GetShaderi(sh, driver.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(sh, n, nil, gl.Str(buf))
	return goString(buf)
}

func (d *Driver) DeleteShader(sh uint32) {
	gl.DeleteShader(sh)
}

func (d *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Driver) AttachShader(prog, sh uint32) {
	gl.AttachShader(prog, sh)
}

func (d *Driver) DetachShader(prog, sh uint32) {
	gl.DetachShader(prog, sh)
}

func (d *Driver) BindAttribLocation(prog, index uint32, name string) {
	gl.BindAttribLocation(prog, index, gl.Str(cString(name)))
}

func (d *Driver) LinkProgram(prog uint32) {
	gl.LinkProgram(prog)
}

func (d *Driver) GetProgrami(prog uint32, pname driver.Enum) int32 {
	var v int32
	gl.GetProgramiv(prog, uint32(pname), &v)
	return v
}

func (d *Driver) GetProgramInfoLog(prog uint32) string {
	n := d.GetProgrami(prog, driver.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	buf := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(prog, n, nil, gl.Str(buf))
	return goString(buf)
}

func (d *Driver) UseProgram(prog uint32) {
	gl.UseProgram(prog)
}

func (d *Driver) DeleteProgram(prog uint32) {
	gl.DeleteProgram(prog)
}

func (d *Driver) GetUniformLocation(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(cString(name)))
}

func (d *Driver) Uniform1f(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func (d *Driver) Uniform1i(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

func (d *Driver) Uniform3f(loc int32, x, y, z float32) {
	gl.Uniform3f(loc, x, y, z)
}

func (d *Driver) Uniform4f(loc int32, x, y, z, w float32) {
	gl.Uniform4f(loc, x, y, z, w)
}

func (d *Driver) UniformMatrix4fv(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (d *Driver) GenTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (d *Driver) ActiveTexture(unit driver.Enum) {
	gl.ActiveTexture(uint32(unit))
}

func (d *Driver) BindTexture(target driver.Enum, tex uint32) {
	gl.BindTexture(uint32(target), tex)
}

func (d *Driver) TexParameteri(target, pname driver.Enum, param int32) {
	gl.TexParameteri(uint32(target), uint32(pname), param)
}

func (d *Driver) TexImage2D(target driver.Enum, level, internalFormat, width, height int32, format, typ driver.Enum, pix []byte) {
	if len(pix) == 0 {
		gl.TexImage2D(uint32(target), level, internalFormat, width, height, 0, uint32(format), uint32(typ), nil)
		return
	}
	gl.TexImage2D(uint32(target), level, internalFormat, width, height, 0, uint32(format), uint32(typ), gl.Ptr(pix))
}

func (d *Driver) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

func (d *Driver) DrawArrays(mode driver.Enum, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (d *Driver) DrawElements(mode driver.Enum, count int32, typ driver.Enum, offset int) {
	gl.DrawElements(uint32(mode), count, uint32(typ), gl.PtrOffset(offset))
}

func (d *Driver) Clear(mask driver.Enum) {
	gl.Clear(uint32(mask))
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (d *Driver) Enable(cap driver.Enum) {
	gl.Enable(uint32(cap))
}

func (d *Driver) Disable(cap driver.Enum) {
	gl.Disable(uint32(cap))
}

func (d *Driver) GetInteger(pname driver.Enum) int32 {
	var v int32
	gl.GetIntegerv(uint32(pname), &v)
	return v
}

func (d *Driver) GetString(name driver.Enum) string {
	return gl.GoStr(gl.GetString(uint32(name)))
}

func (d *Driver) GetError() driver.Enum {
	return driver.Enum(gl.GetError())
}

// cString returns s with a NUL terminator, as required by gl.Str and gl.Strs.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// goString returns s up to its first NUL.
func goString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
