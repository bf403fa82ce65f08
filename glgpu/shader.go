// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"runtime"
	"strings"

	"cogentcore.org/glwrap/glgpu/driver"
)

// ShaderTypes are the shader stages.
type ShaderTypes int32 //enums:enum

const (
	VertexShader ShaderTypes = iota
	FragmentShader
	GeometryShader
)

var glShaders = map[ShaderTypes]driver.Enum{
	VertexShader:   driver.VERTEX_SHADER,
	FragmentShader: driver.FRAGMENT_SHADER,
	GeometryShader: driver.GEOMETRY_SHADER,
}

// GL returns the GL shader type enum.
func (st ShaderTypes) GL() driver.Enum {
	return glShaders[st]
}

// Shader owns a single compiled shader object.
type Shader struct {
	drv     driver.Driver
	handle  Handle
	typ     ShaderTypes
	cleanup runtime.Cleanup
}

var _ Deletable = (*Shader)(nil)

// NewShader creates and compiles a shader of the given type.
// On compile failure the shader is deleted and the error
// carries the driver's info log.
func NewShader(d driver.Driver, typ ShaderTypes, src string) (*Shader, error) {
	if d == nil {
		return nil, ErrNoDriver
	}
	h := Handle(d.CreateShader(typ.GL()))
	if !h.Valid() {
		return nil, fmt.Errorf("glgpu.NewShader %s: %w", typ, ErrInvalidHandle)
	}
	d.ShaderSource(uint32(h), src)
	d.CompileShader(uint32(h))
	if d.GetShaderi(uint32(h), driver.COMPILE_STATUS) == driver.FALSE {
		lg := d.GetShaderInfoLog(uint32(h))
		d.DeleteShader(uint32(h))
		return nil, fmt.Errorf("glgpu.NewShader %s: compilation failed: %s", typ, strings.TrimSpace(lg))
	}
	sh := &Shader{drv: d, handle: h, typ: typ}
	sh.cleanup = track(sh, d, h, driver.Driver.DeleteShader)
	return sh, nil
}

// Handle returns the shader handle, zero after Delete.
func (sh *Shader) Handle() Handle {
	return sh.handle
}

// Type returns the shader stage.
func (sh *Shader) Type() ShaderTypes {
	return sh.typ
}

// Delete deletes the shader object.
func (sh *Shader) Delete() error {
	if sh == nil || !sh.handle.Valid() {
		return nil
	}
	sh.cleanup.Stop()
	sh.drv.DeleteShader(uint32(sh.handle))
	sh.handle = 0
	return nil
}
