// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fakegl provides an in-memory [driver.Driver] that needs no
// graphics context. It hands out increasing handles, tracks the
// currently bound object in each binding slot, keeps buffer and
// texture contents, and records every call for assertions in tests.
package fakegl

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/glwrap/glgpu/driver"
)

// Attrib is the recorded state of one vertex attribute array.
type Attrib struct {
	Size       int32
	Type       driver.Enum
	Normalized bool
	Stride     int32
	Offset     int
	Enabled    bool

	// Buffer is the array buffer bound when the pointer was set.
	Buffer uint32
}

// Texture is the recorded contents of a texture.
type Texture struct {
	Width, Height int32
	Format        driver.Enum
	Pix           []byte
	Params        map[driver.Enum]int32
}

type shader struct {
	typ      driver.Enum
	src      string
	compiled bool
	log      string
}

// vertexArray is the state a vertex array object records.
type vertexArray struct {
	attribs map[uint32]*Attrib

	// element array buffer binding
	element uint32
}

func newVertexArray() *vertexArray {
	return &vertexArray{attribs: make(map[uint32]*Attrib)}
}

type program struct {
	shaders  []uint32
	attribs  map[string]uint32
	linked   bool
	log      string
	uniforms map[string]int32
}

// Driver is the in-memory driver. The zero value is not usable; use [New].
type Driver struct {
	// CompileFailMarker makes any shader whose source contains it
	// fail to compile. Empty disables the check.
	CompileFailMarker string

	// LinkFail makes the next LinkProgram call fail.
	LinkFail bool

	// FailNextGen makes the next Gen* / Create* call return 0.
	FailNextGen bool

	// Calls lists every driver call made, formatted as Name(args).
	Calls []string

	next      uint32
	bindings  map[driver.Enum]uint32
	buffers   map[uint32][]byte
	vaos      map[uint32]*vertexArray
	shaders   map[uint32]*shader
	programs  map[uint32]*program
	textures  map[uint32]*Texture
	unit      driver.Enum
	uniforms  map[int32]any
	caps      map[driver.Enum]bool
	clear     [4]float32
	viewport  [4]int32
	errorCode driver.Enum

	// default vertex array state, used when no vertex array is bound
	defaultVAO *vertexArray
}

var _ driver.Driver = (*Driver)(nil)

// New returns a new in-memory driver.
func New() *Driver {
	return &Driver{
		bindings:   make(map[driver.Enum]uint32),
		buffers:    make(map[uint32][]byte),
		vaos:       make(map[uint32]*vertexArray),
		shaders:    make(map[uint32]*shader),
		programs:   make(map[uint32]*program),
		textures:   make(map[uint32]*Texture),
		uniforms:   make(map[int32]any),
		caps:       make(map[driver.Enum]bool),
		defaultVAO: newVertexArray(),
		unit:       driver.TEXTURE0,
	}
}

func (d *Driver) record(name string, args ...any) {
	strs := make([]string, len(args))
	for i, a := range args {
		strs[i] = fmt.Sprint(a)
	}
	d.Calls = append(d.Calls, name+"("+strings.Join(strs, ", ")+")")
}

// Count returns how many calls to the named driver function were made.
func (d *Driver) Count(name string) int {
	n := 0
	prefix := name + "("
	for _, c := range d.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// Called reports whether the exact call (as formatted in Calls) was made.
func (d *Driver) Called(call string) bool {
	return slices.Contains(d.Calls, call)
}

// Reset clears the call log.
func (d *Driver) Reset() {
	d.Calls = nil
}

func (d *Driver) gen() uint32 {
	if d.FailNextGen {
		d.FailNextGen = false
		return 0
	}
	d.next++
	return d.next
}

// bindingFor maps a bind target to the query used to read it back.
func bindingFor(target driver.Enum) driver.Enum {
	switch target {
	case driver.ARRAY_BUFFER:
		return driver.ARRAY_BUFFER_BINDING
	case driver.ELEMENT_ARRAY_BUFFER:
		return driver.ELEMENT_ARRAY_BUFFER_BINDING
	case driver.UNIFORM_BUFFER:
		return driver.UNIFORM_BUFFER_BINDING
	case driver.TEXTURE_2D:
		return driver.TEXTURE_BINDING_2D
	}
	return target
}

// bound returns the handle in the given binding slot. The element
// array buffer binding is read from the bound vertex array.
func (d *Driver) bound(pname driver.Enum) uint32 {
	if pname == driver.ELEMENT_ARRAY_BUFFER_BINDING {
		return d.vertexArray().element
	}
	return d.bindings[pname]
}

// bind sets the handle in the given binding slot.
func (d *Driver) bind(pname driver.Enum, id uint32) {
	if pname == driver.ELEMENT_ARRAY_BUFFER_BINDING {
		d.vertexArray().element = id
		return
	}
	d.bindings[pname] = id
}

// unbindAll clears every binding slot in slots that holds id,
// mirroring GL's implicit unbind on delete.
func (d *Driver) unbindAll(id uint32, slots ...driver.Enum) {
	for _, s := range slots {
		if d.bound(s) == id {
			d.bind(s, 0)
		}
	}
}

// Buffer returns the contents of the given buffer and whether it exists.
func (d *Driver) Buffer(buf uint32) ([]byte, bool) {
	b, ok := d.buffers[buf]
	return b, ok
}

// Bound returns the handle bound to the given binding query,
// e.g. driver.ARRAY_BUFFER_BINDING.
func (d *Driver) Bound(pname driver.Enum) uint32 {
	return d.bound(pname)
}

func (d *Driver) GenBuffer() uint32 {
	id := d.gen()
	d.record("GenBuffer")
	if id != 0 {
		d.buffers[id] = nil
	}
	return id
}

func (d *Driver) BindBuffer(target driver.Enum, buf uint32) {
	d.record("BindBuffer", target, buf)
	d.bind(bindingFor(target), buf)
}

func (d *Driver) BufferData(target driver.Enum, data []byte, usage driver.Enum) {
	d.record("BufferData", target, len(data), usage)
	buf := d.bound(bindingFor(target))
	if buf == 0 {
		d.errorCode = 0x0502 // GL_INVALID_OPERATION
		return
	}
	d.buffers[buf] = slices.Clone(data)
}

func (d *Driver) BufferSubData(target driver.Enum, offset int, data []byte) {
	d.record("BufferSubData", target, offset, len(data))
	buf := d.bound(bindingFor(target))
	cur := d.buffers[buf]
	if buf == 0 || offset < 0 || offset+len(data) > len(cur) {
		d.errorCode = 0x0501 // GL_INVALID_VALUE
		return
	}
	copy(cur[offset:], data)
}

func (d *Driver) DeleteBuffer(buf uint32) {
	d.record("DeleteBuffer", buf)
	delete(d.buffers, buf)
	d.unbindAll(buf, driver.ARRAY_BUFFER_BINDING, driver.ELEMENT_ARRAY_BUFFER_BINDING, driver.UNIFORM_BUFFER_BINDING)
}

func (d *Driver) GenVertexArray() uint32 {
	id := d.gen()
	d.record("GenVertexArray")
	if id != 0 {
		d.vaos[id] = newVertexArray()
	}
	return id
}

func (d *Driver) BindVertexArray(vao uint32) {
	d.record("BindVertexArray", vao)
	d.bindings[driver.VERTEX_ARRAY_BINDING] = vao
}

func (d *Driver) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray", vao)
	delete(d.vaos, vao)
	d.unbindAll(vao, driver.VERTEX_ARRAY_BINDING)
}

// vertexArray returns the state of the bound vertex array.
func (d *Driver) vertexArray() *vertexArray {
	if vao := d.bindings[driver.VERTEX_ARRAY_BINDING]; vao != 0 {
		if va, ok := d.vaos[vao]; ok {
			return va
		}
	}
	return d.defaultVAO
}

// attribs returns the attribute table of the bound vertex array.
func (d *Driver) attribs() map[uint32]*Attrib {
	return d.vertexArray().attribs
}

// Attrib returns the state of the given attribute in the currently
// bound vertex array.
func (d *Driver) Attrib(index uint32) (Attrib, bool) {
	a, ok := d.attribs()[index]
	if !ok {
		return Attrib{}, false
	}
	return *a, true
}

func (d *Driver) attrib(index uint32) *Attrib {
	at := d.attribs()
	a, ok := at[index]
	if !ok {
		a = &Attrib{}
		at[index] = a
	}
	return a
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ driver.Enum, normalized bool, stride int32, offset int) {
	d.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
	a := d.attrib(index)
	a.Size = size
	a.Type = typ
	a.Normalized = normalized
	a.Stride = stride
	a.Offset = offset
	a.Buffer = d.bindings[driver.ARRAY_BUFFER_BINDING]
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray", index)
	d.attrib(index).Enabled = true
}

func (d *Driver) DisableVertexAttribArray(index uint32) {
	d.record("DisableVertexAttribArray", index)
	d.attrib(index).Enabled = false
}

func (d *Driver) CreateShader(typ driver.Enum) uint32 {
	id := d.gen()
	d.record("CreateShader", typ)
	if id != 0 {
		d.shaders[id] = &shader{typ: typ}
	}
	return id
}

func (d *Driver) ShaderSource(sh uint32, src string) {
	d.record("ShaderSource", sh)
	if s, ok := d.shaders[sh]; ok {
		s.src = src
	}
}

func (d *Driver) CompileShader(sh uint32) {
	d.record("CompileShader", sh)
	s, ok := d.shaders[sh]
	if !ok {
		return
	}
	if d.CompileFailMarker != "" && strings.Contains(s.src, d.CompileFailMarker) {
		s.compiled = false
		s.log = fmt.Sprintf("0:1(1): error: syntax error, unexpected %s\n", d.CompileFailMarker)
		return
	}
	s.compiled = true
	s.log = ""
}

func (d *Driver) GetShaderi(sh uint32, pname driver.Enum) int32 {
	s, ok := d.shaders[sh]
	if !ok {
		return 0
	}
	switch pname {
	case driver.COMPILE_STATUS:
		if s.compiled {
			return driver.TRUE
		}
		return driver.FALSE
	case driver.INFO_LOG_LENGTH:
		return int32(len(s.log))
	}
	return 0
}

func (d *Driver) GetShaderInfoLog(sh uint32) string {
	if s, ok := d.shaders[sh]; ok {
		return s.log
	}
	return ""
}

func (d *Driver) DeleteShader(sh uint32) {
	d.record("DeleteShader", sh)
	delete(d.shaders, sh)
}

// Shaders returns the number of live shader objects.
func (d *Driver) Shaders() int {
	return len(d.shaders)
}

func (d *Driver) CreateProgram() uint32 {
	id := d.gen()
	d.record("CreateProgram")
	if id != 0 {
		d.programs[id] = &program{attribs: make(map[string]uint32), uniforms: make(map[string]int32)}
	}
	return id
}

func (d *Driver) AttachShader(prog, sh uint32) {
	d.record("AttachShader", prog, sh)
	if p, ok := d.programs[prog]; ok {
		p.shaders = append(p.shaders, sh)
	}
}

func (d *Driver) DetachShader(prog, sh uint32) {
	d.record("DetachShader", prog, sh)
	if p, ok := d.programs[prog]; ok {
		p.shaders = slices.DeleteFunc(p.shaders, func(s uint32) bool { return s == sh })
	}
}

func (d *Driver) BindAttribLocation(prog, index uint32, name string) {
	d.record("BindAttribLocation", prog, index, name)
	if p, ok := d.programs[prog]; ok {
		p.attribs[name] = index
	}
}

// AttribLocation returns the attribute location bound for name in prog.
func (d *Driver) AttribLocation(prog uint32, name string) (uint32, bool) {
	p, ok := d.programs[prog]
	if !ok {
		return 0, false
	}
	idx, ok := p.attribs[name]
	return idx, ok
}

func (d *Driver) LinkProgram(prog uint32) {
	d.record("LinkProgram", prog)
	p, ok := d.programs[prog]
	if !ok {
		return
	}
	if d.LinkFail {
		d.LinkFail = false
		p.linked = false
		p.log = "error: linking failed: vertex shader output does not match fragment shader input\n"
		return
	}
	p.linked = true
	p.log = ""
	// collect "uniform <type> <name>;" declarations as active uniforms
	loc := int32(0)
	for _, sh := range p.shaders {
		s, ok := d.shaders[sh]
		if !ok {
			continue
		}
		for _, line := range strings.Split(s.src, "\n") {
			fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
			if len(fields) == 3 && fields[0] == "uniform" {
				if _, has := p.uniforms[fields[2]]; !has {
					p.uniforms[fields[2]] = loc
					loc++
				}
			}
		}
	}
}

func (d *Driver) GetProgrami(prog uint32, pname driver.Enum) int32 {
	p, ok := d.programs[prog]
	if !ok {
		return 0
	}
	switch pname {
	case driver.LINK_STATUS:
		if p.linked {
			return driver.TRUE
		}
		return driver.FALSE
	case driver.INFO_LOG_LENGTH:
		return int32(len(p.log))
	}
	return 0
}

func (d *Driver) GetProgramInfoLog(prog uint32) string {
	if p, ok := d.programs[prog]; ok {
		return p.log
	}
	return ""
}

func (d *Driver) UseProgram(prog uint32) {
	d.record("UseProgram", prog)
	d.bindings[driver.CURRENT_PROGRAM] = prog
}

func (d *Driver) DeleteProgram(prog uint32) {
	d.record("DeleteProgram", prog)
	delete(d.programs, prog)
}

// Programs returns the number of live program objects.
func (d *Driver) Programs() int {
	return len(d.programs)
}

func (d *Driver) GetUniformLocation(prog uint32, name string) int32 {
	d.record("GetUniformLocation", prog, name)
	p, ok := d.programs[prog]
	if !ok || !p.linked {
		return -1
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return -1
	}
	return loc
}

// Uniform returns the last value set at the given uniform location.
func (d *Driver) Uniform(loc int32) any {
	return d.uniforms[loc]
}

func (d *Driver) Uniform1f(loc int32, v float32) {
	d.record("Uniform1f", loc, v)
	d.uniforms[loc] = v
}

func (d *Driver) Uniform1i(loc int32, v int32) {
	d.record("Uniform1i", loc, v)
	d.uniforms[loc] = v
}

func (d *Driver) Uniform3f(loc int32, x, y, z float32) {
	d.record("Uniform3f", loc, x, y, z)
	d.uniforms[loc] = [3]float32{x, y, z}
}

func (d *Driver) Uniform4f(loc int32, x, y, z, w float32) {
	d.record("Uniform4f", loc, x, y, z, w)
	d.uniforms[loc] = [4]float32{x, y, z, w}
}

func (d *Driver) UniformMatrix4fv(loc int32, m *[16]float32) {
	d.record("UniformMatrix4fv", loc)
	d.uniforms[loc] = *m
}

func (d *Driver) GenTexture() uint32 {
	id := d.gen()
	d.record("GenTexture")
	if id != 0 {
		d.textures[id] = &Texture{Params: make(map[driver.Enum]int32)}
	}
	return id
}

func (d *Driver) ActiveTexture(unit driver.Enum) {
	d.record("ActiveTexture", unit)
	d.unit = unit
}

// ActiveUnit returns the active texture unit.
func (d *Driver) ActiveUnit() driver.Enum {
	return d.unit
}

func (d *Driver) BindTexture(target driver.Enum, tex uint32) {
	d.record("BindTexture", target, tex)
	d.bindings[bindingFor(target)] = tex
}

func (d *Driver) TexParameteri(target, pname driver.Enum, param int32) {
	d.record("TexParameteri", target, pname, param)
	if t, ok := d.textures[d.bindings[bindingFor(target)]]; ok {
		t.Params[pname] = param
	}
}

func (d *Driver) TexImage2D(target driver.Enum, level, internalFormat, width, height int32, format, typ driver.Enum, pix []byte) {
	d.record("TexImage2D", target, level, width, height)
	t, ok := d.textures[d.bindings[bindingFor(target)]]
	if !ok {
		d.errorCode = 0x0502
		return
	}
	t.Width = width
	t.Height = height
	t.Format = format
	t.Pix = slices.Clone(pix)
}

// Texture returns the recorded contents of the given texture.
func (d *Driver) Texture(tex uint32) (*Texture, bool) {
	t, ok := d.textures[tex]
	return t, ok
}

func (d *Driver) DeleteTexture(tex uint32) {
	d.record("DeleteTexture", tex)
	delete(d.textures, tex)
	d.unbindAll(tex, driver.TEXTURE_BINDING_2D)
}

func (d *Driver) DrawArrays(mode driver.Enum, first, count int32) {
	d.record("DrawArrays", mode, first, count)
}

func (d *Driver) DrawElements(mode driver.Enum, count int32, typ driver.Enum, offset int) {
	d.record("DrawElements", mode, count, typ, offset)
}

func (d *Driver) Clear(mask driver.Enum) {
	d.record("Clear", mask)
}

func (d *Driver) ClearColor(r, g, b, a float32) {
	d.record("ClearColor", r, g, b, a)
	d.clear = [4]float32{r, g, b, a}
}

// ClearValue returns the current clear color.
func (d *Driver) ClearValue() [4]float32 {
	return d.clear
}

func (d *Driver) Viewport(x, y, width, height int32) {
	d.record("Viewport", x, y, width, height)
	d.viewport = [4]int32{x, y, width, height}
}

// ViewportValue returns the current viewport as x, y, width, height.
func (d *Driver) ViewportValue() [4]int32 {
	return d.viewport
}

func (d *Driver) Enable(cap driver.Enum) {
	d.record("Enable", cap)
	d.caps[cap] = true
}

func (d *Driver) Disable(cap driver.Enum) {
	d.record("Disable", cap)
	d.caps[cap] = false
}

// Enabled reports whether the given capability is enabled.
func (d *Driver) Enabled(cap driver.Enum) bool {
	return d.caps[cap]
}

func (d *Driver) GetInteger(pname driver.Enum) int32 {
	return int32(d.bound(pname))
}

func (d *Driver) GetString(name driver.Enum) string {
	switch name {
	case driver.VENDOR:
		return "fakegl"
	case driver.RENDERER:
		return "fakegl in-memory"
	case driver.VERSION:
		return "4.1 fakegl"
	}
	return ""
}

func (d *Driver) GetError() driver.Enum {
	e := d.errorCode
	d.errorCode = driver.NO_ERROR
	return e
}
