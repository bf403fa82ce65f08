// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/glwrap/glgpu/driver"
)

// Program owns a linked shader program made of a vertex and a
// fragment shader. Programs loaded from files remember where their
// sources came from so that they can be reloaded.
type Program struct {
	drv     driver.Driver
	handle  Handle
	attribs []string

	// uniform locations by name, reset on reload
	uniforms map[string]int32

	// source of the shader files, nil for programs built from strings
	read           func(name string) ([]byte, error)
	vertexFile     string
	fragmentFile   string
	vertexSource   string
	fragmentSource string

	cleanup runtime.Cleanup
}

var _ Bindable = (*Program)(nil)
var _ Deletable = (*Program)(nil)

// NewProgram compiles the given vertex and fragment shader sources and
// links them. If attribs are given, attribute i is bound to location i
// before linking. The intermediate shader objects are always deleted.
func NewProgram(d driver.Driver, vertexSrc, fragmentSrc string, attribs ...string) (*Program, error) {
	if d == nil {
		return nil, ErrNoDriver
	}
	pr := &Program{drv: d, attribs: attribs}
	h, err := pr.link(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	pr.handle = h
	pr.cleanup = track(pr, d, h, driver.Driver.DeleteProgram)
	pr.vertexSource = vertexSrc
	pr.fragmentSource = fragmentSrc
	return pr, nil
}

// ProgramFromFiles reads the vertex and fragment shader sources from
// the given file paths and builds a program from them.
func ProgramFromFiles(d driver.Driver, vertexFile, fragmentFile string, attribs ...string) (*Program, error) {
	return programFromReader(d, os.ReadFile, vertexFile, fragmentFile, attribs)
}

// ProgramFromFS reads the vertex and fragment shader sources from fsys
// and builds a program from them.
func ProgramFromFS(d driver.Driver, fsys fs.FS, vertexFile, fragmentFile string, attribs ...string) (*Program, error) {
	return programFromReader(d, func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	}, vertexFile, fragmentFile, attribs)
}

func programFromReader(d driver.Driver, read func(string) ([]byte, error), vertexFile, fragmentFile string, attribs []string) (*Program, error) {
	vs, fsrc, err := readSources(read, vertexFile, fragmentFile)
	if err != nil {
		return nil, err
	}
	pr, err := NewProgram(d, vs, fsrc, attribs...)
	if err != nil {
		return nil, fmt.Errorf("%s, %s: %w", vertexFile, fragmentFile, err)
	}
	pr.read = read
	pr.vertexFile = vertexFile
	pr.fragmentFile = fragmentFile
	return pr, nil
}

func readSources(read func(string) ([]byte, error), vertexFile, fragmentFile string) (string, string, error) {
	vs, err := read(vertexFile)
	if err != nil {
		return "", "", fmt.Errorf("glgpu.Program: reading vertex shader: %w", err)
	}
	fsrc, err := read(fragmentFile)
	if err != nil {
		return "", "", fmt.Errorf("glgpu.Program: reading fragment shader: %w", err)
	}
	return string(vs), string(fsrc), nil
}

// link compiles and links a new program object, returning its handle.
func (pr *Program) link(vertexSrc, fragmentSrc string) (Handle, error) {
	d := pr.drv
	vs, err := NewShader(d, VertexShader, vertexSrc)
	if err != nil {
		return 0, err
	}
	defer vs.Delete()
	fsh, err := NewShader(d, FragmentShader, fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer fsh.Delete()

	h := Handle(d.CreateProgram())
	if !h.Valid() {
		return 0, fmt.Errorf("glgpu.Program: %w", ErrInvalidHandle)
	}
	d.AttachShader(uint32(h), uint32(vs.handle))
	d.AttachShader(uint32(h), uint32(fsh.handle))
	for i, a := range pr.attribs {
		d.BindAttribLocation(uint32(h), uint32(i), a)
	}
	d.LinkProgram(uint32(h))
	d.DetachShader(uint32(h), uint32(vs.handle))
	d.DetachShader(uint32(h), uint32(fsh.handle))
	if d.GetProgrami(uint32(h), driver.LINK_STATUS) == driver.FALSE {
		lg := d.GetProgramInfoLog(uint32(h))
		d.DeleteProgram(uint32(h))
		return 0, fmt.Errorf("glgpu.Program: link failed: %s", strings.TrimSpace(lg))
	}
	return h, nil
}

// Handle returns the program handle, zero after Delete.
func (pr *Program) Handle() Handle {
	return pr.handle
}

// Files returns the vertex and fragment shader file names for
// programs loaded from files, and empty strings otherwise.
func (pr *Program) Files() (vertexFile, fragmentFile string) {
	return pr.vertexFile, pr.fragmentFile
}

// Sources returns the vertex and fragment shader sources the program
// was last built from.
func (pr *Program) Sources() (vertexSrc, fragmentSrc string) {
	return pr.vertexSource, pr.fragmentSource
}

// Bind makes this the current program (glUseProgram).
func (pr *Program) Bind() error {
	if !pr.handle.Valid() {
		return ErrDeleted
	}
	pr.drv.UseProgram(uint32(pr.handle))
	return nil
}

// Unbind makes no program current.
func (pr *Program) Unbind() error {
	if !pr.handle.Valid() {
		return ErrDeleted
	}
	pr.drv.UseProgram(0)
	return nil
}

// IsBound returns true if this is the current program.
func (pr *Program) IsBound() bool {
	if !pr.handle.Valid() {
		return false
	}
	return pr.drv.GetInteger(driver.CURRENT_PROGRAM) == int32(pr.handle)
}

// Reload rebuilds the program from new sources. The existing program
// is only replaced if the new one links, so a failed reload leaves a
// working program in place. If the old program was bound, the new one
// is bound in its place.
func (pr *Program) Reload(vertexSrc, fragmentSrc string) error {
	if !pr.handle.Valid() {
		return ErrDeleted
	}
	h, err := pr.link(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}
	bound := pr.IsBound()
	pr.cleanup.Stop()
	pr.drv.DeleteProgram(uint32(pr.handle))
	pr.handle = h
	pr.cleanup = track(pr, pr.drv, h, driver.Driver.DeleteProgram)
	pr.uniforms = nil
	pr.vertexSource = vertexSrc
	pr.fragmentSource = fragmentSrc
	if bound {
		pr.drv.UseProgram(uint32(h))
	}
	return nil
}

// ReloadFiles re-reads the shader files of a program loaded from
// files and rebuilds it with [Program.Reload]. On failure the error is
// returned and the previous program stays in use.
func (pr *Program) ReloadFiles() error {
	if pr.read == nil {
		return errors.New("glgpu.Program ReloadFiles: program was not loaded from files")
	}
	vs, fsrc, err := readSources(pr.read, pr.vertexFile, pr.fragmentFile)
	if err == nil {
		err = pr.Reload(vs, fsrc)
	}
	if err != nil {
		return fmt.Errorf("glgpu.Program ReloadFiles %s, %s: %w", pr.vertexFile, pr.fragmentFile, err)
	}
	slog.Info("glgpu.Program reloaded", "vertex", pr.vertexFile, "fragment", pr.fragmentFile)
	return nil
}

// UniformLocation returns the location of the named uniform,
// caching the result.
func (pr *Program) UniformLocation(name string) (int32, error) {
	if !pr.handle.Valid() {
		return -1, ErrDeleted
	}
	if loc, ok := pr.uniforms[name]; ok {
		return loc, nil
	}
	loc := pr.drv.GetUniformLocation(uint32(pr.handle), name)
	if loc < 0 {
		return -1, fmt.Errorf("glgpu.Program UniformLocation: uniform %q not found", name)
	}
	if pr.uniforms == nil {
		pr.uniforms = make(map[string]int32)
	}
	pr.uniforms[name] = loc
	return loc, nil
}

// SetUniform1f sets a float uniform. The program must be bound.
func (pr *Program) SetUniform1f(name string, v float32) error {
	loc, err := pr.UniformLocation(name)
	if err != nil {
		return err
	}
	pr.drv.Uniform1f(loc, v)
	return nil
}

// SetUniform1i sets an int (or sampler) uniform. The program must be bound.
func (pr *Program) SetUniform1i(name string, v int32) error {
	loc, err := pr.UniformLocation(name)
	if err != nil {
		return err
	}
	pr.drv.Uniform1i(loc, v)
	return nil
}

// SetUniformVector3 sets a vec3 uniform. The program must be bound.
func (pr *Program) SetUniformVector3(name string, v math32.Vector3) error {
	loc, err := pr.UniformLocation(name)
	if err != nil {
		return err
	}
	pr.drv.Uniform3f(loc, v.X, v.Y, v.Z)
	return nil
}

// SetUniformVector4 sets a vec4 uniform. The program must be bound.
func (pr *Program) SetUniformVector4(name string, v math32.Vector4) error {
	loc, err := pr.UniformLocation(name)
	if err != nil {
		return err
	}
	pr.drv.Uniform4f(loc, v.X, v.Y, v.Z, v.W)
	return nil
}

// SetUniformMatrix4 sets a mat4 uniform. The program must be bound.
func (pr *Program) SetUniformMatrix4(name string, m *math32.Matrix4) error {
	loc, err := pr.UniformLocation(name)
	if err != nil {
		return err
	}
	pr.drv.UniformMatrix4fv(loc, (*[16]float32)(m))
	return nil
}

// Delete deletes the program.
func (pr *Program) Delete() error {
	if pr == nil || !pr.handle.Valid() {
		return nil
	}
	pr.cleanup.Stop()
	pr.drv.DeleteProgram(uint32(pr.handle))
	pr.handle = 0
	pr.uniforms = nil
	return nil
}
