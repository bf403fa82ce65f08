// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/core/math32"
	"cogentcore.org/glwrap/glgpu/driver"
	"cogentcore.org/glwrap/glgpu/driver/fakegl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertex = `#version 410
layout (location = 0) in vec3 pos;
uniform mat4 mvp;
void main() {
	gl_Position = mvp * vec4(pos, 1.0);
}
`

const testFragment = `#version 410
uniform vec4 tint;
out vec4 color;
void main() {
	color = tint;
}
`

func TestNewProgram(t *testing.T) {
	d := fakegl.New()
	pr, err := NewProgram(d, testVertex, testFragment, "pos")
	require.NoError(t, err)
	assert.True(t, pr.Handle().Valid())

	// shaders are detached and deleted once linked
	assert.Equal(t, 0, d.Shaders())
	assert.Equal(t, 2, d.Count("DetachShader"))
	loc, ok := d.AttribLocation(uint32(pr.Handle()), "pos")
	assert.True(t, ok)
	assert.Equal(t, uint32(0), loc)

	vs, fs := pr.Sources()
	assert.Equal(t, testVertex, vs)
	assert.Equal(t, testFragment, fs)
	vf, ff := pr.Files()
	assert.Empty(t, vf)
	assert.Empty(t, ff)
}

func TestProgramBind(t *testing.T) {
	d := fakegl.New()
	pr, err := NewProgram(d, testVertex, testFragment)
	require.NoError(t, err)
	assert.False(t, pr.IsBound())
	require.NoError(t, pr.Bind())
	assert.True(t, pr.IsBound())
	require.NoError(t, pr.Unbind())
	assert.False(t, pr.IsBound())
}

func TestProgramCompileError(t *testing.T) {
	d := fakegl.New()
	d.CompileFailMarker = "oops"
	_, err := NewProgram(d, testVertex, testFragment+"oops")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FragmentShader")
	assert.Contains(t, err.Error(), "syntax error")
	assert.Equal(t, 0, d.Shaders())
	assert.Equal(t, 0, d.Programs())
}

func TestProgramLinkError(t *testing.T) {
	d := fakegl.New()
	d.LinkFail = true
	_, err := NewProgram(d, testVertex, testFragment)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link failed")
	assert.Equal(t, 0, d.Programs())
	assert.Equal(t, 0, d.Shaders())
}

func TestProgramInvalidHandle(t *testing.T) {
	d := fakegl.New()
	d.FailNextGen = true
	_, err := NewProgram(d, testVertex, testFragment)
	assert.ErrorIs(t, err, ErrInvalidHandle)
	_, err = NewProgram(nil, testVertex, testFragment)
	assert.ErrorIs(t, err, ErrNoDriver)
}

func TestProgramUniforms(t *testing.T) {
	d := fakegl.New()
	pr, err := NewProgram(d, testVertex, testFragment)
	require.NoError(t, err)
	require.NoError(t, pr.Bind())

	tint := math32.Vec4(1, 0.5, 0.25, 1)
	require.NoError(t, pr.SetUniformVector4("tint", tint))
	loc, err := pr.UniformLocation("tint")
	require.NoError(t, err)
	assert.Equal(t, [4]float32{1, 0.5, 0.25, 1}, d.Uniform(loc))

	m := math32.Identity4()
	require.NoError(t, pr.SetUniformMatrix4("mvp", m))
	mloc, _ := pr.UniformLocation("mvp")
	assert.Equal(t, [16]float32(*m), d.Uniform(mloc))

	err = pr.SetUniform1f("missing", 1)
	assert.ErrorContains(t, err, `"missing" not found`)
}

func TestProgramUniformCache(t *testing.T) {
	d := fakegl.New()
	pr, err := NewProgram(d, testVertex, testFragment)
	require.NoError(t, err)
	for range 3 {
		require.NoError(t, pr.SetUniform1f("tint", 1))
	}
	assert.Equal(t, 1, d.Count("GetUniformLocation"))
	assert.Equal(t, 3, d.Count("Uniform1f"))
}

func TestProgramReload(t *testing.T) {
	d := fakegl.New()
	pr, err := NewProgram(d, testVertex, testFragment)
	require.NoError(t, err)
	require.NoError(t, pr.Bind())
	old := pr.Handle()
	_, err = pr.UniformLocation("tint")
	require.NoError(t, err)

	require.NoError(t, pr.Reload(testVertex, testFragment+"\n// edited\n"))
	assert.NotEqual(t, old, pr.Handle())
	assert.True(t, pr.IsBound())
	assert.Equal(t, 1, d.Programs())
	_, fs := pr.Sources()
	assert.Contains(t, fs, "edited")

	// a failed reload keeps the working program
	d.CompileFailMarker = "broken"
	cur := pr.Handle()
	assert.Error(t, pr.Reload(testVertex, "broken"))
	assert.Equal(t, cur, pr.Handle())
	assert.True(t, pr.IsBound())
}

func TestProgramFromFiles(t *testing.T) {
	dir := t.TempDir()
	vf := filepath.Join(dir, "vertex_shader.glsl")
	ff := filepath.Join(dir, "fragment_shader.glsl")
	require.NoError(t, os.WriteFile(vf, []byte(testVertex), 0o644))
	require.NoError(t, os.WriteFile(ff, []byte(testFragment), 0o644))

	d := fakegl.New()
	pr, err := ProgramFromFiles(d, vf, ff)
	require.NoError(t, err)
	gvf, gff := pr.Files()
	assert.Equal(t, vf, gvf)
	assert.Equal(t, ff, gff)

	old := pr.Handle()
	require.NoError(t, os.WriteFile(ff, []byte(testFragment+"\n"), 0o644))
	require.NoError(t, pr.ReloadFiles())
	assert.NotEqual(t, old, pr.Handle())

	require.NoError(t, os.Remove(ff))
	err = pr.ReloadFiles()
	assert.ErrorContains(t, err, "reading fragment shader")
	assert.ErrorContains(t, err, ff)
	assert.True(t, pr.Handle().Valid())

	_, err = ProgramFromFiles(d, filepath.Join(dir, "nope.glsl"), ff)
	assert.ErrorContains(t, err, "reading vertex shader")
}

func TestProgramFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"simple/vertex_shader.glsl":   {Data: []byte(testVertex)},
		"simple/fragment_shader.glsl": {Data: []byte(testFragment)},
	}
	d := fakegl.New()
	pr, err := ProgramFromFS(d, fsys, "simple/vertex_shader.glsl", "simple/fragment_shader.glsl")
	require.NoError(t, err)
	assert.True(t, pr.Handle().Valid())

	_, err = ProgramFromFS(d, fsys, "simple/vertex_shader.glsl", "simple/missing.glsl")
	assert.ErrorContains(t, err, "reading fragment shader")

	noFiles, err := NewProgram(d, testVertex, testFragment)
	require.NoError(t, err)
	assert.Error(t, noFiles.ReloadFiles())
}

func TestProgramDelete(t *testing.T) {
	d := fakegl.New()
	pr, err := NewProgram(d, testVertex, testFragment)
	require.NoError(t, err)
	require.NoError(t, pr.Delete())
	require.NoError(t, pr.Delete())
	assert.Equal(t, 1, d.Count("DeleteProgram"))
	assert.False(t, pr.Handle().Valid())
	assert.ErrorIs(t, pr.Bind(), ErrDeleted)
	assert.ErrorIs(t, pr.Reload(testVertex, testFragment), ErrDeleted)
	_, err = pr.UniformLocation("tint")
	assert.ErrorIs(t, err, ErrDeleted)
	assert.Equal(t, driver.Enum(driver.NO_ERROR), d.GetError())
}
