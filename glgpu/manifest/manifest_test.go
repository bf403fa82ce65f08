// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"cogentcore.org/glwrap/glgpu/driver/fakegl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertexSrc = `#version 410
layout (location = 0) in vec3 position;
void main() {
	gl_Position = vec4(position, 1.0);
}
`

const fragmentSrc = `#version 410
uniform vec4 color;
out vec4 frag;
void main() {
	frag = color;
}
`

const tomlManifest = `name = "simple_color"
vertex = "vertex_shader.glsl"
fragment = "fragment_shader.glsl"
attributes = ["position"]

[uniforms]
color = "vec4"
`

const yamlManifest = `name: simple_color
vertex: vertex_shader.glsl
fragment: fragment_shader.glsl
attributes: [position]
uniforms:
  color: vec4
`

func setup(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vertex_shader.glsl"), []byte(vertexSrc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fragment_shader.glsl"), []byte(fragmentSrc), 0o644))
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0o644))
	return fn
}

func TestOpen(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"program.toml", tomlManifest},
		{"program.yaml", yamlManifest},
		{"program.yml", yamlManifest},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			fn := setup(t, tt.file, tt.content)
			p, err := Open(fn)
			require.NoError(t, err)
			dir := filepath.Dir(fn)
			assert.Equal(t, "simple_color", p.Name)
			assert.Equal(t, []string{"position"}, p.Attributes)
			assert.Equal(t, map[string]string{"color": "vec4"}, p.Uniforms)
			assert.Equal(t, filepath.Join(dir, "vertex_shader.glsl"), p.VertexPath())
			assert.Equal(t, []string{p.VertexPath(), filepath.Join(dir, "fragment_shader.glsl")}, p.Files())

			d := fakegl.New()
			pr, err := p.Build(d)
			require.NoError(t, err)
			loc, ok := d.AttribLocation(uint32(pr.Handle()), "position")
			assert.True(t, ok)
			assert.Equal(t, uint32(0), loc)
			require.NoError(t, pr.Delete())
		})
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(setup(t, "program.json", "{}"))
	assert.ErrorContains(t, err, "unsupported format")

	_, err = Open(setup(t, "program.toml", `name = "x"`))
	assert.ErrorContains(t, err, "missing vertex shader")

	_, err = Open(setup(t, "program.yaml", "vertex: a\nfragment: b\nattributes: [p, p]\n"))
	assert.ErrorContains(t, err, `duplicate attribute "p"`)

	_, err = Open(setup(t, "program.toml", "vertex = "))
	assert.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "none.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildMissingUniform(t *testing.T) {
	fn := setup(t, "program.toml", tomlManifest+"tint = \"vec3\"\n")
	p, err := Open(fn)
	require.NoError(t, err)
	d := fakegl.New()
	_, err = p.Build(d)
	assert.ErrorContains(t, err, `"tint" not found`)
	assert.Equal(t, 0, d.Programs())
}

func TestSave(t *testing.T) {
	p := &Program{Name: "quad", Vertex: "v.glsl", Fragment: "f.glsl", Attributes: []string{"position", "color"}}
	dir := t.TempDir()
	for _, name := range []string{"quad.toml", "quad.yaml"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, p.Save(fn))
		got, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, p.Attributes, got.Attributes)
		assert.Equal(t, filepath.Join(dir, "f.glsl"), got.FragmentPath())
	}
	assert.Error(t, p.Save(filepath.Join(dir, "quad.ini")))
}

func TestOpenFS(t *testing.T) {
	fsys := fstest.MapFS{
		"simple/program.toml":         {Data: []byte(tomlManifest)},
		"simple/vertex_shader.glsl":   {Data: []byte(vertexSrc)},
		"simple/fragment_shader.glsl": {Data: []byte(fragmentSrc)},
	}
	p, err := OpenFS(fsys, "simple/program.toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"simple/vertex_shader.glsl", "simple/fragment_shader.glsl"}, p.Files())

	d := fakegl.New()
	pr, err := p.Build(d)
	require.NoError(t, err)
	assert.True(t, pr.Handle().Valid())
	vf, _ := pr.Files()
	assert.Equal(t, "simple/vertex_shader.glsl", vf)

	_, err = OpenFS(fsys, "simple/none.toml")
	assert.Error(t, err)
}
