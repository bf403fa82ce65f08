// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/glwrap/assets"
	"cogentcore.org/glwrap/glgpu/driver/fakegl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	return c
}

// copyShaders copies the built-in shaders into a temporary directory.
func copyShaders(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.CopyFS(dir, assets.Shaders))
	return dir
}

func TestConfigDefaults(t *testing.T) {
	c := defaultConfig(t)
	assert.Equal(t, "triangle", c.Renderable)
	assert.Equal(t, 800, c.Width)
	assert.True(t, c.Watch)
	assert.Equal(t, assets.Shaders, shaderFS(c))
}

func TestAppFrame(t *testing.T) {
	for _, name := range []string{"triangle", "quad"} {
		t.Run(name, func(t *testing.T) {
			c := defaultConfig(t)
			c.Renderable = name
			d := fakegl.New()
			app, err := NewApp(c, d)
			require.NoError(t, err)
			require.NoError(t, app.Frame())
			assert.True(t, d.Called("Clear(16384)"))
			assert.False(t, app.Reload())
			require.NoError(t, app.Delete())
			assert.Equal(t, 0, d.Programs())
		})
	}
}

func TestAppTexture(t *testing.T) {
	c := defaultConfig(t)
	c.Renderable = "quad"
	c.Texture = filepath.Join(t.TempDir(), "missing.png")
	_, err := NewApp(c, fakegl.New())
	assert.Error(t, err)
}

func TestAppReload(t *testing.T) {
	dir := copyShaders(t)
	c := defaultConfig(t)
	c.Shaders = dir
	d := fakegl.New()
	app, err := NewApp(c, d)
	require.NoError(t, err)
	defer app.Delete()
	pr := app.Renderable().Program()
	old := pr.Handle()

	fn := filepath.Join(dir, assets.SimpleColor, assets.FragmentShaderFile)
	src, err := os.ReadFile(fn)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fn, append(src, "\n// edited\n"...), 0o644))

	require.Eventually(t, app.Reload, 5*time.Second, 20*time.Millisecond)
	assert.NotEqual(t, old, pr.Handle())
	_, fsrc := pr.Sources()
	assert.Contains(t, fsrc, "edited")
	require.NoError(t, app.Frame())
}

func TestCheckPrograms(t *testing.T) {
	assert.NoError(t, checkPrograms(fakegl.New(), assets.Shaders))

	bad := fstest.MapFS{
		"broken/program.toml":         {Data: []byte("vertex = \"v.glsl\"\nfragment = \"f.glsl\"\n")},
		"broken/v.glsl":               {Data: []byte("void main() {}")},
		"other/program.yaml":          {Data: []byte("name: other\n")},
		"other/fragment_shader.glsl":  {Data: []byte("void main() {}")},
		"unused/vertex_shader.glsl":   {Data: []byte("void main() {}")},
		"unused/fragment_shader.glsl": {Data: []byte("void main() {}")},
	}
	err := checkPrograms(fakegl.New(), bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading fragment shader")
	assert.Contains(t, err.Error(), "missing vertex shader")

	assert.Error(t, checkPrograms(fakegl.New(), fstest.MapFS{}))
	var empty fs.FS = fstest.MapFS{"readme.txt": {}}
	assert.Error(t, checkPrograms(fakegl.New(), empty))
}
