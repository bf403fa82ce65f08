// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets embeds the built-in shader programs. Each program
// lives in its own directory with a vertex_shader.glsl, a
// fragment_shader.glsl and a program manifest.
package assets

import (
	"embed"

	"cogentcore.org/core/base/fsx"
)

//go:embed shaders
var shaders embed.FS

// Shaders is the filesystem of the built-in shader programs,
// rooted at the shaders directory.
var Shaders = fsx.Sub(shaders, "shaders")

// Shader file names within a program directory.
const (
	VertexShaderFile   = "vertex_shader.glsl"
	FragmentShaderFile = "fragment_shader.glsl"
)

// Program directory names.
const (
	SimpleColor = "simple_color"
	Textured    = "textured"
)
