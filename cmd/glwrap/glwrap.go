// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glwrap opens a window and draws one of the built-in
// renderables, reloading its shaders when they are edited.
package main

import (
	"image"

	"cogentcore.org/core/cli"
	"cogentcore.org/glwrap/glwindow"
)

// Config is the configuration for glwrap. It can also be given in a
// glwrap.toml file in the current directory.
type Config struct {

	// Renderable is the scene to draw: triangle or quad.
	Renderable string `posarg:"0" required:"-" default:"triangle"`

	// Title is the window title.
	Title string `default:"glwrap"`

	// Width is the window width.
	Width int `default:"800"`

	// Height is the window height.
	Height int `default:"600"`

	// Shaders is a directory of shader programs to use instead of the
	// built-in ones, laid out like the built-in ones.
	Shaders string

	// Texture is an image file to show on the quad.
	Texture string

	// Watch reloads the program when files in Shaders change.
	Watch bool `default:"true"`

	// VSync waits for the display refresh between frames.
	VSync bool `default:"true"`
}

func main() {
	opts := cli.DefaultOptions("glwrap", "Glwrap draws simple OpenGL scenes with hot-reloaded shaders.")
	opts.DefaultFiles = []string{"glwrap.toml"}
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Run, Name: "run", Doc: "Run opens a window and draws the renderable.", Root: true},
		&cli.Cmd[*Config]{Func: Check, Name: "check", Doc: "Check compiles and links every program manifest in the shaders."},
	)
}

func openWindow(c *Config) (*glwindow.Window, error) {
	return glwindow.New(glwindow.Options{
		Title:     c.Title,
		Size:      image.Pt(c.Width, c.Height),
		VSync:     c.VSync,
		Resizable: true,
	})
}

// Run opens a window and draws the configured renderable until the
// window is closed.
func Run(c *Config) error {
	w, err := openWindow(c)
	if err != nil {
		return err
	}
	defer w.Close()
	app, err := NewApp(c, w.Driver())
	if err != nil {
		return err
	}
	defer app.Delete()
	return w.Run(app.Frame)
}

// Check builds every program that has a manifest in the shaders.
func Check(c *Config) error {
	w, err := openWindow(c)
	if err != nil {
		return err
	}
	defer w.Close()
	return checkPrograms(w.Driver(), shaderFS(c))
}
