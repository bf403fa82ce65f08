// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/glwrap/assets"
	"cogentcore.org/glwrap/glgpu"
	"cogentcore.org/glwrap/glgpu/driver"
	"cogentcore.org/glwrap/glgpu/manifest"
	"cogentcore.org/glwrap/glgpu/shaderwatch"
	"cogentcore.org/glwrap/renderable"
)

// App draws one renderable and rebuilds its program when the shader
// files change.
type App struct {
	drv        driver.Driver
	renderable renderable.Renderable
	watcher    *shaderwatch.Watcher

	// Background is the clear color.
	Background color.Color
}

// shaderFS returns the shader filesystem for the config: the given
// directory, or the built-in shaders.
func shaderFS(c *Config) fs.FS {
	if c.Shaders == "" {
		return assets.Shaders
	}
	return os.DirFS(c.Shaders)
}

// NewApp creates the configured renderable with d. If shaders are
// read from a directory and Watch is on, the program files are watched.
func NewApp(c *Config, d driver.Driver) (*App, error) {
	app := &App{drv: d, Background: color.RGBA{51, 77, 77, 255}}
	shaders := shaderFS(c)
	var err error
	if c.Renderable == "quad" && c.Texture != "" {
		var img image.Image
		img, _, err = imagex.Open(c.Texture)
		if err != nil {
			return nil, err
		}
		app.renderable, err = renderable.NewTexturedQuad(d, shaders, img)
	} else {
		app.renderable, err = renderable.New(c.Renderable, d, shaders)
	}
	if err != nil {
		return nil, err
	}
	if c.Shaders != "" && c.Watch {
		vf, ff := app.renderable.Program().Files()
		app.watcher, err = shaderwatch.New(filepath.Join(c.Shaders, filepath.FromSlash(vf)), filepath.Join(c.Shaders, filepath.FromSlash(ff)))
		if err != nil {
			app.Delete()
			return nil, err
		}
		slog.Info("watching shaders", "files", app.watcher.Files())
	}
	return app, nil
}

// Renderable returns the renderable being drawn.
func (app *App) Renderable() renderable.Renderable {
	return app.renderable
}

// Reload rebuilds the program if any watched shader file changed.
// It returns whether a reload was attempted. A failed reload is
// logged and the previous program stays in use.
func (app *App) Reload() bool {
	if app.watcher == nil || len(app.watcher.Pending()) == 0 {
		return false
	}
	errors.Log(app.renderable.Program().ReloadFiles())
	return true
}

// Frame draws one frame.
func (app *App) Frame() error {
	app.Reload()
	glgpu.ClearColor(app.drv, app.Background)
	glgpu.Clear(app.drv, true, false)
	return app.renderable.Draw()
}

// Delete stops watching and deletes the renderable.
func (app *App) Delete() error {
	if app.watcher != nil {
		errors.Log(app.watcher.Close())
		app.watcher = nil
	}
	if app.renderable == nil {
		return nil
	}
	return app.renderable.Delete()
}

// checkPrograms builds every program described by a manifest in
// shaders and returns the errors of those that fail.
func checkPrograms(d driver.Driver, shaders fs.FS) error {
	var files []string
	for _, pat := range []string{"*/program.toml", "*/program.yaml", "*/program.yml"} {
		m, err := fs.Glob(shaders, pat)
		if err != nil {
			return err
		}
		files = append(files, m...)
	}
	if len(files) == 0 {
		return errors.New("no program manifests found")
	}
	var errs []error
	for _, f := range files {
		mf, err := manifest.OpenFS(shaders, f)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pr, err := mf.Build(d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		slog.Info("program ok", "name", mf.Name, "dir", path.Dir(f))
		pr.Delete()
	}
	return errors.Join(errs...)
}
