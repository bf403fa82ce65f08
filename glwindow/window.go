// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

// Package glwindow opens a GLFW window with an OpenGL 4.1 core context
// and runs a render loop in it. All of it must run on the main thread,
// which this package locks at init.
package glwindow

import (
	"image"
	"log/slog"
	"runtime"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glwrap/glgpu"
	"cogentcore.org/glwrap/glgpu/driver"
	"cogentcore.org/glwrap/glgpu/driver/gogl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

// Options are the options for a new window.
type Options struct {

	// Title of the window.
	Title string

	// Size of the window in screen coordinates.
	Size image.Point

	// VSync waits for the display refresh when swapping buffers.
	VSync bool

	// Resizable lets the user resize the window.
	Resizable bool
}

// Window is a GLFW window whose OpenGL context is current on the
// main thread.
type Window struct {
	glw *glfw.Window
	drv *gogl.Driver

	// framebuffer size in pixels
	size image.Point
}

// New creates a window and makes its context current.
func New(opts Options) (*Window, error) {
	if opts.Size.X <= 0 || opts.Size.Y <= 0 {
		opts.Size = image.Pt(800, 600)
	}
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(err)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	glw.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	drv, err := gogl.New()
	if err != nil {
		glw.Destroy()
		glfw.Terminate()
		return nil, err
	}
	slog.Info("glwindow: context created", "version", drv.Version(), "renderer", drv.GetString(driver.RENDERER))

	w := &Window{glw: glw, drv: drv}
	fw, fh := glw.GetFramebufferSize()
	w.resize(fw, fh)
	glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resize(width, height)
	})
	glw.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.SetShouldClose(true)
		}
	})
	return w, nil
}

func (w *Window) resize(width, height int) {
	w.size = image.Pt(width, height)
	glgpu.Viewport(w.drv, image.Rectangle{Max: w.size})
}

// Driver returns the driver for the window's context.
func (w *Window) Driver() driver.Driver {
	return w.drv
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() image.Point {
	return w.size
}

// Run calls frame, swaps buffers and polls events until the window
// is closed or frame returns an error, which is returned. Before each
// frame the handles of unreachable resources are deleted with
// [glgpu.Collect].
func (w *Window) Run(frame func() error) error {
	for !w.glw.ShouldClose() {
		glgpu.Collect(w.drv)
		if err := frame(); err != nil {
			return err
		}
		w.glw.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

// Close destroys the window and terminates GLFW.
// Resources created with the window's driver must be deleted first.
func (w *Window) Close() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
	glfw.Terminate()
}
