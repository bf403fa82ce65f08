// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"
	"runtime"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/glwrap/glgpu/driver"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Texture owns a 2D RGBA8 texture, used with the TexCoord attribute
// of [TexturedVertex].
type Texture struct {
	drv     driver.Driver
	handle  Handle
	size    image.Point
	cleanup runtime.Cleanup
}

var _ Bindable = (*Texture)(nil)
var _ Deletable = (*Texture)(nil)

// NewTexture creates a texture from img. Rows are flipped so that
// texture coordinate (0,0) is the bottom-left of the image, which is
// the OpenGL convention. Filtering is linear and wrapping clamps to edge.
// The texture is left bound.
func NewTexture(d driver.Driver, img image.Image) (*Texture, error) {
	if d == nil {
		return nil, ErrNoDriver
	}
	sz := img.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return nil, fmt.Errorf("glgpu.NewTexture: empty image of size %v", sz)
	}
	h := Handle(d.GenTexture())
	if !h.Valid() {
		return nil, fmt.Errorf("glgpu.NewTexture: %w", ErrInvalidHandle)
	}
	tx := &Texture{drv: d, handle: h, size: sz}
	tx.cleanup = track(tx, d, h, driver.Driver.DeleteTexture)
	rgba := FlipVertical(img)
	d.BindTexture(driver.TEXTURE_2D, uint32(h))
	d.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_MIN_FILTER, driver.LINEAR)
	d.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_MAG_FILTER, driver.LINEAR)
	d.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_WRAP_S, driver.CLAMP_TO_EDGE)
	d.TexParameteri(driver.TEXTURE_2D, driver.TEXTURE_WRAP_T, driver.CLAMP_TO_EDGE)
	d.TexImage2D(driver.TEXTURE_2D, 0, driver.RGBA8, int32(sz.X), int32(sz.Y), driver.RGBA, driver.UNSIGNED_BYTE, rgba.Pix)
	return tx, nil
}

// TextureFromFile opens the given image file (any format supported
// by imagex) and creates a texture from it.
func TextureFromFile(d driver.Driver, filename string) (*Texture, error) {
	img, _, err := imagex.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("glgpu.TextureFromFile: %w", err)
	}
	return NewTexture(d, img)
}

// FlipVertical returns an RGBA copy of img, upside down, with bounds
// starting at (0,0).
func FlipVertical(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	s2d := f64.Aff3{
		1, 0, float64(-b.Min.X),
		0, -1, float64(b.Max.Y),
	}
	draw.NearestNeighbor.Transform(dst, s2d, img, b, draw.Src, nil)
	return dst
}

// Handle returns the texture handle, zero after Delete.
func (tx *Texture) Handle() Handle {
	return tx.handle
}

// Size returns the texture size in pixels.
func (tx *Texture) Size() image.Point {
	return tx.size
}

func (tx *Texture) Bind() error {
	if !tx.handle.Valid() {
		return ErrDeleted
	}
	tx.drv.BindTexture(driver.TEXTURE_2D, uint32(tx.handle))
	return nil
}

func (tx *Texture) Unbind() error {
	if !tx.handle.Valid() {
		return ErrDeleted
	}
	tx.drv.BindTexture(driver.TEXTURE_2D, 0)
	return nil
}

// IsBound returns true if the texture is bound on the active texture unit.
func (tx *Texture) IsBound() bool {
	if !tx.handle.Valid() {
		return false
	}
	return tx.drv.GetInteger(driver.TEXTURE_BINDING_2D) == int32(tx.handle)
}

// Activate makes the given texture unit active and binds the texture
// to it. The unit is what a sampler uniform should be set to.
func (tx *Texture) Activate(unit int) error {
	if !tx.handle.Valid() {
		return ErrDeleted
	}
	tx.drv.ActiveTexture(driver.Enum(driver.TEXTURE0 + unit))
	return tx.Bind()
}

// Delete deletes the texture.
func (tx *Texture) Delete() error {
	if tx == nil || !tx.handle.Valid() {
		return nil
	}
	tx.cleanup.Stop()
	tx.drv.DeleteTexture(uint32(tx.handle))
	tx.handle = 0
	return nil
}
