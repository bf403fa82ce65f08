// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu wraps OpenGL resources (buffers, vertex arrays,
// shaders, programs and textures) in owning Go types with
// Bind / Unbind / Delete lifecycle methods, and describes the memory
// layout of the supported vertex types with static attribute tables.
//
// Every wrapper calls through a [driver.Driver], so everything here must
// run on the thread that owns the OpenGL context. Call Delete (typically
// deferred) when a resource is no longer needed. A resource that is
// garbage collected without Delete has its handle queued, and the next
// [Collect] on the context thread deletes it.
package glgpu

//go:generate core generate

import "cogentcore.org/core/base/errors"

// Handle is an OpenGL object name issued by the driver.
// Zero is never a valid handle.
type Handle uint32

// Valid returns true if the handle is non-zero.
func (h Handle) Valid() bool {
	return h != 0
}

// Bindable is a resource that can be made the current target of
// subsequent driver calls in its category (the array buffer slot, the
// vertex array slot, the current program, ...). There is a single
// implicit binding slot per category, owned by the driver.
type Bindable interface {
	// Bind makes this resource the current one in its category.
	Bind() error

	// Unbind binds zero in the category of this resource.
	Unbind() error

	// IsBound queries the driver for the current binding in this
	// resource's category and compares it to this resource's handle.
	IsBound() bool
}

// Deletable is a resource that owns a driver handle.
type Deletable interface {
	// Delete releases the handle exactly once and resets it to zero.
	// Calling Delete again is a no-op.
	Delete() error
}

// DeleteAll deletes all of the given resources, in order, and returns
// the joined errors. Nil interface values are skipped; nil pointers are
// passed on, and every Delete in this package accepts a nil receiver.
func DeleteAll(ds ...Deletable) error {
	var errs []error
	for _, d := range ds {
		if d == nil {
			continue
		}
		if err := d.Delete(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
