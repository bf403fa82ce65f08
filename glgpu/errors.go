// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "cogentcore.org/core/base/errors"

var (
	// ErrInvalidHandle is returned when the driver hands back a zero handle.
	ErrInvalidHandle = errors.New("glgpu: driver returned an invalid handle")

	// ErrDeleted is returned when using a resource after Delete.
	ErrDeleted = errors.New("glgpu: resource has been deleted")

	// ErrNoDriver is returned by constructors given a nil driver.
	ErrNoDriver = errors.New("glgpu: nil driver")
)
