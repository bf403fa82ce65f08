// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"cogentcore.org/glwrap/glgpu/driver"
)

// release is a handle waiting to be deleted on the context thread.
type release struct {
	drv    driver.Driver
	handle uint32
	del    func(driver.Driver, uint32)
}

// garbage holds the handles of resources that became unreachable
// without Delete being called. Cleanups run on their own goroutine,
// so they only queue the handle here.
var garbage struct {
	sync.Mutex
	pending []release
}

func enqueue(r release) {
	garbage.Lock()
	garbage.pending = append(garbage.pending, r)
	garbage.Unlock()
}

// track arranges for handle to be queued for deletion on d when obj
// becomes unreachable. The returned cleanup must be stopped when the
// handle is deleted explicitly.
func track[T any](obj *T, d driver.Driver, handle Handle, del func(driver.Driver, uint32)) runtime.Cleanup {
	return runtime.AddCleanup(obj, enqueue, release{drv: d, handle: uint32(handle), del: del})
}

// Collect deletes the handles of resources created with d that were
// garbage collected without being deleted, and returns how many it
// deleted. It must be called on the thread that owns the context of d,
// typically once per frame; glwindow does this in its render loop.
// Resources should still be deleted explicitly: collection only
// happens after the garbage collector has found them unreachable.
func Collect(d driver.Driver) int {
	garbage.Lock()
	var mine []release
	garbage.pending = slices.DeleteFunc(garbage.pending, func(r release) bool {
		if r.drv != d {
			return false
		}
		mine = append(mine, r)
		return true
	})
	garbage.Unlock()
	for _, r := range mine {
		r.del(d, r.handle)
	}
	if len(mine) > 0 {
		slog.Debug("glgpu.Collect: deleted unreachable resources", "n", len(mine))
	}
	return len(mine)
}
