// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"runtime"
	"testing"
	"time"

	"cogentcore.org/glwrap/glgpu/driver/fakegl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dropBuffer creates a buffer and lets go of it without deleting it.
func dropBuffer(t *testing.T, d *fakegl.Driver) Handle {
	bo, err := NewBufferObject(d, ArrayBuffer, StaticDraw, triangle())
	require.NoError(t, err)
	return bo.Handle()
}

// dropDeletedBuffer creates a buffer, deletes it and lets go of it.
func dropDeletedBuffer(t *testing.T, d *fakegl.Driver) {
	bo, err := NewBufferObject(d, ArrayBuffer, StaticDraw, triangle())
	require.NoError(t, err)
	require.NoError(t, bo.Delete())
}

// dropReloadedProgram creates a program, reloads it and lets go of it,
// returning the handle of the reloaded program.
func dropReloadedProgram(t *testing.T, d *fakegl.Driver) Handle {
	pr, err := NewProgram(d, testVertex, testFragment)
	require.NoError(t, err)
	require.NoError(t, pr.Reload(testVertex, testFragment+"\n"))
	return pr.Handle()
}

func TestCollect(t *testing.T) {
	d := fakegl.New()
	other := fakegl.New()
	dropDeletedBuffer(t, d)
	h := dropBuffer(t, d)
	ph := dropReloadedProgram(t, d)
	assert.Equal(t, 1, d.Count("DeleteBuffer"))
	assert.Equal(t, 1, d.Count("DeleteProgram"))

	require.Eventually(t, func() bool {
		runtime.GC()
		Collect(d)
		return d.Count("DeleteBuffer") == 2 && d.Count("DeleteProgram") == 2
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, d.Called(fmt.Sprintf("DeleteBuffer(%d)", h)))
	assert.True(t, d.Called(fmt.Sprintf("DeleteProgram(%d)", ph)))
	assert.Equal(t, 0, other.Count("DeleteBuffer"))

	runtime.GC()
	runtime.GC()
	assert.Equal(t, 0, Collect(d))
	assert.Equal(t, 0, Collect(other))
	assert.Equal(t, 2, d.Count("DeleteBuffer"))
	assert.Equal(t, 2, d.Count("DeleteProgram"))
}

func TestCollectKeepsReachable(t *testing.T) {
	d := fakegl.New()
	va, err := NewVertexArray(d)
	require.NoError(t, err)
	runtime.GC()
	assert.Equal(t, 0, Collect(d))
	assert.True(t, va.Handle().Valid())
	require.NoError(t, va.Delete())
	assert.Equal(t, 1, d.Count("DeleteVertexArray"))
}
