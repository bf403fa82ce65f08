// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaderwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte(content), 0o644))
}

func TestNotifyCoalesces(t *testing.T) {
	dir := t.TempDir()
	vs := filepath.Join(dir, "vertex_shader.glsl")
	fs := filepath.Join(dir, "fragment_shader.glsl")
	writeFile(t, vs, "v")
	writeFile(t, fs, "f")

	w, err := New(vs, fs)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, []string{fs, vs}, w.Files())

	w.notify(fs)
	w.notify(vs)
	w.notify(fs)
	w.notify(filepath.Join(dir, "other.txt"))

	select {
	case <-w.C:
	default:
		t.Fatal("expected a pending signal")
	}
	assert.Equal(t, []string{fs, vs}, w.Pending())
	assert.Nil(t, w.Pending())
}

func TestWatchWrite(t *testing.T) {
	dir := t.TempDir()
	fs := filepath.Join(dir, "fragment_shader.glsl")
	writeFile(t, fs, "f")

	w, err := New(fs)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, filepath.Join(dir, "unrelated.glsl"), "x")
	writeFile(t, fs, "f2")

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Pending()...)
		return len(got) > 0
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, fs, got[0])
	for _, g := range got {
		assert.Equal(t, fs, g)
	}
}

func TestClose(t *testing.T) {
	dir := t.TempDir()
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Error(t, w.Add(filepath.Join(dir, "a.glsl")))

	_, err = New(filepath.Join(dir, "missing", "a.glsl"))
	assert.Error(t, err)
}
