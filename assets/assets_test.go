// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"io/fs"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaders(t *testing.T) {
	for _, prog := range []string{SimpleColor, Textured} {
		for _, file := range []string{VertexShaderFile, FragmentShaderFile} {
			b, err := fs.ReadFile(Shaders, path.Join(prog, file))
			require.NoError(t, err, path.Join(prog, file))
			assert.Contains(t, string(b), "#version 410 core")
		}
	}
}
