// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifest reads program manifests: small TOML or YAML files
// that name the shader files of a program, the order of its vertex
// attributes and the uniforms it is expected to have.
//
// An example TOML manifest:
//
//	name = "simple_color"
//	vertex = "vertex_shader.glsl"
//	fragment = "fragment_shader.glsl"
//	attributes = ["position"]
//
//	[uniforms]
//	color = "vec4"
package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glwrap/glgpu"
	"cogentcore.org/glwrap/glgpu/driver"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Program describes a shader program.
type Program struct {

	// Name of the program, for logging.
	Name string `toml:"name" yaml:"name"`

	// Vertex is the vertex shader file, relative to the manifest.
	Vertex string `toml:"vertex" yaml:"vertex"`

	// Fragment is the fragment shader file, relative to the manifest.
	Fragment string `toml:"fragment" yaml:"fragment"`

	// Attributes are the vertex attribute names; attribute i is bound
	// to location i.
	Attributes []string `toml:"attributes,omitempty" yaml:"attributes,omitempty"`

	// Uniforms maps the uniforms the program must have to their GLSL types.
	Uniforms map[string]string `toml:"uniforms,omitempty" yaml:"uniforms,omitempty"`

	// directory of the manifest file
	dir string

	// filesystem the manifest was read from, nil for the OS filesystem
	fsys fs.FS
}

// Open reads the manifest at filename. The format is chosen by the
// file extension: .toml, or .yaml / .yml.
func Open(filename string) (*Program, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return decode(filename, b, filepath.Dir(filename), nil)
}

// OpenFS reads the manifest at filename in fsys. Shader files are
// then read from fsys as well.
func OpenFS(fsys fs.FS, filename string) (*Program, error) {
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, err
	}
	return decode(filename, b, path.Dir(filename), fsys)
}

func decode(filename string, b []byte, dir string, fsys fs.FS) (*Program, error) {
	p := &Program{}
	if err := unmarshal(filename, b, p); err != nil {
		return nil, fmt.Errorf("manifest.Open %s: %w", filename, err)
	}
	p.dir = dir
	p.fsys = fsys
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("manifest.Open %s: %w", filename, err)
	}
	return p, nil
}

// Save writes the manifest to filename, in the format given by its extension.
func (p *Program) Save(filename string) error {
	var b []byte
	var err error
	switch ext(filename) {
	case ".toml":
		b, err = toml.Marshal(p)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(p)
	default:
		return fmt.Errorf("manifest.Save: unsupported format %q", filepath.Ext(filename))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}

func ext(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

func unmarshal(filename string, b []byte, p *Program) error {
	switch ext(filename) {
	case ".toml":
		return toml.Unmarshal(b, p)
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, p)
	}
	return fmt.Errorf("unsupported format %q", filepath.Ext(filename))
}

// Validate checks that the required fields are set and that attribute
// names are unique.
func (p *Program) Validate() error {
	var errs []error
	if p.Vertex == "" {
		errs = append(errs, errors.New("missing vertex shader"))
	}
	if p.Fragment == "" {
		errs = append(errs, errors.New("missing fragment shader"))
	}
	for i, a := range p.Attributes {
		if slices.Index(p.Attributes, a) != i {
			errs = append(errs, fmt.Errorf("duplicate attribute %q", a))
		}
	}
	return errors.Join(errs...)
}

// VertexPath returns the path of the vertex shader file.
func (p *Program) VertexPath() string {
	return p.resolve(p.Vertex)
}

// FragmentPath returns the path of the fragment shader file.
func (p *Program) FragmentPath() string {
	return p.resolve(p.Fragment)
}

func (p *Program) resolve(file string) string {
	switch {
	case p.dir == "":
		return file
	case p.fsys != nil:
		return path.Join(p.dir, file)
	case filepath.IsAbs(file):
		return file
	}
	return filepath.Join(p.dir, file)
}

// Files returns the vertex and fragment shader paths, for watching.
// Files of a manifest read with [OpenFS] are paths within that filesystem.
func (p *Program) Files() []string {
	return []string{p.VertexPath(), p.FragmentPath()}
}

// Build compiles and links the program from its shader files, binding
// the attributes in order, and checks that every declared uniform is
// active in the linked program.
func (p *Program) Build(d driver.Driver) (*glgpu.Program, error) {
	var pr *glgpu.Program
	var err error
	if p.fsys != nil {
		pr, err = glgpu.ProgramFromFS(d, p.fsys, p.VertexPath(), p.FragmentPath(), p.Attributes...)
	} else {
		pr, err = glgpu.ProgramFromFiles(d, p.VertexPath(), p.FragmentPath(), p.Attributes...)
	}
	if err != nil {
		return nil, err
	}
	if err := p.CheckUniforms(pr); err != nil {
		pr.Delete()
		return nil, err
	}
	return pr, nil
}

// CheckUniforms returns an error naming every declared uniform that
// the program does not have.
func (p *Program) CheckUniforms(pr *glgpu.Program) error {
	names := make([]string, 0, len(p.Uniforms))
	for n := range p.Uniforms {
		names = append(names, n)
	}
	slices.Sort(names)
	var errs []error
	for _, n := range names {
		if _, err := pr.UniformLocation(n); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("manifest %s: %w", p.Name, errors.Join(errs...))
	}
	return nil
}
