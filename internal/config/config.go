// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads contractgen.yaml, the project file naming the
// declaration source, the output root and the targets to generate.
//
// Example:
//
//	declarations: api/catalog.yaml
//	output: gen
//	label: catalog
//	logLevel: info
//	targets:
//	  - name: c
//	  - name: java
//	    output: java/src/main/java
//	    services: [Projects]
//	    resolveDeps: true
//	    options:
//	      package: com.example.catalog
//
// Relative paths are resolved against the directory holding the file.
// Before validation, CONTRACTGEN_* environment variables override the
// top-level keys (see [EnvPrefix]).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/contractgen/internal/fetch"
)

// DefaultFile is the configuration file looked up when none is named.
const DefaultFile = "contractgen.yaml"

// DefaultOutput is the output root used when none is configured.
const DefaultOutput = "gen"

// Config is the decoded project file.
type Config struct {
	// Declarations is the declaration file ("-" reads stdin), or a remote
	// location understood by package fetch.
	Declarations string `yaml:"declarations" validate:"required"`

	// Output is the root directory target outputs are written under.
	Output string `yaml:"output,omitempty"`

	// Label names the generated library. Targets may override it.
	Label string `yaml:"label,omitempty"`

	LogLevel  string `yaml:"logLevel,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `yaml:"logFormat,omitempty" validate:"omitempty,oneof=text json"`

	Targets []Target `yaml:"targets" validate:"required,min=1,unique=Name,dive"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`
}

// Target configures one generator run.
type Target struct {
	// Name is the registered generator name.
	Name string `yaml:"name" validate:"required"`

	// Output is the target directory, relative to Config.Output.
	// Defaults to Name.
	Output string `yaml:"output,omitempty"`

	// Label overrides Config.Label for this target.
	Label string `yaml:"label,omitempty"`

	// Services restricts generation to these services (empty = all).
	Services []string `yaml:"services,omitempty" validate:"dive,required"`

	// ResolveDeps keeps only the enums the selected services reference.
	ResolveDeps bool `yaml:"resolveDeps,omitempty"`

	// Options are passed to the generator as-is.
	Options map[string]string `yaml:"options,omitempty"`
}

// Load reads the file at path, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	c.Dir = filepath.Dir(path)
	c.ApplyEnv(os.LookupEnv)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a configuration without validating it. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return c, nil
}

// Path resolves p against Dir. Absolute paths and "-" are returned as-is.
func (c *Config) Path(p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) || fetch.IsRemote(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// DeclarationsPath returns the resolved declaration file.
func (c *Config) DeclarationsPath() string {
	return c.Path(c.Declarations)
}

// TargetDir returns the resolved output directory of t.
func (c *Config) TargetDir(t Target) string {
	root := c.Output
	if root == "" {
		root = DefaultOutput
	}
	sub := t.Output
	if sub == "" {
		sub = t.Name
	}
	if filepath.IsAbs(sub) {
		return sub
	}
	return c.Path(filepath.Join(root, sub))
}

// Target returns the target named name.
func (c *Config) Target(name string) (Target, bool) {
	for _, t := range c.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return Target{}, false
}
