// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `
declarations: api/catalog.yaml
output: gen
label: catalog
logLevel: debug
targets:
  - name: c
  - name: java
    output: java/src
    label: Catalog
    services: [Projects]
    resolveDeps: true
    options:
      package: com.example.catalog
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(writeFile(t, dir, DefaultFile, sample))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := &Config{
		Declarations: "api/catalog.yaml",
		Output:       "gen",
		Label:        "catalog",
		LogLevel:     "debug",
		Targets: []Target{
			{Name: "c"},
			{
				Name:        "java",
				Output:      "java/src",
				Label:       "Catalog",
				Services:    []string{"Projects"},
				ResolveDeps: true,
				Options:     map[string]string{"package": "com.example.catalog"},
			},
		},
		Dir: dir,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if got, want := c.DeclarationsPath(), filepath.Join(dir, "api", "catalog.yaml"); got != want {
		t.Errorf("DeclarationsPath() = %q, want %q", got, want)
	}
	if got, want := c.TargetDir(c.Targets[0]), filepath.Join(dir, "gen", "c"); got != want {
		t.Errorf("TargetDir(c) = %q, want %q", got, want)
	}
	if got, want := c.TargetDir(c.Targets[1]), filepath.Join(dir, "gen", "java", "src"); got != want {
		t.Errorf("TargetDir(java) = %q, want %q", got, want)
	}
	if _, ok := c.Target("java"); !ok {
		t.Error("Target(java) not found")
	}
	if _, ok := c.Target("ruby"); ok {
		t.Error("Target(ruby) found")
	}
}

func TestPaths(t *testing.T) {
	c := &Config{Dir: "/work"}
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"-", "-"},
		{"/abs/x.yaml", "/abs/x.yaml"},
		{"rel/x.yaml", filepath.Join("/work", "rel/x.yaml")},
	}
	for _, tt := range tests {
		if got := c.Path(tt.in); got != tt.want {
			t.Errorf("Path(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got, want := c.TargetDir(Target{Name: "docs"}), filepath.Join("/work", DefaultOutput, "docs"); got != want {
		t.Errorf("TargetDir() = %q, want %q", got, want)
	}
	if got := c.TargetDir(Target{Name: "docs", Output: "/srv/docs"}); got != "/srv/docs" {
		t.Errorf("TargetDir(abs) = %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "missing keys",
			content: "label: x\n",
			want:    []string{"Config.Declarations: required", "Config.Targets: required"},
		},
		{
			name:    "bad level",
			content: "declarations: a.yaml\nlogLevel: loud\ntargets: [{name: c}]\n",
			want:    []string{"Config.LogLevel: must be one of: debug info warn error"},
		},
		{
			name:    "duplicate target",
			content: "declarations: a.yaml\ntargets: [{name: c}, {name: c}]\n",
			want:    []string{"Config.Targets: Name must be unique"},
		},
		{
			name:    "unnamed target",
			content: "declarations: a.yaml\ntargets: [{output: x}]\n",
			want:    []string{"Config.Targets[0].Name: required"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, t.TempDir(), DefaultFile, tt.content))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("error %q does not mention %q", err, w)
				}
			}
		})
	}
}

func TestLoadParseErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) succeeded")
	}
	_, err := Load(writeFile(t, dir, "unknown.yaml", "declarations: a\ntarget: []\n"))
	if err == nil || !strings.Contains(err.Error(), "parse YAML") {
		t.Errorf("Load(unknown key) error = %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDeclarations: "other.json",
		EnvLogLevel:     "warn",
		EnvLabel:        "",
	}
	c := &Config{Declarations: "a.yaml", Label: "keep", LogLevel: "debug"}
	c.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	if c.Declarations != "other.json" || c.LogLevel != "warn" || c.Label != "keep" {
		t.Errorf("ApplyEnv() = %+v", c)
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	t.Setenv(EnvOutput, "out")
	c, err := Load(writeFile(t, t.TempDir(), DefaultFile, sample))
	if err != nil {
		t.Fatal(err)
	}
	if c.Output != "out" {
		t.Errorf("Output = %q, want env override", c.Output)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", EnvLabel+"=fromfile\n"+EnvLogLevel+"=error\n")
	t.Setenv(EnvLogLevel, "info")
	// t.Setenv restores the variable; register the one the file adds too.
	t.Setenv(EnvLabel, "")
	os.Unsetenv(EnvLabel)

	if err := LoadEnvFile(path, true); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := os.Getenv(EnvLabel); got != "fromfile" {
		t.Errorf("%s = %q, want fromfile", EnvLabel, got)
	}
	if got := os.Getenv(EnvLogLevel); got != "info" {
		t.Errorf("%s = %q, want the existing value", EnvLogLevel, got)
	}

	missing := filepath.Join(dir, "nope.env")
	if err := LoadEnvFile(missing, false); err != nil {
		t.Errorf("LoadEnvFile(optional missing) error = %v", err)
	}
	if err := LoadEnvFile(missing, true); err == nil {
		t.Error("LoadEnvFile(required missing) succeeded")
	}
}
