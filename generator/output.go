// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Output contains generated files.
type Output struct {
	// Files maps a slash-separated relative path to content.
	Files map[string][]byte
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{Files: make(map[string][]byte)}
}

// Add adds a file to the output.
func (o *Output) Add(name string, content []byte) {
	o.Files[name] = content
}

// Single returns an Output with a single file.
func Single(name string, content []byte) *Output {
	return &Output{Files: map[string][]byte{name: content}}
}

// Names returns the file names, sorted.
func (o *Output) Names() []string {
	names := make([]string, 0, len(o.Files))
	for name := range o.Files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Write writes every file under dir, creating directories as needed.
// Paths that would escape dir are rejected.
func (o *Output) Write(dir string) ([]string, error) {
	var written []string
	for _, name := range o.Names() {
		rel := filepath.FromSlash(name)
		if !filepath.IsLocal(rel) {
			return written, fmt.Errorf("write %s: path escapes output directory", name)
		}
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(path, o.Files[name], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// String lists the files and their sizes, one per line.
func (o *Output) String() string {
	var b strings.Builder
	for _, name := range o.Names() {
		fmt.Fprintf(&b, "%s (%d bytes)\n", name, len(o.Files[name]))
	}
	return b.String()
}
