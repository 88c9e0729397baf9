// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]Generator)
)

// targetName is the shape of a target name. Names double as output
// subdirectories and project file keys.
var targetName = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// Register adds a generator to the registry. It panics on a duplicate or
// malformed name and on extensions without a leading dot.
func Register(g Generator) {
	meta := g.Metadata()
	if !targetName.MatchString(meta.Name) {
		panic(fmt.Sprintf("generator name %q must match %s", meta.Name, targetName))
	}
	for _, ext := range meta.FileExtensions {
		if !strings.HasPrefix(ext, ".") {
			panic(fmt.Sprintf("generator %q: extension %q has no leading dot", meta.Name, ext))
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("generator %q already registered", meta.Name))
	}
	registry[meta.Name] = g
}

// Get returns a generator by name.
func Get(name string) (Generator, bool) {
	mu.RLock()
	defer mu.RUnlock()
	g, ok := registry[name]
	return g, ok
}

// Lookup returns the generator registered under name or an
// *UnknownTargetError.
func Lookup(name string) (Generator, error) {
	if g, ok := Get(name); ok {
		return g, nil
	}
	return nil, &UnknownTargetError{Name: name, Known: List()}
}

// List returns all registered generator names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}

// All returns all registered generators, sorted by name.
func All() []Generator {
	names := List()
	mu.RLock()
	defer mu.RUnlock()
	gens := make([]Generator, 0, len(names))
	for _, name := range names {
		if g, ok := registry[name]; ok {
			gens = append(gens, g)
		}
	}
	return gens
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Generator)
}
