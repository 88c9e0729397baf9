// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package fixture provides a small assembled contract model for generator
// tests.
package fixture

import (
	_ "embed"
	"testing"

	"github.com/albertocavalcante/contractgen/assemble"
	"github.com/albertocavalcante/contractgen/discovery"
	"github.com/albertocavalcante/contractgen/model"
)

// Catalog is the fixture's declaration file in YAML.
//
//go:embed catalog.yaml
var Catalog []byte

// Model parses and assembles Catalog, failing the test on error.
func Model(tb testing.TB) *model.ContractModel {
	tb.Helper()
	return Assemble(tb, Catalog)
}

// Assemble parses YAML declarations and assembles them, failing the test
// on error.
func Assemble(tb testing.TB, yaml []byte) *model.ContractModel {
	tb.Helper()
	d, err := discovery.Parse(yaml, discovery.FormatYAML)
	if err != nil {
		tb.Fatalf("parse fixture: %v", err)
	}
	d.Source = "catalog.yaml"
	m, err := assemble.Assemble(d)
	if err != nil {
		tb.Fatalf("assemble fixture: %v", err)
	}
	return m
}
