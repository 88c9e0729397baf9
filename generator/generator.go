// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for contract code generators.
//
// Each target language lives in its own package under generators/ and
// registers itself by name. The CLI selects targets from configuration
// and runs them concurrently over one frozen model.
package generator

import (
	"context"

	"github.com/albertocavalcante/contractgen/model"
)

// Generator is the interface that all code generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces output files from the contract model. The model is
	// shared with other generators and must not be modified.
	Generate(ctx context.Context, m *model.ContractModel, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "c", "php", "java").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".h"], [".rb"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}
