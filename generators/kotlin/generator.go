// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

import (
	"context"
	"strings"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
)

// Generator implements [generator.Generator] for Kotlin code generation.
type Generator struct{}

// NewGenerator creates a new Kotlin generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "kotlin",
		Version:        "1.0.0",
		Description:    "Generate Kotlin enum classes and service path objects",
		FileExtensions: []string{".kt"},
		URL:            "https://github.com/albertocavalcante/contractgen",
	}
}

// Generate produces a single Kotlin file from the contract model.
func (g *Generator) Generate(ctx context.Context, m *model.ContractModel, cfg generator.Config) (*generator.Output, error) {
	opts := Options{Serialization: true}
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	label := cfg.LabelOr(generator.DefaultLabel)
	c := Config{PackageName: opts.Package, Serialization: opts.Serialization, Source: cfg.Source}
	if c.PackageName == "" {
		c.PackageName = naming.Scrub(strings.ToLower(label))
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	file := typeName.Identifier(label) + ".kt"
	return generator.Single(file, New(m, c).Generate()), nil
}
