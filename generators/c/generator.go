// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package c

import (
	"context"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
)

// Generator implements [generator.Generator] for C headers.
type Generator struct{}

// NewGenerator creates a new C generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "c",
		Version:        "1.0.0",
		Description:    "Generate a C header with enum tables and path templates",
		FileExtensions: []string{".h"},
		URL:            "https://github.com/albertocavalcante/contractgen",
	}
}

// Generate produces the C header from the contract model.
func (g *Generator) Generate(ctx context.Context, m *model.ContractModel, cfg generator.Config) (*generator.Output, error) {
	opts := DefaultOptions()
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	label := cfg.LabelOr(generator.DefaultLabel)
	gen := New(m, Config{Label: label, Source: cfg.Source, Options: opts})
	out, err := gen.Generate()
	if err != nil {
		return nil, err
	}
	return generator.Single(label+".h", out), nil
}
