// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ruby

import (
	"context"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
)

// Generator implements [generator.Generator] for Ruby.
type Generator struct{}

// NewGenerator creates a new Ruby generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "ruby",
		Version:        "1.0.0",
		Description:    "Generate a Ruby module with enum lookups and path builders",
		FileExtensions: []string{".rb"},
		URL:            "https://github.com/albertocavalcante/contractgen",
	}
}

// Generate produces a single Ruby file from the contract model.
func (g *Generator) Generate(ctx context.Context, m *model.ContractModel, cfg generator.Config) (*generator.Output, error) {
	var opts Options
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	label := cfg.LabelOr(generator.DefaultLabel)
	c := Config{Module: opts.Module, Source: cfg.Source}
	if c.Module == "" {
		c.Module = moduleName.Identifier(label)
	}
	return generator.Single(label+".rb", New(m, c).Generate()), nil
}
