// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package javascript

import (
	"context"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
)

// Generator implements [generator.Generator] for JavaScript.
type Generator struct{}

// NewGenerator creates a new JavaScript generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "javascript",
		Version:        "1.0.0",
		Description:    "Generate an ES module with frozen enums and fetch clients",
		FileExtensions: []string{".js"},
		URL:            "https://github.com/albertocavalcante/contractgen",
	}
}

// Generate produces a single ES module from the contract model.
func (g *Generator) Generate(ctx context.Context, m *model.ContractModel, cfg generator.Config) (*generator.Output, error) {
	opts := Options{FreezeEnums: true}
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	label := cfg.LabelOr(generator.DefaultLabel)
	c := Config{Source: cfg.Source, Options: opts}
	return generator.Single(label+".js", New(m, c).Generate()), nil
}
