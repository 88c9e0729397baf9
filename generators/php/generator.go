// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package php

import (
	"context"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
)

// Generator implements [generator.Generator] for PHP.
type Generator struct{}

// NewGenerator creates a new PHP generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "php",
		Version:        "1.0.0",
		Description:    "Generate PHP enum classes and path-building clients",
		FileExtensions: []string{".php"},
		URL:            "https://github.com/albertocavalcante/contractgen",
	}
}

// Generate produces a single PHP file from the contract model.
func (g *Generator) Generate(ctx context.Context, m *model.ContractModel, cfg generator.Config) (*generator.Output, error) {
	var opts Options
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	label := cfg.LabelOr(generator.DefaultLabel)
	c := Config{Namespace: opts.Namespace, Source: cfg.Source}
	if c.Namespace == "" {
		c.Namespace = className.Identifier(label)
	}
	return generator.Single(label+".php", New(m, c).Generate()), nil
}
