// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package docs

import (
	"context"
	"strings"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
)

// Generator implements [generator.Generator] for Markdown reference docs.
type Generator struct{}

// NewGenerator creates a new docs generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "docs",
		Version:        "1.0.0",
		Description:    "Generate a Markdown reference of services and enums",
		FileExtensions: []string{".md"},
		URL:            "https://github.com/albertocavalcante/contractgen",
	}
}

// Generate produces index.md from the contract model.
func (g *Generator) Generate(ctx context.Context, m *model.ContractModel, cfg generator.Config) (*generator.Output, error) {
	var opts Options
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := Config{Title: opts.Title, BaseURL: strings.TrimSuffix(opts.BaseURL, "/"), Source: cfg.Source}
	if c.Title == "" {
		c.Title = cfg.LabelOr(generator.DefaultLabel)
	}
	return generator.Single("index.md", New(m, c).Generate()), nil
}
