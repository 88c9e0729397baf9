// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"context"
	"strings"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
)

// Generator implements [generator.Generator] for Java.
type Generator struct{}

// NewGenerator creates a new Java generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "java",
		Version:        "1.0.0",
		Description:    "Generate Java enums with qualified names and path-expanding clients",
		FileExtensions: []string{".java"},
		URL:            "https://github.com/albertocavalcante/contractgen",
	}
}

// Generate produces one file per enum and one client per service.
func (g *Generator) Generate(ctx context.Context, m *model.ContractModel, cfg generator.Config) (*generator.Output, error) {
	var opts Options
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := Config{Package: opts.Package, Source: cfg.Source}
	if c.Package == "" {
		c.Package = naming.Scrub(strings.ToLower(cfg.LabelOr(generator.DefaultLabel)))
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return New(m, c).Generate(), nil
}
