// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package proto

import (
	"context"
	"strings"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
)

// Generator implements [generator.Generator] for Protocol Buffers.
type Generator struct{}

// NewGenerator creates a new Proto generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "proto",
		Version:        "1.0.0",
		Description:    "Generate proto3 enums, messages and services from the contract",
		FileExtensions: []string{".proto"},
		URL:            "https://github.com/albertocavalcante/contractgen",
	}
}

// Generate produces a single <label>.proto file.
func (g *Generator) Generate(ctx context.Context, m *model.ContractModel, cfg generator.Config) (*generator.Output, error) {
	var opts Options
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	label := cfg.LabelOr(generator.DefaultLabel)
	c := Config{
		PackageName:   opts.Package,
		GoPackage:     opts.GoPackage,
		ExtensionBase: opts.ExtensionBase,
		Source:        cfg.Source,
	}
	if c.PackageName == "" {
		c.PackageName = naming.Scrub(strings.ToLower(label))
	}
	if c.ExtensionBase == 0 {
		c.ExtensionBase = DefaultExtensionBase
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return generator.Single(label+".proto", New(m, c).Generate()), nil
}
