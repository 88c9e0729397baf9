// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package objc

import (
	"context"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
)

// Generator implements [generator.Generator] for Objective-C.
type Generator struct{}

// NewGenerator creates a new Objective-C generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "objc",
		Version:        "1.0.0",
		Description:    "Generate Objective-C enums, lookups and path constants",
		FileExtensions: []string{".h", ".m"},
		URL:            "https://github.com/albertocavalcante/contractgen",
	}
}

// Generate produces the header and implementation files.
func (g *Generator) Generate(ctx context.Context, m *model.ContractModel, cfg generator.Config) (*generator.Output, error) {
	var opts Options
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := newConfig(cfg.LabelOr(generator.DefaultLabel), cfg.Source, opts)
	header, impl := New(m, c).Generate()

	out := generator.NewOutput()
	out.Add(c.Prefix+".h", header)
	out.Add(c.Prefix+".m", impl)
	return out, nil
}
