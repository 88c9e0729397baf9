// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

import (
	"context"
	"fmt"
	"strings"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
)

// GoGenerator implements [generator.Generator] for Go code generation.
type GoGenerator struct{}

// NewGenerator creates a new Go generator.
func NewGenerator() *GoGenerator {
	return &GoGenerator{}
}

// Metadata returns information about this generator.
func (g *GoGenerator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "go",
		Version:        "1.0.0",
		Description:    "Generate a Go package with typed enums, path builders and request constructors",
		FileExtensions: []string{".go"},
		URL:            "https://github.com/albertocavalcante/contractgen",
	}
}

// Generate produces a single gofmt'ed Go file from the contract model.
func (g *GoGenerator) Generate(ctx context.Context, m *model.ContractModel, cfg generator.Config) (*generator.Output, error) {
	var opts Options
	if err := cfg.Decode(&opts); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	label := cfg.LabelOr(generator.DefaultLabel)
	c := Config{PackageName: opts.Package, Source: cfg.Source}
	if c.PackageName == "" {
		c.PackageName = naming.Scrub(strings.ToLower(label))
	}
	if !naming.IsIdentifier(c.PackageName) || naming.Go.IsReserved(c.PackageName) || c.PackageName == "_" {
		return nil, fmt.Errorf("go: invalid package name %q", c.PackageName)
	}

	src, err := New(m, c).Generate()
	if err != nil {
		return nil, err
	}
	return generator.Single(label+".go", src), nil
}
