// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/contractgen/naming"
)

// Options are the target options of the Kotlin generator.
type Options struct {
	// Package of the generated file. Defaults to the lowercased label.
	Package string `option:"package"`

	// Serialization adds kotlinx.serialization annotations to enums.
	// Defaults to true.
	Serialization bool `option:"serialization"`
}

// Config holds configuration for Kotlin generation.
type Config struct {
	// PackageName is the Kotlin package name (e.g., "com.example.catalog").
	PackageName string

	// Serialization mirrors Options.Serialization.
	Serialization bool

	// Source metadata for header comments.
	Source string
}

func (c Config) validate() error {
	for _, seg := range strings.Split(c.PackageName, ".") {
		if !naming.IsIdentifier(seg) || naming.Kotlin.IsReserved(seg) {
			return fmt.Errorf("kotlin: invalid package name %q", c.PackageName)
		}
	}
	return nil
}
