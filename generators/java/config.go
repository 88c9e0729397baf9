// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/contractgen/naming"
)

// Options are the target options of the Java generator.
type Options struct {
	// Package of the generated classes. Defaults to the lowercased label.
	Package string `option:"package"`
}

// Config holds configuration for Java generation.
type Config struct {
	Package string
	Source  string
}

func (c Config) validate() error {
	for _, seg := range strings.Split(c.Package, ".") {
		if !naming.IsIdentifier(seg) || naming.Java.IsReserved(seg) {
			return fmt.Errorf("java: invalid package name %q", c.Package)
		}
	}
	return nil
}

// dir is the package directory relative to the output root.
func (c Config) dir() string {
	return strings.ReplaceAll(c.Package, ".", "/")
}
