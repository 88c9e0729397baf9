// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package golang

// Options are the target options of the Go generator.
type Options struct {
	// Package is the Go package name. Defaults to the lowercased label.
	Package string `option:"package"`
}

// Config controls code generation behavior.
type Config struct {
	// PackageName is the Go package name for generated code.
	PackageName string

	// Source describes where the declarations came from (for the header).
	Source string
}
