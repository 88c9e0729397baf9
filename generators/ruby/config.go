// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ruby

// Options are the target options of the Ruby generator.
type Options struct {
	// Module wraps every generated constant. Defaults to the label in
	// upper camel case.
	Module string `option:"module"`
}

// Config holds configuration for Ruby generation.
type Config struct {
	Module string
	Source string
}
