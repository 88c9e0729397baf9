// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package php

// Options are the target options of the PHP generator.
type Options struct {
	// Namespace of the generated classes, with backslash separators.
	// Defaults to the label in upper camel case.
	Namespace string `option:"namespace"`
}

// Config holds configuration for PHP generation.
type Config struct {
	Namespace string
	Source    string
}
