// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package docs

// Options are the target options of the docs generator.
type Options struct {
	// Title is the page heading. Defaults to the label.
	Title string `option:"title"`

	// BaseURL prefixes the example request of each resource method.
	BaseURL string `option:"base_url"`
}

// Config holds configuration for docs generation.
type Config struct {
	Title   string
	BaseURL string
	Source  string
}
