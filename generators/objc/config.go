// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package objc

// Options are the target options of the Objective-C generator.
type Options struct {
	// Prefix starts every generated symbol and names the files.
	// Defaults to the capitalized label.
	Prefix string `option:"prefix"`

	// TypeNamePattern names enum types. Arguments: (1) prefix, (2) enum name.
	TypeNamePattern string `option:"typeNamePattern"`

	// EnumConstantPattern names enum constants. Arguments: (1) type name,
	// (2) value name in upper camel case.
	EnumConstantPattern string `option:"enumConstantPattern"`
}

// Config holds configuration for Objective-C generation.
type Config struct {
	Prefix              string
	Source              string
	TypeNamePattern     string
	EnumConstantPattern string
}

func newConfig(label, source string, opts Options) Config {
	c := Config{
		Prefix:              opts.Prefix,
		Source:              source,
		TypeNamePattern:     opts.TypeNamePattern,
		EnumConstantPattern: opts.EnumConstantPattern,
	}
	if c.Prefix == "" {
		c.Prefix = upperCamel.Identifier(label)
	}
	if c.TypeNamePattern == "" {
		c.TypeNamePattern = "%[1]s%[2]s"
	}
	if c.EnumConstantPattern == "" {
		c.EnumConstantPattern = "%[1]s%[2]s"
	}
	return c
}
