// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package c

import (
	"fmt"

	"github.com/albertocavalcante/contractgen/naming"
)

// Options are the target options of the C generator.
type Options struct {
	// EnumConstantPattern names enum constants. Arguments: (1) label,
	// (2) enum name, (3) value name.
	EnumConstantPattern string `option:"enumConstantPattern"`

	// TypeNamePattern names enum types. Arguments: (1) label, (2) enum name.
	TypeNamePattern string `option:"typeNamePattern"`

	// ConstantCase is "screaming" to upper-case pattern tokens or
	// "preserve" to use them as scrubbed.
	ConstantCase string `option:"constantCase"`
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		EnumConstantPattern: "%[1]s_%[2]s_%[3]s",
		TypeNamePattern:     "%[1]s_%[2]s",
		ConstantCase:        "screaming",
	}
}

// Config holds configuration for C generation.
type Config struct {
	Label   string
	Source  string
	Options Options
}

func (c Config) validate() error {
	switch c.Options.ConstantCase {
	case "screaming", "preserve":
		return nil
	default:
		return fmt.Errorf("c: constantCase %q (want screaming or preserve)", c.Options.ConstantCase)
	}
}

// token prepares one pattern argument according to ConstantCase.
func (c Config) token(s string) string {
	if c.Options.ConstantCase == "screaming" {
		return naming.CamelToScreamingSnake(naming.Scrub(s))
	}
	return s
}
