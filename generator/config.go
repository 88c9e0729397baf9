// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"

	"github.com/gorilla/schema"
)

// DefaultLabel names generated artifacts when no label is configured.
const DefaultLabel = "contract"

var (
	optionDecoder = schema.NewDecoder()
	sharedDecoder = schema.NewDecoder()
)

func init() {
	optionDecoder.SetAliasTag("option")
	sharedDecoder.SetAliasTag("option")
	sharedDecoder.IgnoreUnknownKeys(true)
}

// Config contains generator configuration.
type Config struct {
	// OutputDir is the directory the target's files are written to.
	OutputDir string

	// Label names the generated library (file names, modules, prefixes).
	Label string

	// Services filters to specific services (empty = all).
	Services []string

	// ResolveDeps keeps only the enums the selected services reference.
	ResolveDeps bool

	// Source is the declaration source (for headers).
	Source string

	// Options contains target-specific options.
	Options map[string]string

	// Shared contains options offered to every target of a run. A target
	// ignores the ones it does not declare; Options win over Shared.
	Shared map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// LabelOr returns the configured label, or def when none is set.
func (c Config) LabelOr(def string) string {
	if c.Label != "" {
		return c.Label
	}
	return def
}

// Decode fills dst, a pointer to a struct, from Shared and then Options.
// Fields are matched by their `option` tag; an entry of Options no field
// claims is an error, an unclaimed entry of Shared is skipped.
func (c Config) Decode(dst any) error {
	if len(c.Shared) > 0 {
		if err := sharedDecoder.Decode(dst, values(c.Shared)); err != nil {
			return fmt.Errorf("decode shared options: %w", err)
		}
	}
	if err := optionDecoder.Decode(dst, values(c.Options)); err != nil {
		return fmt.Errorf("decode options: %w", err)
	}
	return nil
}

func values(opts map[string]string) map[string][]string {
	src := make(map[string][]string, len(opts))
	for k, v := range opts {
		src[k] = []string{v}
	}
	return src
}
