// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
)

// Capitalize returns name with the first letter uppercased.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Decapitalize returns name with the first letter lowercased.
func Decapitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// CamelToSnake converts a CamelCase name to snake_case.
// Fully uppercase names (like "URI") are lowered as a single word.
func CamelToSnake(name string) string {
	if isAllUpper(name) {
		return strings.ToLower(name)
	}
	return strcase.ToSnake(name)
}

// CamelToScreamingSnake converts a CamelCase name to SCREAMING_SNAKE_CASE.
// Fully uppercase names (like "URI") are returned as-is.
func CamelToScreamingSnake(name string) string {
	if isAllUpper(name) {
		return strings.ToUpper(name)
	}
	return strcase.ToScreamingSnake(name)
}

// Format renders pattern with every token scrubbed first. Patterns use Go
// explicit argument indexes, e.g. "%[1]s_%[2]s_%[3]s".
func Format(pattern string, tokens ...string) string {
	args := make([]any, len(tokens))
	for i, tok := range tokens {
		args[i] = Scrub(tok)
	}
	return Scrub(fmt.Sprintf(pattern, args...))
}

func isAllUpper(name string) bool {
	for _, r := range name {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
