// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming turns source names into identifiers that are legal in the
// target languages of the generators.
//
// [Scrub] is the language-neutral legality pass shared by every target.
// A [Convention] layers a case style and a reserved-word table on top of it.
package naming

import "strings"

// Scrub returns raw with every ASCII byte outside [A-Za-z0-9_] replaced by
// '_' and a '_' prepended when the result would start with a digit.
//
// Scrub is total and idempotent. Bytes outside the ASCII range are passed
// through untouched: non-ASCII identifiers are not supported and are left
// for the caller to reject.
func Scrub(raw string) string {
	if raw == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(raw) + 1)
	if isDigit(raw[0]) {
		b.WriteByte('_')
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= 0x80 || isWordByte(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}

// IsIdentifier reports whether s is already a legal identifier, meaning
// Scrub(s) == s and s is ASCII.
func IsIdentifier(s string) bool {
	if s == "" || isDigit(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWordByte(s[i]) {
			return false
		}
	}
	return true
}

// Slug flattens a display label into a token usable in file names and
// anchors. Path separators, colons, braces and blanks become '_'.
func Slug(label string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', ':', '{', '}', ' ':
			return '_'
		}
		return r
	}, label)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
