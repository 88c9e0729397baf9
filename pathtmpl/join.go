// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package pathtmpl

import (
	"fmt"
	"net/url"
	"strings"
)

// Join builds the full path of a resource method from its parent resource
// paths and its own sub-path. Each segment is trimmed, given a leading
// '/', and stripped of trailing '/'. Blank segments are skipped.
func Join(segments ...string) string {
	var b strings.Builder
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		seg = strings.TrimRight(seg, "/")
		if seg == "" {
			continue
		}
		if !strings.HasPrefix(seg, "/") {
			b.WriteByte('/')
		}
		b.WriteString(seg)
	}
	if b.Len() == 0 {
		return "/"
	}
	return b.String()
}

// ServletPattern returns the servlet mapping that covers a clean template:
// the literal prefix up to the first placeholder followed by "*".
func ServletPattern(clean string) string {
	if i := strings.IndexByte(clean, '{'); i >= 0 {
		return clean[:i] + "*"
	}
	return clean
}

// Expand fills the placeholders of a clean template with path-escaped
// values.
func Expand(clean string, values map[string]string) (string, error) {
	var b strings.Builder
	rest := clean
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return "", malformed(clean, len(clean)-len(rest)+start, "unterminated parameter group")
		}
		end += start
		name := rest[start+1 : end]
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("expand %q: no value for parameter %q", clean, name)
		}
		b.WriteString(rest[:start])
		b.WriteString(url.PathEscape(v))
		rest = rest[end+1:]
	}
}

// Part is a piece of a clean template: literal text or one placeholder.
type Part struct {
	Literal string
	Param   string
}

// IsParam reports whether p is a placeholder.
func (p Part) IsParam() bool { return p.Param != "" }

// Split breaks a clean template into literal and placeholder parts, in
// order. Empty literals are omitted.
func Split(clean string) []Part {
	var parts []Part
	rest := clean
	for rest != "" {
		start := strings.IndexByte(rest, '{')
		end := -1
		if start >= 0 {
			end = strings.IndexByte(rest[start:], '}')
		}
		if start < 0 || end < 0 {
			parts = append(parts, Part{Literal: rest})
			break
		}
		end += start
		if start > 0 {
			parts = append(parts, Part{Literal: rest[:start]})
		}
		parts = append(parts, Part{Param: rest[start+1 : end]})
		rest = rest[end+1:]
	}
	return parts
}
