// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package pathtmpl reduces URI path templates with inline parameter
// constraints, such as "/p/{slug:[a-z]+}", to portable placeholder
// templates ("/p/{slug}") and extracts the parameter names.
package pathtmpl

import (
	"strings"
)

// Template is a normalized path template.
type Template struct {
	// Raw is the template as declared.
	Raw string

	// Clean is the template with every constraint removed. It contains
	// only literal text and {name} placeholders.
	Clean string

	// Params lists placeholder names in order of appearance. A name that
	// appears twice is listed twice.
	Params []string
}

type scanState int

const (
	stateLiteral scanState = iota
	stateName
	statePattern
)

// Normalize parses raw and strips the regular expression of every
// parameter group. Braces inside a pattern only change the nesting depth;
// a group closes on the first '}' at depth zero. A backslash in a pattern
// escapes the next byte.
func Normalize(raw string) (Template, error) {
	var (
		clean  strings.Builder
		name   strings.Builder
		params []string
		state  = stateLiteral
		depth  int
		open   int // offset of the '{' that opened the current group
	)
	clean.Grow(len(raw))

	closeGroup := func() error {
		n := strings.TrimSpace(name.String())
		if n == "" {
			return malformed(raw, open, "empty parameter name")
		}
		clean.WriteByte('{')
		clean.WriteString(n)
		clean.WriteByte('}')
		params = append(params, n)
		name.Reset()
		state = stateLiteral
		return nil
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch state {
		case stateLiteral:
			switch c {
			case '{':
				state = stateName
				open = i
			case '}':
				return Template{}, malformed(raw, i, "unmatched '}'")
			default:
				clean.WriteByte(c)
			}

		case stateName:
			switch c {
			case ':':
				state = statePattern
				depth = 0
			case '}':
				if err := closeGroup(); err != nil {
					return Template{}, err
				}
			case '{':
				return Template{}, malformed(raw, i, "'{' inside parameter name")
			default:
				name.WriteByte(c)
			}

		case statePattern:
			switch c {
			case '\\':
				i++ // the escaped byte never changes depth
			case '{':
				depth++
			case '}':
				if depth == 0 {
					if err := closeGroup(); err != nil {
						return Template{}, err
					}
					continue
				}
				depth--
			}
		}
	}

	if state != stateLiteral {
		return Template{}, malformed(raw, open, "unterminated parameter group")
	}

	return Template{Raw: raw, Clean: clean.String(), Params: params}, nil
}

// Rename returns a copy of t with every placeholder passed through fn.
// Clean and Params stay consistent; Raw is unchanged.
func (t Template) Rename(fn func(string) string) Template {
	out := Template{Raw: t.Raw, Params: make([]string, len(t.Params))}
	for i, p := range t.Params {
		out.Params[i] = fn(p)
	}

	var b strings.Builder
	idx := 0
	rest := t.Clean
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start:], '}') + start
		b.WriteString(rest[:start])
		b.WriteByte('{')
		b.WriteString(out.Params[idx])
		b.WriteByte('}')
		idx++
		rest = rest[end+1:]
	}
	out.Clean = b.String()
	return out
}
