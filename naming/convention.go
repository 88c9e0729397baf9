// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package naming

import "github.com/iancoleman/strcase"

// Case is an identifier case style.
type Case string

const (
	Preserve       Case = "preserve"
	Camel          Case = "camel"      // UpperCamelCase
	LowerCamel     Case = "lowerCamel" // lowerCamelCase
	Snake          Case = "snake"
	ScreamingSnake Case = "screamingSnake"
)

// Convention describes the identifier rules of one target language.
// The zero value scrubs and preserves case.
type Convention struct {
	// Case is applied after scrubbing.
	Case Case

	// Reserved holds words that may not be used as identifiers.
	Reserved map[string]bool

	// ReservedSuffix is appended to reserved words. Defaults to "_".
	ReservedSuffix string

	// Renames maps a cased identifier to a replacement before the reserved
	// word check (Objective-C translates "id" to "identifier").
	Renames map[string]string
}

// Identifier derives a legal identifier for this convention from raw.
func (c Convention) Identifier(raw string) string {
	id := Scrub(raw)
	id = Scrub(applyCase(c.Case, id))
	if r, ok := c.Renames[id]; ok {
		id = r
	}
	if c.Reserved[id] {
		suffix := c.ReservedSuffix
		if suffix == "" {
			suffix = "_"
		}
		id += suffix
	}
	return id
}

// With returns a copy of c using case style cs.
func (c Convention) With(cs Case) Convention {
	c.Case = cs
	return c
}

// IsReserved reports whether word is reserved in this convention.
func (c Convention) IsReserved(word string) bool {
	return c.Reserved[word]
}

func applyCase(cs Case, s string) string {
	switch cs {
	case Camel:
		return strcase.ToCamel(s)
	case LowerCamel:
		return strcase.ToLowerCamel(s)
	case Snake:
		return CamelToSnake(s)
	case ScreamingSnake:
		return CamelToScreamingSnake(s)
	default:
		return s
	}
}

// Conventions of the supported targets.
var (
	C          = Convention{Case: Preserve, Reserved: words(cReserved)}
	ObjC       = Convention{Case: LowerCamel, Reserved: words(cReserved, objcReserved), Renames: map[string]string{"id": "identifier"}}
	PHP        = Convention{Case: LowerCamel, Reserved: words(phpReserved)}
	Ruby       = Convention{Case: Snake, Reserved: words(rubyReserved)}
	JavaScript = Convention{Case: LowerCamel, Reserved: words(jsReserved)}
	Java       = Convention{Case: LowerCamel, Reserved: words(javaReserved)}
	Go         = Convention{Case: LowerCamel, Reserved: words(goReserved)}
	Kotlin     = Convention{Case: LowerCamel, Reserved: words(kotlinReserved)}
)

func words(lists ...[]string) map[string]bool {
	m := make(map[string]bool)
	for _, l := range lists {
		for _, w := range l {
			m[w] = true
		}
	}
	return m
}
