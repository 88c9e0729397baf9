// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package typehint classifies the type hints written in declaration files
// and shared by all code generators.
package typehint

import "strings"

// Base type names accepted in declarations.
const (
	TypeString   = "string"
	TypeInteger  = "integer"
	TypeLong     = "long"
	TypeDecimal  = "decimal"
	TypeBoolean  = "boolean"
	TypeDate     = "date"
	TypeDateTime = "dateTime"
	TypeURI      = "uri"
	TypeQName    = "qname"
	TypeBinary   = "binary"
	TypeAny      = "any"
	TypeVoid     = "void"
)

// baseTypes is the set of all recognized base type names.
var baseTypes = map[string]bool{
	TypeString:   true,
	TypeInteger:  true,
	TypeLong:     true,
	TypeDecimal:  true,
	TypeBoolean:  true,
	TypeDate:     true,
	TypeDateTime: true,
	TypeURI:      true,
	TypeQName:    true,
	TypeBinary:   true,
	TypeAny:      true,
	TypeVoid:     true,
}

// Parse splits a hint into its element name and whether it is an array.
// Both "[]T" and "T[]" denote arrays. An empty hint is void.
func Parse(hint string) (name string, array bool) {
	hint = strings.TrimSpace(hint)
	switch {
	case strings.HasPrefix(hint, "[]"):
		return strings.TrimSpace(hint[2:]), true
	case strings.HasSuffix(hint, "[]"):
		return strings.TrimSpace(hint[:len(hint)-2]), true
	case hint == "":
		return TypeVoid, false
	}
	return hint, false
}

// IsBaseType reports whether name is a recognized base type.
func IsBaseType(name string) bool {
	return baseTypes[name]
}

// IsStringLike reports whether the base type maps to a string in most targets.
func IsStringLike(name string) bool {
	switch name {
	case TypeString, TypeDate, TypeDateTime, TypeURI, TypeQName:
		return true
	}
	return false
}

// IsNumeric reports whether the base type maps to a number in most targets.
func IsNumeric(name string) bool {
	switch name {
	case TypeInteger, TypeLong, TypeDecimal:
		return true
	}
	return false
}
