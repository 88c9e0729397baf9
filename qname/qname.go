// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package qname models enumerations whose values are bound to
// namespace-qualified names and, optionally, to the URIs derived from them.
//
// An Enum is built once from value declarations and is then read-only. It
// answers lookups in both directions: value to qualified name for output,
// and qualified name to value for input. An enum may declare one unknown
// value that absorbs inbound names nobody declared.
package qname

import (
	"fmt"
	"strings"
)

// QName is a namespace-qualified name.
type QName struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Local     string `json:"localPart" yaml:"localPart"`
}

// New returns the QName {ns}local.
func New(ns, local string) QName {
	return QName{Namespace: ns, Local: local}
}

// String renders q in Clark notation, "{ns}local", or just the local part
// when the namespace is empty.
func (q QName) String() string {
	if q.Namespace == "" {
		return q.Local
	}
	return "{" + q.Namespace + "}" + q.Local
}

// URI maps q to a URI. The namespace and local part are concatenated when
// the namespace is empty or already ends in a delimiter ('#', '/' or ':');
// otherwise they are joined with '#'.
func (q QName) URI() string {
	if q.Namespace == "" {
		return q.Local
	}
	switch q.Namespace[len(q.Namespace)-1] {
	case '#', '/', ':':
		return q.Namespace + q.Local
	}
	return q.Namespace + "#" + q.Local
}

// IsZero reports whether q has neither namespace nor local part.
func (q QName) IsZero() bool {
	return q.Namespace == "" && q.Local == ""
}

// ParseQName parses Clark notation. A string without a leading '{' is a
// local name in the empty namespace.
func ParseQName(s string) (QName, error) {
	if !strings.HasPrefix(s, "{") {
		if s == "" {
			return QName{}, fmt.Errorf("parse qname: empty string")
		}
		return QName{Local: s}, nil
	}
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return QName{}, fmt.Errorf("parse qname %q: missing '}'", s)
	}
	q := QName{Namespace: s[1:end], Local: s[end+1:]}
	if q.Local == "" {
		return QName{}, fmt.Errorf("parse qname %q: empty local part", s)
	}
	return q, nil
}

// BaseType selects how enum values are represented on the wire.
type BaseType int

const (
	// BaseQName represents values as qualified names.
	BaseQName BaseType = iota
	// BaseURI represents values as URIs derived from their qualified names.
	BaseURI
)

func (b BaseType) String() string {
	switch b {
	case BaseQName:
		return "QNAME"
	case BaseURI:
		return "URI"
	default:
		return fmt.Sprintf("BaseType(%d)", int(b))
	}
}

// ParseBaseType parses "QNAME" or "URI", ignoring case. The empty string
// is BaseQName.
func ParseBaseType(s string) (BaseType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "QNAME":
		return BaseQName, nil
	case "URI":
		return BaseURI, nil
	default:
		return 0, fmt.Errorf("unknown enum base type %q (want QNAME or URI)", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b BaseType) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BaseType) UnmarshalText(text []byte) error {
	v, err := ParseBaseType(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// RelativeURI writes uri relative to base when uri lies under it. It
// returns uri unchanged when base is empty or not a prefix.
func RelativeURI(uri, base string) string {
	if base == "" || !strings.HasPrefix(uri, base) || len(uri) == len(base) {
		return uri
	}
	return uri[len(base):]
}
