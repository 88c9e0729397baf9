// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package qname

import "fmt"

// ValueSpec declares one enum value.
type ValueSpec struct {
	// Name is the value's identifier in the enum.
	Name string

	// QName overrides the bound name. Nil binds {defaultNamespace}Name.
	QName *QName

	// Unknown marks the open-world fallback value.
	Unknown bool
}

// Binding is a resolved enum value.
type Binding struct {
	Value   string
	QName   QName
	Unknown bool
}

// URI returns the URI of the binding's qualified name. It is empty for the
// unknown value.
func (b Binding) URI() string {
	if b.Unknown {
		return ""
	}
	return b.QName.URI()
}

// Enum is an immutable qualified-name enumeration.
type Enum struct {
	name      string
	namespace string
	base      BaseType
	bindings  []Binding
	unknown   string
	hasUnk    bool

	byValue map[string]int
	byQName map[QName]int
	byURI   map[string]int
}

// Build resolves specs into an Enum. Values without an explicit QName are
// bound in defaultNamespace. The unknown value, if any, is kept last and
// has no qualified name.
func Build(name string, specs []ValueSpec, defaultNamespace string, base BaseType) (*Enum, error) {
	e := &Enum{
		name:      name,
		namespace: defaultNamespace,
		base:      base,
		byValue:   make(map[string]int, len(specs)),
		byQName:   make(map[QName]int, len(specs)),
		byURI:     make(map[string]int, len(specs)),
	}

	var unknown *ValueSpec
	for i := range specs {
		spec := specs[i]
		if _, dup := e.byValue[spec.Name]; dup || (unknown != nil && unknown.Name == spec.Name) {
			return nil, fmt.Errorf("enum %s: value %s: %w", name, spec.Name, ErrDuplicateValue)
		}

		if spec.Unknown {
			if unknown != nil {
				return nil, fmt.Errorf("enum %s: %s and %s: %w", name, unknown.Name, spec.Name, ErrDuplicateUnknownMarker)
			}
			unknown = &specs[i]
			continue
		}

		q := QName{Namespace: defaultNamespace, Local: spec.Name}
		if spec.QName != nil {
			q = *spec.QName
		}
		if j, dup := e.byQName[q]; dup {
			return nil, &DuplicateQualifiedNameError{Enum: name, QName: q, First: e.bindings[j].Value, Second: spec.Name}
		}
		if base == BaseURI {
			if j, dup := e.byURI[q.URI()]; dup {
				return nil, &DuplicateQualifiedNameError{Enum: name, QName: q, First: e.bindings[j].Value, Second: spec.Name}
			}
		}

		idx := len(e.bindings)
		e.bindings = append(e.bindings, Binding{Value: spec.Name, QName: q})
		e.byValue[spec.Name] = idx
		e.byQName[q] = idx
		if _, seen := e.byURI[q.URI()]; !seen {
			e.byURI[q.URI()] = idx
		}
	}

	if unknown != nil {
		if unknown.QName != nil {
			if j, dup := e.byQName[*unknown.QName]; dup {
				return nil, &DuplicateQualifiedNameError{Enum: name, QName: *unknown.QName, First: e.bindings[j].Value, Second: unknown.Name}
			}
		}
		e.unknown = unknown.Name
		e.hasUnk = true
		e.bindings = append(e.bindings, Binding{Value: unknown.Name, Unknown: true})
	}

	return e, nil
}

// Name returns the enum's name.
func (e *Enum) Name() string { return e.name }

// Namespace returns the namespace unqualified values were bound in.
func (e *Enum) Namespace() string { return e.namespace }

// Base returns the enum's wire representation.
func (e *Enum) Base() BaseType { return e.base }

// Bindings returns a copy of the bindings in declaration order, with the
// unknown value last.
func (e *Enum) Bindings() []Binding {
	out := make([]Binding, len(e.bindings))
	copy(out, e.bindings)
	return out
}

// Unknown returns the unknown value and whether one was declared.
func (e *Enum) Unknown() (string, bool) {
	return e.unknown, e.hasUnk
}

// QNameFor returns the qualified name bound to value.
func (e *Enum) QNameFor(value string) (QName, error) {
	i, ok := e.byValue[value]
	if !ok {
		return QName{}, &UnknownValueError{Enum: e.name, Key: value}
	}
	return e.bindings[i].QName, nil
}

// URIFor returns the URI bound to value.
func (e *Enum) URIFor(value string) (string, error) {
	q, err := e.QNameFor(value)
	if err != nil {
		return "", err
	}
	return q.URI(), nil
}

// ValueFor returns the value bound to q, or the unknown value when q is
// not bound and the enum declares one.
func (e *Enum) ValueFor(q QName) (string, error) {
	if i, ok := e.byQName[q]; ok {
		return e.bindings[i].Value, nil
	}
	if e.hasUnk {
		return e.unknown, nil
	}
	return "", &UnknownValueError{Enum: e.name, Key: q.String()}
}

// ValueForURI returns the value bound to uri, or the unknown value when
// uri is not bound and the enum declares one. URI enums reject two names
// with one URI at Build; in a QNAME enum such names may coexist, and uri
// then resolves to the first one declared.
func (e *Enum) ValueForURI(uri string) (string, error) {
	if i, ok := e.byURI[uri]; ok {
		return e.bindings[i].Value, nil
	}
	if e.hasUnk {
		return e.unknown, nil
	}
	return "", &UnknownValueError{Enum: e.name, Key: uri}
}
