// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package discovery defines the declarations that describe a service
// contract and loads them from YAML or JSON files.
//
// A declaration file lists REST resource methods, RPC services and
// qualified-name enumerations:
//
//	resources:
//	  - service: Projects
//	    name: getProject
//	    verb: GET
//	    parents: [/projects]
//	    path: "p/{projectSlug:[a-z0-9-]+}"
//	services:
//	  - name: Billing
//	    operations:
//	      - name: charge
//	enums:
//	  - name: Era
//	    schemaNamespace: "urn:special#"
//	    values:
//	      - name: victorian
//
// Declarations are plain data. Turning them into a contract model is the
// job of package assemble.
package discovery

import "github.com/albertocavalcante/contractgen/qname"

// Declarations is the complete input of one assembly run.
type Declarations struct {
	// Resources are REST resource methods, grouped into services by their
	// Service field.
	Resources []*Resource `json:"resources,omitempty" yaml:"resources,omitempty" validate:"dive,required"`

	// Services are RPC service interfaces.
	Services []*Service `json:"services,omitempty" yaml:"services,omitempty" validate:"dive,required"`

	// Enums are the qualified-name enumerations referenced by type hints.
	Enums []*Enum `json:"enums,omitempty" yaml:"enums,omitempty" validate:"dive,required"`

	// Source names the file the declarations were read from, if any.
	Source string `json:"-" yaml:"-"`
}

// Resource declares one REST resource method.
type Resource struct {
	// Service groups the method into a client service.
	Service string `json:"service" yaml:"service" validate:"required"`

	// Name is the method name as written in the source.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Verb is the HTTP method. Matching is case-insensitive.
	Verb string `json:"verb" yaml:"verb" validate:"required,httpverb"`

	// Parents are the paths of enclosing resources, outermost first.
	Parents []string `json:"parents,omitempty" yaml:"parents,omitempty"`

	// Path is the method's own path template, which may embed
	// {name:regex} constraints.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	Parameters []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty" validate:"dive,required"`
	Returns    string       `json:"returns,omitempty" yaml:"returns,omitempty"`
	Consumes   []string     `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces   []string     `json:"produces,omitempty" yaml:"produces,omitempty"`
	Doc        string       `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Parameter declares a method or operation parameter.
type Parameter struct {
	Name string `json:"name" yaml:"name" validate:"required"`

	// Kind is one of path, query, header, form, matrix or cookie. An empty
	// kind means path when the name appears in the path template and query
	// otherwise.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" validate:"omitempty,oneof=path query header form matrix cookie"`

	// Type is a type hint such as "string", "Era" or "[]integer".
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Service declares an RPC service interface.
type Service struct {
	Name       string       `json:"name" yaml:"name" validate:"required"`
	Namespace  string       `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Operations []*Operation `json:"operations,omitempty" yaml:"operations,omitempty" validate:"dive,required"`
	Doc        string       `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Operation declares one RPC operation.
type Operation struct {
	Name       string       `json:"name" yaml:"name" validate:"required"`
	Parameters []*Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty" validate:"dive,required"`
	Returns    string       `json:"returns,omitempty" yaml:"returns,omitempty"`
	Faults     []string     `json:"faults,omitempty" yaml:"faults,omitempty"`
	OneWay     bool         `json:"oneWay,omitempty" yaml:"oneWay,omitempty"`
	Doc        string       `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Enum declares a qualified-name enumeration.
type Enum struct {
	Name string `json:"name" yaml:"name" validate:"required"`

	// SchemaNamespace is the namespace of the schema that owns the enum.
	SchemaNamespace string `json:"schemaNamespace,omitempty" yaml:"schemaNamespace,omitempty"`

	// Namespace overrides SchemaNamespace for values that do not name their
	// own namespace. A non-nil empty string selects the empty namespace.
	Namespace *string `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	// Base selects QNAME or URI values. The default is QNAME.
	Base qname.BaseType `json:"base,omitempty" yaml:"base,omitempty"`

	Values []*EnumValue `json:"values" yaml:"values" validate:"required,min=1,dive,required"`
	Doc    string       `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// DefaultNamespace is the namespace unqualified values are bound in.
func (e *Enum) DefaultNamespace() string {
	if e.Namespace != nil {
		return *e.Namespace
	}
	return e.SchemaNamespace
}

// EnumValue declares one enum value.
type EnumValue struct {
	Name string `json:"name" yaml:"name" validate:"required"`

	// Namespace overrides the enum's namespace for this value.
	Namespace *string `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	// LocalPart overrides the local part, which defaults to Name.
	LocalPart string `json:"localPart,omitempty" yaml:"localPart,omitempty"`

	// QName sets the whole bound name in Clark notation, "{ns}local", in
	// place of Namespace and LocalPart.
	QName string `json:"qname,omitempty" yaml:"qname,omitempty" validate:"omitempty,qname,excluded_with=Namespace LocalPart"`

	// Unknown marks the fallback for unmapped inbound names.
	Unknown bool `json:"unknown,omitempty" yaml:"unknown,omitempty"`

	// Exclude drops the value from the enum.
	Exclude bool `json:"exclude,omitempty" yaml:"exclude,omitempty"`

	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// ValueSpecs resolves the enum's non-excluded values into qname specs.
// A value with no override inherits the enum's namespace and is left for
// qname.Build to bind; a partial override is completed from the enum's
// namespace and the value's name.
func (e *Enum) ValueSpecs() []qname.ValueSpec {
	specs := make([]qname.ValueSpec, 0, len(e.Values))
	for _, v := range e.Values {
		if v == nil || v.Exclude {
			continue
		}
		spec := qname.ValueSpec{Name: v.Name, Unknown: v.Unknown}
		if q, err := qname.ParseQName(v.QName); v.QName != "" && err == nil {
			spec.QName = &q
		} else if v.Namespace != nil || v.LocalPart != "" {
			q := qname.QName{Namespace: e.DefaultNamespace(), Local: v.Name}
			if v.Namespace != nil {
				q.Namespace = *v.Namespace
			}
			if v.LocalPart != "" {
				q.Local = v.LocalPart
			}
			spec.QName = &q
		}
		specs = append(specs, spec)
	}
	return specs
}
