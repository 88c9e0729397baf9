// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the contract model shared by every code generator.
//
// A ContractModel is produced once per run by package assemble and is then
// read concurrently by all targets. It cannot be changed after Build: its
// fields are unexported and every accessor returns a copy.
package model

import (
	"slices"

	"github.com/albertocavalcante/contractgen/qname"
)

// ParamKind says where a parameter travels in a request.
type ParamKind string

const (
	ParamPath   ParamKind = "path"
	ParamQuery  ParamKind = "query"
	ParamHeader ParamKind = "header"
	ParamForm   ParamKind = "form"
	ParamMatrix ParamKind = "matrix"
	ParamCookie ParamKind = "cookie"
)

// TypeKind classifies a TypeRef.
type TypeKind string

const (
	// KindBase is a built-in type such as string or integer.
	KindBase TypeKind = "base"
	// KindEnum refers to an enum of the model.
	KindEnum TypeKind = "enum"
	// KindReference refers to a type the model does not describe.
	KindReference TypeKind = "reference"
)

// TypeRef is a resolved type hint.
type TypeRef struct {
	Name  string   `json:"name"`
	Kind  TypeKind `json:"kind"`
	Array bool     `json:"array,omitempty"`
}

// IsVoid reports whether t denotes no value.
func (t TypeRef) IsVoid() bool {
	return t.Kind == KindBase && t.Name == "void"
}

func (t TypeRef) String() string {
	if t.Array {
		return "[]" + t.Name
	}
	return t.Name
}

// Parameter is a method or operation parameter.
type Parameter struct {
	// Name is the scrubbed identifier.
	Name string `json:"name"`
	// SourceName is the name as declared, used on the wire.
	SourceName string    `json:"sourceName"`
	Kind       ParamKind `json:"kind,omitempty"`
	Type       TypeRef   `json:"type"`
	Doc        string    `json:"doc,omitempty"`
}

// ResourceMethod is one REST endpoint.
type ResourceMethod struct {
	Name       string `json:"name"`
	SourceName string `json:"sourceName"`
	Verb       string `json:"verb"`

	// RawPath is the full path as declared, constraints included.
	RawPath string `json:"rawPath"`

	// Path is the clean template: literal text and {name} placeholders.
	Path string `json:"path"`

	// PathParams lists the placeholders of Path in order; one entry per
	// placeholder, duplicates kept.
	PathParams []string `json:"pathParams"`

	// ServletPattern is the servlet mapping that covers Path.
	ServletPattern string `json:"servletPattern"`

	Parameters []Parameter `json:"parameters,omitempty"`
	Returns    TypeRef     `json:"returns"`
	Consumes   []string    `json:"consumes,omitempty"`
	Produces   []string    `json:"produces,omitempty"`
	Doc        string      `json:"doc,omitempty"`
}

func (m ResourceMethod) clone() ResourceMethod {
	m.PathParams = slices.Clone(m.PathParams)
	m.Parameters = slices.Clone(m.Parameters)
	m.Consumes = slices.Clone(m.Consumes)
	m.Produces = slices.Clone(m.Produces)
	return m
}

// Operation is one RPC operation.
type Operation struct {
	Name       string      `json:"name"`
	SourceName string      `json:"sourceName"`
	Parameters []Parameter `json:"parameters,omitempty"`
	Returns    TypeRef     `json:"returns"`
	Faults     []string    `json:"faults,omitempty"`
	OneWay     bool        `json:"oneWay,omitempty"`
	Doc        string      `json:"doc,omitempty"`
}

func (o Operation) clone() Operation {
	o.Parameters = slices.Clone(o.Parameters)
	o.Faults = slices.Clone(o.Faults)
	return o
}

// Service groups resource methods and operations under one client.
type Service struct {
	Name       string           `json:"name"`
	SourceName string           `json:"sourceName"`
	Namespace  string           `json:"namespace,omitempty"`
	Methods    []ResourceMethod `json:"methods,omitempty"`
	Operations []Operation      `json:"operations,omitempty"`
	Doc        string           `json:"doc,omitempty"`
}

func (s Service) clone() Service {
	methods := make([]ResourceMethod, len(s.Methods))
	for i, rm := range s.Methods {
		methods[i] = rm.clone()
	}
	ops := make([]Operation, len(s.Operations))
	for i, op := range s.Operations {
		ops[i] = op.clone()
	}
	s.Methods, s.Operations = methods, ops
	return s
}

// EnumType is a qualified-name enum together with its naming.
type EnumType struct {
	Name       string `json:"name"`
	SourceName string `json:"sourceName"`
	Doc        string `json:"doc,omitempty"`

	// Enum holds the bindings. It is immutable.
	Enum *qname.Enum `json:"-"`
}

// ContractModel is the frozen intermediate model.
type ContractModel struct {
	source   string
	services []Service
	enums    []EnumType
}

// Source names the declarations the model was assembled from.
func (m *ContractModel) Source() string { return m.source }

// Services returns a copy of the services in declaration order.
func (m *ContractModel) Services() []Service {
	out := make([]Service, len(m.services))
	for i, s := range m.services {
		out[i] = s.clone()
	}
	return out
}

// Service returns a copy of the named service.
func (m *ContractModel) Service(name string) (Service, bool) {
	for _, s := range m.services {
		if s.Name == name {
			return s.clone(), true
		}
	}
	return Service{}, false
}

// Enums returns a copy of the enums in declaration order.
func (m *ContractModel) Enums() []EnumType {
	return slices.Clone(m.enums)
}

// Enum returns the named enum.
func (m *ContractModel) Enum(name string) (EnumType, bool) {
	for _, e := range m.enums {
		if e.Name == name {
			return e, true
		}
	}
	return EnumType{}, false
}

// Subset returns a frozen model restricted to the named services and
// enums, keeping the original order. Unknown names are ignored.
func (m *ContractModel) Subset(services, enums []string) *ContractModel {
	out := &ContractModel{source: m.source}
	for _, s := range m.services {
		if slices.Contains(services, s.Name) {
			out.services = append(out.services, s.clone())
		}
	}
	for _, e := range m.enums {
		if slices.Contains(enums, e.Name) {
			out.enums = append(out.enums, e)
		}
	}
	return out
}
