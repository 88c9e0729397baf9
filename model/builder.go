// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
)

// ErrFrozen is returned by a Builder after Build.
var ErrFrozen = errors.New("model builder already built")

// Builder accumulates a ContractModel. It is not safe for concurrent use.
type Builder struct {
	m        *ContractModel
	services map[string]int
	enums    map[string]bool
}

// NewBuilder returns an empty builder for a model read from source.
func NewBuilder(source string) *Builder {
	return &Builder{
		m:        &ContractModel{source: source},
		services: make(map[string]int),
		enums:    make(map[string]bool),
	}
}

// AddService registers a service. Registering a name again only fills a
// namespace or doc that is still empty. Services keep the order of their
// first registration.
func (b *Builder) AddService(name, sourceName, namespace, doc string) error {
	if b.m == nil {
		return ErrFrozen
	}
	if i, ok := b.services[name]; ok {
		s := &b.m.services[i]
		if s.Namespace == "" {
			s.Namespace = namespace
		}
		if s.Doc == "" {
			s.Doc = doc
		}
		return nil
	}
	b.services[name] = len(b.m.services)
	b.m.services = append(b.m.services, Service{
		Name:       name,
		SourceName: sourceName,
		Namespace:  namespace,
		Doc:        doc,
	})
	return nil
}

// AddMethod appends a resource method to a registered service.
func (b *Builder) AddMethod(service string, rm ResourceMethod) error {
	s, err := b.service(service)
	if err != nil {
		return err
	}
	s.Methods = append(s.Methods, rm.clone())
	return nil
}

// AddOperation appends an operation to a registered service.
func (b *Builder) AddOperation(service string, op Operation) error {
	s, err := b.service(service)
	if err != nil {
		return err
	}
	s.Operations = append(s.Operations, op.clone())
	return nil
}

// AddEnum appends an enum. Enum names must be unique.
func (b *Builder) AddEnum(e EnumType) error {
	if b.m == nil {
		return ErrFrozen
	}
	if e.Enum == nil {
		return fmt.Errorf("enum %s: no bindings", e.Name)
	}
	if b.enums[e.Name] {
		return fmt.Errorf("enum %s declared twice", e.Name)
	}
	b.enums[e.Name] = true
	b.m.enums = append(b.m.enums, e)
	return nil
}

// Build freezes and returns the model. The builder is unusable afterwards.
func (b *Builder) Build() (*ContractModel, error) {
	if b.m == nil {
		return nil, ErrFrozen
	}
	m := b.m
	b.m = nil
	b.services = nil
	return m, nil
}

func (b *Builder) service(name string) (*Service, error) {
	if b.m == nil {
		return nil, ErrFrozen
	}
	i, ok := b.services[name]
	if !ok {
		return nil, fmt.Errorf("service %s not registered", name)
	}
	return &b.m.services[i], nil
}
