// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package assemble turns declarations into a frozen contract model.
//
// Assembly normalizes every path template, scrubs every name into an
// identifier, builds the qualified-name enums and resolves type hints
// against them. It either returns a complete model or an error; a
// partially assembled model is never exposed.
package assemble

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/albertocavalcante/contractgen/discovery"
	"github.com/albertocavalcante/contractgen/internal/logging"
	"github.com/albertocavalcante/contractgen/internal/typehint"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
	"github.com/albertocavalcante/contractgen/pathtmpl"
	"github.com/albertocavalcante/contractgen/qname"
)

// Option configures Assemble.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger logs each assembled enum, method and operation at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Assemble validates decls and builds the contract model. Enums are built
// first so that type hints can refer to them; resource methods follow in
// declaration order, then RPC services.
func Assemble(decls *discovery.Declarations, opts ...Option) (*model.ContractModel, error) {
	o := options{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := discovery.Validate(decls); err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	a := &assembler{
		log:      o.logger,
		b:        model.NewBuilder(decls.Source),
		ids:      make(map[string]string),
		services: make(map[string]string),
		enums:    make(map[string]string),
		routes:   make(map[string]map[string]string),
		members:  make(map[string]map[string]string),
	}

	for _, e := range decls.Enums {
		if err := a.enum(e); err != nil {
			return nil, fmt.Errorf("assemble: %w", err)
		}
	}
	for _, r := range decls.Resources {
		if err := a.resource(r); err != nil {
			return nil, fmt.Errorf("assemble: %w", err)
		}
	}
	for _, s := range decls.Services {
		if err := a.service(s); err != nil {
			return nil, fmt.Errorf("assemble: %w", err)
		}
	}

	m, err := a.b.Build()
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}
	a.log.Debug("assembled model", "services", len(m.Services()), "enums", len(m.Enums()))
	return m, nil
}

type assembler struct {
	log *slog.Logger
	b   *model.Builder

	// ids memoizes Scrub so a name maps to one identifier per run.
	ids map[string]string

	// services maps each service identifier to the declared name that
	// first produced it.
	services map[string]string

	// enums maps declared and scrubbed enum names to the scrubbed name.
	enums map[string]string

	// routes and members hold, per service, the first owner of each
	// "VERB path" and of each generated member name.
	routes  map[string]map[string]string
	members map[string]map[string]string
}

func (a *assembler) id(raw string) string {
	if v, ok := a.ids[raw]; ok {
		return v
	}
	v := naming.Scrub(raw)
	a.ids[raw] = v
	return v
}

func (a *assembler) enum(d *discovery.Enum) error {
	name := a.id(d.Name)
	specs := d.ValueSpecs()
	values := make(map[string]string, len(specs))
	for _, v := range specs {
		id := a.id(v.Name)
		if first, ok := values[id]; ok && first != v.Name {
			return &ConflictError{Enum: name, Key: "value " + id, First: first, Second: v.Name}
		}
		values[id] = v.Name
	}
	e, err := qname.Build(name, specs, d.DefaultNamespace(), d.Base)
	if err != nil {
		return err
	}
	if err := a.b.AddEnum(model.EnumType{Name: name, SourceName: d.Name, Doc: d.Doc, Enum: e}); err != nil {
		return err
	}
	a.enums[d.Name] = name
	a.enums[name] = name
	a.log.Debug("assembled enum", "enum", name, "base", d.Base, "values", len(e.Bindings()))
	return nil
}

func (a *assembler) typeRef(hint string) model.TypeRef {
	name, array := typehint.Parse(hint)
	switch {
	case typehint.IsBaseType(name):
		return model.TypeRef{Name: name, Kind: model.KindBase, Array: array}
	case a.enums[name] != "":
		return model.TypeRef{Name: a.enums[name], Kind: model.KindEnum, Array: array}
	default:
		return model.TypeRef{Name: a.id(name), Kind: model.KindReference, Array: array}
	}
}

// serviceID returns the identifier of a declared service name. Declarations
// share a service only when their names are equal, not merely equal once
// scrubbed.
func (a *assembler) serviceID(raw string) (string, error) {
	svc := a.id(raw)
	if first, ok := a.services[svc]; ok && first != raw {
		return "", &ConflictError{Service: svc, Key: "service " + svc, First: first, Second: raw}
	}
	a.services[svc] = raw
	return svc, nil
}

func (a *assembler) resource(d *discovery.Resource) error {
	svc, err := a.serviceID(d.Service)
	if err != nil {
		return err
	}
	if err := a.b.AddService(svc, d.Service, "", ""); err != nil {
		return err
	}

	raw := pathtmpl.Join(append(slices.Clone(d.Parents), d.Path)...)
	tmpl, err := pathtmpl.Normalize(raw)
	if err != nil {
		return fmt.Errorf("resource %s.%s: %w", d.Service, d.Name, err)
	}
	clean := tmpl.Rename(a.id)
	name := a.id(d.Name)
	params, err := a.parameters(svc, name, d.Parameters, tmpl.Params, true)
	if err != nil {
		return err
	}

	rm := model.ResourceMethod{
		Name:           name,
		SourceName:     d.Name,
		Verb:           strings.ToUpper(d.Verb),
		RawPath:        raw,
		Path:           clean.Clean,
		PathParams:     clean.Params,
		ServletPattern: pathtmpl.ServletPattern(clean.Clean),
		Parameters:     params,
		Returns:        a.typeRef(d.Returns),
		Consumes:       slices.Clone(d.Consumes),
		Produces:       slices.Clone(d.Produces),
		Doc:            d.Doc,
	}

	route := rm.Verb + " " + rm.Path
	owner := rm.Name + " (" + route + ")"
	if err := a.claim(a.routes, svc, route, owner); err != nil {
		return err
	}
	if err := a.claim(a.members, svc, "member "+rm.Name, owner); err != nil {
		return err
	}
	if err := a.b.AddMethod(svc, rm); err != nil {
		return err
	}
	a.log.Debug("assembled resource method", "service", svc, "method", rm.Name, "route", route)
	return nil
}

// parameters resolves declared parameters and appends an implicit string
// path parameter for every placeholder that has no declaration. Only HTTP
// parameters get a default kind. Two parameters of one member never share
// an identifier.
func (a *assembler) parameters(svc, member string, decl []*discovery.Parameter, pathParams []string, http bool) ([]model.Parameter, error) {
	var out []model.Parameter
	declared := make(map[string]bool, len(decl))
	owners := make(map[string]string, len(decl)+len(pathParams))
	claim := func(name, source string) error {
		id := a.id(name)
		if first, ok := owners[id]; ok {
			return &ConflictError{Service: svc, Key: "parameter " + id + " of " + member, First: first, Second: source}
		}
		owners[id] = source
		return nil
	}
	for _, p := range decl {
		kind := model.ParamKind(p.Kind)
		if kind == "" && http {
			kind = model.ParamQuery
			if slices.Contains(pathParams, p.Name) {
				kind = model.ParamPath
			}
		}
		if kind == model.ParamPath {
			declared[p.Name] = true
		}
		if err := claim(p.Name, p.Name); err != nil {
			return nil, err
		}
		out = append(out, model.Parameter{
			Name:       a.id(p.Name),
			SourceName: p.Name,
			Kind:       kind,
			Type:       a.typeRef(p.Type),
			Doc:        p.Doc,
		})
	}
	for _, name := range pathParams {
		if declared[name] {
			continue
		}
		declared[name] = true
		if err := claim(name, "{"+name+"}"); err != nil {
			return nil, err
		}
		out = append(out, model.Parameter{
			Name:       a.id(name),
			SourceName: name,
			Kind:       model.ParamPath,
			Type:       model.TypeRef{Name: typehint.TypeString, Kind: model.KindBase},
		})
	}
	return out, nil
}

func (a *assembler) service(d *discovery.Service) error {
	svc, err := a.serviceID(d.Name)
	if err != nil {
		return err
	}
	if err := a.b.AddService(svc, d.Name, d.Namespace, d.Doc); err != nil {
		return err
	}
	for _, od := range d.Operations {
		name := a.id(od.Name)
		params, err := a.parameters(svc, name, od.Parameters, nil, false)
		if err != nil {
			return err
		}
		op := model.Operation{
			Name:       name,
			SourceName: od.Name,
			Parameters: params,
			Returns:    a.typeRef(od.Returns),
			Faults:     slices.Clone(od.Faults),
			OneWay:     od.OneWay,
			Doc:        od.Doc,
		}
		if err := a.claim(a.members, svc, "member "+op.Name, "operation "+op.Name); err != nil {
			return err
		}
		if err := a.b.AddOperation(svc, op); err != nil {
			return err
		}
		a.log.Debug("assembled operation", "service", svc, "operation", op.Name)
	}
	return nil
}

func (a *assembler) claim(table map[string]map[string]string, svc, key, owner string) error {
	seen := table[svc]
	if seen == nil {
		seen = make(map[string]string)
		table[svc] = seen
	}
	if first, ok := seen[key]; ok {
		return &ConflictError{Service: svc, Key: key, First: first, Second: owner}
	}
	seen[key] = owner
	return nil
}
