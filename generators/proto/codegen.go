// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package proto generates proto3 definitions from the contract model.
//
// Each enum becomes a proto enum whose values carry their qualified names
// as custom EnumValueOptions. Each service becomes a proto service with
// one rpc per resource method and operation, each taking a request message
// built from its parameters.
package proto

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/contractgen/internal/codegen"
	"github.com/albertocavalcante/contractgen/internal/typehint"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
	"github.com/albertocavalcante/contractgen/qname"
)

var (
	messageName = naming.Convention{Case: naming.Camel}
	fieldName   = naming.Convention{Case: naming.Snake}
	enumPrefix  = naming.Convention{Case: naming.ScreamingSnake}
	quote       = codegen.CQuote
)

// Well-known types referenced by generated definitions.
const (
	typeAny   = "google.protobuf.Any"
	typeEmpty = "google.protobuf.Empty"
)

// Names of the enum value options that carry qualified names.
const (
	optNamespace = "qname_namespace"
	optLocalPart = "qname_local_part"
	optURI       = "qname_uri"
)

// Codegen generates proto3 definitions.
type Codegen struct {
	model  *model.ContractModel
	config Config
	buf    bytes.Buffer

	// messages are emitted after the services that use them.
	messages []message
}

type field struct {
	typ  string
	name string
	doc  string
}

type message struct {
	name   string
	fields []field
}

// New creates a new proto Codegen.
func New(m *model.ContractModel, cfg Config) *Codegen {
	return &Codegen{model: m, config: cfg}
}

// Generate returns the proto file.
func (g *Codegen) Generate() []byte {
	g.buf.WriteString(codegen.Header(codegen.Slashes, g.config.Source))
	g.buf.WriteString("syntax = \"proto3\";\n\n")
	g.printf("package %s;\n\n", g.config.PackageName)
	if g.config.GoPackage != "" {
		g.printf("option go_package = %s;\n\n", quote(g.config.GoPackage))
	}

	// Messages are collected first so imports are known up front.
	var services bytes.Buffer
	for _, s := range g.model.Services() {
		g.generateService(&services, s)
	}

	if imports := g.collectImports(); len(imports) > 0 {
		for _, imp := range imports {
			g.printf("import %s;\n", quote(imp))
		}
		g.buf.WriteString("\n")
	}

	enums := g.model.Enums()
	if len(enums) > 0 {
		g.generateExtensions()
	}
	for _, e := range enums {
		g.generateEnum(e)
		g.buf.WriteString("\n")
	}

	g.buf.Write(services.Bytes())
	for _, m := range g.messages {
		g.generateMessage(m)
		g.buf.WriteString("\n")
	}
	return append(bytes.TrimRight(g.buf.Bytes(), "\n"), '\n')
}

func (g *Codegen) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *Codegen) collectImports() []string {
	var imports []string
	uses := func(typ string) bool {
		return slices.ContainsFunc(g.messages, func(m message) bool {
			return slices.ContainsFunc(m.fields, func(f field) bool { return strings.HasSuffix(f.typ, typ) })
		})
	}
	if uses(typeAny) {
		imports = append(imports, "google/protobuf/any.proto")
	}
	if len(g.model.Enums()) > 0 {
		imports = append(imports, "google/protobuf/descriptor.proto")
	}
	if g.usesEmpty() {
		imports = append(imports, "google/protobuf/empty.proto")
	}
	return imports
}

func (g *Codegen) usesEmpty() bool {
	for _, s := range g.model.Services() {
		for _, rm := range s.Methods {
			if rm.Returns.IsVoid() {
				return true
			}
		}
		for _, op := range s.Operations {
			if op.OneWay || op.Returns.IsVoid() {
				return true
			}
		}
	}
	return false
}

// ── Qualified name options ──────────────────────────────────────────

func (g *Codegen) generateExtensions() {
	g.buf.WriteString("// Qualified names bound to enum values.\n")
	g.buf.WriteString("extend google.protobuf.EnumValueOptions {\n")
	for i, name := range []string{optNamespace, optLocalPart, optURI} {
		g.printf("  string %s = %d;\n", name, g.config.ExtensionBase+i)
	}
	g.buf.WriteString("}\n\n")
}

// ── Enumeration → enum ──────────────────────────────────────────────

func (g *Codegen) generateEnum(e model.EnumType) {
	name := messageName.Identifier(e.Name)
	prefix := enumPrefix.Identifier(e.Name)
	value := func(v string) string { return prefix + "_" + enumPrefix.Identifier(v) }
	bindings := e.Enum.Bindings()

	codegen.WriteDoc(&g.buf, codegen.Slashes, "", e.Doc)
	g.printf("enum %s {\n", name)

	// proto3 requires a zero first value. The unknown value takes it when
	// declared; otherwise an unspecified value is added.
	if unknown, ok := e.Enum.Unknown(); ok {
		g.printf("  %s = 0;\n", value(unknown))
	} else {
		zero := prefix + "_UNSPECIFIED"
		for slices.ContainsFunc(bindings, func(b qname.Binding) bool { return value(b.Value) == zero }) {
			zero += "_"
		}
		g.printf("  %s = 0;\n", zero)
	}

	n := 1
	for _, b := range bindings {
		if b.Unknown {
			continue
		}
		var opts string
		if e.Enum.Base() == qname.BaseURI {
			opts = fmt.Sprintf("(%s) = %s", optURI, quote(b.URI()))
		} else {
			opts = fmt.Sprintf("(%s) = %s, (%s) = %s",
				optNamespace, quote(b.QName.Namespace), optLocalPart, quote(b.QName.Local))
		}
		g.printf("  %s = %d [%s];\n", value(b.Value), n, opts)
		n++
	}
	g.buf.WriteString("}\n")
}

// ── Service → service and messages ──────────────────────────────────

func (g *Codegen) generateService(w *bytes.Buffer, s model.Service) {
	svc := messageName.Identifier(s.Name)
	codegen.WriteDoc(w, codegen.Slashes, "", s.Doc)
	fmt.Fprintf(w, "service %s {\n", svc)

	for _, rm := range s.Methods {
		rpc := messageName.Identifier(rm.Name)
		doc := rm.Verb + " " + rm.Path
		if rm.Doc != "" {
			doc += "\n\n" + strings.TrimSpace(rm.Doc)
		}
		codegen.WriteDoc(w, codegen.Slashes, "  ", doc)
		req := g.request(svc+rpc, rm.Parameters)
		resp := g.response(svc+rpc, rm.Returns)
		fmt.Fprintf(w, "  rpc %s(%s) returns (%s);\n", rpc, req, resp)
	}

	for _, op := range s.Operations {
		rpc := messageName.Identifier(op.Name)
		var doc []string
		if op.Doc != "" {
			doc = append(doc, strings.TrimSpace(op.Doc))
		}
		if op.OneWay {
			doc = append(doc, "One-way: no response is sent.")
		}
		if len(op.Faults) > 0 {
			doc = append(doc, "Faults: "+strings.Join(op.Faults, ", ")+".")
		}
		codegen.WriteDoc(w, codegen.Slashes, "  ", strings.Join(doc, "\n"))
		req := g.request(svc+rpc, op.Parameters)
		resp := typeEmpty
		if !op.OneWay {
			resp = g.response(svc+rpc, op.Returns)
		}
		fmt.Fprintf(w, "  rpc %s(%s) returns (%s);\n", rpc, req, resp)
	}
	w.WriteString("}\n\n")
}

func (g *Codegen) request(prefix string, params []model.Parameter) string {
	m := message{name: prefix + "Request"}
	for _, p := range params {
		doc := strings.TrimSpace(p.Doc)
		if p.Kind != "" && p.Kind != model.ParamPath {
			if doc == "" {
				doc = string(p.Kind)
			} else {
				doc += " (" + string(p.Kind) + ")"
			}
		}
		m.fields = append(m.fields, field{typ: g.protoType(p.Type), name: fieldName.Identifier(p.Name), doc: doc})
	}
	g.messages = append(g.messages, m)
	return m.name
}

func (g *Codegen) response(prefix string, returns model.TypeRef) string {
	if returns.IsVoid() {
		return typeEmpty
	}
	m := message{name: prefix + "Response"}
	var doc string
	if returns.Kind == model.KindReference {
		doc = returns.String()
	}
	m.fields = append(m.fields, field{typ: g.protoType(returns), name: "result", doc: doc})
	g.messages = append(g.messages, m)
	return m.name
}

func (g *Codegen) generateMessage(m message) {
	g.printf("message %s {\n", m.name)
	for i, f := range m.fields {
		codegen.WriteDoc(&g.buf, codegen.Slashes, "  ", f.doc)
		g.printf("  %s %s = %d;\n", f.typ, f.name, i+1)
	}
	g.buf.WriteString("}\n")
}

// protoType maps a type reference to a proto3 field type. Types the model
// does not describe travel as google.protobuf.Any.
func (g *Codegen) protoType(t model.TypeRef) string {
	var typ string
	switch t.Kind {
	case model.KindEnum:
		typ = messageName.Identifier(t.Name)
	case model.KindBase:
		typ = baseType(t.Name)
	default:
		typ = typeAny
	}
	if t.Array {
		return "repeated " + typ
	}
	return typ
}

func baseType(name string) string {
	switch name {
	case typehint.TypeInteger:
		return "int32"
	case typehint.TypeLong:
		return "int64"
	case typehint.TypeBoolean:
		return "bool"
	case typehint.TypeBinary:
		return "bytes"
	case typehint.TypeAny:
		return typeAny
	default:
		// Decimals stay strings to keep their precision.
		return "string"
	}
}
