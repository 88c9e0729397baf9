// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package javascript generates an ES module from the contract model.
//
// Enums become plain objects with lookup functions. Each service with
// resource methods becomes a client class whose methods call fetch; the
// fetch implementation is injectable for tests and non-browser runtimes.
package javascript

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
	className = naming.JavaScript.With(naming.Camel)
	constName = naming.JavaScript.With(naming.ScreamingSnake)
	ident     = naming.JavaScript.Identifier
	quote     = codegen.JavaQuote
)

// Codegen generates JavaScript source from the contract model.
type Codegen struct {
	model  *model.ContractModel
	config Config
	buf    bytes.Buffer
}

// New creates a new JavaScript Codegen.
func New(m *model.ContractModel, cfg Config) *Codegen {
	return &Codegen{model: m, config: cfg}
}

// Generate returns the module source.
func (g *Codegen) Generate() []byte {
	g.buf.WriteString(codegen.Header(codegen.Slashes, g.config.Source))

	for _, e := range g.model.Enums() {
		g.generateEnum(e)
	}
	for _, s := range g.model.Services() {
		if len(s.Operations) > 0 {
			g.generateOperations(s)
		}
		if len(s.Methods) > 0 {
			g.generateClient(s)
		}
	}
	return append(bytes.TrimRight(g.buf.Bytes(), "\n"), '\n')
}

func (g *Codegen) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *Codegen) freeze(expr string) string {
	if g.config.Options.FreezeEnums {
		return "Object.freeze(" + expr + ")"
	}
	return expr
}

// ── Enumeration → object + lookups ──────────────────────────────────

func (g *Codegen) generateEnum(e model.EnumType) {
	typ := className.Identifier(e.Name)
	table := naming.Decapitalize(typ) + "Bindings"
	bindings := e.Enum.Bindings()
	unknown, hasUnknown := e.Enum.Unknown()

	doc := strings.TrimSpace(e.Doc + "\n@readonly\n@enum {string}")
	codegen.WriteDoc(&g.buf, codegen.DocBlock, "", doc)
	var body strings.Builder
	body.WriteString("{\n")
	for _, b := range bindings {
		fmt.Fprintf(&body, "  %s: %s,\n", constName.Identifier(b.Value), quote(b.Value))
	}
	body.WriteString("}")
	g.printf("export const %s = %s;\n\n", typ, g.freeze(body.String()))

	fallback := "undefined"
	if hasUnknown {
		fallback = typ + "." + constName.Identifier(unknown)
	}

	isURI := e.Enum.Base() == qname.BaseURI
	g.printf("const %s = new Map([\n", table)
	for _, b := range bindings {
		if b.Unknown {
			continue
		}
		if isURI {
			g.printf("  [%s.%s, %s],\n", typ, constName.Identifier(b.Value), quote(b.URI()))
		} else {
			g.printf("  [%s.%s, { namespace: %s, localPart: %s }],\n", typ, constName.Identifier(b.Value),
				quote(b.QName.Namespace), quote(b.QName.Local))
		}
	}
	g.buf.WriteString("]);\n\n")

	fn := naming.Decapitalize(typ)
	if isURI {
		g.printf("/** Returns the URI of value, or undefined if it has none. */\n")
		g.printf("export function %sToURI(value) {\n  return %s.get(value);\n}\n\n", fn, table)
		g.printf("/** Returns the value bound to uri. */\n")
		g.printf("export function %sFromURI(uri) {\n", fn)
		g.printf("  for (const [value, bound] of %s) {\n", table)
		g.printf("    if (bound === uri) return value;\n  }\n")
	} else {
		g.printf("/** Returns { namespace, localPart } of value, or undefined if it has none. */\n")
		g.printf("export function %sToQName(value) {\n  return %s.get(value);\n}\n\n", fn, table)
		g.printf("/** Returns the value bound to {namespace}localPart. */\n")
		g.printf("export function %sFromQName(namespace, localPart) {\n", fn)
		g.printf("  for (const [value, bound] of %s) {\n", table)
		g.printf("    if (bound.namespace === namespace && bound.localPart === localPart) return value;\n  }\n")
	}
	g.printf("  return %s;\n}\n\n", fallback)
}

// ── Service operations → frozen name table ──────────────────────────

func (g *Codegen) generateOperations(s model.Service) {
	codegen.WriteDoc(&g.buf, codegen.DocBlock, "", s.Doc)
	var body strings.Builder
	body.WriteString("{\n")
	if s.Namespace != "" {
		fmt.Fprintf(&body, "  namespace: %s,\n", quote(s.Namespace))
	}
	for _, op := range s.Operations {
		fmt.Fprintf(&body, "  %s: %s,\n", ident(op.Name), quote(op.SourceName))
	}
	body.WriteString("}")
	g.printf("export const %sOperations = Object.freeze(%s);\n\n", className.Identifier(s.Name), body.String())
}

// ── Service → fetch client ──────────────────────────────────────────

func (g *Codegen) generateClient(s model.Service) {
	name := className.Identifier(s.Name) + "Client"

	codegen.WriteDoc(&g.buf, codegen.DocBlock, "", s.Doc)
	g.printf("export class %s {\n", name)
	g.buf.WriteString("  /**\n   * @param {string} baseURL\n   * @param {typeof fetch} [fetchImpl]\n   */\n")
	g.buf.WriteString("  constructor(baseURL, fetchImpl = globalThis.fetch) {\n")
	g.buf.WriteString("    this.baseURL = baseURL.replace(/\\/+$/, \"\");\n")
	g.buf.WriteString("    this.fetch = fetchImpl;\n  }\n")

	for _, rm := range s.Methods {
		g.buf.WriteString("\n")
		g.generatePathMethod(rm)
		g.buf.WriteString("\n")
		g.generateCall(name, rm)
	}
	g.buf.WriteString("}\n\n")
}

func (g *Codegen) generatePathMethod(rm model.ResourceMethod) {
	params := codegen.PathParams(rm.Path, ident)
	g.printf("  /** %s %s */\n", rm.Verb, rm.Path)
	g.printf("  static %s(%s) {\n", ident(rm.Name+"_path"), strings.Join(params, ", "))
	expr := codegen.Concat(rm.Path, quote, func(p string) string {
		return "encodeURIComponent(" + ident(p) + ")"
	}, " + ")
	g.printf("    return %s;\n  }\n", expr)
}

func (g *Codegen) generateCall(client string, rm model.ResourceMethod) {
	pathParams := codegen.PathParams(rm.Path, ident)
	var query, headers, form []model.Parameter
	for _, p := range rm.Parameters {
		switch p.Kind {
		case model.ParamQuery:
			query = append(query, p)
		case model.ParamHeader:
			headers = append(headers, p)
		case model.ParamForm:
			form = append(form, p)
		}
	}
	hasOptions := len(query)+len(headers)+len(form) > 0

	var doc strings.Builder
	if rm.Doc != "" {
		doc.WriteString(strings.TrimSpace(rm.Doc))
		doc.WriteString("\n")
	}
	for _, p := range pathParams {
		fmt.Fprintf(&doc, "@param {string} %s\n", p)
	}
	if hasOptions {
		doc.WriteString("@param {object} [options]\n")
	}
	fmt.Fprintf(&doc, "@returns {Promise<%s>}", jsDocType(rm.Returns))
	codegen.WriteDoc(&g.buf, codegen.DocBlock, "  ", doc.String())

	args := slices.Clone(pathParams)
	if hasOptions {
		args = append(args, "options = {}")
	}
	g.printf("  async %s(%s) {\n", ident(rm.Name), strings.Join(args, ", "))
	g.printf("    const url = new URL(this.baseURL + %s.%s(%s));\n", client, ident(rm.Name+"_path"), strings.Join(pathParams, ", "))
	for _, p := range query {
		g.printf("    if (options.%s !== undefined) url.searchParams.set(%s, String(options.%s));\n", ident(p.Name), quote(p.SourceName), ident(p.Name))
	}
	g.buf.WriteString("    const headers = {};\n")
	for _, p := range headers {
		g.printf("    if (options.%s !== undefined) headers[%s] = String(options.%s);\n", ident(p.Name), quote(p.SourceName), ident(p.Name))
	}
	init := fmt.Sprintf("{ method: %s, headers }", quote(rm.Verb))
	if len(form) > 0 {
		g.buf.WriteString("    const body = new URLSearchParams();\n")
		for _, p := range form {
			g.printf("    if (options.%s !== undefined) body.set(%s, String(options.%s));\n", ident(p.Name), quote(p.SourceName), ident(p.Name))
		}
		init = fmt.Sprintf("{ method: %s, headers, body }", quote(rm.Verb))
	}
	g.printf("    const response = await this.fetch(url, %s);\n", init)
	g.buf.WriteString("    if (!response.ok) {\n")
	g.printf("      throw new Error(`%s ${url}: ${response.status}`);\n    }\n", rm.Verb)
	switch {
	case rm.Returns.IsVoid():
		g.buf.WriteString("    return undefined;\n")
	case producesJSON(rm.Produces):
		g.buf.WriteString("    return response.json();\n")
	default:
		g.buf.WriteString("    return response.text();\n")
	}
	g.buf.WriteString("  }\n")
}

func producesJSON(types []string) bool {
	if len(types) == 0 {
		return true
	}
	return slices.ContainsFunc(types, func(t string) bool { return strings.Contains(t, "json") })
}

func jsDocType(t model.TypeRef) string {
	if t.IsVoid() {
		return "void"
	}
	name := t.Name
	switch t.Kind {
	case model.KindBase:
		name = baseType(t.Name)
	case model.KindEnum:
		name = "string"
	}
	if t.Array {
		return name + "[]"
	}
	return name
}

func baseType(name string) string {
	switch {
	case typehint.IsStringLike(name):
		return "string"
	case typehint.IsNumeric(name):
		return "number"
	case name == typehint.TypeBoolean:
		return "boolean"
	case name == typehint.TypeBinary:
		return "Blob"
	default:
		return "*"
	}
}
