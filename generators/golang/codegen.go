// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package golang generates a Go package from the contract model.
//
// Enums become string types with constants and lookups keyed by URI or
// by [encoding/xml.Name]. Resource methods become path builders and
// constructors for [net/http.Request]; operations become name constants.
package golang

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/albertocavalcante/contractgen/internal/codegen"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
	"github.com/albertocavalcante/contractgen/qname"
)

var (
	exported = naming.Go.With(naming.Camel)
	param    = naming.Go.Identifier
)

// Generator produces Go code from a contract model.
type Generator struct {
	model  *model.ContractModel
	config Config
	buf    bytes.Buffer
}

// New creates a new Generator.
func New(m *model.ContractModel, cfg Config) *Generator {
	return &Generator{model: m, config: cfg}
}

// Generate returns the formatted source file.
func (g *Generator) Generate() ([]byte, error) {
	g.buf.WriteString(codegen.Header(codegen.Slashes, g.config.Source))
	g.printf("package %s\n\n", g.config.PackageName)
	g.writeImports()

	for _, e := range g.model.Enums() {
		g.generateEnum(e)
	}
	for _, s := range g.model.Services() {
		g.generateService(s)
	}

	out, err := format.Source(g.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("go: format generated source: %w", err)
	}
	return out, nil
}

func (g *Generator) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

// writeImports imports only the packages the generated code refers to.
func (g *Generator) writeImports() {
	var needXML, needHTTP, needEscape bool
	for _, e := range g.model.Enums() {
		if e.Enum.Base() == qname.BaseQName {
			needXML = true
		}
	}
	for _, s := range g.model.Services() {
		for _, rm := range s.Methods {
			needHTTP = true
			if len(rm.PathParams) > 0 {
				needEscape = true
			}
		}
	}

	var imports []string
	if needHTTP {
		imports = append(imports, "context")
	}
	if needXML {
		imports = append(imports, "encoding/xml")
	}
	if needHTTP {
		imports = append(imports, "net/http")
	}
	if needEscape {
		imports = append(imports, "net/url")
	}
	if needHTTP {
		imports = append(imports, "strings")
	}

	switch len(imports) {
	case 0:
	case 1:
		g.printf("import %q\n\n", imports[0])
	default:
		g.buf.WriteString("import (\n")
		for _, imp := range imports {
			g.printf("\t%q\n", imp)
		}
		g.buf.WriteString(")\n\n")
	}
}

// ── Enumeration → string type ───────────────────────────────────────

func (g *Generator) generateEnum(e model.EnumType) {
	typ := exported.Identifier(e.Name)
	bindings := e.Enum.Bindings()
	unknown, hasUnknown := e.Enum.Unknown()
	value := func(v string) string { return typ + exported.Identifier(v) }

	codegen.WriteDoc(&g.buf, codegen.Slashes, "", e.Doc)
	g.printf("type %s string\n\n", typ)
	g.buf.WriteString("const (\n")
	for _, b := range bindings {
		g.printf("\t%s %s = %s\n", value(b.Value), typ, strconv.Quote(b.Value))
	}
	g.buf.WriteString(")\n\n")

	fallback := `""`
	if hasUnknown {
		fallback = value(unknown)
	}

	const recv = "e"
	table := naming.Decapitalize(typ)
	if e.Enum.Base() == qname.BaseURI {
		table += "URIs"
		g.printf("var %s = map[%s]string{\n", table, typ)
		for _, b := range bindings {
			if !b.Unknown {
				g.printf("\t%s: %s,\n", value(b.Value), strconv.Quote(b.URI()))
			}
		}
		g.buf.WriteString("}\n\n")

		g.printf("// URI returns the URI bound to %s.\n", recv)
		g.printf("func (%s %s) URI() (string, bool) {\n\turi, ok := %s[%s]\n\treturn uri, ok\n}\n\n", recv, typ, table, recv)
		g.printf("// %sFromURI returns the value bound to uri.", typ)
		if hasUnknown {
			g.printf(" Unbound URIs yield %s.", fallback)
		}
		g.buf.WriteString("\n")
		g.printf("func %sFromURI(uri string) (%s, bool) {\n", typ, typ)
		g.printf("\tfor v, u := range %s {\n\t\tif u == uri {\n\t\t\treturn v, true\n\t\t}\n\t}\n", table)
	} else {
		table += "QNames"
		g.printf("var %s = map[%s]xml.Name{\n", table, typ)
		for _, b := range bindings {
			if !b.Unknown {
				g.printf("\t%s: {Space: %s, Local: %s},\n", value(b.Value), strconv.Quote(b.QName.Namespace), strconv.Quote(b.QName.Local))
			}
		}
		g.buf.WriteString("}\n\n")

		g.printf("// QName returns the qualified name bound to %s.\n", recv)
		g.printf("func (%s %s) QName() (xml.Name, bool) {\n\tname, ok := %s[%s]\n\treturn name, ok\n}\n\n", recv, typ, table, recv)
		g.printf("// %sFromQName returns the value bound to name.", typ)
		if hasUnknown {
			g.printf(" Unbound names yield %s.", fallback)
		}
		g.buf.WriteString("\n")
		g.printf("func %sFromQName(name xml.Name) (%s, bool) {\n", typ, typ)
		g.printf("\tfor v, n := range %s {\n\t\tif n == name {\n\t\t\treturn v, true\n\t\t}\n\t}\n", table)
	}
	g.printf("\treturn %s, %t\n}\n\n", fallback, hasUnknown)
}

// ── Service → constants, path builders, request constructors ────────

func (g *Generator) generateService(s model.Service) {
	svc := exported.Identifier(s.Name)

	if s.Namespace != "" || len(s.Operations) > 0 {
		codegen.WriteDoc(&g.buf, codegen.Slashes, "", s.Doc)
		g.buf.WriteString("const (\n")
		if s.Namespace != "" {
			g.printf("\t%sNamespace = %s\n", svc, strconv.Quote(s.Namespace))
		}
		for _, op := range s.Operations {
			if op.OneWay {
				g.buf.WriteString("\t// One-way: no response is sent.\n")
			}
			g.printf("\t%s%sOperation = %s\n", svc, exported.Identifier(op.Name), strconv.Quote(op.SourceName))
		}
		g.buf.WriteString(")\n\n")
	}

	for _, rm := range s.Methods {
		g.generateMethod(svc, rm)
	}
}

func (g *Generator) generateMethod(svc string, rm model.ResourceMethod) {
	name := svc + exported.Identifier(rm.Name)
	params := codegen.PathParams(rm.Path, param)

	g.buf.WriteString("const (\n")
	g.printf("\t%sMethod = %s\n", name, strconv.Quote(rm.Verb))
	g.printf("\t%sPath = %s\n", name, strconv.Quote(rm.Path))
	g.printf("\t%sServletPattern = %s\n", name, strconv.Quote(rm.ServletPattern))
	g.buf.WriteString(")\n\n")

	g.printf("// %sURLPath expands %sPath with escaped path parameters.\n", name, name)
	args := ""
	if len(params) > 0 {
		args = strings.Join(params, ", ") + " string"
	}
	g.printf("func %sURLPath(%s) string {\n", name, args)
	if len(params) == 0 {
		g.printf("\treturn %sPath\n}\n\n", name)
	} else {
		expr := codegen.Concat(rm.Path, strconv.Quote, func(p string) string {
			return "url.PathEscape(" + param(p) + ")"
		}, " + ")
		g.printf("\treturn %s\n}\n\n", expr)
	}

	var doc strings.Builder
	fmt.Fprintf(&doc, "New%sRequest builds the %s request for %sPath on baseURL.", name, rm.Verb, name)
	if rm.Doc != "" {
		fmt.Fprintf(&doc, "\n\n%s", strings.TrimSpace(rm.Doc))
	}
	var extra []string
	for _, p := range rm.Parameters {
		if p.Kind != model.ParamPath {
			extra = append(extra, fmt.Sprintf("%s (%s)", p.SourceName, p.Kind))
		}
	}
	if len(extra) > 0 {
		fmt.Fprintf(&doc, "\n\nOther parameters: %s.", strings.Join(extra, ", "))
	}
	codegen.WriteDoc(&g.buf, codegen.Slashes, "", doc.String())

	sig := "ctx context.Context, baseURL string"
	if len(params) > 0 {
		sig += ", " + args
	}
	g.printf("func New%sRequest(%s) (*http.Request, error) {\n", name, sig)
	g.printf("\treturn http.NewRequestWithContext(ctx, %sMethod, strings.TrimSuffix(baseURL, \"/\")+%sURLPath(%s), nil)\n}\n\n",
		name, name, strings.Join(params, ", "))
}
