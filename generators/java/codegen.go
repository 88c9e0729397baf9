// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package java generates Java sources from the contract model: one enum
// per qualified-name enum and one client class per service.
package java

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/internal/codegen"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
	"github.com/albertocavalcante/contractgen/qname"
)

var (
	className = naming.Java.With(naming.Camel)
	constName = naming.Java.With(naming.ScreamingSnake)
	ident     = naming.Java.Identifier
	quote     = codegen.JavaQuote
)

const indent = "    "

// Codegen generates Java source from the contract model.
type Codegen struct {
	model  *model.ContractModel
	config Config
}

// New creates a new Java Codegen.
func New(m *model.ContractModel, cfg Config) *Codegen {
	return &Codegen{model: m, config: cfg}
}

// Generate returns one compilation unit per enum and service.
func (g *Codegen) Generate() *generator.Output {
	out := generator.NewOutput()
	for _, e := range g.model.Enums() {
		name := className.Identifier(e.Name)
		out.Add(g.config.dir()+"/"+name+".java", g.generateEnum(name, e))
	}
	for _, s := range g.model.Services() {
		name := className.Identifier(s.Name) + "Client"
		out.Add(g.config.dir()+"/"+name+".java", g.generateClient(name, s))
	}
	return out
}

func (g *Codegen) begin(buf *bytes.Buffer, imports ...string) {
	buf.WriteString(codegen.Header(codegen.Slashes, g.config.Source))
	fmt.Fprintf(buf, "package %s;\n\n", g.config.Package)
	if len(imports) > 0 {
		slices.Sort(imports)
		for _, imp := range imports {
			fmt.Fprintf(buf, "import %s;\n", imp)
		}
		buf.WriteString("\n")
	}
}

// ── Enumeration → enum ──────────────────────────────────────────────

func (g *Codegen) generateEnum(name string, e model.EnumType) []byte {
	var buf bytes.Buffer
	w := func(format string, args ...any) { fmt.Fprintf(&buf, format, args...) }

	g.begin(&buf, "javax.xml.namespace.QName")
	bindings := e.Enum.Bindings()
	unknown, hasUnknown := e.Enum.Unknown()

	codegen.WriteDoc(&buf, codegen.DocBlock, "", e.Doc)
	w("public enum %s {\n", name)
	for i, b := range bindings {
		sep := ","
		if i == len(bindings)-1 {
			sep = ";"
		}
		if b.Unknown {
			w("%s%s(null, null, null)%s\n", indent, constName.Identifier(b.Value), sep)
			continue
		}
		w("%s%s(%s, %s, %s)%s\n", indent, constName.Identifier(b.Value),
			quote(b.QName.Namespace), quote(b.QName.Local), quote(b.URI()), sep)
	}
	buf.WriteString("\n")

	w("%sprivate final String namespace;\n", indent)
	w("%sprivate final String localPart;\n", indent)
	w("%sprivate final String uri;\n\n", indent)

	w("%s%s(String namespace, String localPart, String uri) {\n", indent, name)
	w("%s%sthis.namespace = namespace;\n", indent, indent)
	w("%s%sthis.localPart = localPart;\n", indent, indent)
	w("%s%sthis.uri = uri;\n", indent, indent)
	w("%s}\n\n", indent)

	w("%s/** Returns the qualified name of this value, or null if it has none. */\n", indent)
	w("%spublic QName toQName() {\n", indent)
	w("%s%sreturn localPart == null ? null : new QName(namespace, localPart);\n", indent, indent)
	w("%s}\n\n", indent)

	w("%s/** Returns the URI of this value, or null if it has none. */\n", indent)
	w("%spublic String toURI() {\n", indent)
	w("%s%sreturn uri;\n", indent, indent)
	w("%s}\n\n", indent)

	fallback := "null"
	if hasUnknown {
		fallback = constName.Identifier(unknown)
	}
	if e.Enum.Base() == qname.BaseURI {
		w("%s/** Returns the value bound to uri. */\n", indent)
		w("%spublic static %s fromURI(String uri) {\n", indent, name)
		w("%s%sfor (%s value : values()) {\n", indent, indent, name)
		w("%s%s%sif (value.uri != null && value.uri.equals(uri)) {\n", indent, indent, indent)
	} else {
		w("%s/** Returns the value bound to qname. */\n", indent)
		w("%spublic static %s fromQName(QName qname) {\n", indent, name)
		w("%s%sfor (%s value : values()) {\n", indent, indent, name)
		w("%s%s%sif (value.localPart != null && value.namespace.equals(qname.getNamespaceURI())\n", indent, indent, indent)
		w("%s%s%s%s%s&& value.localPart.equals(qname.getLocalPart())) {\n", indent, indent, indent, indent, indent)
	}
	w("%s%s%s%sreturn value;\n", indent, indent, indent, indent)
	w("%s%s%s}\n", indent, indent, indent)
	w("%s%s}\n", indent, indent)
	w("%s%sreturn %s;\n", indent, indent, fallback)
	w("%s}\n}\n", indent)
	return buf.Bytes()
}

// ── Service → client class ──────────────────────────────────────────

func (g *Codegen) generateClient(name string, s model.Service) []byte {
	var buf bytes.Buffer
	w := func(format string, args ...any) { fmt.Fprintf(&buf, format, args...) }

	encodes := slices.ContainsFunc(s.Methods, func(rm model.ResourceMethod) bool {
		return len(rm.PathParams) > 0
	})
	var imports []string
	if len(s.Methods) > 0 {
		imports = append(imports, "java.net.URI")
	}
	if encodes {
		imports = append(imports, "java.net.URLEncoder", "java.nio.charset.StandardCharsets")
	}
	g.begin(&buf, imports...)

	codegen.WriteDoc(&buf, codegen.DocBlock, "", s.Doc)
	w("public final class %s {\n", name)
	if s.Namespace != "" {
		w("%spublic static final String NAMESPACE = %s;\n", indent, quote(s.Namespace))
	}
	for _, op := range s.Operations {
		w("%spublic static final String %s_OPERATION = %s;\n", indent, constName.Identifier(op.Name), quote(op.SourceName))
	}
	for _, rm := range s.Methods {
		c := constName.Identifier(rm.Name)
		w("%spublic static final String %s_METHOD = %s;\n", indent, c, quote(rm.Verb))
		w("%spublic static final String %s_PATH = %s;\n", indent, c, quote(rm.Path))
	}
	buf.WriteString("\n")

	if len(s.Methods) == 0 {
		w("%sprivate %s() {}\n}\n", indent, name)
		return buf.Bytes()
	}

	w("%sprivate final String baseUrl;\n\n", indent)
	w("%spublic %s(String baseUrl) {\n", indent, name)
	w("%s%sthis.baseUrl = baseUrl.replaceAll(\"/+$\", \"\");\n", indent, indent)
	w("%s}\n", indent)

	for _, rm := range s.Methods {
		params := codegen.PathParams(rm.Path, ident)
		decl := make([]string, len(params))
		for i, p := range params {
			decl[i] = "String " + p
		}
		pathFn := ident(rm.Name + "_path")

		var doc strings.Builder
		if rm.Doc != "" {
			doc.WriteString(strings.TrimSpace(rm.Doc))
			doc.WriteString("\n\n<p>")
		}
		fmt.Fprintf(&doc, "%s %s", rm.Verb, rm.Path)
		buf.WriteString("\n")
		codegen.WriteDoc(&buf, codegen.DocBlock, indent, doc.String())
		w("%spublic static String %s(%s) {\n", indent, pathFn, strings.Join(decl, ", "))
		expr := codegen.Concat(rm.Path, quote, func(p string) string {
			return "encode(" + ident(p) + ")"
		}, " + ")
		w("%s%sreturn %s;\n", indent, indent, expr)
		w("%s}\n\n", indent)

		w("%s/** Returns the absolute URI of %s. */\n", indent, rm.Name)
		w("%spublic URI %s(%s) {\n", indent, ident(rm.Name+"_uri"), strings.Join(decl, ", "))
		w("%s%sreturn URI.create(baseUrl + %s(%s));\n", indent, indent, pathFn, strings.Join(params, ", "))
		w("%s}\n", indent)
	}

	if encodes {
		buf.WriteString("\n")
		w("%sprivate static String encode(String value) {\n", indent)
		w("%s%sreturn URLEncoder.encode(value, StandardCharsets.UTF_8).replace(\"+\", \"%%20\");\n", indent, indent)
		w("%s}\n", indent)
	}
	buf.WriteString("}\n")
	return buf.Bytes()
}
