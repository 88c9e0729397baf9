// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package kotlin generates Kotlin source code from the contract model.
//
// The generated code uses idiomatic Kotlin patterns:
//   - enum class carrying each value's namespace, local part and URI
//   - companion object lookups by URI or by javax.xml.namespace.QName
//   - kotlinx.serialization @SerialName so values serialize as declared
//   - one object per service with constants and path builder functions
package kotlin

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/contractgen/internal/codegen"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
	"github.com/albertocavalcante/contractgen/qname"
)

var (
	typeName  = naming.Kotlin.With(naming.Camel)
	constName = naming.Kotlin.With(naming.ScreamingSnake)
	fieldName = naming.Kotlin.Identifier
	quote     = codegen.KotlinQuote
)

const indent = "    "

// Codegen generates Kotlin source from the contract model.
type Codegen struct {
	model  *model.ContractModel
	config Config
	buf    bytes.Buffer
}

// New creates a new Kotlin Codegen.
func New(m *model.ContractModel, cfg Config) *Codegen {
	return &Codegen{model: m, config: cfg}
}

// Generate returns the Kotlin source file.
func (g *Codegen) Generate() []byte {
	g.buf.WriteString(codegen.Header(codegen.Slashes, g.config.Source))
	g.printf("package %s\n\n", g.config.PackageName)

	if imports := g.collectImports(); len(imports) > 0 {
		for _, imp := range imports {
			g.printf("import %s\n", imp)
		}
		g.buf.WriteString("\n")
	}

	for _, e := range g.model.Enums() {
		g.generateEnum(e)
		g.buf.WriteString("\n")
	}
	for _, s := range g.model.Services() {
		g.generateService(s)
		g.buf.WriteString("\n")
	}
	return append(bytes.TrimRight(g.buf.Bytes(), "\n"), '\n')
}

func (g *Codegen) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *Codegen) collectImports() []string {
	var imports []string
	enums := g.model.Enums()
	if len(enums) > 0 {
		imports = append(imports, "javax.xml.namespace.QName")
		if g.config.Serialization {
			imports = append(imports,
				"kotlinx.serialization.SerialName",
				"kotlinx.serialization.Serializable",
			)
		}
	}
	for _, s := range g.model.Services() {
		if slices.ContainsFunc(s.Methods, func(rm model.ResourceMethod) bool { return len(rm.PathParams) > 0 }) {
			imports = append(imports, "java.net.URLEncoder")
			break
		}
	}
	slices.Sort(imports)
	return imports
}

// ── Enumeration → enum class ────────────────────────────────────────

func (g *Codegen) generateEnum(e model.EnumType) {
	name := typeName.Identifier(e.Name)
	bindings := e.Enum.Bindings()
	unknown, hasUnknown := e.Enum.Unknown()

	codegen.WriteDoc(&g.buf, codegen.DocBlock, "", e.Doc)
	if g.config.Serialization {
		g.buf.WriteString("@Serializable\n")
	}
	g.printf("enum class %s(\n", name)
	g.printf("%sval namespace: String?,\n%sval localPart: String?,\n%sval uri: String?,\n) {\n", indent, indent, indent)
	for i, b := range bindings {
		if g.config.Serialization {
			g.printf("%s@SerialName(%s)\n", indent, quote(b.Value))
		}
		args := "null, null, null"
		if !b.Unknown {
			args = fmt.Sprintf("%s, %s, %s", quote(b.QName.Namespace), quote(b.QName.Local), quote(b.URI()))
		}
		sep := ","
		if i == len(bindings)-1 {
			sep = ";"
		}
		g.printf("%s%s(%s)%s\n", indent, constName.Identifier(b.Value), args, sep)
	}

	g.buf.WriteString("\n")
	g.printf("%s/** The qualified name bound to this value, or null. */\n", indent)
	g.printf("%sfun toQName(): QName? =\n", indent)
	g.printf("%s%sif (namespace == null || localPart == null) null else QName(namespace, localPart)\n", indent, indent)

	ret, fallback := name+"?", ""
	if hasUnknown {
		ret, fallback = name, " ?: "+constName.Identifier(unknown)
	}

	g.buf.WriteString("\n")
	g.printf("%scompanion object {\n", indent)
	in2 := indent + indent
	if e.Enum.Base() == qname.BaseURI {
		g.printf("%s/** Returns the value bound to [uri]. */\n", in2)
		g.printf("%sfun fromURI(uri: String): %s =\n", in2, ret)
		g.printf("%s%sentries.firstOrNull { it.uri == uri }%s\n", in2, indent, fallback)
	} else {
		g.printf("%s/** Returns the value bound to [name]. */\n", in2)
		g.printf("%sfun fromQName(name: QName): %s =\n", in2, ret)
		g.printf("%s%sentries.firstOrNull { it.namespace == name.namespaceURI && it.localPart == name.localPart }%s\n", in2, indent, fallback)
	}
	g.printf("%s}\n}\n", indent)
}

// ── Service → object ────────────────────────────────────────────────

func (g *Codegen) generateService(s model.Service) {
	codegen.WriteDoc(&g.buf, codegen.DocBlock, "", s.Doc)
	g.printf("object %sApi {\n", typeName.Identifier(s.Name))

	var sections []string
	if s.Namespace != "" || len(s.Operations) > 0 {
		var b strings.Builder
		if s.Namespace != "" {
			fmt.Fprintf(&b, "%sconst val NAMESPACE = %s\n", indent, quote(s.Namespace))
		}
		for _, op := range s.Operations {
			if op.OneWay {
				fmt.Fprintf(&b, "%s/** One-way: no response is sent. */\n", indent)
			}
			fmt.Fprintf(&b, "%sconst val %s_OPERATION = %s\n", indent, constName.Identifier(op.Name), quote(op.SourceName))
		}
		sections = append(sections, b.String())
	}

	escape := false
	for _, rm := range s.Methods {
		sections = append(sections, g.method(rm))
		escape = escape || len(rm.PathParams) > 0
	}
	if escape {
		sections = append(sections, indent+"private fun encode(value: String): String =\n"+
			indent+indent+"URLEncoder.encode(value, Charsets.UTF_8).replace(\"+\", \"%20\")\n")
	}

	g.buf.WriteString(strings.Join(sections, "\n"))
	g.buf.WriteString("}\n")
}

func (g *Codegen) method(rm model.ResourceMethod) string {
	var b bytes.Buffer
	prefix := constName.Identifier(rm.Name)
	fmt.Fprintf(&b, "%sconst val %s_METHOD = %s\n", indent, prefix, quote(rm.Verb))
	fmt.Fprintf(&b, "%sconst val %s_PATH = %s\n", indent, prefix, quote(rm.Path))
	fmt.Fprintf(&b, "%sconst val %s_SERVLET_PATTERN = %s\n", indent, prefix, quote(rm.ServletPattern))
	b.WriteString("\n")

	params := codegen.PathParams(rm.Path, fieldName)
	codegen.WriteDoc(&b, codegen.DocBlock, indent, rm.Doc)
	decl := make([]string, len(params))
	for i, p := range params {
		decl[i] = p + ": String"
	}
	fn := fieldName(rm.Name + "_path")
	if len(params) == 0 {
		fmt.Fprintf(&b, "%sfun %s(): String = %s_PATH\n", indent, fn, prefix)
		return b.String()
	}
	expr := codegen.Concat(rm.Path, quote, func(p string) string {
		return "encode(" + fieldName(p) + ")"
	}, " + ")
	fmt.Fprintf(&b, "%sfun %s(%s): String =\n%s%s%s\n", indent, fn, strings.Join(decl, ", "), indent, indent, expr)
	return b.String()
}
