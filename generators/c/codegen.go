// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package c generates a C header from the contract model.
//
// The header is self-contained (static inline functions only) and holds:
//   - one enum per qualified-name enum, with lookup functions in both
//     directions and the unknown value as fallback
//   - path, servlet pattern and parameter count macros per resource method
//   - a snprintf-based path builder per resource method
//   - name and namespace macros per RPC operation
package c

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/contractgen/internal/codegen"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
	"github.com/albertocavalcante/contractgen/pathtmpl"
	"github.com/albertocavalcante/contractgen/qname"
)

// Codegen generates C source from the contract model.
type Codegen struct {
	model  *model.ContractModel
	config Config
}

// New creates a new C Codegen.
func New(m *model.ContractModel, cfg Config) *Codegen {
	return &Codegen{model: m, config: cfg}
}

// Generate produces the header file contents.
func (g *Codegen) Generate() ([]byte, error) {
	if err := g.config.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	guard := naming.CamelToScreamingSnake(naming.Scrub(g.config.Label)) + "_H"

	buf.WriteString(codegen.Header(codegen.Slashes, g.config.Source))
	fmt.Fprintf(&buf, "#ifndef %s\n#define %s\n\n", guard, guard)
	buf.WriteString("#include <stddef.h>\n#include <stdio.h>\n#include <string.h>\n\n")

	for _, e := range g.model.Enums() {
		g.generateEnum(&buf, e)
	}
	for _, s := range g.model.Services() {
		for _, rm := range s.Methods {
			g.generateMethod(&buf, s, rm)
		}
		for _, op := range s.Operations {
			g.generateOperation(&buf, s, op)
		}
	}

	fmt.Fprintf(&buf, "#endif /* %s */\n", guard)
	return buf.Bytes(), nil
}

func (g *Codegen) typeName(e model.EnumType) string {
	return naming.Format(g.config.Options.TypeNamePattern, g.config.token(g.config.Label), e.Name)
}

func (g *Codegen) constName(e model.EnumType, value string) string {
	return naming.Format(g.config.Options.EnumConstantPattern,
		g.config.token(g.config.Label), g.config.token(e.Name), g.config.token(value))
}

// ── Enumeration → enum + lookups ────────────────────────────────────

func (g *Codegen) generateEnum(buf *bytes.Buffer, e model.EnumType) {
	typ := g.typeName(e)
	bindings := e.Enum.Bindings()

	codegen.WriteDoc(buf, codegen.DocBlock, "", e.Doc)
	fmt.Fprintf(buf, "enum %s {\n", typ)
	for i, b := range bindings {
		sep := ","
		if i == len(bindings)-1 {
			sep = ""
		}
		fmt.Fprintf(buf, "  %s%s\n", g.constName(e, b.Value), sep)
	}
	buf.WriteString("};\n\n")

	unknown, hasUnknown := e.Enum.Unknown()

	if e.Enum.Base() == qname.BaseURI {
		fmt.Fprintf(buf, "/* Returns the URI of value, or NULL if it has none. */\n")
		fmt.Fprintf(buf, "static inline const char *%s_toURI(enum %s value) {\n", typ, typ)
		buf.WriteString("  switch (value) {\n")
		for _, b := range bindings {
			if b.Unknown {
				continue
			}
			fmt.Fprintf(buf, "    case %s: return %s;\n", g.constName(e, b.Value), codegen.CQuote(b.URI()))
		}
		buf.WriteString("    default: return NULL;\n  }\n}\n\n")

		fmt.Fprintf(buf, "/* Stores the value bound to uri in *out. Returns 0 if uri is not bound. */\n")
		fmt.Fprintf(buf, "static inline int %s_fromURI(const char *uri, enum %s *out) {\n", typ, typ)
		for _, b := range bindings {
			if b.Unknown {
				continue
			}
			fmt.Fprintf(buf, "  if (strcmp(uri, %s) == 0) { *out = %s; return 1; }\n", codegen.CQuote(b.URI()), g.constName(e, b.Value))
		}
	} else {
		fmt.Fprintf(buf, "/* Stores the qualified name of value. Returns 0 if it has none. */\n")
		fmt.Fprintf(buf, "static inline int %s_toQName(enum %s value, const char **ns, const char **local) {\n", typ, typ)
		buf.WriteString("  switch (value) {\n")
		for _, b := range bindings {
			if b.Unknown {
				continue
			}
			fmt.Fprintf(buf, "    case %s: *ns = %s; *local = %s; return 1;\n",
				g.constName(e, b.Value), codegen.CQuote(b.QName.Namespace), codegen.CQuote(b.QName.Local))
		}
		buf.WriteString("    default: return 0;\n  }\n}\n\n")

		fmt.Fprintf(buf, "/* Stores the value bound to {ns}local in *out. Returns 0 if it is not bound. */\n")
		fmt.Fprintf(buf, "static inline int %s_fromQName(const char *ns, const char *local, enum %s *out) {\n", typ, typ)
		for _, b := range bindings {
			if b.Unknown {
				continue
			}
			fmt.Fprintf(buf, "  if (strcmp(ns, %s) == 0 && strcmp(local, %s) == 0) { *out = %s; return 1; }\n",
				codegen.CQuote(b.QName.Namespace), codegen.CQuote(b.QName.Local), g.constName(e, b.Value))
		}
	}
	if hasUnknown {
		fmt.Fprintf(buf, "  *out = %s;\n  return 1;\n}\n\n", g.constName(e, unknown))
	} else {
		buf.WriteString("  return 0;\n}\n\n")
	}
}

// ── Resource method → macros + path builder ─────────────────────────

func (g *Codegen) macroPrefix(s model.Service, member string) string {
	return naming.Format("%[1]s_%[2]s_%[3]s",
		naming.CamelToScreamingSnake(naming.Scrub(g.config.Label)),
		naming.CamelToScreamingSnake(s.Name),
		naming.CamelToScreamingSnake(member))
}

func (g *Codegen) generateMethod(buf *bytes.Buffer, s model.Service, rm model.ResourceMethod) {
	prefix := g.macroPrefix(s, rm.Name)

	codegen.WriteDoc(buf, codegen.DocBlock, "", rm.Doc)
	fmt.Fprintf(buf, "/* %s %s */\n", rm.Verb, rm.Path)
	fmt.Fprintf(buf, "#define %s_METHOD %s\n", prefix, codegen.CQuote(rm.Verb))
	fmt.Fprintf(buf, "#define %s_PATH %s\n", prefix, codegen.CQuote(rm.Path))
	fmt.Fprintf(buf, "#define %s_SERVLET_PATTERN %s\n", prefix, codegen.CQuote(rm.ServletPattern))
	fmt.Fprintf(buf, "#define %s_PARAM_COUNT %d\n\n", prefix, len(rm.PathParams))

	var (
		format strings.Builder
		args   []string
		params []string
	)
	for _, part := range pathtmpl.Split(rm.Path) {
		if !part.IsParam() {
			format.WriteString(strings.ReplaceAll(part.Literal, "%", "%%"))
			continue
		}
		id := naming.C.Identifier(part.Param)
		format.WriteString("%s")
		args = append(args, id)
		if !slices.Contains(params, id) {
			params = append(params, id)
		}
	}

	fn := naming.Format("%[1]s_%[2]s_%[3]s_path", naming.Scrub(g.config.Label), s.Name, rm.Name)
	fmt.Fprintf(buf, "/* Writes the path of %s into buf. Values are inserted verbatim. */\n", rm.Name)
	fmt.Fprintf(buf, "static inline int %s(char *buf, size_t size", fn)
	for _, p := range params {
		fmt.Fprintf(buf, ", const char *%s", p)
	}
	buf.WriteString(") {\n")
	fmt.Fprintf(buf, "  return snprintf(buf, size, %s", codegen.CQuote(format.String()))
	for _, a := range args {
		fmt.Fprintf(buf, ", %s", a)
	}
	buf.WriteString(");\n}\n\n")
}

// ── Operation → macros ──────────────────────────────────────────────

func (g *Codegen) generateOperation(buf *bytes.Buffer, s model.Service, op model.Operation) {
	prefix := g.macroPrefix(s, op.Name)

	codegen.WriteDoc(buf, codegen.DocBlock, "", op.Doc)
	fmt.Fprintf(buf, "#define %s_OPERATION %s\n", prefix, codegen.CQuote(op.SourceName))
	if s.Namespace != "" {
		fmt.Fprintf(buf, "#define %s_NAMESPACE %s\n", prefix, codegen.CQuote(s.Namespace))
	}
	if op.OneWay {
		fmt.Fprintf(buf, "#define %s_ONE_WAY 1\n", prefix)
	}
	buf.WriteString("\n")
}
