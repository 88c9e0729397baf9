// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package objc generates an Objective-C header and implementation from
// the contract model: NS_ENUM types with qualified-name lookups, and path
// constants and builders for resource methods.
package objc

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

var upperCamel = naming.ObjC.With(naming.Camel)

// Codegen generates Objective-C source from the contract model.
type Codegen struct {
	model  *model.ContractModel
	config Config

	h bytes.Buffer
	m bytes.Buffer
}

// New creates a new Objective-C Codegen.
func New(m *model.ContractModel, cfg Config) *Codegen {
	return &Codegen{model: m, config: cfg}
}

// Generate returns the header and implementation file contents.
func (g *Codegen) Generate() (header, impl []byte) {
	g.h.WriteString(codegen.Header(codegen.Slashes, g.config.Source))
	g.h.WriteString("#import <Foundation/Foundation.h>\n\n")
	g.h.WriteString("NS_ASSUME_NONNULL_BEGIN\n\n")

	g.m.WriteString(codegen.Header(codegen.Slashes, g.config.Source))
	fmt.Fprintf(&g.m, "#import \"%s.h\"\n\n", g.config.Prefix)

	services := g.model.Services()
	if hasMethods(services) {
		g.writeEscape()
	}

	for _, e := range g.model.Enums() {
		g.generateEnum(e)
	}
	for _, s := range services {
		for _, rm := range s.Methods {
			g.generateMethod(s, rm)
		}
		if len(s.Operations) > 0 {
			g.generateOperations(s)
		}
	}

	g.h.WriteString("NS_ASSUME_NONNULL_END\n")
	return g.h.Bytes(), g.m.Bytes()
}

func hasMethods(services []model.Service) bool {
	for _, s := range services {
		if len(s.Methods) > 0 {
			return true
		}
	}
	return false
}

func (g *Codegen) symbol(parts ...string) string {
	var b strings.Builder
	b.WriteString(g.config.Prefix)
	for _, p := range parts {
		b.WriteString(upperCamel.Identifier(p))
	}
	return b.String()
}

func str(s string) string {
	return "@" + codegen.CQuote(s)
}

// ── Enumeration → NS_ENUM + lookups ─────────────────────────────────

func (g *Codegen) generateEnum(e model.EnumType) {
	typ := naming.Format(g.config.TypeNamePattern, g.config.Prefix, e.Name)
	constant := func(value string) string {
		return naming.Format(g.config.EnumConstantPattern, typ, upperCamel.Identifier(value))
	}
	bindings := e.Enum.Bindings()
	unknown, hasUnknown := e.Enum.Unknown()

	h, m := &g.h, &g.m
	codegen.WriteDoc(h, codegen.DocBlock, "", e.Doc)
	fmt.Fprintf(h, "typedef NS_ENUM(NSInteger, %s) {\n", typ)
	for i, b := range bindings {
		sep := ","
		if i == len(bindings)-1 {
			sep = ""
		}
		fmt.Fprintf(h, "  %s%s\n", constant(b.Value), sep)
	}
	h.WriteString("};\n\n")

	fallback := "NO"
	if hasUnknown {
		fallback = "YES"
	}

	if e.Enum.Base() == qname.BaseURI {
		fmt.Fprintf(h, "/** Returns the URI of value, or nil if it has none. */\n")
		fmt.Fprintf(h, "FOUNDATION_EXPORT NSString *_Nullable %sToURI(%s value);\n", typ, typ)
		fmt.Fprintf(h, "/** Stores the value bound to uri in out. Returns NO if uri is not bound. */\n")
		fmt.Fprintf(h, "FOUNDATION_EXPORT BOOL %sFromURI(NSString *uri, %s *out);\n\n", typ, typ)

		fmt.Fprintf(m, "NSString *_Nullable %sToURI(%s value) {\n  switch (value) {\n", typ, typ)
		for _, b := range bindings {
			if !b.Unknown {
				fmt.Fprintf(m, "    case %s: return %s;\n", constant(b.Value), str(b.URI()))
			}
		}
		m.WriteString("    default: return nil;\n  }\n}\n\n")

		fmt.Fprintf(m, "BOOL %sFromURI(NSString *uri, %s *out) {\n", typ, typ)
		for _, b := range bindings {
			if !b.Unknown {
				fmt.Fprintf(m, "  if ([uri isEqualToString:%s]) { *out = %s; return YES; }\n", str(b.URI()), constant(b.Value))
			}
		}
	} else {
		fmt.Fprintf(h, "/** Stores the qualified name of value. Returns NO if it has none. */\n")
		fmt.Fprintf(h, "FOUNDATION_EXPORT BOOL %sToQName(%s value, NSString *_Nullable *_Nonnull ns, NSString *_Nullable *_Nonnull local);\n", typ, typ)
		fmt.Fprintf(h, "/** Stores the value bound to {ns}local in out. Returns NO if it is not bound. */\n")
		fmt.Fprintf(h, "FOUNDATION_EXPORT BOOL %sFromQName(NSString *ns, NSString *local, %s *out);\n\n", typ, typ)

		fmt.Fprintf(m, "BOOL %sToQName(%s value, NSString *_Nullable *_Nonnull ns, NSString *_Nullable *_Nonnull local) {\n  switch (value) {\n", typ, typ)
		for _, b := range bindings {
			if !b.Unknown {
				fmt.Fprintf(m, "    case %s: *ns = %s; *local = %s; return YES;\n",
					constant(b.Value), str(b.QName.Namespace), str(b.QName.Local))
			}
		}
		m.WriteString("    default: return NO;\n  }\n}\n\n")

		fmt.Fprintf(m, "BOOL %sFromQName(NSString *ns, NSString *local, %s *out) {\n", typ, typ)
		for _, b := range bindings {
			if !b.Unknown {
				fmt.Fprintf(m, "  if ([ns isEqualToString:%s] && [local isEqualToString:%s]) { *out = %s; return YES; }\n",
					str(b.QName.Namespace), str(b.QName.Local), constant(b.Value))
			}
		}
	}
	if hasUnknown {
		fmt.Fprintf(m, "  *out = %s;\n", constant(unknown))
	}
	fmt.Fprintf(m, "  return %s;\n}\n\n", fallback)
}

// ── Resource method → constants + path builder ──────────────────────

func (g *Codegen) writeEscape() {
	fmt.Fprintf(&g.m, "static NSString *%sEscapePathSegment(NSString *value) {\n", g.config.Prefix)
	g.m.WriteString("  NSMutableCharacterSet *allowed = [[NSCharacterSet URLPathAllowedCharacterSet] mutableCopy];\n")
	g.m.WriteString("  [allowed removeCharactersInString:@\"/\"];\n")
	g.m.WriteString("  return [value stringByAddingPercentEncodingWithAllowedCharacters:allowed];\n}\n\n")
}

func (g *Codegen) generateMethod(s model.Service, rm model.ResourceMethod) {
	base := g.symbol(s.Name, rm.Name)
	h, m := &g.h, &g.m

	codegen.WriteDoc(h, codegen.DocBlock, "", rm.Doc)
	fmt.Fprintf(h, "/** %s %s */\n", rm.Verb, rm.Path)
	fmt.Fprintf(h, "FOUNDATION_EXPORT NSString *const %sMethod;\n", base)
	fmt.Fprintf(h, "FOUNDATION_EXPORT NSString *const %sPath;\n", base)
	fmt.Fprintf(h, "FOUNDATION_EXPORT NSString *const %sServletPattern;\n", base)

	fmt.Fprintf(m, "NSString *const %sMethod = %s;\n", base, str(rm.Verb))
	fmt.Fprintf(m, "NSString *const %sPath = %s;\n", base, str(rm.Path))
	fmt.Fprintf(m, "NSString *const %sServletPattern = %s;\n\n", base, str(rm.ServletPattern))

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
		id := naming.ObjC.Identifier(part.Param)
		format.WriteString("%@")
		args = append(args, id)
		if !slices.Contains(params, id) {
			params = append(params, id)
		}
	}

	var sig strings.Builder
	fmt.Fprintf(&sig, "NSString *%sURLPath(", base)
	for i, p := range params {
		if i > 0 {
			sig.WriteString(", ")
		}
		fmt.Fprintf(&sig, "NSString *%s", p)
	}
	if len(params) == 0 {
		sig.WriteString("void")
	}
	sig.WriteString(")")

	fmt.Fprintf(h, "/** Builds the path of %s with percent-encoded values. */\n", rm.Name)
	fmt.Fprintf(h, "FOUNDATION_EXPORT %s;\n\n", sig.String())

	fmt.Fprintf(m, "%s {\n", sig.String())
	if len(args) == 0 {
		fmt.Fprintf(m, "  return %sPath;\n}\n\n", base)
		return
	}
	fmt.Fprintf(m, "  return [NSString stringWithFormat:%s", str(format.String()))
	for _, a := range args {
		fmt.Fprintf(m, ", %sEscapePathSegment(%s)", g.config.Prefix, a)
	}
	m.WriteString("];\n}\n\n")
}

// ── Service operations → name constants ─────────────────────────────

func (g *Codegen) generateOperations(s model.Service) {
	h, m := &g.h, &g.m

	codegen.WriteDoc(h, codegen.DocBlock, "", s.Doc)
	if s.Namespace != "" {
		ns := g.symbol(s.Name, "Namespace")
		fmt.Fprintf(h, "FOUNDATION_EXPORT NSString *const %s;\n", ns)
		fmt.Fprintf(m, "NSString *const %s = %s;\n", ns, str(s.Namespace))
	}
	for _, op := range s.Operations {
		name := g.symbol(s.Name, op.Name, "Operation")
		doc := op.Doc
		if op.OneWay {
			doc = strings.TrimSpace(doc + "\nOne-way: no response is sent.")
		}
		codegen.WriteDoc(h, codegen.DocBlock, "", doc)
		fmt.Fprintf(h, "FOUNDATION_EXPORT NSString *const %s;\n", name)
		fmt.Fprintf(m, "NSString *const %s = %s;\n", name, str(op.SourceName))
	}
	h.WriteString("\n")
	m.WriteString("\n")
}
