// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package ruby generates a Ruby file holding one module: enum modules
// with frozen lookup hashes, and client classes with path builders.
package ruby

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/albertocavalcante/contractgen/internal/codegen"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
	"github.com/albertocavalcante/contractgen/qname"
)

var (
	moduleName = naming.Ruby.With(naming.Camel)
	constName  = naming.Ruby.With(naming.ScreamingSnake)
)

// Codegen generates Ruby source from the contract model.
type Codegen struct {
	model  *model.ContractModel
	config Config
	buf    bytes.Buffer
}

// New creates a new Ruby Codegen.
func New(m *model.ContractModel, cfg Config) *Codegen {
	return &Codegen{model: m, config: cfg}
}

// Generate returns the Ruby file contents.
func (g *Codegen) Generate() []byte {
	g.buf.WriteString("# frozen_string_literal: true\n\n")
	g.buf.WriteString(codegen.Header(codegen.Hash, g.config.Source))
	g.buf.WriteString("require 'erb'\n\n")
	g.printf("module %s\n", g.config.Module)

	first := true
	sep := func() {
		if !first {
			g.buf.WriteString("\n")
		}
		first = false
	}
	for _, e := range g.model.Enums() {
		sep()
		g.generateEnum(e)
	}
	for _, s := range g.model.Services() {
		sep()
		g.generateClient(s)
	}
	g.buf.WriteString("end\n")
	return g.buf.Bytes()
}

func (g *Codegen) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

// ── Enumeration → module ────────────────────────────────────────────

func (g *Codegen) generateEnum(e model.EnumType) {
	bindings := e.Enum.Bindings()
	unknown, hasUnknown := e.Enum.Unknown()

	codegen.WriteDoc(&g.buf, codegen.Hash, "  ", e.Doc)
	g.printf("  module %s\n", moduleName.Identifier(e.Name))
	for _, b := range bindings {
		g.printf("    %s = %s\n", constName.Identifier(b.Value), codegen.SingleQuote(b.Value))
	}
	g.buf.WriteString("\n")

	fallback := "nil"
	if hasUnknown {
		fallback = constName.Identifier(unknown)
	}

	var bound []qname.Binding
	for _, b := range bindings {
		if !b.Unknown {
			bound = append(bound, b)
		}
	}

	if e.Enum.Base() == qname.BaseURI {
		g.hash("URIS", bound, func(b qname.Binding) string { return codegen.SingleQuote(b.URI()) })
		g.printf("    VALUES_BY_URI = URIS.invert.freeze\n\n")
		g.printf("    # Returns the URI of value, or nil if it has none.\n")
		g.printf("    def self.to_uri(value)\n      URIS[value]\n    end\n\n")
		g.printf("    # Returns the value bound to uri.\n")
		g.printf("    def self.from_uri(uri)\n      VALUES_BY_URI.fetch(uri, %s)\n    end\n", fallback)
	} else {
		g.hash("QNAMES", bound, func(b qname.Binding) string {
			return fmt.Sprintf("[%s, %s].freeze", codegen.SingleQuote(b.QName.Namespace), codegen.SingleQuote(b.QName.Local))
		})
		g.printf("    VALUES_BY_QNAME = QNAMES.invert.freeze\n\n")
		g.printf("    # Returns [namespace, local_part] of value, or nil if it has none.\n")
		g.printf("    def self.to_qname(value)\n      QNAMES[value]\n    end\n\n")
		g.printf("    # Returns the value bound to {namespace}local_part.\n")
		g.printf("    def self.from_qname(namespace, local_part)\n      VALUES_BY_QNAME.fetch([namespace, local_part], %s)\n    end\n", fallback)
	}
	g.buf.WriteString("  end\n")
}

func (g *Codegen) hash(name string, bound []qname.Binding, value func(qname.Binding) string) {
	if len(bound) == 0 {
		g.printf("    %s = {}.freeze\n", name)
		return
	}
	g.printf("    %s = {\n", name)
	for i, b := range bound {
		sep := ","
		if i == len(bound)-1 {
			sep = ""
		}
		g.printf("      %s => %s%s\n", constName.Identifier(b.Value), value(b), sep)
	}
	g.printf("    }.freeze\n")
}

// ── Service → client class ──────────────────────────────────────────

func (g *Codegen) generateClient(s model.Service) {
	codegen.WriteDoc(&g.buf, codegen.Hash, "  ", s.Doc)
	g.printf("  class %sClient\n", moduleName.Identifier(s.Name))

	if s.Namespace != "" {
		g.printf("    NAMESPACE = %s\n", codegen.SingleQuote(s.Namespace))
	}
	for _, op := range s.Operations {
		g.printf("    %s_OPERATION = %s\n", constName.Identifier(op.Name), codegen.SingleQuote(op.SourceName))
	}
	for _, rm := range s.Methods {
		c := constName.Identifier(rm.Name)
		g.printf("    %s_VERB = %s\n", c, codegen.SingleQuote(rm.Verb))
		g.printf("    %s_PATH = %s\n", c, codegen.SingleQuote(rm.Path))
	}

	for _, rm := range s.Methods {
		g.buf.WriteString("\n")
		g.generatePathMethod(rm)
	}
	g.buf.WriteString("  end\n")
}

func (g *Codegen) generatePathMethod(rm model.ResourceMethod) {
	id := naming.Ruby.Identifier
	params := codegen.PathParams(rm.Path, id)

	var doc strings.Builder
	if rm.Doc != "" {
		doc.WriteString(strings.TrimSpace(rm.Doc))
		doc.WriteString("\n\n")
	}
	fmt.Fprintf(&doc, "%s %s", rm.Verb, rm.Path)
	codegen.WriteDoc(&g.buf, codegen.Hash, "    ", doc.String())

	name := naming.Ruby.Identifier(rm.Name + "_path")
	if len(params) == 0 {
		g.printf("    def self.%s\n", name)
	} else {
		g.printf("    def self.%s(%s)\n", name, strings.Join(params, ", "))
	}
	expr := codegen.Concat(rm.Path, codegen.SingleQuote, func(p string) string {
		return "ERB::Util.url_encode(" + id(p) + ".to_s)"
	}, " + ")
	g.printf("      %s\n    end\n", expr)
}
