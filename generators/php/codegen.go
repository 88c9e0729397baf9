// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package php generates a PHP file with one final class per enum and one
// client class per service.
package php

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
	className = naming.PHP.With(naming.Camel)
	constName = naming.PHP.With(naming.ScreamingSnake)
)

const indent = "    "

// Codegen generates PHP source from the contract model.
type Codegen struct {
	model  *model.ContractModel
	config Config
	buf    bytes.Buffer
}

// New creates a new PHP Codegen.
func New(m *model.ContractModel, cfg Config) *Codegen {
	return &Codegen{model: m, config: cfg}
}

// Generate returns the PHP file contents.
func (g *Codegen) Generate() []byte {
	g.buf.WriteString("<?php\n\n")
	g.buf.WriteString(codegen.Header(codegen.Slashes, g.config.Source))
	g.buf.WriteString("declare(strict_types=1);\n\n")
	g.printf("namespace %s;\n", g.config.Namespace)

	for _, e := range g.model.Enums() {
		g.buf.WriteString("\n")
		g.generateEnum(e)
	}
	for _, s := range g.model.Services() {
		g.buf.WriteString("\n")
		g.generateClient(s)
	}
	return g.buf.Bytes()
}

func (g *Codegen) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

// ── Enumeration → final class ───────────────────────────────────────

func (g *Codegen) generateEnum(e model.EnumType) {
	bindings := e.Enum.Bindings()
	unknown, hasUnknown := e.Enum.Unknown()

	codegen.WriteDoc(&g.buf, codegen.DocBlock, "", e.Doc)
	g.printf("final class %s\n{\n", className.Identifier(e.Name))
	for _, b := range bindings {
		g.printf("%spublic const %s = %s;\n", indent, constName.Identifier(b.Value), codegen.SingleQuote(b.Value))
	}
	g.buf.WriteString("\n")

	fallback := "null"
	if hasUnknown {
		fallback = "self::" + constName.Identifier(unknown)
	}

	if e.Enum.Base() == qname.BaseURI {
		g.printf("%sprivate const URIS = [\n", indent)
		for _, b := range bindings {
			if !b.Unknown {
				g.printf("%s%sself::%s => %s,\n", indent, indent, constName.Identifier(b.Value), codegen.SingleQuote(b.URI()))
			}
		}
		g.printf("%s];\n\n", indent)

		g.printf("%s/**\n%s * Returns the URI of $value, or null if it has none.\n%s */\n", indent, indent, indent)
		g.printf("%spublic static function toURI(string $value): ?string\n%s{\n", indent, indent)
		g.printf("%s%sreturn self::URIS[$value] ?? null;\n%s}\n\n", indent, indent, indent)

		g.printf("%s/**\n%s * Returns the value bound to $uri.\n%s */\n", indent, indent, indent)
		g.printf("%spublic static function fromURI(string $uri): ?string\n%s{\n", indent, indent)
		g.printf("%s%s$value = array_search($uri, self::URIS, true);\n", indent, indent)
		g.printf("%s%sreturn $value === false ? %s : $value;\n%s}\n", indent, indent, fallback, indent)
	} else {
		g.printf("%sprivate const QNAMES = [\n", indent)
		for _, b := range bindings {
			if !b.Unknown {
				g.printf("%s%sself::%s => [%s, %s],\n", indent, indent, constName.Identifier(b.Value),
					codegen.SingleQuote(b.QName.Namespace), codegen.SingleQuote(b.QName.Local))
			}
		}
		g.printf("%s];\n\n", indent)

		g.printf("%s/**\n%s * Returns [namespace, localPart] of $value, or null if it has none.\n%s */\n", indent, indent, indent)
		g.printf("%spublic static function toQName(string $value): ?array\n%s{\n", indent, indent)
		g.printf("%s%sreturn self::QNAMES[$value] ?? null;\n%s}\n\n", indent, indent, indent)

		g.printf("%s/**\n%s * Returns the value bound to {$namespace}$localPart.\n%s */\n", indent, indent, indent)
		g.printf("%spublic static function fromQName(string $namespace, string $localPart): ?string\n%s{\n", indent, indent)
		g.printf("%s%s$value = array_search([$namespace, $localPart], self::QNAMES, true);\n", indent, indent)
		g.printf("%s%sreturn $value === false ? %s : $value;\n%s}\n", indent, indent, fallback, indent)
	}
	g.buf.WriteString("}\n")
}

// ── Service → client class ──────────────────────────────────────────

func (g *Codegen) generateClient(s model.Service) {
	codegen.WriteDoc(&g.buf, codegen.DocBlock, "", s.Doc)
	g.printf("final class %sClient\n{\n", className.Identifier(s.Name))

	if s.Namespace != "" {
		g.printf("%spublic const NAMESPACE_URI = %s;\n", indent, codegen.SingleQuote(s.Namespace))
	}
	for _, op := range s.Operations {
		g.printf("%spublic const %s_OPERATION = %s;\n", indent, constName.Identifier(op.Name), codegen.SingleQuote(op.SourceName))
	}
	for _, rm := range s.Methods {
		c := constName.Identifier(rm.Name)
		g.printf("%spublic const %s_METHOD = %s;\n", indent, c, codegen.SingleQuote(rm.Verb))
		g.printf("%spublic const %s_PATH = %s;\n", indent, c, codegen.SingleQuote(rm.Path))
	}

	for _, rm := range s.Methods {
		g.buf.WriteString("\n")
		g.generatePathMethod(rm)
	}
	g.buf.WriteString("}\n")
}

func (g *Codegen) generatePathMethod(rm model.ResourceMethod) {
	id := naming.PHP.Identifier
	params := codegen.PathParams(rm.Path, id)

	var doc strings.Builder
	if rm.Doc != "" {
		doc.WriteString(strings.TrimSpace(rm.Doc))
		doc.WriteString("\n\n")
	}
	fmt.Fprintf(&doc, "%s %s", rm.Verb, rm.Path)
	codegen.WriteDoc(&g.buf, codegen.DocBlock, indent, doc.String())

	args := make([]string, len(params))
	for i, p := range params {
		args[i] = "string $" + p
	}
	g.printf("%spublic static function %s(%s): string\n%s{\n", indent, naming.PHP.Identifier(rm.Name+"_path"), strings.Join(args, ", "), indent)

	expr := codegen.Concat(rm.Path, codegen.SingleQuote, func(p string) string {
		return "rawurlencode($" + id(p) + ")"
	}, " . ")
	g.printf("%s%sreturn %s;\n%s}\n", indent, indent, expr, indent)
}
