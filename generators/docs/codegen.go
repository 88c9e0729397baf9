// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package docs generates a Markdown reference page from the contract model.
package docs

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/albertocavalcante/contractgen/internal/codegen"
	"github.com/albertocavalcante/contractgen/internal/typehint"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/naming"
	"github.com/albertocavalcante/contractgen/pathtmpl"
	"github.com/albertocavalcante/contractgen/qname"
)

// Codegen generates Markdown from the contract model.
type Codegen struct {
	model  *model.ContractModel
	config Config
	buf    bytes.Buffer
}

// New creates a new docs Codegen.
func New(m *model.ContractModel, cfg Config) *Codegen {
	return &Codegen{model: m, config: cfg}
}

// Generate returns the page contents.
func (g *Codegen) Generate() []byte {
	g.buf.WriteString(codegen.Header(codegen.HTML, g.config.Source))
	g.printf("# %s\n", g.config.Title)

	services := g.model.Services()
	if len(services) > 0 {
		g.buf.WriteString("\n## Services\n")
	}
	for _, s := range services {
		g.generateService(s)
	}

	enums := g.model.Enums()
	if len(enums) > 0 {
		g.buf.WriteString("\n## Enums\n")
	}
	for _, e := range enums {
		g.generateEnum(e)
	}
	return g.buf.Bytes()
}

func (g *Codegen) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *Codegen) paragraph(text string) {
	if text = strings.TrimSpace(text); text != "" {
		g.printf("\n%s\n", text)
	}
}

// cell escapes s for use inside a table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// code renders s as an inline code span.
func code(s string) string {
	if s == "" {
		return ""
	}
	if strings.Contains(s, "`") {
		return "`` " + cell(s) + " ``"
	}
	return "`" + cell(s) + "`"
}

func (g *Codegen) generateService(s model.Service) {
	g.printf("\n### %s\n", s.Name)
	g.paragraph(s.Doc)
	if s.Namespace != "" {
		g.printf("\nNamespace: %s\n", code(s.Namespace))
	}

	if len(s.Methods) > 0 {
		g.buf.WriteString("\n| Route | Method |\n|---|---|\n")
		for _, rm := range s.Methods {
			g.printf("| [%s](#%s) | %s |\n", code(rm.Verb+" "+rm.Path), anchor(s, rm), rm.Name)
		}
	}

	for _, rm := range s.Methods {
		g.printf("\n<a id=\"%s\"></a>\n\n#### %s\n", anchor(s, rm), rm.Name)
		g.paragraph(rm.Doc)
		g.buf.WriteString("\n| | |\n|---|---|\n")
		g.printf("| Method | %s |\n", code(rm.Verb))
		g.printf("| Path | %s |\n", code(rm.Path))
		g.printf("| Servlet pattern | %s |\n", code(rm.ServletPattern))
		if example, err := pathtmpl.Expand(rm.Path, g.sampleValues(rm)); err == nil {
			g.printf("| Example | %s |\n", code(rm.Verb+" "+g.config.BaseURL+example))
		}
		if !rm.Returns.IsVoid() {
			g.printf("| Returns | %s |\n", code(rm.Returns.String()))
		}
		if len(rm.Consumes) > 0 {
			g.printf("| Consumes | %s |\n", codes(rm.Consumes))
		}
		if len(rm.Produces) > 0 {
			g.printf("| Produces | %s |\n", codes(rm.Produces))
		}
		g.parameters(rm.Parameters)
	}

	for _, op := range s.Operations {
		g.printf("\n#### %s\n", op.Name)
		g.paragraph(op.Doc)
		if op.OneWay {
			g.buf.WriteString("\nOne-way: no response is sent.\n")
		} else if !op.Returns.IsVoid() {
			g.printf("\nReturns %s.\n", code(op.Returns.String()))
		}
		if len(op.Faults) > 0 {
			g.printf("\nFaults: %s.\n", codes(op.Faults))
		}
		g.parameters(op.Parameters)
	}
}

// anchor is the link target of a resource method, unique within the page.
func anchor(s model.Service, rm model.ResourceMethod) string {
	return naming.Slug(s.Name + " " + rm.Verb + " " + rm.Path)
}

// sampleValues picks a plausible value for every path parameter of rm:
// the first value of an enum, a literal for numbers and booleans, and the
// parameter's own name otherwise.
func (g *Codegen) sampleValues(rm model.ResourceMethod) map[string]string {
	values := make(map[string]string, len(rm.PathParams))
	for _, name := range rm.PathParams {
		values[name] = name
	}
	for _, p := range rm.Parameters {
		if p.Kind != model.ParamPath {
			continue
		}
		switch {
		case p.Type.Kind == model.KindEnum:
			if e, ok := g.model.Enum(p.Type.Name); ok {
				if b := e.Enum.Bindings(); len(b) > 0 && !b[0].Unknown {
					values[p.Name] = b[0].Value
				}
			}
		case p.Type.Name == typehint.TypeInteger || p.Type.Name == typehint.TypeLong:
			values[p.Name] = "1"
		case p.Type.Name == typehint.TypeBoolean:
			values[p.Name] = "true"
		}
	}
	return values
}

func codes(values []string) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = code(v)
	}
	return strings.Join(out, ", ")
}

func (g *Codegen) parameters(params []model.Parameter) {
	if len(params) == 0 {
		return
	}
	g.buf.WriteString("\n| Parameter | Kind | Type | Description |\n|---|---|---|---|\n")
	for _, p := range params {
		kind := string(p.Kind)
		if kind == "" {
			kind = "-"
		}
		g.printf("| %s | %s | %s | %s |\n", code(p.Name), kind, code(p.Type.String()), cell(strings.TrimSpace(p.Doc)))
	}
}

func (g *Codegen) generateEnum(e model.EnumType) {
	g.printf("\n### %s\n", e.Name)
	g.paragraph(e.Doc)
	g.printf("\nBase: %s\n", e.Enum.Base())

	// URI enums list their URIs relative to the enum namespace.
	var base string
	if e.Enum.Base() == qname.BaseURI && e.Enum.Namespace() != "" {
		base = e.Enum.Namespace()
		g.printf("\nBase URI: %s\n", code(base))
	}
	g.buf.WriteString("\n| Value | Qualified name | URI |\n|---|---|---|\n")
	for _, b := range e.Enum.Bindings() {
		if b.Unknown {
			g.printf("| %s | unknown | |\n", code(b.Value))
			continue
		}
		g.printf("| %s | %s | %s |\n", code(b.Value), code(b.QName.String()), code(qname.RelativeURI(b.URI(), base)))
	}
}
