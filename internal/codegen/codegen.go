// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package codegen holds the emission helpers shared by the target
// generators: generated-file headers, doc comments and string literals.
package codegen

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/contractgen/pathtmpl"
)

// Tool is the generator name written into file headers.
const Tool = "contractgen"

// Comment describes a comment syntax. Open and Close are empty for line
// comment styles.
type Comment struct {
	Open  string
	Line  string
	Close string
}

// Comment styles of the supported targets.
var (
	DocBlock = Comment{Open: "/**", Line: " * ", Close: " */"}
	Slashes  = Comment{Line: "// "}
	Hash     = Comment{Line: "# "}
	HTML     = Comment{Open: "<!--", Close: "-->"}
)

// Header returns the generated-file banner in comment style c, followed by
// a blank line.
func Header(c Comment, source string) string {
	lines := []string{fmt.Sprintf("Code generated by %s. DO NOT EDIT.", Tool)}
	if source != "" {
		lines = append(lines, "Source: "+source)
	}
	var buf bytes.Buffer
	writeComment(&buf, c, "", lines)
	buf.WriteString("\n")
	return buf.String()
}

// WriteDoc writes doc as a comment at the given indent. Empty docs are
// skipped.
func WriteDoc(buf *bytes.Buffer, c Comment, indent, doc string) {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return
	}
	writeComment(buf, c, indent, strings.Split(doc, "\n"))
}

func writeComment(buf *bytes.Buffer, c Comment, indent string, lines []string) {
	if c.Open != "" {
		fmt.Fprintf(buf, "%s%s\n", indent, c.Open)
	}
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			fmt.Fprintf(buf, "%s%s\n", indent, strings.TrimRight(c.Line, " "))
			continue
		}
		// A doc line must not end the surrounding block comment.
		if strings.HasSuffix(c.Close, "*/") {
			line = strings.ReplaceAll(line, "*/", "*\\/")
		}
		fmt.Fprintf(buf, "%s%s%s\n", indent, c.Line, line)
	}
	if c.Close != "" {
		fmt.Fprintf(buf, "%s%s\n", indent, c.Close)
	}
}

// CQuote returns s as a double-quoted C string literal. Control bytes use
// three-digit octal escapes, which cannot absorb a following character.
func CQuote(s string) string {
	return doubleQuote(s, func(b byte) string { return fmt.Sprintf("\\%03o", b) })
}

// JavaQuote returns s as a double-quoted literal valid in Java and
// JavaScript. Control bytes use \uXXXX escapes.
func JavaQuote(s string) string {
	return doubleQuote(s, func(b byte) string { return fmt.Sprintf("\\u%04x", b) })
}

// KotlinQuote is JavaQuote with '$' escaped so templates stay literal.
func KotlinQuote(s string) string {
	return strings.ReplaceAll(JavaQuote(s), "$", `\$`)
}

func doubleQuote(s string, ctrl func(byte) string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c == 0x7f {
				b.WriteString(ctrl(c))
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// SingleQuote returns s as a single-quoted PHP or Ruby literal. Only the
// quote and backslash are escaped.
func SingleQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(s) + "'"
}

// Concat renders a clean path template as a string concatenation: literal
// parts through quote, placeholders through param, joined by op. A path
// without parts renders as quote("").
func Concat(path string, quote, param func(string) string, op string) string {
	parts := pathtmpl.Split(path)
	if len(parts) == 0 {
		return quote("")
	}
	terms := make([]string, len(parts))
	for i, p := range parts {
		if p.IsParam() {
			terms[i] = param(p.Param)
		} else {
			terms[i] = quote(p.Literal)
		}
	}
	return strings.Join(terms, op)
}

// PathParams returns the distinct placeholder identifiers of a clean path
// template in order of first appearance.
func PathParams(path string, id func(string) string) []string {
	var out []string
	for _, p := range pathtmpl.Split(path) {
		if p.IsParam() && !slices.Contains(out, id(p.Param)) {
			out = append(out, id(p.Param))
		}
	}
	return out
}
