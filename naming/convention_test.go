// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package naming

import "testing"

func TestConventionIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		conv  Convention
		input string
		want  string
	}{
		{name: "zero value scrubs", conv: Convention{}, input: "hello-me", want: "hello_me"},
		{name: "c preserves case", conv: C, input: "projectSlug", want: "projectSlug"},
		{name: "c reserved", conv: C, input: "int", want: "int_"},
		{name: "java lower camel", conv: Java, input: "project-slug", want: "projectSlug"},
		{name: "java reserved", conv: Java, input: "class", want: "class_"},
		{name: "javascript lower camel", conv: JavaScript, input: "hello-me", want: "helloMe"},
		{name: "ruby snake", conv: Ruby, input: "projectSlug", want: "project_slug"},
		{name: "ruby reserved", conv: Ruby, input: "end", want: "end_"},
		{name: "php reserved", conv: PHP, input: "list", want: "list_"},
		{name: "go lower camel", conv: Go, input: "project_slug", want: "projectSlug"},
		{name: "go keyword", conv: Go, input: "type", want: "type_"},
		{name: "go import name", conv: Go, input: "url", want: "url_"},
		{name: "kotlin reserved", conv: Kotlin, input: "object", want: "object_"},
		{name: "objc translates id", conv: ObjC, input: "id", want: "identifier"},
		{name: "custom suffix", conv: Convention{Reserved: map[string]bool{"type": true}, ReservedSuffix: "Value"}, input: "type", want: "typeValue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.conv.Identifier(tt.input)
			if got != tt.want {
				t.Errorf("Identifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if !IsIdentifier(got) {
				t.Errorf("Identifier(%q) = %q is not a legal identifier", tt.input, got)
			}
		})
	}
}

func TestConventionWith(t *testing.T) {
	screaming := Java.With(ScreamingSnake)
	if got := screaming.Identifier("victorian"); got != "VICTORIAN" {
		t.Errorf("Identifier = %q, want VICTORIAN", got)
	}
	if Java.Case != LowerCamel {
		t.Error("With must not modify the receiver")
	}
	if !screaming.IsReserved("class") {
		t.Error("reserved words must carry over")
	}
}
