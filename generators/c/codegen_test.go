// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package c

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/internal/fixture"
)

func generate(t *testing.T, options map[string]string) string {
	t.Helper()
	out, err := NewGenerator().Generate(context.Background(), fixture.Model(t), generator.Config{
		Source:  "catalog.yaml",
		Options: options,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	content, ok := out.Files["contract.h"]
	if !ok {
		t.Fatalf("Generate() files = %v, want contract.h", out.Names())
	}
	return string(content)
}

func TestGenerate(t *testing.T) {
	got := generate(t, nil)

	tests := []struct {
		name string
		want string
	}{
		{"header", "// Code generated by contractgen. DO NOT EDIT.\n// Source: catalog.yaml\n"},
		{"guard", "#ifndef CONTRACT_H\n#define CONTRACT_H\n"},
		{"enum doc", "/**\n * Historical period.\n */\nenum CONTRACT_Era {\n"},
		{"enum constants", "  CONTRACT_ERA_VICTORIAN,\n  CONTRACT_ERA_CONTEMPORARY,\n  CONTRACT_ERA_OTHER\n};"},
		{"scrubbed constant", "  CONTRACT_COLOR_DARK_BLUE\n};"},
		{"to uri", `case CONTRACT_ERA_CONTEMPORARY: return "urn:modern#now";`},
		{"from uri", `if (strcmp(uri, "urn:special#victorian") == 0) { *out = CONTRACT_ERA_VICTORIAN; return 1; }`},
		{"unknown fallback", "  *out = CONTRACT_ERA_OTHER;\n  return 1;\n}"},
		{"to qname", `case CONTRACT_COLOR_DARK_BLUE: *ns = "urn:paint"; *local = "dark-blue"; return 1;`},
		{"no fallback", "{ *out = CONTRACT_COLOR_DARK_BLUE; return 1; }\n  return 0;\n}"},
		{"method comment", "/* GET /projects/p/{projectSlug} */"},
		{"path macro", `#define CONTRACT_PROJECTS_GET_PROJECT_PATH "/projects/p/{projectSlug}"`},
		{"servlet macro", `#define CONTRACT_PROJECTS_GET_PROJECT_SERVLET_PATTERN "/projects/p/*"`},
		{"param count", "#define CONTRACT_PROJECTS_LIST_BY_ERA_PARAM_COUNT 1"},
		{"path builder", "static inline int contract_Projects_getProject_path(char *buf, size_t size, const char *projectSlug) {\n  return snprintf(buf, size, \"/projects/p/%s\", projectSlug);\n}"},
		{"operation", `#define CONTRACT_BILLING_CHARGE_OPERATION "charge"`},
		{"namespace", `#define CONTRACT_BILLING_PING_NAMESPACE "urn:billing"`},
		{"one way", "#define CONTRACT_BILLING_PING_ONE_WAY 1"},
		{"end guard", "#endif /* CONTRACT_H */\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q\n%s", tt.want, got)
			}
		})
	}

	if strings.Contains(got, "CONTRACT_BILLING_CHARGE_ONE_WAY") {
		t.Error("charge is not one-way")
	}
}

func TestGenerateOptions(t *testing.T) {
	got := generate(t, map[string]string{
		"enumConstantPattern": "k%[2]s%[3]s",
		"constantCase":        "preserve",
	})
	for _, want := range []string{"  kEravictorian,", "  kColordark_blue\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerateRejectsOptions(t *testing.T) {
	m := fixture.Model(t)
	_, err := NewGenerator().Generate(context.Background(), m, generator.Config{
		Options: map[string]string{"constantCase": "lower"},
	})
	if err == nil || !strings.Contains(err.Error(), "constantCase") {
		t.Errorf("Generate() error = %v, want constantCase error", err)
	}

	_, err = NewGenerator().Generate(context.Background(), m, generator.Config{
		Options: map[string]string{"nope": "1"},
	})
	if err == nil {
		t.Error("Generate() with unknown option succeeded")
	}
}

func TestGenerateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGenerator().Generate(ctx, fixture.Model(t), generator.Config{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
}

func TestPathFormatEscapesPercent(t *testing.T) {
	m := fixture.Assemble(t, []byte(`
resources:
  - service: Files
    name: get
    verb: GET
    path: /100%/{name}
`))
	out, err := New(m, Config{Label: "f", Options: DefaultOptions()}).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if want := `snprintf(buf, size, "/100%%/%s", name)`; !strings.Contains(string(out), want) {
		t.Errorf("output missing %q\n%s", want, out)
	}
}
