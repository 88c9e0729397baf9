// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package kotlin

import (
	"context"
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
	content, ok := out.Files["Contract.kt"]
	if !ok {
		t.Fatalf("Generate() files = %v, want Contract.kt", out.Names())
	}
	return string(content)
}

func TestGenerate(t *testing.T) {
	got := generate(t, nil)

	tests := []struct {
		name string
		want string
	}{
		{"header", "// Code generated by contractgen. DO NOT EDIT.\n// Source: catalog.yaml\n\npackage contract\n\n"},
		{"imports", "import java.net.URLEncoder\nimport javax.xml.namespace.QName\nimport kotlinx.serialization.SerialName\nimport kotlinx.serialization.Serializable\n\n"},
		{"enum class", "/**\n * Historical period.\n */\n@Serializable\nenum class Era(\n    val namespace: String?,\n    val localPart: String?,\n    val uri: String?,\n) {\n"},
		{"bound value", "    @SerialName(\"contemporary\")\n    CONTEMPORARY(\"urn:modern\", \"now\", \"urn:modern#now\"),\n"},
		{"unknown value", "    @SerialName(\"other\")\n    OTHER(null, null, null);\n"},
		{"to qname", "    fun toQName(): QName? =\n        if (namespace == null || localPart == null) null else QName(namespace, localPart)\n"},
		{"from uri", "        fun fromURI(uri: String): Era =\n            entries.firstOrNull { it.uri == uri } ?: OTHER\n"},
		{"from qname", "        fun fromQName(name: QName): Color? =\n            entries.firstOrNull { it.namespace == name.namespaceURI && it.localPart == name.localPart }\n"},
		{"scrubbed constant", "    DARK_BLUE(\"urn:paint\", \"dark-blue\", \"urn:paint#dark-blue\");\n"},
		{"method constants", "object ProjectsApi {\n    const val GET_PROJECT_METHOD = \"GET\"\n    const val GET_PROJECT_PATH = \"/projects/p/{projectSlug}\"\n    const val GET_PROJECT_SERVLET_PATTERN = \"/projects/p/*\"\n"},
		{"path builder", "    /**\n     * Fetches one project.\n     */\n    fun getProjectPath(projectSlug: String): String =\n        \"/projects/p/\" + encode(projectSlug)\n"},
		{"inner placeholder", "    fun listByEraPath(era: String): String =\n        \"/eras/\" + encode(era) + \"/projects\"\n"},
		{"encoder", "    private fun encode(value: String): String =\n        URLEncoder.encode(value, Charsets.UTF_8).replace(\"+\", \"%20\")\n}\n"},
		{"operations", "/**\n * Charges accounts.\n */\nobject BillingApi {\n    const val NAMESPACE = \"urn:billing\"\n    const val CHARGE_OPERATION = \"charge\"\n    /** One-way: no response is sent. */\n    const val PING_OPERATION = \"ping\"\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q\n%s", tt.want, got)
			}
		})
	}
}

func TestGenerateWithoutSerialization(t *testing.T) {
	got := generate(t, map[string]string{"serialization": "false", "package": "com.example.catalog"})
	if strings.Contains(got, "kotlinx.serialization") || strings.Contains(got, "@Serial") {
		t.Errorf("serialization annotations emitted\n%s", got)
	}
	if !strings.Contains(got, "\npackage com.example.catalog\n") {
		t.Errorf("package option ignored\n%s", got)
	}
}

func TestGenerateDollarInPath(t *testing.T) {
	m := fixture.Assemble(t, []byte(`
resources:
  - service: Prices
    name: get
    verb: GET
    path: /prices/$usd
`))
	out, err := NewGenerator().Generate(context.Background(), m, generator.Config{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	got := string(out.Files["Contract.kt"])
	if !strings.Contains(got, `const val GET_PATH = "/prices/\$usd"`) {
		t.Errorf("dollar not escaped\n%s", got)
	}
	if !strings.Contains(got, "fun getPath(): String = GET_PATH\n") {
		t.Errorf("static path builder missing\n%s", got)
	}
	if strings.Contains(got, "URLEncoder") {
		t.Errorf("encoder emitted without path parameters\n%s", got)
	}
}

func TestGenerateInvalidPackage(t *testing.T) {
	for _, pkg := range []string{"com.object", "my-pkg", "a..b"} {
		_, err := NewGenerator().Generate(context.Background(), fixture.Model(t), generator.Config{
			Options: map[string]string{"package": pkg},
		})
		if err == nil || !strings.Contains(err.Error(), "kotlin: invalid package name") {
			t.Errorf("package %q: error = %v, want invalid package name", pkg, err)
		}
	}
}
