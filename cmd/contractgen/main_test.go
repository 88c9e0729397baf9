// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/albertocavalcante/contractgen/discovery"
	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/internal/config"
	"github.com/albertocavalcante/contractgen/internal/fixture"
)

// runCLI runs the command line in-process and returns stdout.
func runCLI(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, bytes.NewReader(stdin), &stdout, &stderr)
	if stderr.Len() > 0 {
		t.Logf("stderr:\n%s", stderr.String())
	}
	return stdout.String(), err
}

func writeCatalog(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, fixture.Catalog, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, nil, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "contractgen dev (commit: unknown") {
		t.Errorf("version output = %q", out)
	}
}

func TestTargets(t *testing.T) {
	out, err := runCLI(t, nil, "targets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"c", "docs", "go", "java", "javascript", "kotlin", "objc", "php", "proto", "ruby"} {
		if !strings.Contains(out, "\n"+name+" ") {
			t.Errorf("targets output missing %q:\n%s", name, out)
		}
	}
	if !strings.HasPrefix(out, "NAME") {
		t.Errorf("targets output has no header:\n%s", out)
	}
}

func TestCheck(t *testing.T) {
	path := writeCatalog(t, t.TempDir())

	out, err := runCLI(t, nil, "check", "-d", path)
	if err != nil {
		t.Fatal(err)
	}
	want := "✓ catalog.yaml: 2 services, 2 resource methods, 2 operations, 2 enums\n"
	if out != want {
		t.Errorf("check output = %q, want %q", out, want)
	}

	out, err = runCLI(t, fixture.Catalog, "check", "--declarations=-")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "✓ stdin:") {
		t.Errorf("check stdin output = %q", out)
	}
}

func TestCheckTree(t *testing.T) {
	path := writeCatalog(t, t.TempDir())

	out, err := runCLI(t, nil, "check", "--tree", "-d", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"\ncatalog.yaml\n",
		"service Projects",
		"GET /projects/p/{projectSlug} → getProject",
		"charge(amount, class) → string",
		"ping() one-way",
		"enum Era (URI)",
		"contemporary → urn:modern#now",
		"other (unknown)",
		"dark-blue → {urn:paint}dark-blue",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("tree missing %q:\n%s", want, out)
		}
	}
}

func TestCheckInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("resources:\n  - service: S\n    name: n\n    verb: FETCH\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := runCLI(t, nil, "check", "-d", path)
	if !errors.Is(err, discovery.ErrInvalidDeclaration) {
		t.Errorf("check error = %v, want ErrInvalidDeclaration", err)
	}
}

func TestGenerateAdHoc(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir)
	outDir := filepath.Join(dir, "out")

	out, err := runCLI(t, nil, "generate", "-d", path, "-o", outDir, "-t", "c", "-t", "java", "-t", "docs",
		"-O", "package=org.acme", "-O", "docs.title=Acme API", "--label", "acme")
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []string{
		filepath.Join(outDir, "c", "acme.h"),
		filepath.Join(outDir, "java", "org", "acme", "Era.java"),
		filepath.Join(outDir, "java", "org", "acme", "ProjectsClient.java"),
	} {
		if _, err := os.Stat(f); err != nil {
			t.Errorf("expected %s: %v", f, err)
		}
	}
	if !strings.Contains(out, "c: 1 file(s) in "+filepath.Join(outDir, "c")) {
		t.Errorf("generate output = %q", out)
	}

	header, err := os.ReadFile(filepath.Join(outDir, "c", "acme.h"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(header), "// Source: catalog.yaml\n") {
		t.Errorf("header does not name its source:\n%s", header)
	}
	md, err := os.ReadFile(filepath.Join(outDir, "docs", "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(md), "\n# Acme API\n") {
		t.Errorf("scoped docs title ignored:\n%s", md)
	}
}

func TestGenerateScopedOptionErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir)
	outDir := filepath.Join(dir, "out")

	tests := []struct {
		name   string
		option string
		want   string
	}{
		{name: "scope is not a target", option: "ruby.module=Acme", want: `"ruby" is not a --target`},
		{name: "unknown scoped key", option: "c.package=org.acme", want: "decode options"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, nil, "generate", "-d", path, "-o", outDir, "-t", "c", "-O", tt.option)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestGenerateProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir)
	project := filepath.Join(dir, config.DefaultFile)
	content := `declarations: catalog.yaml
output: build
label: shop
targets:
  - name: ruby
  - name: docs
    output: site
    options:
      title: Shop API
  - name: php
    services: [Billing]
    resolveDeps: true
`
	if err := os.WriteFile(project, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCLI(t, nil, "--config", project, "generate"); err != nil {
		t.Fatal(err)
	}

	rb, err := os.ReadFile(filepath.Join(dir, "build", "ruby", "shop.rb"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(rb), "module Shop\n") {
		t.Errorf("ruby module not labelled:\n%s", rb)
	}

	md, err := os.ReadFile(filepath.Join(dir, "build", "site", "index.md"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(md), "# Shop API\n") {
		t.Errorf("docs title option ignored:\n%s", md)
	}

	php, err := os.ReadFile(filepath.Join(dir, "build", "php", "shop.php"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(php), "ProjectsClient") || strings.Contains(string(php), "final class Era") {
		t.Errorf("php target was not restricted to Billing:\n%s", php)
	}
	if !strings.Contains(string(php), "final class BillingClient") {
		t.Errorf("php target lost Billing:\n%s", php)
	}
}

func TestGenerateDryRun(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir)
	outDir := filepath.Join(dir, "out")

	out, err := runCLI(t, nil, "generate", "-d", path, "-o", outDir, "-t", "objc", "--dry-run")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "  Contract.h (") || !strings.Contains(out, "  Contract.m (") {
		t.Errorf("dry-run output = %q", out)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Errorf("dry run wrote %s", outDir)
	}
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeCatalog(t, dir)

	_, err := runCLI(t, nil, "generate", "-d", path, "-o", dir, "-t", "cobol")
	if !errors.Is(err, generator.ErrUnknownTarget) {
		t.Errorf("unknown target error = %v", err)
	}

	_, err = runCLI(t, nil, "generate", "-d", path, "-o", dir)
	if err == nil || !strings.Contains(err.Error(), "no targets configured") {
		t.Errorf("no targets error = %v", err)
	}

	_, err = runCLI(t, nil, "generate", "-d", path, "-o", dir, "-t", "c", "-O", "bogus=1")
	if err == nil || !strings.Contains(err.Error(), "target c") {
		t.Errorf("bad option error = %v", err)
	}

	_, err = runCLI(t, nil, "--log-level", "loud", "check", "-d", path)
	if err == nil || !strings.Contains(err.Error(), "log level") {
		t.Errorf("bad log level error = %v", err)
	}

	_, err = runCLI(t, nil, "--config", filepath.Join(dir, "missing.yaml"), "check")
	if err == nil {
		t.Error("missing project file accepted")
	}
}
