// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package ruby

import (
	"context"
	"strings"
	"testing"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/internal/fixture"
)

func TestGenerate(t *testing.T) {
	out, err := NewGenerator().Generate(context.Background(), fixture.Model(t), generator.Config{Source: "catalog.yaml"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	got := string(out.Files["contract.rb"])

	tests := []struct {
		name string
		want string
	}{
		{"magic comment first", "# frozen_string_literal: true\n\n# Code generated by contractgen. DO NOT EDIT.\n# Source: catalog.yaml\n"},
		{"module", "require 'erb'\n\nmodule Contract\n  # Historical period.\n  module Era\n"},
		{"constants", "    VICTORIAN = 'victorian'\n    CONTEMPORARY = 'contemporary'\n    OTHER = 'other'\n"},
		{"uri hash", "    URIS = {\n      VICTORIAN => 'urn:special#victorian',\n      CONTEMPORARY => 'urn:modern#now'\n    }.freeze\n"},
		{"uri fallback", "      VALUES_BY_URI.fetch(uri, OTHER)\n"},
		{"qname hash", "      DARK_BLUE => ['urn:paint', 'dark-blue'].freeze\n    }.freeze\n"},
		{"qname no fallback", "      VALUES_BY_QNAME.fetch([namespace, local_part], nil)\n"},
		{"client", "  class ProjectsClient\n    GET_PROJECT_VERB = 'GET'\n    GET_PROJECT_PATH = '/projects/p/{projectSlug}'\n"},
		{"path doc", "    # Fetches one project.\n    #\n    # GET /projects/p/{projectSlug}\n"},
		{"path builder", "    def self.get_project_path(project_slug)\n      '/projects/p/' + ERB::Util.url_encode(project_slug.to_s)\n    end\n"},
		{"rpc client", "  # Charges accounts.\n  class BillingClient\n    NAMESPACE = 'urn:billing'\n    CHARGE_OPERATION = 'charge'\n    PING_OPERATION = 'ping'\n  end\n"},
		{"module end", "  end\nend\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(got, tt.want) {
				t.Errorf("output missing %q\n%s", tt.want, got)
			}
		})
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	m := fixture.Assemble(t, []byte(`
resources:
  - service: Health
    name: ping
    verb: GET
    path: /health
  - service: Health
    name: byClass
    verb: GET
    path: /health/{class}
enums:
  - name: Mode
    values:
      - name: end
      - name: other
        unknown: true
`))
	got := string(New(m, Config{Module: "Ops"}).Generate())

	for _, want := range []string{
		"module Ops\n",
		"    def self.ping_path\n      '/health'\n    end\n",
		"    def self.by_class_path(class_)\n      '/health/' + ERB::Util.url_encode(class_.to_s)\n",
		"    END_ = 'end'\n",
		"    QNAMES = {\n      END_ => ['', 'end'].freeze\n    }.freeze\n",
		"      VALUES_BY_QNAME.fetch([namespace, local_part], OTHER)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
}
