// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package naming

import "testing"

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase", input: "project", expected: "Project"},
		{name: "already capitalized", input: "Project", expected: "Project"},
		{name: "empty", input: "", expected: ""},
		{name: "single char", input: "a", expected: "A"},
		{name: "all caps", input: "URI", expected: "URI"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Capitalize(tc.input); got != tc.expected {
				t.Errorf("Capitalize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDecapitalize(t *testing.T) {
	if got := Decapitalize("ProjectService"); got != "projectService" {
		t.Errorf("Decapitalize = %q", got)
	}
	if got := Decapitalize(""); got != "" {
		t.Errorf("Decapitalize(\"\") = %q", got)
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase", input: "line", expected: "line"},
		{name: "camelCase", input: "projectSlug", expected: "project_slug"},
		{name: "PascalCase", input: "ProjectVersion", expected: "project_version"},
		{name: "all uppercase", input: "URI", expected: "uri"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CamelToSnake(tc.input); got != tc.expected {
				t.Errorf("CamelToSnake(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCamelToScreamingSnake(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "HouseStyle", expected: "HOUSE_STYLE"},
		{name: "single word", input: "victorian", expected: "VICTORIAN"},
		{name: "already screaming", input: "URI", expected: "URI"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CamelToScreamingSnake(tc.input); got != tc.expected {
				t.Errorf("CamelToScreamingSnake(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	got := Format("%[1]s_%[2]s_%[3]s", "my-api", "House Style", "victorian")
	if want := "my_api_House_Style_victorian"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
