// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/albertocavalcante/contractgen/qname"
)

func testEnum(t *testing.T, name string) EnumType {
	t.Helper()
	e, err := qname.Build(name, []qname.ValueSpec{{Name: "a"}}, "urn:test", qname.BaseQName)
	if err != nil {
		t.Fatal(err)
	}
	return EnumType{Name: name, SourceName: name, Enum: e}
}

func buildSample(t *testing.T) *ContractModel {
	t.Helper()
	b := NewBuilder("sample.yaml")
	if err := b.AddService("Projects", "Projects", "", "project access"); err != nil {
		t.Fatal(err)
	}
	if err := b.AddService("Billing", "Billing", "urn:billing", ""); err != nil {
		t.Fatal(err)
	}
	if err := b.AddService("Projects", "ignored", "", ""); err != nil {
		t.Fatal(err)
	}
	rm := ResourceMethod{
		Name:       "getProject",
		Verb:       "GET",
		Path:       "/p/{slug}",
		PathParams: []string{"slug"},
		Parameters: []Parameter{{Name: "slug", SourceName: "slug", Kind: ParamPath, Type: TypeRef{Name: "string", Kind: KindBase}}},
	}
	if err := b.AddMethod("Projects", rm); err != nil {
		t.Fatal(err)
	}
	if err := b.AddOperation("Billing", Operation{Name: "charge", Faults: []string{"Declined"}}); err != nil {
		t.Fatal(err)
	}
	if err := b.AddEnum(testEnum(t, "Era")); err != nil {
		t.Fatal(err)
	}
	if err := b.AddEnum(testEnum(t, "Color")); err != nil {
		t.Fatal(err)
	}
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestBuilderOrder(t *testing.T) {
	m := buildSample(t)

	var names []string
	for _, s := range m.Services() {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{"Projects", "Billing"}, names); diff != "" {
		t.Errorf("service order mismatch (-want +got):\n%s", diff)
	}

	s, ok := m.Service("Projects")
	if !ok || s.Doc != "project access" || len(s.Methods) != 1 {
		t.Errorf("Service(Projects) = %+v, %v", s, ok)
	}

	names = nil
	for _, e := range m.Enums() {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"Era", "Color"}, names); diff != "" {
		t.Errorf("enum order mismatch (-want +got):\n%s", diff)
	}
	if m.Source() != "sample.yaml" {
		t.Errorf("Source = %q", m.Source())
	}
}

func TestBuilderMergesService(t *testing.T) {
	b := NewBuilder("")
	if err := b.AddService("Orders", "Orders", "", ""); err != nil {
		t.Fatal(err)
	}
	if err := b.AddService("Orders", "orders", "urn:orders", "Order access."); err != nil {
		t.Fatal(err)
	}
	if err := b.AddService("Orders", "Orders", "urn:other", ""); err != nil {
		t.Fatal(err)
	}
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	got, _ := m.Service("Orders")
	want := Service{Name: "Orders", SourceName: "Orders", Namespace: "urn:orders", Doc: "Order access.", Methods: []ResourceMethod{}, Operations: []Operation{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("merged service mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderFrozen(t *testing.T) {
	b := NewBuilder("")
	if err := b.AddService("S", "S", "", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(); err != nil {
		t.Fatal(err)
	}

	checks := map[string]error{
		"AddService":   b.AddService("T", "T", "", ""),
		"AddMethod":    b.AddMethod("S", ResourceMethod{}),
		"AddOperation": b.AddOperation("S", Operation{}),
		"AddEnum":      b.AddEnum(testEnum(t, "E")),
	}
	for name, err := range checks {
		if !errors.Is(err, ErrFrozen) {
			t.Errorf("%s after Build = %v, want ErrFrozen", name, err)
		}
	}
	if _, err := b.Build(); !errors.Is(err, ErrFrozen) {
		t.Errorf("second Build = %v, want ErrFrozen", err)
	}
}

func TestBuilderErrors(t *testing.T) {
	b := NewBuilder("")
	if err := b.AddMethod("missing", ResourceMethod{}); err == nil {
		t.Error("AddMethod to unregistered service succeeded")
	}
	if err := b.AddEnum(EnumType{Name: "E"}); err == nil {
		t.Error("AddEnum without bindings succeeded")
	}
	if err := b.AddEnum(testEnum(t, "E")); err != nil {
		t.Fatal(err)
	}
	if err := b.AddEnum(testEnum(t, "E")); err == nil {
		t.Error("duplicate enum accepted")
	}
}

func TestServicesKeepMembers(t *testing.T) {
	m := buildSample(t)

	projects, ok := m.Service("Projects")
	if !ok {
		t.Fatal("Projects missing")
	}
	wantMethods := []ResourceMethod{{
		Name:       "getProject",
		Verb:       "GET",
		Path:       "/p/{slug}",
		PathParams: []string{"slug"},
		Parameters: []Parameter{{Name: "slug", SourceName: "slug", Kind: ParamPath, Type: TypeRef{Name: "string", Kind: KindBase}}},
	}}
	if diff := cmp.Diff(wantMethods, projects.Methods, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("methods mismatch (-want +got):\n%s", diff)
	}

	billing := m.Services()[1]
	wantOps := []Operation{{Name: "charge", Faults: []string{"Declined"}}}
	if diff := cmp.Diff(wantOps, billing.Operations, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("operations mismatch (-want +got):\n%s", diff)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	m := buildSample(t)

	s := m.Services()
	s[0].Name = "changed"
	s[0].Methods[0].PathParams[0] = "changed"
	s[0].Methods[0].Parameters[0].Name = "changed"
	s[1].Operations[0].Faults[0] = "changed"

	again := m.Services()
	if again[0].Name != "Projects" ||
		again[0].Methods[0].PathParams[0] != "slug" ||
		again[0].Methods[0].Parameters[0].Name != "slug" ||
		again[1].Operations[0].Faults[0] != "Declined" {
		t.Errorf("mutation leaked into the model: %+v", again)
	}

	e := m.Enums()
	e[0].Name = "changed"
	if m.Enums()[0].Name != "Era" {
		t.Error("enum mutation leaked into the model")
	}
}

func TestSubset(t *testing.T) {
	m := buildSample(t)
	sub := m.Subset([]string{"Billing", "Nope"}, []string{"Color"})

	got := sub.Services()
	if len(got) != 1 || got[0].Name != "Billing" {
		t.Errorf("services = %+v", got)
	}
	if _, ok := sub.Enum("Era"); ok {
		t.Error("Era survived the subset")
	}
	if _, ok := sub.Enum("Color"); !ok {
		t.Error("Color missing from the subset")
	}
	if sub.Source() != m.Source() {
		t.Errorf("Source = %q", sub.Source())
	}

	full := m.Services()
	if diff := cmp.Diff(full[1], got[0], cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("subset service differs (-want +got):\n%s", diff)
	}
}

func TestTypeRef(t *testing.T) {
	tests := []struct {
		ref      TypeRef
		wantStr  string
		wantVoid bool
	}{
		{ref: TypeRef{Name: "void", Kind: KindBase}, wantStr: "void", wantVoid: true},
		{ref: TypeRef{Name: "Era", Kind: KindEnum, Array: true}, wantStr: "[]Era"},
		{ref: TypeRef{Name: "void", Kind: KindReference}, wantStr: "void"},
	}
	for _, tt := range tests {
		if got := tt.ref.String(); got != tt.wantStr {
			t.Errorf("String() = %q, want %q", got, tt.wantStr)
		}
		if got := tt.ref.IsVoid(); got != tt.wantVoid {
			t.Errorf("%v.IsVoid() = %v, want %v", tt.ref, got, tt.wantVoid)
		}
	}
}
