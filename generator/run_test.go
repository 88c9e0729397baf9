// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/albertocavalcante/contractgen/model"
)

// countingGenerator emits one file listing the services it was given.
type countingGenerator struct {
	name  string
	calls atomic.Int32
	err   error
}

func (g *countingGenerator) Metadata() Metadata { return Metadata{Name: g.name} }

func (g *countingGenerator) Generate(ctx context.Context, m *model.ContractModel, cfg Config) (*Output, error) {
	g.calls.Add(1)
	if g.err != nil {
		return nil, g.err
	}
	var names []string
	for _, s := range m.Services() {
		names = append(names, s.Name)
	}
	return Single(cfg.LabelOr(DefaultLabel)+".txt", []byte(strings.Join(names, ","))), nil
}

func TestRun(t *testing.T) {
	m := testModel(t)
	a := &countingGenerator{name: "a"}
	b := &countingGenerator{name: "b"}

	results, err := Run(context.Background(), m, []Job{
		{Generator: a, Config: Config{Label: "all"}},
		{Generator: b, Config: Config{Label: "some", Services: []string{"Status"}}},
	}, RunOptions{Limit: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results) != 2 || results[0].Target != "a" || results[1].Target != "b" {
		t.Fatalf("results out of job order: %+v", results)
	}
	if got := string(results[0].Output.Files["all.txt"]); got != "Projects,Billing,Status" {
		t.Errorf("a saw %q", got)
	}
	if got := string(results[1].Output.Files["some.txt"]); got != "Status" {
		t.Errorf("b saw %q", got)
	}
}

func TestRunFailure(t *testing.T) {
	m := testModel(t)
	boom := errors.New("boom")

	_, err := Run(context.Background(), m, []Job{
		{Generator: &countingGenerator{name: "ok"}},
		{Generator: &countingGenerator{name: "bad", err: boom}},
	}, RunOptions{})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if !strings.Contains(err.Error(), "target bad") {
		t.Errorf("error lacks target name: %v", err)
	}

	_, err = Run(context.Background(), m, []Job{
		{Generator: &countingGenerator{name: "sel"}, Config: Config{Services: []string{"Ghost"}}},
	}, RunOptions{})
	if err == nil {
		t.Error("expected selection error")
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &countingGenerator{name: "late"}
	if _, err := Run(ctx, testModel(t), []Job{{Generator: g}}, RunOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if g.calls.Load() != 0 {
		t.Error("generator ran after cancellation")
	}
}
