// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/model"
	"github.com/albertocavalcante/contractgen/qname"
)

// CheckCmd assembles the model and reports what it holds.
type CheckCmd struct {
	SourceFlags

	Tree bool `help:"Print the assembled services and enums as a tree."`
}

func (c *CheckCmd) Run(a *app) error {
	p, err := a.loadProject(c.SourceFlags)
	if err != nil {
		return err
	}
	for _, t := range p.cfg.Targets {
		if _, err := generator.Lookup(t.Name); err != nil {
			return err
		}
	}

	m, source, err := a.assemble(p)
	if err != nil {
		return err
	}

	var methods, operations int
	services := m.Services()
	for _, s := range services {
		methods += len(s.Methods)
		operations += len(s.Operations)
	}
	fmt.Fprintf(a.stdout, "✓ %s: %d services, %d resource methods, %d operations, %d enums\n",
		source, len(services), methods, operations, len(m.Enums()))
	if c.Tree {
		fmt.Fprint(a.stdout, modelTree(source, m).String())
	}
	return nil
}

func modelTree(source string, m *model.ContractModel) treeprint.Tree {
	tree := treeprint.NewWithRoot(source)
	for _, s := range m.Services() {
		branch := tree.AddBranch("service " + s.Name)
		for _, rm := range s.Methods {
			branch.AddNode(fmt.Sprintf("%s %s → %s", rm.Verb, rm.Path, rm.Name))
		}
		for _, op := range s.Operations {
			names := make([]string, len(op.Parameters))
			for i, p := range op.Parameters {
				names[i] = p.Name
			}
			sig := fmt.Sprintf("%s(%s)", op.Name, strings.Join(names, ", "))
			if op.OneWay {
				sig += " one-way"
			} else if !op.Returns.IsVoid() {
				sig += " → " + op.Returns.String()
			}
			branch.AddNode(sig)
		}
	}
	for _, e := range m.Enums() {
		base := e.Enum.Base()
		branch := tree.AddBranch(fmt.Sprintf("enum %s (%s)", e.Name, base))
		for _, b := range e.Enum.Bindings() {
			switch {
			case b.Unknown:
				branch.AddNode(b.Value + " (unknown)")
			case base == qname.BaseURI:
				branch.AddNode(b.Value + " → " + b.URI())
			default:
				branch.AddNode(b.Value + " → " + b.QName.String())
			}
		}
	}
	return tree
}
