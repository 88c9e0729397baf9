// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/contractgen/model"
)

// ResolveDeps returns the names of the enums referenced by the given
// services through parameter and return types, in model order. Returns nil
// if services is nil (meaning "all enums").
func ResolveDeps(m *model.ContractModel, services []string) []string {
	if services == nil {
		return nil
	}

	used := make(map[string]bool)
	collect := func(t model.TypeRef) {
		if t.Kind == model.KindEnum {
			used[t.Name] = true
		}
	}
	for _, s := range m.Services() {
		if !slices.Contains(services, s.Name) {
			continue
		}
		for _, rm := range s.Methods {
			collectParams(rm.Parameters, collect)
			collect(rm.Returns)
		}
		for _, op := range s.Operations {
			collectParams(op.Parameters, collect)
			collect(op.Returns)
		}
	}

	names := []string{}
	for _, e := range m.Enums() {
		if used[e.Name] {
			names = append(names, e.Name)
		}
	}
	return names
}

func collectParams(params []model.Parameter, collect func(model.TypeRef)) {
	for _, p := range params {
		collect(p.Type)
	}
}

// Select narrows m to what cfg asks for. With no service filter the model
// is returned as is. Otherwise only the listed services are kept, along
// with every enum or, when cfg.ResolveDeps is set, only the enums they
// reference. Naming a service the model lacks is an error.
func Select(m *model.ContractModel, cfg Config) (*model.ContractModel, error) {
	if len(cfg.Services) == 0 {
		return m, nil
	}

	var missing []string
	for _, name := range cfg.Services {
		if _, ok := m.Service(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("select services: not in model: %s", strings.Join(missing, ", "))
	}

	var enums []string
	if cfg.ResolveDeps {
		enums = ResolveDeps(m, cfg.Services)
	} else {
		for _, e := range m.Enums() {
			enums = append(enums, e.Name)
		}
	}
	return m.Subset(cfg.Services, enums), nil
}
