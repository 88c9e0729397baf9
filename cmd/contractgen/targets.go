// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/albertocavalcante/contractgen/generator"
)

// TargetsCmd lists the registered generators.
type TargetsCmd struct{}

func (c *TargetsCmd) Run(a *app) error {
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tFILES\tDESCRIPTION")
	for _, g := range generator.All() {
		meta := g.Metadata()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", meta.Name, meta.Version, strings.Join(meta.FileExtensions, ","), meta.Description)
	}
	return w.Flush()
}
