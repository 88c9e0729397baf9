// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/contractgen/generator"
	"github.com/albertocavalcante/contractgen/internal/config"
)

// GenerateCmd runs targets over the assembled model.
type GenerateCmd struct {
	SourceFlags

	Output      string            `help:"Output root; each target writes to a subdirectory." short:"o"`
	Target      []string          `help:"Target to run (repeatable). Defaults to the project file's targets." short:"t"`
	Services    []string          `help:"Restrict ad-hoc targets to these services." short:"s"`
	ResolveDeps bool              `help:"Keep only the enums the selected services reference." name:"resolve-deps"`
	Option      map[string]string `help:"Ad-hoc target option: key=value for every target that declares key, or target.key=value for one target." short:"O"`
	Jobs        int               `help:"Maximum number of targets run concurrently (0 = all)." short:"j"`
	DryRun      bool              `help:"List the files each target would write without writing them." name:"dry-run"`
}

func (c *GenerateCmd) Run(a *app) error {
	p, err := a.loadProject(c.SourceFlags)
	if err != nil {
		return err
	}
	if c.Output != "" {
		p.cfg.Output = absPath(c.Output)
	}

	targets, err := c.targets(p)
	if err != nil {
		return err
	}

	m, source, err := a.assemble(p)
	if err != nil {
		return err
	}

	jobs := make([]generator.Job, 0, len(targets))
	for _, t := range targets {
		g, err := generator.Lookup(t.Name)
		if err != nil {
			return err
		}
		label := t.Label
		if label == "" {
			label = p.cfg.Label
		}
		jobs = append(jobs, generator.Job{
			Generator: g,
			Config: generator.Config{
				OutputDir:   p.cfg.TargetDir(t.Target),
				Label:       label,
				Services:    t.Services,
				ResolveDeps: t.ResolveDeps,
				Source:      source,
				Options:     t.Options,
				Shared:      t.shared,
			},
		})
	}

	results, err := generator.Run(a.ctx, m, jobs, generator.RunOptions{Limit: c.Jobs, Logger: p.logger})
	if err != nil {
		return err
	}

	for _, r := range results {
		dir := absPath(r.Config.OutputDir)
		if c.DryRun {
			fmt.Fprintf(a.stdout, "%s -> %s\n", r.Target, dir)
			for _, name := range r.Output.Names() {
				fmt.Fprintf(a.stdout, "  %s (%d bytes)\n", name, len(r.Output.Files[name]))
			}
			continue
		}
		written, err := r.Output.Write(r.Config.OutputDir)
		if err != nil {
			return fmt.Errorf("target %s: %w", r.Target, err)
		}
		p.logger.Info("wrote target", "target", r.Target, "dir", dir, "files", len(written))
		fmt.Fprintf(a.stdout, "%s: %d file(s) in %s\n", r.Target, len(written), dir)
	}
	return nil
}

// plannedTarget is a target about to run.
type plannedTarget struct {
	config.Target

	// shared holds the unscoped ad-hoc options.
	shared map[string]string
}

// targets picks the configured targets, or the ones named by --target.
// A named target missing from the project file runs with the ad-hoc
// flags.
func (c *GenerateCmd) targets(p *project) ([]plannedTarget, error) {
	if len(c.Target) == 0 {
		if len(p.cfg.Targets) == 0 {
			return nil, errors.New("no targets configured (use --target or a project file)")
		}
		out := make([]plannedTarget, len(p.cfg.Targets))
		for i, t := range p.cfg.Targets {
			out[i] = plannedTarget{Target: t}
		}
		return out, nil
	}

	scoped, shared, err := c.splitOptions()
	if err != nil {
		return nil, err
	}

	out := make([]plannedTarget, 0, len(c.Target))
	seen := make(map[string]bool, len(c.Target))
	for _, name := range c.Target {
		if seen[name] {
			continue
		}
		seen[name] = true
		if t, ok := p.cfg.Target(name); ok {
			out = append(out, plannedTarget{Target: t})
			continue
		}
		out = append(out, plannedTarget{
			Target: config.Target{
				Name:        name,
				Services:    c.Services,
				ResolveDeps: c.ResolveDeps,
				Options:     scoped[name],
			},
			shared: shared,
		})
	}
	return out, nil
}

// splitOptions separates -O flags into per-target options, keyed
// "target.key", and shared ones. A scope must name a --target.
func (c *GenerateCmd) splitOptions() (map[string]map[string]string, map[string]string, error) {
	scoped := make(map[string]map[string]string)
	shared := make(map[string]string)
	for k, v := range c.Option {
		target, key, ok := strings.Cut(k, ".")
		if !ok {
			shared[k] = v
			continue
		}
		if key == "" || !slices.Contains(c.Target, target) {
			return nil, nil, fmt.Errorf("option %s: %q is not a --target of this run", k, target)
		}
		if scoped[target] == nil {
			scoped[target] = make(map[string]string)
		}
		scoped[target][key] = v
	}
	return scoped, shared, nil
}
