// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/contractgen/internal/logging"
	"github.com/albertocavalcante/contractgen/model"
)

// Job is one target to run.
type Job struct {
	Generator Generator
	Config    Config
}

// Result is the output of one job.
type Result struct {
	Target string
	Config Config
	Output *Output
}

// RunOptions tunes Run.
type RunOptions struct {
	// Limit caps the number of concurrently running targets (0 = no limit).
	Limit int

	// Logger receives one line per finished target. Nil discards.
	Logger *slog.Logger
}

// Run executes every job concurrently against m and returns the results in
// job order. The first failure cancels the context passed to the other
// jobs, and Run returns that error.
func Run(ctx context.Context, m *model.ContractModel, jobs []Job, opts RunOptions) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	results := make([]Result, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Limit > 0 {
		g.SetLimit(opts.Limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			name := job.Generator.Metadata().Name
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			selected, err := Select(m, job.Config)
			if err != nil {
				return fmt.Errorf("target %s: %w", name, err)
			}
			out, err := job.Generator.Generate(ctx, selected, job.Config)
			if err != nil {
				return fmt.Errorf("target %s: %w", name, err)
			}

			results[i] = Result{Target: name, Config: job.Config, Output: out}
			logger.Debug("generated target", "target", name, "files", len(out.Files), "elapsed", time.Since(start))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
