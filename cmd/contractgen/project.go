// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/albertocavalcante/contractgen/assemble"
	"github.com/albertocavalcante/contractgen/discovery"
	"github.com/albertocavalcante/contractgen/internal/config"
	"github.com/albertocavalcante/contractgen/internal/fetch"
	"github.com/albertocavalcante/contractgen/internal/logging"
	"github.com/albertocavalcante/contractgen/model"
)

// SourceFlags select the declaration file and its project settings.
type SourceFlags struct {
	Declarations string `help:"Declaration file or remote location (YAML or JSON, - for stdin)." short:"d"`
	Label        string `help:"Label naming the generated library."`
}

// project is the effective configuration after the file, the environment
// and the flags are merged.
type project struct {
	cfg    *config.Config
	file   bool
	logger *slog.Logger
}

// loadProject merges settings in increasing precedence: project file,
// CONTRACTGEN_* variables, flags.
func (a *app) loadProject(src SourceFlags) (*project, error) {
	if err := config.LoadEnvFile(orDefault(a.EnvFile, ".env"), a.EnvFile != ""); err != nil {
		return nil, err
	}

	p := &project{cfg: &config.Config{Dir: "."}}
	path := a.Config
	if path == "" {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			path = config.DefaultFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat %s: %w", config.DefaultFile, err)
		}
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		p.cfg, p.file = cfg, true
	} else {
		p.cfg.ApplyEnv(os.LookupEnv)
	}

	if src.Declarations != "" {
		p.cfg.Declarations = absPath(src.Declarations)
	}
	if src.Label != "" {
		p.cfg.Label = src.Label
	}
	if a.LogLevel != "" {
		p.cfg.LogLevel = a.LogLevel
	}
	if a.LogFormat != "" {
		p.cfg.LogFormat = a.LogFormat
	}

	switch p.cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("unknown log level %q", p.cfg.LogLevel)
	}
	logger, err := logging.Config(p.cfg.LogLevel, p.cfg.LogFormat, a.stderr)
	if err != nil {
		return nil, err
	}
	p.logger = logger
	return p, nil
}

// assemble loads the declarations and builds the contract model.
func (a *app) assemble(p *project) (*model.ContractModel, string, error) {
	path := p.cfg.DeclarationsPath()
	if path == "" {
		return nil, "", errors.New("no declarations given (use --declarations or a project file)")
	}
	d, err := discovery.Load(a.ctx, discovery.Options{
		Path:  path,
		Stdin: a.stdin,
		Fetch: fetch.Options{
			Timeout: a.FetchTimeout,
			Retries: a.FetchRetries,
			Logger:  p.logger,
		},
	})
	if err != nil {
		return nil, "", err
	}
	p.logger.Debug("loaded declarations", "path", path,
		"resources", len(d.Resources), "services", len(d.Services), "enums", len(d.Enums))

	m, err := assemble.Assemble(d, assemble.WithLogger(p.logger))
	if err != nil {
		return nil, "", err
	}
	return m, sourceName(d.Source), nil
}

// sourceName is the declaration name written into generated headers.
// Remote sources keep their full location.
func sourceName(source string) string {
	switch {
	case source == "-":
		return "stdin"
	case strings.Contains(source, "://"):
		return source
	}
	return filepath.Base(source)
}

func absPath(p string) string {
	if p == "-" || filepath.IsAbs(p) || fetch.IsRemote(p) {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
