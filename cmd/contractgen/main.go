// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command contractgen generates client artifacts from API contract
// declarations.
//
// Usage:
//
//	contractgen generate [flags]   Assemble declarations and run targets
//	contractgen check [flags]      Assemble declarations without writing
//	contractgen targets            List registered targets
//	contractgen version            Print version information
//
// Settings come from contractgen.yaml (see internal/config), then
// CONTRACTGEN_* environment variables (optionally from a .env file),
// then flags.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the command-line grammar.
type CLI struct {
	Globals

	Generate GenerateCmd `cmd:"" help:"Assemble declarations and generate every configured target."`
	Check    CheckCmd    `cmd:"" help:"Assemble declarations and report problems without writing files."`
	Targets  TargetsCmd  `cmd:"" help:"List registered targets."`
	Version  VersionCmd  `cmd:"" help:"Print version information."`
}

// Globals are flags shared by every command.
type Globals struct {
	Config    string `help:"Project file (default: ${config_file} if present)." short:"c" type:"path"`
	EnvFile   string `help:"Dotenv file loaded before reading the environment (default: .env if present)." name:"env-file" type:"path"`
	LogLevel  string `help:"Log level: debug, info, warn or error." name:"log-level"`
	LogFormat string `help:"Log format: text or json." name:"log-format"`

	FetchTimeout time.Duration `help:"Timeout for fetching remote declarations." name:"fetch-timeout" default:"60s"`
	FetchRetries int           `help:"HTTP retries for remote declarations (negative disables)." name:"fetch-retries" default:"3"`
}

// app carries what commands need besides their flags.
type app struct {
	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	Globals
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("contractgen"),
		kong.Description("Generate client artifacts from API contract declarations."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"config_file": "contractgen.yaml"},
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run(&app{ctx: ctx, stdin: stdin, stdout: stdout, stderr: stderr, Globals: cli.Globals})
}

// VersionCmd prints build information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.stdout, "contractgen %s (commit: %s, built: %s)\n", version, commit, date)
	return nil
}
