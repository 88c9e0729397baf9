// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/contractgen/internal/fetch"
)

// Format is the encoding of a declaration file.
type Format string

const (
	FormatAuto Format = ""
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Options configures how declarations are loaded.
type Options struct {
	// Path is the declaration file. "-" reads Stdin. http(s) URLs and
	// git+<repo>//<file>?ref=<ref> locations are fetched.
	Path string

	// Format overrides detection by file extension. Files other than
	// .json are read as YAML.
	Format Format

	// Stdin is read when Path is "-". Defaults to os.Stdin.
	Stdin io.Reader

	// SkipValidation returns the declarations as decoded.
	SkipValidation bool

	// Fetch configures retrieval of remote paths.
	Fetch fetch.Options
}

// Load reads, decodes and validates a declaration file.
func Load(ctx context.Context, opts Options) (*Declarations, error) {
	if opts.Path == "" {
		return nil, errors.New("load declarations: no path given")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, name, source, err := readSource(ctx, opts)
	if err != nil {
		return nil, err
	}

	format := opts.Format
	if format == FormatAuto {
		format = detectFormat(name)
	}

	d, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.Path, err)
	}
	d.Source = source

	if !opts.SkipValidation {
		if err := Validate(d); err != nil {
			return nil, fmt.Errorf("load %s: %w", opts.Path, err)
		}
	}
	return d, nil
}

// readSource returns the file contents, the name used for format
// detection and the location recorded as the declarations' source.
func readSource(ctx context.Context, opts Options) (data []byte, name, source string, err error) {
	switch {
	case opts.Path == "-":
		r := opts.Stdin
		if r == nil {
			r = os.Stdin
		}
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, "", "", fmt.Errorf("read stdin: %w", err)
		}
		return data, opts.Path, opts.Path, nil
	case fetch.IsRemote(opts.Path):
		src, err := fetch.ParseSource(opts.Path)
		if err != nil {
			return nil, "", "", err
		}
		res, err := fetch.Fetch(ctx, src, opts.Fetch)
		if err != nil {
			return nil, "", "", err
		}
		source := src.String()
		if res.CommitHash != "" {
			source += " (" + res.CommitHash[:12] + ")"
		}
		return res.Data, src.Name(), source, nil
	}
	data, err = os.ReadFile(opts.Path)
	if err != nil {
		return nil, "", "", fmt.Errorf("read declarations: %w", err)
	}
	return data, opts.Path, opts.Path, nil
}

func detectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Parse decodes declarations without validating them. Unknown keys are
// rejected in both formats.
func Parse(data []byte, format Format) (*Declarations, error) {
	d := &Declarations{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(d); err != nil {
			return nil, fmt.Errorf("parse JSON: %w", err)
		}
	case FormatYAML, FormatAuto:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return d, nil
}
