// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// EnvPrefix starts every environment variable contractgen reads.
const EnvPrefix = "CONTRACTGEN_"

// Environment variables overriding top-level keys.
const (
	EnvDeclarations = EnvPrefix + "DECLARATIONS"
	EnvOutput       = EnvPrefix + "OUTPUT"
	EnvLabel        = EnvPrefix + "LABEL"
	EnvLogLevel     = EnvPrefix + "LOG_LEVEL"
	EnvLogFormat    = EnvPrefix + "LOG_FORMAT"
)

// ApplyEnv overrides top-level keys from lookup, usually os.LookupEnv.
// Set but empty variables are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	for key, dst := range map[string]*string{
		EnvDeclarations: &c.Declarations,
		EnvOutput:       &c.Output,
		EnvLabel:        &c.Label,
		EnvLogLevel:     &c.LogLevel,
		EnvLogFormat:    &c.LogFormat,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. Variables already set are kept. A missing file is an error
// only when required is set.
func LoadEnvFile(path string, required bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file: %w", err)
}
