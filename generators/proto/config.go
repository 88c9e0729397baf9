// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package proto

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/contractgen/naming"
)

// DefaultExtensionBase is the first field number of the enum value options
// that carry qualified names.
const DefaultExtensionBase = 50001

// maxFieldNumber is the largest field number protobuf accepts.
const maxFieldNumber = 1<<29 - 1

// Options are the target options of the proto generator.
type Options struct {
	// Package is the proto package. Defaults to the lowercased label.
	Package string `option:"package"`

	// GoPackage sets option go_package when not empty.
	GoPackage string `option:"go_package"`

	// ExtensionBase numbers the qualified name extensions of
	// google.protobuf.EnumValueOptions. Three consecutive numbers are used.
	ExtensionBase int `option:"extension_base"`
}

// Config holds configuration for proto generation.
type Config struct {
	PackageName   string
	GoPackage     string
	ExtensionBase int
	Source        string
}

func (c Config) validate() error {
	for _, seg := range strings.Split(c.PackageName, ".") {
		if !naming.IsIdentifier(seg) {
			return fmt.Errorf("proto: invalid package name %q", c.PackageName)
		}
	}
	// EnumValueOptions declares extensions 1000 to max; 19000-19999 is
	// reserved by the protobuf implementation.
	last := c.ExtensionBase + 2
	if c.ExtensionBase < 1000 || last > maxFieldNumber || (c.ExtensionBase <= 19999 && last >= 19000) {
		return fmt.Errorf("proto: extension_base %d out of range", c.ExtensionBase)
	}
	return nil
}
