// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package assemble

import (
	"errors"
	"fmt"
)

// ErrAssemblyConflict is matched by ConflictError.
var ErrAssemblyConflict = errors.New("assembly conflict")

// ConflictError reports two declarations that would generate the same
// endpoint, client member, parameter or enum value. Service is empty for
// conflicts inside an enum, which set Enum instead.
type ConflictError struct {
	Service string
	Enum    string
	// What the two declarations share, e.g. "GET /p/{id}" or "member charge".
	Key    string
	First  string
	Second string
}

func (e *ConflictError) Error() string {
	scope := "service " + e.Service
	if e.Enum != "" {
		scope = "enum " + e.Enum
	}
	return fmt.Sprintf("%s: %s declared by both %s and %s", scope, e.Key, e.First, e.Second)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrAssemblyConflict
}
