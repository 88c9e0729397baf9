// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTarget is matched by UnknownTargetError.
var ErrUnknownTarget = errors.New("unknown target")

// UnknownTargetError names a target no generator is registered for.
type UnknownTargetError struct {
	Name  string
	Known []string
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("unknown target %q (available: %s)", e.Name, strings.Join(e.Known, ", "))
}

func (e *UnknownTargetError) Is(target error) bool {
	return target == ErrUnknownTarget
}
