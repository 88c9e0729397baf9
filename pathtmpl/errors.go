// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package pathtmpl

import (
	"errors"
	"fmt"
)

// ErrMalformedTemplate is matched by every template parse failure.
var ErrMalformedTemplate = errors.New("malformed path template")

// MalformedTemplateError describes where a template failed to parse.
type MalformedTemplateError struct {
	Template string
	Offset   int
	Reason   string
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("malformed path template %q at offset %d: %s", e.Template, e.Offset, e.Reason)
}

func (e *MalformedTemplateError) Is(target error) bool {
	return target == ErrMalformedTemplate
}

func malformed(tmpl string, offset int, reason string) error {
	return &MalformedTemplateError{Template: tmpl, Offset: offset, Reason: reason}
}
