// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package discovery

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidDeclaration is matched by InvalidDeclarationError.
var ErrInvalidDeclaration = errors.New("invalid declaration")

// InvalidDeclarationError lists every field that failed validation.
type InvalidDeclarationError struct {
	// Fields maps a namespaced field (e.g. "Declarations.Resources[0].Verb")
	// to a readable message.
	Fields map[string]string

	// Order preserves the validator's reporting order of Fields.
	Order []string
}

func (e *InvalidDeclarationError) Error() string {
	msgs := make([]string, 0, len(e.Order))
	for _, f := range e.Order {
		msgs = append(msgs, f+": "+e.Fields[f])
	}
	return "invalid declaration: " + strings.Join(msgs, "; ")
}

func (e *InvalidDeclarationError) Is(target error) bool {
	return target == ErrInvalidDeclaration
}

func fromValidationErrors(errs validator.ValidationErrors) *InvalidDeclarationError {
	out := &InvalidDeclarationError{Fields: make(map[string]string, len(errs))}
	for _, fe := range errs {
		ns := fe.Namespace()
		if _, seen := out.Fields[ns]; !seen {
			out.Order = append(out.Order, ns)
		}
		out.Fields[ns] = formatFieldError(fe)
	}
	return out
}

// formatFieldError converts a validator.FieldError to a human-readable message.
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "httpverb":
		return fmt.Sprintf("%q is not an HTTP method", fe.Value())
	case "qname":
		return fmt.Sprintf("%q is not a qualified name in {namespace}local form", fe.Value())
	case "excluded_with":
		return fmt.Sprintf("cannot be combined with %s", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
