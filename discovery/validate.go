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

	"github.com/albertocavalcante/contractgen/qname"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("httpverb", isHTTPVerb); err != nil {
		panic(fmt.Sprintf("discovery: register httpverb: %v", err))
	}
	if err := v.RegisterValidation("qname", isQName); err != nil {
		panic(fmt.Sprintf("discovery: register qname: %v", err))
	}
	return v
}

var httpVerbs = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"PATCH": true, "HEAD": true, "OPTIONS": true,
}

func isHTTPVerb(fl validator.FieldLevel) bool {
	return httpVerbs[strings.ToUpper(fl.Field().String())]
}

func isQName(fl validator.FieldLevel) bool {
	_, err := qname.ParseQName(fl.Field().String())
	return err == nil
}

// Validate checks d against its struct constraints. Every failing field is
// reported in one *InvalidDeclarationError.
func Validate(d *Declarations) error {
	if d == nil {
		return fmt.Errorf("%w: no declarations", ErrInvalidDeclaration)
	}
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fromValidationErrors(verrs)
	}
	return fmt.Errorf("validate declarations: %w", err)
}
