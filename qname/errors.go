// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package qname

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateUnknownMarker is returned when an enum marks more than
	// one value as unknown.
	ErrDuplicateUnknownMarker = errors.New("more than one unknown enum value")

	// ErrDuplicateQualifiedName is matched by DuplicateQualifiedNameError.
	ErrDuplicateQualifiedName = errors.New("duplicate qualified name")

	// ErrDuplicateValue is returned when an enum declares a value twice.
	ErrDuplicateValue = errors.New("duplicate enum value")

	// ErrUnknownEnumValue is matched by UnknownValueError.
	ErrUnknownEnumValue = errors.New("unknown enum value")
)

// DuplicateQualifiedNameError reports two values bound to the same name.
type DuplicateQualifiedNameError struct {
	Enum   string
	QName  QName
	First  string
	Second string
}

func (e *DuplicateQualifiedNameError) Error() string {
	return fmt.Sprintf("enum %s: values %s and %s both bind to %s", e.Enum, e.First, e.Second, e.QName)
}

func (e *DuplicateQualifiedNameError) Is(target error) bool {
	return target == ErrDuplicateQualifiedName
}

// UnknownValueError reports a lookup that matched nothing.
type UnknownValueError struct {
	Enum string
	// Key is the value name, qualified name or URI that was looked up.
	Key string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("enum %s: no binding for %q", e.Enum, e.Key)
}

func (e *UnknownValueError) Is(target error) bool {
	return target == ErrUnknownEnumValue
}
