// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorize

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

var (
	// ErrShapeMismatch is matched by every [ShapeMismatchError].
	ErrShapeMismatch = errors.New("colorize: shape mismatch")

	// ErrInvalidColorShape is returned for color inputs that are not a
	// constant triple, a scalar per element, or an RGB triple per element.
	ErrInvalidColorShape = errors.New("colorize: invalid color shape")

	// ErrDegenerateRange is returned for a scalar field whose min equals
	// its max when the resolver uses [DegenerateError].
	ErrDegenerateRange = errors.New("colorize: degenerate scalar range")

	// ErrNoScalarField is returned when a colorbar is requested before
	// any scalar field has been resolved.
	ErrNoScalarField = errors.New("colorize: no scalar field defined")
)

// ShapeMismatchError reports a color array whose length does not match
// the number of elements of the component it colors.
type ShapeMismatchError struct {
	// Got is the length of the color array.
	Got int

	// Expected is the number of elements.
	Expected int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("colorize: color must have same length as component: got %d, expected %d", e.Got, e.Expected)
}

// Is makes every ShapeMismatchError match [ErrShapeMismatch].
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func shapeMismatch(got, expected int) error {
	return &ShapeMismatchError{Got: got, Expected: expected}
}
