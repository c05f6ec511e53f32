// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package fft

import "github.com/pkg/errors"

// Sentinel errors returned by validation. Returned errors wrap one of these
// with context; test with errors.Is.
var (
	// ErrNilBuffer is returned for a nil input tensor or a nil destination.
	ErrNilBuffer = errors.New("fft: nil buffer")

	// ErrInvalidAxis is returned when the transform axis is out of range.
	ErrInvalidAxis = errors.New("fft: invalid axis")

	// ErrShapeMismatch is returned when the output shape differs from the
	// input shape in rank or outside the transform axis.
	ErrShapeMismatch = errors.New("fft: shape mismatch")

	// ErrInvalidLength is returned for a boundary below 1 or a destination
	// too short for the output shape.
	ErrInvalidLength = errors.New("fft: invalid length")

	// ErrUnsupportedType is returned when no kernel handles the input dtype.
	ErrUnsupportedType = errors.New("fft: unsupported type")
)
