// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every error caused by a parameter outside
// of the range accepted by the controller. Nothing is sent on the bus when it
// is returned.
var ErrInvalidArgument = errors.New("ssd1306: invalid argument")

// ErrTransport matches any *TransportError with errors.Is.
var ErrTransport = errors.New("ssd1306: transport error")

// TransportError is returned when the I²C bus failed to carry a transfer.
//
// A multi-byte command sequence is not atomic; when this error is returned the
// bytes preceding the failed one have already been applied by the controller.
type TransportError struct {
	// Op describes the transfer that failed.
	Op string
	// Err is the error reported by the bus.
	Err error
}

func (e *TransportError) Error() string {
	return "ssd1306: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the bus error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports ErrTransport as a match.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

func invalidArgf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, a...))
}
