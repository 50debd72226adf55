// Copyright 2025 The DateMap Authors
// SPDX-License-Identifier: Apache-2.0

package datecoords

import (
	"errors"
	"fmt"
)

// Error reports why a pair of dates could not be turned into map points.
type Error struct {
	Type    ErrorType
	Message string
	Input   string
}

// ErrorType classifies the errors of the pipeline.
type ErrorType int

const (
	// ErrorTypeUnknown unknown error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeMalformedInput the input is not two comma separated dates.
	ErrorTypeMalformedInput
	// ErrorTypeNoCoordinates a date produced neither latitudes nor longitudes.
	ErrorTypeNoCoordinates
	// ErrorTypeNoValidPairs the combination produced no point.
	ErrorTypeNoValidPairs
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeUnknown:        "unknown",
	ErrorTypeMalformedInput: "malformed_input",
	ErrorTypeNoCoordinates:  "no_coordinates",
	ErrorTypeNoValidPairs:   "no_valid_pairs",
}

func (t ErrorType) String() string {
	if name, ok := errorTypeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("ErrorType(%d)", int(t))
}

func (e *Error) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %q", e.Message, e.Input)
	}

	return e.Message
}

// Is matches any *Error of the same type, so that errors.Is can be used
// against the sentinel values below.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}

	return other.Type == e.Type
}

var (
	ErrMalformedInput = &Error{Type: ErrorTypeMalformedInput, Message: "expected two dates separated by a comma"}
	ErrNoCoordinates  = &Error{Type: ErrorTypeNoCoordinates, Message: "could not derive coordinates from the dates"}
	ErrNoValidPairs   = &Error{Type: ErrorTypeNoValidPairs, Message: "no valid coordinates found"}
)

func newError(sentinel *Error, input string) *Error {
	return &Error{Type: sentinel.Type, Message: sentinel.Message, Input: input}
}

// TypeOf returns the ErrorType carried by err, or ErrorTypeUnknown.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}

	return ErrorTypeUnknown
}

// IsMalformedInput verifies if err is due to input not holding two dates.
func IsMalformedInput(err error) bool {
	return TypeOf(err) == ErrorTypeMalformedInput
}

// IsNoCoordinates verifies if err is due to a date without candidates.
func IsNoCoordinates(err error) bool {
	return TypeOf(err) == ErrorTypeNoCoordinates
}

// IsNoValidPairs verifies if err is due to an empty combination.
func IsNoValidPairs(err error) bool {
	return TypeOf(err) == ErrorTypeNoValidPairs
}
