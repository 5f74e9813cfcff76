// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package fnerrors

import (
	"errors"
	"fmt"
)

type errKind int

const (
	kindGeneric errKind = iota
	kindBadInput
	kindInternal
)

type fnError struct {
	Err  error
	kind errKind
}

// New returns a new error for a format specifier and optional args.
func New(format string, args ...interface{}) error {
	return &fnError{Err: fmt.Errorf(format, args...), kind: kindGeneric}
}

// BadInputError represents a caller error: bad inputs, or incorrect use of an
// API surface.
func BadInputError(format string, args ...interface{}) error {
	return &fnError{Err: fmt.Errorf(format, args...), kind: kindBadInput}
}

// InternalError represents a condition that should not happen, and which if
// it does, is a bug in this repository.
func InternalError(format string, args ...interface{}) error {
	return &fnError{Err: fmt.Errorf(format, args...), kind: kindInternal}
}

func (e *fnError) Error() string { return e.Err.Error() }
func (e *fnError) Unwrap() error { return e.Err }

func IsBadInput(err error) bool {
	var fn *fnError
	return errors.As(err, &fn) && fn.kind == kindBadInput
}

func IsInternal(err error) bool {
	var fn *fnError
	return errors.As(err, &fn) && fn.kind == kindInternal
}

type dependencyFailedError struct {
	Name string
	Err  error
}

// DependencyFailed marks an error as coming from one of a computation's
// dependencies rather than from the computation itself, which provides for
// better attribution when reported.
func DependencyFailed(name string, err error) error {
	return &dependencyFailedError{Name: name, Err: err}
}

func (e *dependencyFailedError) Error() string {
	return fmt.Sprintf("resolving %s failed: %v", e.Name, e.Err)
}

func (e *dependencyFailedError) Unwrap() error { return e.Err }

func IsDependencyFailed(err error) bool {
	var dep *dependencyFailedError
	return errors.As(err, &dep)
}
