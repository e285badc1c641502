// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package intempdir

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrCreation is returned when the temporary directory cannot be created.
	ErrCreation = errors.New("cannot create temporary directory")
	// ErrDirectoryChange is returned when the working directory cannot be read,
	// switched to the temporary directory, or restored.
	ErrDirectoryChange = errors.New("cannot change working directory")
	// ErrCleanup is returned when the temporary directory cannot be removed.
	ErrCleanup = errors.New("cannot remove temporary directory")
	// ErrScopeClosed is returned by Close on a scope that has already been closed.
	ErrScopeClosed = errors.New("scope already closed")
)

// BlockPanicError is returned when the function run inside a scope panics.
// It is constructed with the value that caused the panic.
type BlockPanicError struct {
	v any
}

// NewBlockPanicError creates a new BlockPanicError with the given value.
func NewBlockPanicError(v any) error {
	return &BlockPanicError{v: v}
}

// Error implements the error interface for BlockPanicError.
func (e *BlockPanicError) Error() string {
	prefix := "panic in temporary directory scope:"

	switch x := e.v.(type) {
	case string:
		return fmt.Sprintf("%s %s", prefix, x)
	case error:
		return fmt.Sprintf("%s %s", prefix, x.Error())
	default:
		return fmt.Sprintf("%s %v", prefix, x)
	}
}

// Unwrap returns the panic value if it was an error.
func (e *BlockPanicError) Unwrap() error {
	if err, ok := e.v.(error); ok {
		return err
	}

	return nil
}

// Value returns the value passed to panic.
func (e *BlockPanicError) Value() any {
	return e.v
}

// appendErr combines two errors, keeping a lone error as it is.
// When both are set, primary comes first.
func appendErr(primary, secondary error) error {
	switch {
	case secondary == nil:
		return primary
	case primary == nil:
		return secondary
	default:
		return multierror.Append(primary, secondary)
	}
}
