// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package intempdir

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/intempdir/internal/ctxlog"
	"github.com/matt-FFFFFF/intempdir/internal/workdir"
)

// Scope is an active temporary working directory.
// It is created by Enter and must be closed exactly once with Close.
type Scope struct {
	original string
	path     string
	closed   bool
}

// Enter records the current working directory, creates a new empty temporary
// directory and changes into it.
//
// If changing into the new directory fails, the directory is removed before
// Enter returns.
func Enter(ctx context.Context) (*Scope, error) {
	logger := ctxlog.Logger(ctx).With("component", "intempdir")

	original, err := workdir.Current()
	if err != nil {
		return nil, fmt.Errorf("%w: reading current directory: %w", ErrDirectoryChange, err)
	}

	path, err := workdir.CreateTemp()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreation, err)
	}

	if err := workdir.Change(path); err != nil {
		err = fmt.Errorf("%w: entering %q: %w", ErrDirectoryChange, path, err)
		if rmErr := workdir.Remove(path); rmErr != nil {
			logger.Warn("failed to remove temporary directory", "path", path, "error", rmErr)
			err = appendErr(err, fmt.Errorf("%w %q: %w", ErrCleanup, path, rmErr))
		}

		return nil, err
	}

	logger.Debug("entered temporary directory", "path", path, "original", original)

	return &Scope{
		original: original,
		path:     path,
	}, nil
}

// Path returns the absolute path of the temporary directory.
func (s *Scope) Path() string {
	return s.path
}

// OriginalDirectory returns the working directory recorded by Enter.
func (s *Scope) OriginalDirectory() string {
	return s.original
}

// Close restores the original working directory and then removes the
// temporary directory and everything in it.
// The removal is attempted even if the restore fails; both failures are
// reported in the returned error.
func (s *Scope) Close(ctx context.Context) (err error) {
	if s.closed {
		return ErrScopeClosed
	}

	s.closed = true

	logger := ctxlog.Logger(ctx).With("component", "intempdir", "path", s.path)

	defer func() {
		if rmErr := workdir.Remove(s.path); rmErr != nil {
			logger.Warn("failed to remove temporary directory", "error", rmErr)
			err = appendErr(err, fmt.Errorf("%w %q: %w", ErrCleanup, s.path, rmErr))

			return
		}

		logger.Debug("removed temporary directory")
	}()

	if chErr := workdir.Change(s.original); chErr != nil {
		logger.Warn("failed to restore working directory", "original", s.original, "error", chErr)
		return fmt.Errorf("%w: restoring %q: %w", ErrDirectoryChange, s.original, chErr)
	}

	logger.Debug("restored working directory", "original", s.original)

	return nil
}
