// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package intempdir

import (
	"context"

	"github.com/matt-FFFFFF/intempdir/internal/ctxlog"
)

// Func is the block of work run inside a temporary directory.
// dir is the absolute path of the temporary directory, which is also the
// working directory while the function runs.
type Func func(ctx context.Context, dir string) error

// Run calls fn inside a new temporary working directory and cleans up
// afterwards, whether fn returns an error, panics, or succeeds.
//
// An error from fn is returned unchanged when cleanup succeeds. If cleanup
// also fails, the returned error holds the error from fn followed by the
// cleanup errors. A panic in fn is recovered and returned as a
// *BlockPanicError.
func Run(ctx context.Context, fn Func) (err error) {
	scope, err := Enter(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			ctxlog.Error(ctx, "temporary directory block panicked", "panic", r)
			err = NewBlockPanicError(r)
		}

		err = appendErr(err, scope.Close(ctx))
	}()

	if fn == nil {
		return nil
	}

	return fn(ctx, scope.Path())
}

// Wrap returns a function with the same signature as fn that runs fn inside
// a new temporary working directory.
//
// The result of fn is returned as-is, also when cleanup fails afterwards.
func Wrap[A, R any](fn func(ctx context.Context, args A) (R, error)) func(ctx context.Context, args A) (R, error) {
	return func(ctx context.Context, args A) (R, error) {
		var result R

		err := Run(ctx, func(ctx context.Context, _ string) error {
			var fnErr error
			result, fnErr = fn(ctx, args)

			return fnErr
		})

		return result, err
	}
}

// WrapFunc is Wrap for functions that take no arguments and return only an error.
func WrapFunc(fn func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return Run(ctx, func(ctx context.Context, _ string) error {
			return fn(ctx)
		})
	}
}
