// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package intempdir runs a block of work inside a freshly created temporary
// directory.
//
// On entry the current working directory is recorded, a new empty directory
// is created under os.TempDir and the process changes into it. On exit the
// original working directory is restored first and the temporary directory is
// then removed recursively. Removal is attempted even if the restore fails.
//
//	err := intempdir.Run(ctx, func(ctx context.Context, dir string) error {
//		return os.WriteFile("data.txt", []byte("hello"), 0o644)
//	})
//
// The working directory is process-wide. Scopes must be used sequentially or
// from a single goroutine, and nothing else in the process may read or change
// the working directory while a scope is active. No locking is done here.
//
// If restoring the original directory fails, the process is left in a
// directory that has since been removed. The returned error then matches
// ErrDirectoryChange.
package intempdir
