// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package workdir owns every read and write of the process working directory,
// together with creation and removal of the temporary directories that the
// intempdir package switches into.
//
// The working directory is process-wide state. Nothing in this package locks
// it; callers must not use it from more than one goroutine at a time.
package workdir
