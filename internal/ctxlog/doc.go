// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger built on log/slog.
//
// The log level is read from the INTEMPDIR_LOG_LEVEL environment variable
// when the package is initialised and can be changed later through LevelVar.
package ctxlog
