// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main demonstrates running work inside a temporary working directory.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matt-FFFFFF/intempdir"
	"github.com/matt-FFFFFF/intempdir/internal/ctxlog"
)

type countArgs struct {
	Files int
}

func main() {
	ctx := ctxlog.New(context.Background(), ctxlog.DefaultLogger)

	err := intempdir.Run(ctx, func(_ context.Context, dir string) error {
		fmt.Println("working in", dir)
		return os.WriteFile("data.txt", []byte("scratch"), 0o644)
	})
	if err != nil {
		ctxlog.Error(ctx, "run failed", "error", err)
		os.Exit(1)
	}

	createFiles := intempdir.Wrap(func(_ context.Context, a countArgs) ([]string, error) {
		for i := 0; i < a.Files; i++ {
			if err := os.WriteFile(fmt.Sprintf("file-%d.txt", i), nil, 0o644); err != nil {
				return nil, err
			}
		}

		return filepath.Glob("*.txt")
	})

	names, err := createFiles(ctx, countArgs{Files: 3})
	if err != nil {
		ctxlog.Error(ctx, "wrapped function failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("created", names)
}
