// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workdir

import (
	"os"

	"github.com/spf13/afero"
)

// errorFS is a filesystem wrapper that fails removal of a specific path.
type errorFS struct {
	afero.Fs
	// Path that should generate an error
	errorPath string
}

// Remove implements afero.Fs.
func (e *errorFS) Remove(name string) error {
	if name == e.errorPath {
		return os.ErrPermission
	}

	return e.Fs.Remove(name)
}

// RemoveAll implements afero.Fs.
func (e *errorFS) RemoveAll(path string) error {
	if path == e.errorPath {
		return os.ErrPermission
	}

	return e.Fs.RemoveAll(path)
}

// Name implements afero.Fs.
func (e *errorFS) Name() string {
	return "errorFS"
}
