// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package workdir

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS is the filesystem used to create and remove temporary directories.
// Default is the OS filesystem, but can be replaced with a mock for testing.
var FS afero.Fs = afero.NewOsFs()

// TempDirPath returns the directory in which temporary directories are created.
var TempDirPath = os.TempDir

// Getwd returns the process working directory.
var Getwd = os.Getwd

// Chdir changes the process working directory.
var Chdir = os.Chdir

// tempDirPrefix is prepended to the random name of each temporary directory.
const tempDirPrefix = "intempdir_"

// Current returns the absolute path of the process working directory.
func Current() (string, error) {
	wd, err := Getwd()
	if err != nil {
		return "", err
	}

	return filepath.Abs(wd)
}

// CreateTemp creates a new, empty, uniquely named directory under TempDirPath
// and returns its absolute path.
func CreateTemp() (string, error) {
	dir, err := afero.TempDir(FS, TempDirPath(), tempDirPrefix)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		// Don't leave the directory behind if we cannot hand it out.
		_ = FS.RemoveAll(dir)
		return "", err
	}

	return abs, nil
}

// Change sets the process working directory to dir.
func Change(dir string) error {
	return Chdir(dir)
}

// Remove recursively deletes dir and everything below it.
// A directory that does not exist is not an error.
func Remove(dir string) error {
	return FS.RemoveAll(dir)
}
