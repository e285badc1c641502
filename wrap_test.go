// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package intempdir

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addArgs struct {
	X int
	Y *int
}

func TestWrap(t *testing.T) {
	original := keepWd(t)

	var during string

	add := func(_ context.Context, a addArgs) (int, error) {
		during = getwd(t)

		y := 2
		if a.Y != nil {
			y = *a.Y
		}

		return a.X + y, nil
	}

	wrapped := Wrap(add)

	got, err := wrapped(context.Background(), addArgs{X: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, got)
	assert.NotEqual(t, original, during, "wrapped function should run in the temporary directory")
	assert.NoDirExists(t, during)
	assert.Equal(t, original, getwd(t))

	y := 10
	got, err = wrapped(context.Background(), addArgs{X: 3, Y: &y})
	require.NoError(t, err)
	assert.Equal(t, 13, got)
}

func TestWrap_Error(t *testing.T) {
	original := keepWd(t)
	fnErr := errors.New("wrapped failure")

	wrapped := Wrap(func(context.Context, string) (string, error) {
		return "partial", fnErr
	})

	got, err := wrapped(context.Background(), "in")
	assert.Same(t, fnErr, err)
	assert.Equal(t, "partial", got)
	assert.Equal(t, original, getwd(t))
}

func TestWrapFunc(t *testing.T) {
	original := keepWd(t)

	var during string

	wrapped := WrapFunc(func(context.Context) error {
		during = getwd(t)
		return nil
	})

	require.NoError(t, wrapped(context.Background()))
	assert.NotEqual(t, original, during)
	assert.NoDirExists(t, during)
	assert.Equal(t, original, getwd(t))
}
