// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for constructors and kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// mustFromSlice builds a rows×cols matrix from row-major vals or fails the test.
func mustFromSlice[T any](t testing.TB, rows, cols int, vals ...T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromSlice(rows, cols, vals)
	require.NoError(t, err)

	return m
}

// randMatrix fills a rows×cols float64 matrix deterministically from seed.
func randMatrix(t testing.TB, rows, cols int, seed int64) *matrix.Matrix[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.New(rows, cols, func(int, int) float64 { return rng.Float64()*2 - 1 })
	require.NoError(t, err)

	return m
}
