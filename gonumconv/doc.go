// SPDX-License-Identifier: MIT

// Package gonumconv bridges matrix.Matrix and vector.Vector with
// gonum.org/v1/gonum/mat.
//
// View exposes a matrix of any built-in kind as a read-only mat.Matrix
// without copying, so gonum kernels and mat.Formatted can consume it directly.
// ToDense/ToVecDense copy into gonum storage; FromMatrix/FromVector copy back
// out of any mat.Matrix or mat.Vector.
//
// Indexing note: gonum is 0-based, this module is 1-based. The shift happens
// only inside this package.
package gonumconv
