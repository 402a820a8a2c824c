// SPDX-License-Identifier: MIT

// Package cli implements the linalg command line: cobra commands over the
// vector and matrix packages, configured through viper and logging with zap.
//
// Operands come from --a/--b flags or a YAML --file:
//
//	linalg dot --a 1,2,3 --b 4,5,6
//	linalg mul --a "1,2;3,4" --b "5,6;7,8" --pretty
//	linalg add --file operands.yaml
//
// Within a flag value, "," separates cells and ";" separates rows. Every key
// can also be set through LINALG_* environment variables or --config.
package cli
