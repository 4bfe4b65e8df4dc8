// SPDX-License-Identifier: MIT
// Package mat4: sentinel error set.
// All operations in this package report failure through these sentinels,
// wrapped with fmt.Errorf("Op: ...: %w", ...) for context. Tests match them
// via errors.Is. No operation panics on user-triggered error conditions.

package mat4

import "errors"

var (
	// ErrSingular is returned when an exact inverse or solve is requested
	// for a matrix that is singular (or numerically indistinguishable from
	// singular) — use PseudoInverse or RobustInverse when a best-effort
	// answer is acceptable.
	ErrSingular = errors.New("mat4: singular matrix")

	// ErrFactorization is returned when an underlying decomposition fails
	// to converge. This does not occur for finite inputs in practice.
	ErrFactorization = errors.New("mat4: decomposition failed")

	// ErrZeroPivot is returned by LDLTSolve when a zero diagonal pivot is
	// encountered, i.e. the system has no LDLT factorization without
	// pivoting (intentional for determinism and simplicity).
	ErrZeroPivot = errors.New("mat4: zero pivot in LDLT")
)
