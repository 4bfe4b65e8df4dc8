// Package mat4: exact, pseudo- and robust inversion of 4×4 matrices.
// Inverse fails fast on singular input; PseudoInverse always produces the
// Moore–Penrose inverse via SVD; RobustInverse picks between the two based
// on an explicit invertibility check.
package mat4

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// machEps is the float64 machine epsilon.
var machEps = math.Nextafter(1, 2) - 1

// Inverse returns m⁻¹, or ErrSingular if m has no inverse to working
// precision.
// Complexity: O(1) — one fixed-size LU factorization; Memory: O(1).
func (m Mat4) Inverse() (Mat4, error) {
	// Stage 1: Delegate to gonum's dense inverse (LU-based).
	var inv mat.Dense
	if err := inv.Inverse(m.dense()); err != nil {
		// gonum reports exact and near singularity through the error.
		return Mat4{}, fmt.Errorf("Inverse: %w", ErrSingular)
	}

	// Stage 2: Convert back to column-major storage.
	return fromDense(&inv), nil
}

// PseudoInverse returns the Moore–Penrose pseudo-inverse m⁺ computed from
// the singular value decomposition m = U·Σ·Vᵀ as m⁺ = V·Σ⁺·Uᵀ, where Σ⁺
// reciprocates only singular values above a relative tolerance. For
// invertible m this coincides with m⁻¹; for singular m it yields the
// minimum-norm least-squares inverse.
// Returns ErrFactorization if the SVD fails to converge (not observed for
// finite inputs).
func (m Mat4) PseudoInverse() (Mat4, error) {
	// Stage 1: Factorize m = U·Σ·Vᵀ.
	var svd mat.SVD
	if ok := svd.Factorize(m.dense(), mat.SVDFull); !ok {
		return Mat4{}, fmt.Errorf("PseudoInverse: %w", ErrFactorization)
	}

	// Stage 2: Build Σ⁺, zeroing reciprocals of negligible singular values.
	s := svd.Values(nil) // descending order
	tol := float64(Order) * machEps * s[0]
	sigmaInv := mat.NewDense(Order, Order, nil)
	for i := 0; i < Order; i++ {
		if s[i] > tol {
			sigmaInv.Set(i, i, 1/s[i])
		}
	}

	// Stage 3: Assemble m⁺ = V·Σ⁺·Uᵀ.
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	var pinv mat.Dense
	pinv.Product(&v, sigmaInv, u.T())

	return fromDense(&pinv), nil
}

// RobustInverse returns an inverse of m that is always defined: the exact
// inverse when m is invertible, the Moore–Penrose pseudo-inverse otherwise.
// The boolean reports which path was taken (true = exact inverse).
func (m Mat4) RobustInverse() (Mat4, bool) {
	if inv, err := m.Inverse(); err == nil {
		return inv, true
	}
	// Singular: fall back to the pseudo-inverse, which cannot fail for the
	// finite inputs that made the exact inverse fail.
	pinv, _ := m.PseudoInverse()
	return pinv, false
}
