// Package vertex: the two optimal-vertex solve strategies.
//
// Both routines minimize the same regularized quadric objective
//
//	E(v) = vᵗ·A·v + 2·bᵗ·v + λ·‖v − v0‖²
//
// but encode the bias differently: Revised solves the unconstrained 3×3
// stationarity system with an SVD (always well-posed through the
// minimum-norm criterion), while Optimal keeps the full 4×4 homogeneous
// quadric, pins w=1 with a constraint row, and demands an invertible
// system, falling back to v0 otherwise. Callers pick the trade-off:
// Revised for robustness, Optimal for the literal quadric-error-metric
// formulation.
package vertex

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qem/mat4"
)

// machEps is the float64 machine epsilon, the unit for the SVD rank cutoff.
var machEps = math.Nextafter(1, 2) - 1

// spatial is the order of the quadric's spatial block.
const spatial = 3

// Revised computes the regularized optimal vertex from the 3×3 system
//
//	(A + λ·I)·v = −b + λ·v0
//
// where A is the upper-left 3×3 block of q and b is rows 0–2 of its last
// column. The solve is SVD-based: a singular or rank-deficient system
// yields the minimum-norm least-squares solution, so this routine always
// produces a position and always reports Solved. Rank deficiency and (the
// never-observed) SVD convergence failure are surfaced only through
// opts.Hook.
//
// The returned point is homogeneous with w = 1.
// Complexity: O(1) — one fixed-size 3×3 SVD; Memory: O(1).
func Revised(q mat4.Mat4, v0 mat4.Vec3, lambda float64, opts *Options) (mat4.Vec4, Status) {
	// Stage 1: Assemble the regularized system from the quadric blocks.
	var (
		lhs = mat.NewDense(spatial, spatial, nil)
		rhs [spatial]float64
		r   int
		c   int
	)
	for r = 0; r < spatial; r++ {
		for c = 0; c < spatial; c++ {
			lhs.Set(r, c, q.At(r, c))
		}
		lhs.Set(r, r, lhs.At(r, r)+lambda) // A + λ·I
		rhs[r] = -q.At(r, spatial) + lambda*v0[r]
	}

	// Stage 2: Factorize lhs = U·Σ·Vᵀ.
	var svd mat.SVD
	if ok := svd.Factorize(lhs, mat.SVDFull); !ok {
		// Keep the "always solved" contract: substitute v0, report via hook.
		opts.notify(ReasonFactorizationFailed)
		return homogeneous(v0), Solved
	}

	// Stage 3: Minimum-norm solve v = Σ_{σᵢ>tol} (uᵢ·rhs / σᵢ)·vᵢ.
	var (
		s    = svd.Values(nil) // singular values, descending
		u, v mat.Dense
		tol  = float64(spatial) * machEps * s[0]
		x    mat4.Vec3
		rank int
		dot  float64
		i, j int
	)
	svd.UTo(&u)
	svd.VTo(&v)
	for j = 0; j < spatial; j++ {
		if s[j] <= tol {
			break // remaining singular values are negligible
		}
		rank++
		dot = 0
		for i = 0; i < spatial; i++ { // uⱼ · rhs
			dot += u.At(i, j) * rhs[i]
		}
		dot /= s[j]
		for i = 0; i < spatial; i++ { // accumulate dot·vⱼ
			x[i] += dot * v.At(i, j)
		}
	}
	if rank < spatial {
		opts.notify(ReasonRankDeficient)
	}

	// Stage 4: Homogenize. A zero-rank system leaves x at the origin, the
	// minimum-norm stationary point of a constant objective.
	return mat4.Vec4{x[0], x[1], x[2], 1}, Solved
}

// Optimal computes the optimal vertex from the constrained homogeneous
// 4×4 system: M is q with λ added to its top-left three diagonal entries
// and row 3 overwritten with [0,0,0,1] to force w = 1; the right-hand side
// is [λ·v0, 1]. The solve is exact and reports invertibility explicitly.
//
// Policy on degenerate systems:
//   - not invertible → v0 extended with w=1, FellBack
//   - |w| ≤ opts.HomogeneousEps → v0 extended with w=1, FellBack
//   - otherwise the solution is re-homogenized (divided through by w,
//     which the constraint row holds at 1 up to floating error) → Solved
//
// Every path writes all four output components.
// Complexity: O(1) — one fixed-size 4×4 LU solve; Memory: O(1).
func Optimal(q mat4.Mat4, v0 mat4.Vec3, lambda float64, opts *Options) (mat4.Vec4, Status) {
	// Stage 1: Build M and the right-hand side.
	var (
		lhs = mat.NewDense(mat4.Order, mat4.Order, nil)
		rhs = mat.NewDense(mat4.Order, 1, nil)
		r   int
		c   int
	)
	for r = 0; r < mat4.Order; r++ {
		for c = 0; c < mat4.Order; c++ {
			lhs.Set(r, c, q.At(r, c))
		}
	}
	for r = 0; r < spatial; r++ {
		lhs.Set(r, r, lhs.At(r, r)+lambda) // regularize the spatial block only
		rhs.Set(r, 0, lambda*v0[r])
	}
	lhs.Set(spatial, 0, 0) // constraint row: w = 1
	lhs.Set(spatial, 1, 0)
	lhs.Set(spatial, 2, 0)
	lhs.Set(spatial, spatial, 1)
	rhs.Set(spatial, 0, 1)

	// Stage 2: Exact solve; a singular or near-singular M is reported
	// through the error and falls back to the reference vertex.
	var sol mat.Dense
	if err := sol.Solve(lhs, rhs); err != nil {
		opts.notify(ReasonSingular)
		return homogeneous(v0), FellBack
	}

	// Stage 3: Guard the homogeneous coordinate. The constraint row should
	// force w=1 exactly up to floating error, but a degenerate w is still
	// checked rather than divided through blindly.
	w := sol.At(spatial, 0)
	if math.Abs(w) <= opts.eps() {
		opts.notify(ReasonDegenerateW)
		return homogeneous(v0), FellBack
	}

	// Stage 4: Re-homogenize and return all four components.
	return mat4.Vec4{
		sol.At(0, 0) / w,
		sol.At(1, 0) / w,
		sol.At(2, 0) / w,
		w / w,
	}, Solved
}

// homogeneous extends a reference vertex with w = 1.
func homogeneous(v mat4.Vec3) mat4.Vec4 {
	return mat4.Vec4{v[0], v[1], v[2], 1}
}
