// Package qem is a small numerics library for quadric-error-metric mesh
// simplification: it computes where to place the merged vertex of an edge
// collapse, plus the fixed-size dense linear algebra that computation needs.
//
// 🚀 What is qem?
//
//	A pure-Go pair of packages built on gonum's decompositions:
//		• vertex/ — the optimal collapsed-vertex solvers: a 3×3 Tikhonov-
//		  regularized least-squares variant (SVD, minimum-norm, never fails)
//		  and a 4×4 constrained homogeneous variant (exact solve with an
//		  explicit fallback to the reference vertex)
//		• mat4/   — 4×4 / 3-vector primitives: multiply, cross product,
//		  exact inverse, pseudo-inverse, robust inverse, LDLT solve
//
// ✨ Why choose qem?
//
//   - Robust by construction — singular and rank-deficient quadrics degrade
//     gracefully instead of failing
//   - Boundary-friendly — flat []float64 wrappers with a documented
//     column-major layout for foreign callers
//   - Stateless & concurrent — every call is a pure function of its inputs
//
// The broader simplification pipeline (edge selection, priority queues,
// cost bookkeeping) is deliberately out of scope: callers supply the
// quadric Q, the reference vertex v0 and the regularization weight λ, and
// consume the resulting homogeneous position.
//
//	go get github.com/katalvlaran/qem
package qem
