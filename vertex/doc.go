// Package vertex computes the optimal collapsed-vertex position for a mesh
// simplification edge collapse, from a quadric error matrix with
// Tikhonov-style regularization toward a reference vertex.
//
// 🚀 What does it solve?
//
//	An edge collapse merges two mesh vertices into one; the merged vertex
//	should sit where the accumulated quadric error
//
//	    E(v) = vᵗ·A·v + 2·bᵗ·v + c
//
//	is smallest. A is the 3×3 spatial block of the 4×4 quadric Q, b its
//	last column. Two solve strategies are provided:
//
//	  • Revised — minimizes E(v) + λ·‖v − v0‖² as an unconstrained 3×3
//	    least-squares problem. SVD-based: rank-deficient systems yield the
//	    minimum-norm solution instead of failing, so a position is always
//	    produced.
//	  • Optimal — folds the regularization into a 4×4 homogeneous system,
//	    pins the homogeneous row to [0,0,0,1] and solves exactly. A
//	    singular system or a degenerate homogeneous coordinate falls back
//	    to the reference vertex v0.
//
// ✨ Key properties:
//   - every computing path writes a complete [x,y,z,1] homogeneous point
//   - λ → ∞ pulls both solutions toward v0; λ = 0 recovers the raw
//     quadric minimizer
//   - stateless pure functions, safe for concurrent use on disjoint data
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/qem/vertex"
//
//	v, status := vertex.Optimal(q, v0, 0.05, nil)
//	if status == vertex.FellBack {
//	    // could not improve on the reference vertex: maybe skip collapse
//	}
//
// Flat-buffer wrappers (OptimalVertex, OptimalVertexRevised) expose the
// same routines over []float64 buffers for foreign callers; the 16-element
// quadric buffer is interpreted column-major.
//
// There is no logging in this package; pass Options.Hook to observe the
// numerical edge cases (singular system, rank deficiency, degenerate w).
package vertex
