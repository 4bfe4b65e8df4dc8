// Package vertex: flat-buffer boundary wrappers.
//
// These adapt Optimal and Revised to the plain-buffer calling convention
// used across the foreign-function boundary: no package types, only
// []float64 slices and a boolean result. The inner value-returning API is
// the one to use from Go code.
package vertex

import "github.com/katalvlaran/qem/mat4"

const (
	// QuadricLen is the required length of a flat quadric buffer: a 4×4
	// matrix in column-major order, element (r,c) at index c*4+r. The
	// quadric is conventionally symmetric, but only the column order of
	// the b block (indices 12..14, column 3 rows 0–2) is load-bearing.
	QuadricLen = 16

	// RefLen is the number of reference-vertex components read; a longer
	// (homogeneous) buffer is accepted and its tail ignored.
	RefLen = 3

	// OutLen is the required output-buffer length: [x, y, z, w].
	OutLen = 4
)

// OptimalVertex is the flat-buffer form of Optimal: the 4×4 constrained
// homogeneous solve.
//
// q must hold at least QuadricLen values (column-major), v0 at least
// RefLen, vOut at least OutLen. A nil or short buffer makes the call
// return false without touching vOut — the only input validation
// performed; values are not inspected. On any computing path all four
// components of vOut are overwritten: the solved position on success, v0
// extended with w=1 on fallback. The result is true only for a genuine
// solve; callers that need to distinguish "absent input" from "fallback"
// must check the buffers themselves.
func OptimalVertex(q, v0 []float64, lambda float64, vOut []float64) bool {
	if len(q) < QuadricLen || len(v0) < RefLen || len(vOut) < OutLen {
		return false
	}
	out, status := Optimal(quadric(q), reference(v0), lambda, nil)
	copy(vOut, out[:])
	return status == Solved
}

// OptimalVertexRevised is the flat-buffer form of Revised: the 3×3
// regularized least-squares solve. Buffer requirements and the
// no-write-on-invalid-input rule match OptimalVertex; on every computing
// path the result is true and vOut holds [x, y, z, 1].
func OptimalVertexRevised(q, v0 []float64, lambda float64, vOut []float64) bool {
	if len(q) < QuadricLen || len(v0) < RefLen || len(vOut) < OutLen {
		return false
	}
	out, status := Revised(quadric(q), reference(v0), lambda, nil)
	copy(vOut, out[:])
	return status == Solved
}

// quadric copies a flat column-major buffer into a Mat4, which shares the
// same storage order.
func quadric(q []float64) mat4.Mat4 {
	var m mat4.Mat4
	copy(m[:], q)
	return m
}

// reference extracts the three meaningful components of v0.
func reference(v0 []float64) mat4.Vec3 {
	return mat4.Vec3{v0[0], v0[1], v0[2]}
}
