package vertex_test

import (
	"fmt"

	"github.com/katalvlaran/qem/mat4"
	"github.com/katalvlaran/qem/vertex"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRevised
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A well-conditioned quadric with spatial block diag(2,3,4) and linear
//	term b=(2,−3,8). With λ=0 the regularization is off, so the solver
//	returns the raw quadric minimizer A·v = −b regardless of v0.
//
// Complexity: O(1) — one 3×3 SVD.
func ExampleRevised() {
	q := mat4.FromRows([16]float64{
		2, 0, 0, 2,
		0, 3, 0, -3,
		0, 0, 4, 8,
		2, -3, 8, 0,
	})
	v0 := mat4.Vec3{5, 5, 5} // ignored at λ=0

	v, status := vertex.Revised(q, v0, 0, nil)
	fmt.Printf("status=%v\nv=[%.3f %.3f %.3f %.3f]\n", status == vertex.Solved, v[0], v[1], v[2], v[3])
	// Output:
	// status=true
	// v=[-1.000 1.000 -2.000 1.000]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleOptimal_fallback
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A degenerate (all-zero) quadric with λ=0 leaves the constrained 4×4
//	system singular: the solver cannot improve on the reference vertex,
//	writes it back with w=1 and reports the fallback.
func ExampleOptimal_fallback() {
	v0 := mat4.Vec3{0.5, 0.5, 0.5}

	v, status := vertex.Optimal(mat4.Mat4{}, v0, 0, nil)
	fmt.Printf("fellBack=%v\nv=[%.1f %.1f %.1f %.1f]\n", status == vertex.FellBack, v[0], v[1], v[2], v[3])
	// Output:
	// fellBack=true
	// v=[0.5 0.5 0.5 1.0]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleOptimalVertexRevised
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The flat-buffer boundary: the quadric arrives as a 16-element
//	column-major buffer and the result is written into a caller-owned
//	4-element buffer, mirroring a C-ABI calling convention.
func ExampleOptimalVertexRevised() {
	q := []float64{
		2, 0, 0, 2, // column 0
		0, 3, 0, -3, // column 1
		0, 0, 4, 8, // column 2
		2, -3, 8, 0, // column 3: rows 0–2 are b
	}
	vOut := make([]float64, vertex.OutLen)

	ok := vertex.OptimalVertexRevised(q, []float64{0, 0, 0}, 0, vOut)
	fmt.Printf("ok=%v vOut=[%.0f %.0f %.0f %.0f]\n", ok, vOut[0], vOut[1], vOut[2], vOut[3])
	// Output:
	// ok=true vOut=[-1 1 -2 1]
}
