package vertex_test

import (
	"testing"

	"github.com/katalvlaran/qem/mat4"
	"github.com/katalvlaran/qem/vertex"
)

// benchQuadric is a representative well-conditioned quadric for benchmarks.
func benchQuadric() mat4.Mat4 {
	return mat4.FromRows([16]float64{
		4, 1, 0, 2,
		1, 3, 1, -3,
		0, 1, 5, 8,
		2, -3, 8, 0,
	})
}

// BenchmarkRevised measures the 3×3 SVD-based solve.
func BenchmarkRevised(b *testing.B) {
	q := benchQuadric()
	v0 := mat4.Vec3{1, 2, 3}

	b.ResetTimer() // ignore fixture setup
	for i := 0; i < b.N; i++ {
		_, _ = vertex.Revised(q, v0, 0.05, nil)
	}
}

// BenchmarkOptimal measures the 4×4 constrained LU solve.
func BenchmarkOptimal(b *testing.B) {
	q := benchQuadric()
	v0 := mat4.Vec3{1, 2, 3}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vertex.Optimal(q, v0, 0.05, nil)
	}
}

// BenchmarkOptimalVertexRevised measures the flat-buffer boundary overhead
// on top of the inner solve.
func BenchmarkOptimalVertexRevised(b *testing.B) {
	q := benchQuadric()
	v0 := []float64{1, 2, 3}
	vOut := make([]float64, vertex.OutLen)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vertex.OptimalVertexRevised(q[:], v0, 0.05, vOut)
	}
}
