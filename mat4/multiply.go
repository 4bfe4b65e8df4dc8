// Package mat4: matrix and matrix-vector products.
// These are unrolled fixed-size loops; no decomposition library is needed
// for plain products.
package mat4

// Mul returns the matrix product m·n.
// Complexity: O(1) — 64 multiply-adds; Memory: O(1).
func (m Mat4) Mul(n Mat4) Mat4 {
	var (
		out  Mat4
		sum  float64
		r, c int
		k    int
	)
	for c = 0; c < Order; c++ {
		for r = 0; r < Order; r++ {
			sum = 0
			for k = 0; k < Order; k++ { // sum m[r][k]*n[k][c]
				sum += m.At(r, k) * n.At(k, c)
			}
			out.Set(r, c, sum)
		}
	}
	return out
}

// MulVec returns the product m·v.
// Complexity: O(1) — 16 multiply-adds; Memory: O(1).
func (m Mat4) MulVec(v Vec4) Vec4 {
	var (
		out Vec4
		sum float64
	)
	for r := 0; r < Order; r++ {
		sum = 0
		for k := 0; k < Order; k++ {
			sum += m.At(r, k) * v[k]
		}
		out[r] = sum
	}
	return out
}
