// Package mat4: LDLT solve for symmetric 4×4 systems.
// LDLTSolve factors a = L·D·Lᵀ (L unit lower triangular, D diagonal) and
// solves by substitution. Unlike Cholesky this tolerates indefinite a, but
// it uses no pivoting, so a zero pivot is reported rather than repaired.
package mat4

import "fmt"

// LDLTSolve solves a·x = b for symmetric a. Only the lower triangle of a is
// read; symmetry is the caller's contract and is not verified.
// Returns ErrZeroPivot if the factorization hits a zero diagonal entry.
// Complexity: O(1) — fixed 4×4 factorization; Memory: O(1).
func LDLTSolve(a Mat4, b Vec4) (Vec4, error) {
	// Stage 1: Factorize a = L·D·Lᵀ (Doolittle-style, column by column).
	var (
		l    Mat4           // unit lower triangular factor
		d    [Order]float64 // diagonal of D
		sum  float64        // dot-product accumulator
		i, j int
		k    int
	)
	for j = 0; j < Order; j++ {
		// d[j] = a[j][j] - Σ_{k<j} L[j][k]²·d[k]
		sum = a.At(j, j)
		for k = 0; k < j; k++ {
			sum -= l.At(j, k) * l.At(j, k) * d[k]
		}
		if sum == 0 {
			return Vec4{}, fmt.Errorf("LDLTSolve: pivot %d: %w", j, ErrZeroPivot)
		}
		d[j] = sum
		l.Set(j, j, 1)
		// L[i][j] = (a[i][j] - Σ_{k<j} L[i][k]·L[j][k]·d[k]) / d[j]
		for i = j + 1; i < Order; i++ {
			sum = a.At(i, j)
			for k = 0; k < j; k++ {
				sum -= l.At(i, k) * l.At(j, k) * d[k]
			}
			l.Set(i, j, sum/d[j])
		}
	}

	// Stage 2: Forward substitution L·y = b.
	var y Vec4
	for i = 0; i < Order; i++ {
		sum = b[i]
		for k = 0; k < i; k++ {
			sum -= l.At(i, k) * y[k]
		}
		y[i] = sum
	}

	// Stage 3: Diagonal scale z = D⁻¹·y, then back substitution Lᵀ·x = z.
	var x Vec4
	for i = Order - 1; i >= 0; i-- {
		sum = y[i] / d[i]
		for k = i + 1; k < Order; k++ {
			sum -= l.At(k, i) * x[k]
		}
		x[i] = sum
	}

	return x, nil
}
