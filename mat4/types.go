// Package mat4: core value types and layout conversions.
package mat4

import "gonum.org/v1/gonum/mat"

// Order is the number of rows (and columns) of a Mat4.
const Order = 4

// Mat4 is a 4×4 matrix of float64, stored flat in column-major order:
// element (r,c) is m[c*4+r]. The zero value is the zero matrix.
type Mat4 [Order * Order]float64

// Vec3 is a 3-component vector. The zero value is the origin.
type Vec3 [3]float64

// Vec4 is a 4-component (homogeneous) vector.
type Vec4 [4]float64

// At returns element (r,c). Indices outside [0,4) are a programmer error
// and panic via the array bounds check.
func (m Mat4) At(r, c int) float64 { return m[c*Order+r] }

// Set assigns element (r,c).
func (m *Mat4) Set(r, c int, v float64) { m[c*Order+r] = v }

// Identity returns the 4×4 identity matrix.
func Identity() Mat4 {
	var m Mat4
	for i := 0; i < Order; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// FromRows builds a Mat4 from row-major element order, which is how matrix
// literals read naturally in source code. The result is still stored
// column-major internally.
func FromRows(rows [Order * Order]float64) Mat4 {
	var m Mat4
	for r := 0; r < Order; r++ {
		for c := 0; c < Order; c++ {
			m.Set(r, c, rows[r*Order+c])
		}
	}
	return m
}

// Transpose returns mᵀ.
func (m Mat4) Transpose() Mat4 {
	var t Mat4
	for r := 0; r < Order; r++ {
		for c := 0; c < Order; c++ {
			t.Set(c, r, m.At(r, c))
		}
	}
	return t
}

// dense converts m to a gonum *mat.Dense, reordering from column-major
// storage to gonum's row-major layout.
func (m Mat4) dense() *mat.Dense {
	data := make([]float64, Order*Order)
	for r := 0; r < Order; r++ {
		for c := 0; c < Order; c++ {
			data[r*Order+c] = m.At(r, c)
		}
	}
	return mat.NewDense(Order, Order, data)
}

// fromDense converts a 4×4 gonum matrix back into a column-major Mat4.
func fromDense(d mat.Matrix) Mat4 {
	var m Mat4
	for r := 0; r < Order; r++ {
		for c := 0; c < Order; c++ {
			m.Set(r, c, d.At(r, c))
		}
	}
	return m
}
