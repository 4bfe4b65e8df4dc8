// Package mat4 provides fixed-size dense linear algebra for 4×4 matrices
// and 3/4-component vectors, the primitive layer under the qem vertex solver.
//
// 🚀 What is mat4?
//
//	A small float64 toolkit for homogeneous 3D geometry:
//	  • Mat4 — a 4×4 matrix stored as a flat [16]float64, column-major
//	  • Vec3 / Vec4 — plain fixed-size vectors
//	  • Multiply, transpose, cross product
//	  • Exact inverse, Moore–Penrose pseudo-inverse, robust inverse
//	  • LDLT solve for symmetric systems
//
// ✨ Why column-major?
//
//	The flat buffers crossing the package boundary follow the column-major
//	convention of the upstream geometry pipeline: element (r,c) of a Mat4 m
//	lives at m[c*4+r]. All constructors and accessors respect this order,
//	so callers never index the raw array directly.
//
// ⚙️ Decompositions are delegated to gonum.org/v1/gonum/mat; this package
// only adapts them to the fixed 4×4 shape and the column-major layout.
//
// All operations are pure functions of their inputs: no shared state, safe
// for concurrent use.
package mat4
