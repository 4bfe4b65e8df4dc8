// Package mat4: 3-vector cross product.
package mat4

// Cross returns the cross product a × b. The result is orthogonal to both
// inputs and follows the right-hand rule.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
