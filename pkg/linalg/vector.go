package linalg

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vector3 represents a point, a direction or an RGB color
type Vector3 struct {
	X, Y, Z float32
}

// Vec3 creates a vector from its components
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Splat creates a vector with all three components set to s
func Splat(s float32) Vector3 {
	return Vector3{X: s, Y: s, Z: s}
}

// RGB255 creates a color from components on the 0..255 scale
func RGB255(r, g, b float32) Vector3 {
	return Vector3{X: r / 255, Y: g / 255, Z: b / 255}
}

// Add adds two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub subtracts a vector from another
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Neg returns the opposite vector
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Mul multiplies two vectors component by component
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Div divides two vectors component by component
func (v Vector3) Div(other Vector3) Vector3 {
	return Vector3{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
	}
}

// Scale multiplies a vector by a scalar
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// DivScalar divides a vector by a scalar
func (v Vector3) DivScalar(s float32) Vector3 {
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot calculates the dot product of two vectors
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross calculates the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length2 returns the squared length of the vector
func (v Vector3) Length2() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of the vector
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.Length2())
}

// Normalize scales the vector to unit length in place.
// The zero vector is left unchanged.
func (v *Vector3) Normalize() {
	l2 := v.Length2()
	if l2 == 0 {
		return
	}
	inv := 1 / math32.Sqrt(l2)
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
}

// Normalized returns a unit length copy of the vector
func (v Vector3) Normalized() Vector3 {
	v.Normalize()
	return v
}

// Reflect mirrors the vector about the normal n
func (v Vector3) Reflect(n Vector3) Vector3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Get returns the component for axis 0, 1 or 2
func (v Vector3) Get(axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// MaxComponentMask keeps only the components with the largest
// absolute value and zeroes the rest. Ties keep every tied component.
func (v Vector3) MaxComponentMask() Vector3 {
	ax, ay, az := math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)
	m := math32.Max(ax, math32.Max(ay, az))

	var out Vector3
	if ax == m {
		out.X = v.X
	}
	if ay == m {
		out.Y = v.Y
	}
	if az == m {
		out.Z = v.Z
	}
	return out
}

// String implements fmt.Stringer
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
