package linalg

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Matrix4x4 is a row-major 4x4 transform applied to row vectors (v * M).
// Row 3 holds the translation and column 3 the homogeneous divisor.
type Matrix4x4 f32.Mat4

// Identity returns the multiplicative identity
func Identity() Matrix4x4 {
	return Matrix4x4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns an identity matrix translated by t
func Translation(t Vector3) Matrix4x4 {
	m := Identity()
	m.SetTranslation(t)
	return m
}

// RotX returns a rotation around the X axis by angle radians
func RotX(angle float32) Matrix4x4 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Matrix4x4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotY returns a rotation around the Y axis by angle radians
func RotY(angle float32) Matrix4x4 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Matrix4x4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotZ returns a rotation around the Z axis by angle radians
func RotZ(angle float32) Matrix4x4 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Matrix4x4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row i, column j
func (m Matrix4x4) At(i, j int) float32 {
	return m[i*4+j]
}

// Set stores v at row i, column j
func (m *Matrix4x4) Set(i, j int, v float32) {
	m[i*4+j] = v
}

// SetTranslation overwrites the translation row
func (m *Matrix4x4) SetTranslation(t Vector3) {
	m[12], m[13], m[14] = t.X, t.Y, t.Z
}

// Mul returns m * b
func (m Matrix4x4) Mul(b Matrix4x4) Matrix4x4 {
	var c Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			c[i*4+j] = m[i*4]*b[j] +
				m[i*4+1]*b[4+j] +
				m[i*4+2]*b[8+j] +
				m[i*4+3]*b[12+j]
		}
	}
	return c
}

// Transposed returns the transpose of m
func (m Matrix4x4) Transposed() Matrix4x4 {
	var t Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			t[j*4+i] = m[i*4+j]
		}
	}
	return t
}

// Inverse computes the inverse with Gauss-Jordan elimination and partial
// pivoting. A singular matrix yields the identity rather than an error.
func (m Matrix4x4) Inverse() Matrix4x4 {
	s := Identity()
	t := m

	for i := 0; i < 3; i++ {
		pivot := i
		pivotSize := math32.Abs(t.At(i, i))
		for j := i + 1; j < 4; j++ {
			if tmp := math32.Abs(t.At(j, i)); tmp > pivotSize {
				pivot = j
				pivotSize = tmp
			}
		}

		if pivotSize == 0 {
			return Identity()
		}

		if pivot != i {
			for j := 0; j < 4; j++ {
				t[i*4+j], t[pivot*4+j] = t[pivot*4+j], t[i*4+j]
				s[i*4+j], s[pivot*4+j] = s[pivot*4+j], s[i*4+j]
			}
		}

		for j := i + 1; j < 4; j++ {
			f := t.At(j, i) / t.At(i, i)
			for k := 0; k < 4; k++ {
				t[j*4+k] -= f * t[i*4+k]
				s[j*4+k] -= f * s[i*4+k]
			}
		}
	}

	for i := 3; i >= 0; i-- {
		f := t.At(i, i)
		if f == 0 {
			return Identity()
		}

		for j := 0; j < 4; j++ {
			t[i*4+j] /= f
			s[i*4+j] /= f
		}

		for j := 0; j < i; j++ {
			f = t.At(j, i)
			for k := 0; k < 4; k++ {
				t[j*4+k] -= f * t[i*4+k]
				s[j*4+k] -= f * s[i*4+k]
			}
		}
	}

	return s
}

// MultVec transforms a point, including translation and the homogeneous divide
func (m Matrix4x4) MultVec(v Vector3) Vector3 {
	w := v.X*m[3] + v.Y*m[7] + v.Z*m[11] + m[15]
	return Vector3{
		X: (v.X*m[0] + v.Y*m[4] + v.Z*m[8] + m[12]) / w,
		Y: (v.X*m[1] + v.Y*m[5] + v.Z*m[9] + m[13]) / w,
		Z: (v.X*m[2] + v.Y*m[6] + v.Z*m[10] + m[14]) / w,
	}
}

// MultDir transforms a direction, ignoring translation
func (m Matrix4x4) MultDir(v Vector3) Vector3 {
	return Vector3{
		X: v.X*m[0] + v.Y*m[4] + v.Z*m[8],
		Y: v.X*m[1] + v.Y*m[5] + v.Z*m[9],
		Z: v.X*m[2] + v.Y*m[6] + v.Z*m[10],
	}
}
