package scene

import "raycaster/pkg/linalg"

// Sphere is a sphere given by its center and squared radius
type Sphere struct {
	center   linalg.Vector3
	radius   float32
	radius2  float32
	material Material
}

// NewSphere creates a sphere centered at center
func NewSphere(center linalg.Vector3, radius float32) *Sphere {
	return &Sphere{
		center:   center,
		radius:   radius,
		radius2:  radius * radius,
		material: DefaultMaterial(),
	}
}

// NewSphereTransformed creates a sphere centered at the origin of the
// object-to-world transform
func NewSphereTransformed(objectToWorld linalg.Matrix4x4, radius float32) *Sphere {
	return NewSphere(objectToWorld.MultVec(linalg.Vector3{}), radius)
}

// Center returns the sphere center
func (s *Sphere) Center() linalg.Vector3 {
	return s.center
}

// SetCenter moves the sphere
func (s *Sphere) SetCenter(c linalg.Vector3) {
	s.center = c
}

// Material returns the sphere material
func (s *Sphere) Material() *Material {
	return &s.material
}

// Intersect solves the ray/sphere quadratic. When the origin is inside
// the sphere the far root is reported.
func (s *Sphere) Intersect(ray linalg.Ray) (float32, bool) {
	l := ray.Origin.Sub(s.center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(l)
	c := l.Dot(l) - s.radius2

	t0, t1, ok := linalg.SolveQuadratic(a, b, c)
	if !ok {
		return 0, false
	}
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	if t0 < 0 {
		t0 = t1
		if t0 < 0 {
			return 0, false
		}
	}

	return t0 - linalg.HitBias, true
}

// SurfaceNormal returns the outward unit normal
func (s *Sphere) SurfaceNormal(hit, _ linalg.Vector3) linalg.Vector3 {
	return hit.Sub(s.center).Normalized()
}
