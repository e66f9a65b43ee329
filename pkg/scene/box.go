package scene

import (
	"github.com/chewxy/math32"

	"raycaster/pkg/linalg"
)

// Box is an axis-aligned cube
type Box struct {
	min, max linalg.Vector3
	center   linalg.Vector3
	side     float32
	material Material
}

// NewBox creates a cube with the given center and side length
func NewBox(center linalg.Vector3, side float32) *Box {
	b := &Box{side: side, material: DefaultMaterial()}
	b.SetCenter(center)
	return b
}

// Center returns the cube center
func (b *Box) Center() linalg.Vector3 {
	return b.center
}

// SetCenter moves the cube and recomputes its corners
func (b *Box) SetCenter(c linalg.Vector3) {
	half := linalg.Splat(b.side / 2)
	b.center = c
	b.min = c.Sub(half)
	b.max = c.Add(half)
}

// Material returns the cube material
func (b *Box) Material() *Material {
	return &b.material
}

// Intersect runs the slab test over the three axes
func (b *Box) Intersect(ray linalg.Ray) (float32, bool) {
	tNear := -linalg.Infinity
	tFar := linalg.Infinity

	for axis := 0; axis < 3; axis++ {
		o := ray.Origin.Get(axis)
		d := ray.Direction.Get(axis)
		lo, hi := b.min.Get(axis), b.max.Get(axis)

		if d == 0 {
			// Parallel to this slab: the origin must already be inside it
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tNear = math32.Max(tNear, t1)
		tFar = math32.Min(tFar, t2)

		if tNear > tFar || tFar < 0 {
			return 0, false
		}
	}

	t := tNear
	if t < 0 {
		// Origin inside the box: report the exit point
		t = tFar
	}
	if t >= linalg.Infinity {
		return 0, false
	}

	return t - linalg.HitBias, true
}

// SurfaceNormal returns the normal of the face containing the hit point
func (b *Box) SurfaceNormal(hit, _ linalg.Vector3) linalg.Vector3 {
	return hit.Sub(b.center).MaxComponentMask().Normalized()
}
