package scene

import "raycaster/pkg/linalg"

// Object is anything a ray can hit
type Object interface {
	// Intersect returns the distance along the ray to the nearest
	// surface point in front of the origin
	Intersect(ray linalg.Ray) (float32, bool)

	// SurfaceNormal returns the shading normal at a hit point
	SurfaceNormal(hit, viewDir linalg.Vector3) linalg.Vector3

	// Material returns the mutable shading attributes
	Material() *Material
}

// Movable is implemented by objects that can be re-centered between frames
type Movable interface {
	Center() linalg.Vector3
	SetCenter(c linalg.Vector3)
}

// Releaser is an optional hook for entities holding resources beyond
// their own memory, such as light probes or textures. Scene.Release
// calls it once per entity. The built-in shapes and lights have nothing
// to free and do not implement it.
type Releaser interface {
	Release()
}
