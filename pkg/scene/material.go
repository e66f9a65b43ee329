package scene

import "raycaster/pkg/linalg"

// Material holds the shading attributes of an object
type Material struct {
	Albedo  float32        // Diffuse reflectance multiplier
	Ambient linalg.Vector3 // Constant term added to every lit sample
	Kd      float32        // Diffuse weight
	Ks      float32        // Specular weight
	N       int            // Specular exponent
	Color   linalg.Vector3 // Base color
}

// DefaultMaterial returns the material every new object starts with
func DefaultMaterial() Material {
	return Material{
		Albedo:  0.12,
		Ambient: linalg.Splat(0.04),
		Kd:      0.7,
		Ks:      0.9,
		N:       10,
		Color:   linalg.Splat(1),
	}
}
