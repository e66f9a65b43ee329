package scene

import (
	"github.com/chewxy/math32"

	"raycaster/internal/noise"
	"raycaster/pkg/linalg"
)

const (
	perturbFrequency = 50
	perturbAmplitude = 2.5e-10
	perturbSeedScale = 1e6
)

// PerturbedSphere shares the sphere geometry but jitters its shading
// normal with a repeatable function of the hit point, giving the surface
// a mottled look.
type PerturbedSphere struct {
	Sphere
}

// NewPerturbedSphere creates a perturbed sphere at the origin of the
// object-to-world transform
func NewPerturbedSphere(objectToWorld linalg.Matrix4x4, radius float32) *PerturbedSphere {
	return &PerturbedSphere{Sphere: *NewSphereTransformed(objectToWorld, radius)}
}

// SurfaceNormal returns the jittered normal. The result is
// not renormalized after scaling.
func (s *PerturbedSphere) SurfaceNormal(hit, _ linalg.Vector3) linalg.Vector3 {
	p := hit.Sub(s.center)

	pattern := math32.Sin(p.Y*perturbFrequency) *
		math32.Cos(p.X*perturbFrequency) *
		math32.Sin(p.Z*perturbFrequency)

	// Seeded from the position only so concurrent workers agree
	rng := noise.NewCRand(noise.Seed32(p.Y * p.X * p.Z * perturbSeedScale))
	jitter := linalg.Vec3(
		float32(rng.Int31()),
		float32(rng.Int31()),
		float32(rng.Int31()),
	)

	n := p.Normalized()
	n = n.Add(jitter.Scale(perturbAmplitude))
	return n.Scale((pattern*pattern + 0.7) / 1.7)
}
