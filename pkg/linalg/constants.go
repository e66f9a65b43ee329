package linalg

import "github.com/chewxy/math32"

const (
	// Infinity is the distance reported for lights that never attenuate.
	Infinity float32 = math32.MaxFloat32

	// Epsilon is the smallest meaningful difference between two distances.
	Epsilon float32 = 1e-8

	// HitBias is subtracted from every reported hit distance so that
	// secondary rays spawned at a hit point do not re-hit the same surface.
	HitBias = Epsilon * 10000
)

// Deg2Rad converts degrees to radians
func Deg2Rad(deg float32) float32 {
	return deg * math32.Pi / 180
}
