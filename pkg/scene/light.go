package scene

import (
	"github.com/chewxy/math32"

	"raycaster/pkg/linalg"
)

// Light is a source of illumination
type Light interface {
	// Illuminate returns the direction the light travels towards p, the
	// intensity arriving at p and the distance to the light
	Illuminate(p linalg.Vector3) (dir, intensity linalg.Vector3, distance float32)
}

// LightSource holds the photometric attributes shared by all lights
type LightSource struct {
	Color     linalg.Vector3
	Intensity float32
}

// radiance returns color scaled by intensity
func (l LightSource) radiance() linalg.Vector3 {
	return l.Color.Scale(l.Intensity)
}

// PointLight radiates from a position with inverse square falloff
type PointLight struct {
	LightSource
	Position linalg.Vector3
}

// NewPointLight creates a point light
func NewPointLight(position, color linalg.Vector3, intensity float32) *PointLight {
	return &PointLight{
		LightSource: LightSource{Color: color, Intensity: intensity},
		Position:    position,
	}
}

// Illuminate implements Light
func (l *PointLight) Illuminate(p linalg.Vector3) (linalg.Vector3, linalg.Vector3, float32) {
	dir := p.Sub(l.Position)
	r2 := dir.Length2()
	dist := math32.Sqrt(r2)
	if dist > 0 {
		dir = dir.DivScalar(dist)
	}
	intensity := l.radiance().DivScalar(4 * math32.Pi * r2)
	return dir, intensity, dist
}

// DistantLight shines in a fixed direction from infinitely far away
type DistantLight struct {
	LightSource
	Direction linalg.Vector3
}

// NewDistantLight creates a directional light; dir is normalized
func NewDistantLight(dir, color linalg.Vector3, intensity float32) *DistantLight {
	return &DistantLight{
		LightSource: LightSource{Color: color, Intensity: intensity},
		Direction:   dir.Normalized(),
	}
}

// Illuminate implements Light
func (l *DistantLight) Illuminate(linalg.Vector3) (linalg.Vector3, linalg.Vector3, float32) {
	return l.Direction, l.radiance(), linalg.Infinity
}
