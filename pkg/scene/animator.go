package scene

import (
	"fmt"

	"raycaster/pkg/linalg"
)

// Track moves one object every frame by transforming its center
type Track struct {
	Index int
	Step  linalg.Matrix4x4
}

// Animator advances the camera and a set of objects by a fixed step per
// frame. It must only run between frames, never while workers render.
type Animator struct {
	CameraStep linalg.Matrix4x4
	Tracks     []Track
	frames     int
}

// DefaultAnimation returns the motion of the demo world built by
// NewDefaultScene: the camera orbits and every object except the
// central sphere drifts on its own rotation.
func DefaultAnimation() *Animator {
	rx, ry, rz := linalg.RotX, linalg.RotY, linalg.RotZ

	return &Animator{
		CameraStep: ry(0.008).Mul(rx(0.01)).Mul(rz(-0.02)),
		Tracks: []Track{
			{Index: 1, Step: rx(-0.06).Mul(rx(-0.002)).Mul(rz(-0.01))},
			{Index: 3, Step: ry(0.008).Mul(rz(0.013)).Mul(ry(0.004))},
			{Index: 0, Step: rz(-0.002).Mul(rx(0.01)).Mul(ry(0.01))},
			{Index: 4, Step: rz(0.002).Mul(rx(-0.06)).Mul(ry(-0.007))},
			{Index: 5, Step: rz(0.009).Mul(rx(-0.004)).Mul(ry(-0.01))},
			{Index: 6, Step: rz(-0.003).Mul(rx(0.008)).Mul(ry(0.002))},
		},
	}
}

// Validate checks that every track points at a movable object
func (a *Animator) Validate(s *Scene) error {
	for _, tr := range a.Tracks {
		if tr.Index < 0 || tr.Index >= len(s.Objects) {
			return fmt.Errorf("animation track index %d out of range (%d objects)", tr.Index, len(s.Objects))
		}
		if _, ok := s.Objects[tr.Index].(Movable); !ok {
			return fmt.Errorf("object %d cannot be moved", tr.Index)
		}
	}
	return nil
}

// Step applies one frame of motion to the scene
func (a *Animator) Step(s *Scene) {
	s.Options.CameraToWorld = s.Options.CameraToWorld.Mul(a.CameraStep)

	for _, tr := range a.Tracks {
		if tr.Index < 0 || tr.Index >= len(s.Objects) {
			continue
		}
		if m, ok := s.Objects[tr.Index].(Movable); ok {
			m.SetCenter(tr.Step.MultVec(m.Center()))
		}
	}
	a.frames++
}

// Frames returns how many steps have been applied
func (a *Animator) Frames() int {
	return a.frames
}
