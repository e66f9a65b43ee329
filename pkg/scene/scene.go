package scene

import "raycaster/pkg/linalg"

// Options are the per-frame render settings
type Options struct {
	Width         int
	Height        int
	FOV           float32 // Vertical field of view in degrees
	Background    linalg.Vector3
	MaxDepth      int
	CameraToWorld linalg.Matrix4x4
}

// DefaultOptions returns the standard render settings
func DefaultOptions() Options {
	return Options{
		Width:         640,
		Height:        480,
		FOV:           55.7,
		Background:    linalg.Splat(0.01),
		MaxDepth:      5,
		CameraToWorld: linalg.Identity(),
	}
}

// Scene owns the objects and lights of a render. Renderers only read it;
// mutation happens between frames on the control goroutine.
type Scene struct {
	Objects []Object
	Lights  []Light
	Options Options
}

// New creates an empty scene
func New(opts Options) *Scene {
	return &Scene{Options: opts}
}

// AddObject appends an object to the scene
func (s *Scene) AddObject(o Object) {
	s.Objects = append(s.Objects, o)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(l Light) {
	s.Lights = append(s.Lights, l)
}

// Release frees every object and light and empties both collections.
// It returns the number of entities released; calling it again is a no-op.
func (s *Scene) Release() int {
	released := 0

	for i, o := range s.Objects {
		if r, ok := o.(Releaser); ok {
			r.Release()
		}
		s.Objects[i] = nil
		released++
	}
	for i, l := range s.Lights {
		if r, ok := l.(Releaser); ok {
			r.Release()
		}
		s.Lights[i] = nil
		released++
	}

	s.Objects = nil
	s.Lights = nil
	return released
}
