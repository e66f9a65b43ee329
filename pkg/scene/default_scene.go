package scene

import "raycaster/pkg/linalg"

// DefaultCameraPosition is where the demo camera starts
var DefaultCameraPosition = linalg.Vec3(0, 1, 15)

var (
	sphereSpecular = [5]float32{0.01, 0.06, 0.1, 0.15, 0.2}
	sphereRadius   = [5]float32{0.7, 0.7, 2, 0.7, 0.7}
	sphereColors   = [5]linalg.Vector3{
		linalg.RGB255(255, 242, 204),
		linalg.RGB255(237, 85, 59),
		linalg.RGB255(207, 227, 226),
		linalg.RGB255(32, 99, 155),
		linalg.RGB255(253, 50, 89),
	}
)

// NewDefaultScene builds the demo world: a row of five spheres with a
// plain one in the middle, two cubes and three lights. The camera
// translation in opts is replaced by cameraPos.
func NewDefaultScene(opts Options, cameraPos linalg.Vector3) *Scene {
	opts.CameraToWorld.SetTranslation(cameraPos)
	s := New(opts)

	n := 2
	for k := 0; k < 5; k++ {
		x := float32(2*k-4) * 1.8

		var obj Object
		if k == 2 {
			obj = NewSphere(linalg.Vector3{}, sphereRadius[k])
		} else {
			obj = NewPerturbedSphere(linalg.Translation(linalg.Vec3(x, 0, 0)), sphereRadius[k])
		}

		m := obj.Material()
		m.N = n
		m.Ks = sphereSpecular[k]
		m.Color = sphereColors[k]
		s.AddObject(obj)

		n *= 3
	}

	cubeOne := NewBox(linalg.Vec3(2.5, -2.5, 2.5), 1)
	cubeOne.Material().N = 15
	cubeOne.Material().Color = linalg.RGB255(108, 216, 212)

	cubeTwo := NewBox(linalg.Vec3(-2.5, 2.5, -2.5), 1)
	cubeTwo.Material().N = 15
	cubeTwo.Material().Color = linalg.RGB255(216, 108, 112)

	s.AddObject(cubeOne)
	s.AddObject(cubeTwo)

	s.AddLight(NewPointLight(linalg.Vec3(10, 10, 10), linalg.RGB255(216, 108, 112), 19000))
	s.AddLight(NewPointLight(linalg.Vec3(-10, 10, -10), linalg.RGB255(201, 160, 220), 19000))
	s.AddLight(NewDistantLight(linalg.Vec3(0, -10, 0), linalg.RGB255(118, 196, 174), 3))

	return s
}
