package engine

import (
	"github.com/chewxy/math32"

	"raycaster/pkg/linalg"
	"raycaster/pkg/scene"
)

// Camera maps pixel coordinates to world space rays. It is computed once
// per frame from the scene options.
type Camera struct {
	origin        linalg.Vector3
	cameraToWorld linalg.Matrix4x4
	scale         float32
	aspect        float32
	width         int
	height        int
}

// NewCamera derives the per-frame camera from render options
func NewCamera(opts scene.Options) Camera {
	return Camera{
		origin:        opts.CameraToWorld.MultVec(linalg.Vector3{}),
		cameraToWorld: opts.CameraToWorld,
		scale:         math32.Tan(linalg.Deg2Rad(opts.FOV * 0.5)),
		aspect:        float32(opts.Width) / float32(opts.Height),
		width:         opts.Width,
		height:        opts.Height,
	}
}

// PrimaryRay returns the normalized ray through the center of pixel (i, j)
func (c Camera) PrimaryRay(i, j int) linalg.Ray {
	x := (2*(float32(i)+0.5)/float32(c.width) - 1) * c.aspect * c.scale
	y := (1 - 2*(float32(j)+0.5)/float32(c.height)) * c.scale

	dir := c.cameraToWorld.MultDir(linalg.Vec3(x, y, -1))
	dir.Normalize()
	return linalg.Ray{Origin: c.origin, Direction: dir}
}
