package engine

import (
	"sync"
	"time"

	"github.com/chewxy/math32"

	"raycaster/internal/logger"
	"raycaster/internal/util"
	"raycaster/pkg/config"
	"raycaster/pkg/linalg"
	"raycaster/pkg/scene"
)

// FindNearest returns the closest object hit by the ray and the distance
// to it, or nil when the ray escapes
func FindNearest(ray linalg.Ray, objects []scene.Object) (scene.Object, float32) {
	var nearest scene.Object
	tNear := linalg.Infinity

	for _, obj := range objects {
		if t, ok := obj.Intersect(ray); ok && t < tNear {
			tNear = t
			nearest = obj
		}
	}
	return nearest, tNear
}

// Occluded reports whether the ray hits anything at all
func Occluded(ray linalg.Ray, objects []scene.Object) bool {
	obj, _ := FindNearest(ray, objects)
	return obj != nil
}

// binpow raises x to a non-negative integer power by repeated squaring
func binpow(x float32, n int) float32 {
	result := float32(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

// Raytracer shades rays against a scene and renders frames in parallel
type Raytracer struct {
	scene   *scene.Scene
	workers int
	gamma   float32
	logger  *logger.Logger

	// Pack converts the final channels into the sink's pixel format
	Pack PackFunc
}

// NewRaytracer creates a new raytracer for the scene
func NewRaytracer(sc *scene.Scene, cfg config.RenderConfig, log *logger.Logger) (*Raytracer, error) {
	if sc == nil {
		return nil, ErrSceneNotDefined
	}
	if cfg.Workers < 1 {
		return nil, ErrNoWorkers
	}

	return &Raytracer{
		scene:   sc,
		workers: cfg.Workers,
		gamma:   cfg.Gamma,
		logger:  log,
		Pack:    PackRGBA,
	}, nil
}

// Workers returns the number of goroutines spawned per frame
func (rt *Raytracer) Workers() int {
	return rt.workers
}

// CastRay returns the color seen along a ray. Depth only guards against
// runaway recursion: past MaxDepth the background is returned without
// testing any geometry.
func (rt *Raytracer) CastRay(orig, dir linalg.Vector3, depth int) linalg.Vector3 {
	opts := &rt.scene.Options
	if depth > opts.MaxDepth {
		return opts.Background
	}

	ray := linalg.Ray{Origin: orig, Direction: dir}
	obj, t := FindNearest(ray, rt.scene.Objects)
	if obj == nil {
		return opts.Background
	}

	hit := ray.At(t)
	normal := obj.SurfaceNormal(hit, dir)
	diffuse, specular := rt.illuminate(obj, hit, normal, dir)

	m := obj.Material()
	return diffuse.Scale(m.Albedo * m.Kd).Mul(m.Color).
		Add(specular.Scale(m.Ks).Mul(m.Color)).
		Add(m.Ambient)
}

// illuminate accumulates the diffuse and specular light arriving at a hit
// point. Lights whose shadow ray hits any object contribute nothing.
func (rt *Raytracer) illuminate(obj scene.Object, hit, normal, viewDir linalg.Vector3) (diffuse, specular linalg.Vector3) {
	exponent := obj.Material().N
	shadowOrigin := hit.Add(normal)

	for _, light := range rt.scene.Lights {
		lightDir, intensity, _ := light.Illuminate(hit)

		shadow := linalg.Ray{Origin: shadowOrigin, Direction: lightDir.Neg()}
		if Occluded(shadow, rt.scene.Objects) {
			continue
		}

		diffuse = diffuse.Add(intensity.Scale(math32.Max(0, normal.Dot(lightDir.Neg()))))

		r := lightDir.Reflect(normal)
		specular = specular.Add(intensity.Scale(binpow(math32.Max(0, r.Dot(viewDir.Neg())), exponent)))
	}
	return diffuse, specular
}

// toChannel applies the gamma curve and scales to 8 bits
func (rt *Raytracer) toChannel(c float32) uint8 {
	v := math32.Pow(c, rt.gamma) * 255
	if !(v > 0) {
		return 0
	}
	return uint8(util.Clamp(v, 0, 255))
}

// Render traces one frame into sink. Worker id renders every row j with
// j % workers == id, so workers write disjoint pixels and only meet at the
// final join. The scene must not be mutated until Render returns.
func (rt *Raytracer) Render(sink PixelSink) FrameStats {
	start := time.Now()
	cam := NewCamera(rt.scene.Options)

	stats := FrameStats{Workers: make([]WorkerStat, rt.workers)}

	var wg sync.WaitGroup
	for id := 0; id < rt.workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			stats.Workers[id] = rt.renderRows(id, cam, sink)
		}(id)
	}
	wg.Wait()

	stats.RenderTime = time.Since(start)
	return stats
}

// renderRows renders the rows owned by one worker
func (rt *Raytracer) renderRows(id int, cam Camera, sink PixelSink) WorkerStat {
	start := time.Now()
	width, height := rt.scene.Options.Width, rt.scene.Options.Height
	stat := WorkerStat{ID: id}

	reported := 0
	for j := id; j < height; j += rt.workers {
		for i := 0; i < width; i++ {
			ray := cam.PrimaryRay(i, j)
			c := rt.CastRay(ray.Origin, ray.Direction, 0)
			sink.WritePixel(i, j, rt.Pack(rt.toChannel(c.X), rt.toChannel(c.Y), rt.toChannel(c.Z), 255))
		}
		stat.Rows++

		// Worker 0 is representative of the whole frame
		if id == 0 && rt.logger != nil && rt.logger.IsDebug() {
			if done := 100 * (j + 1) / height; done >= reported+25 {
				reported = done - done%25
				rt.logger.Debugf("Completion: %d%%", reported)
			}
		}
	}

	stat.RenderTime = time.Since(start)
	return stat
}
