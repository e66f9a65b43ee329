package engine

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"raycaster/internal/logger"
	"raycaster/pkg/config"
	"raycaster/pkg/linalg"
	"raycaster/pkg/scene"
)

func quietLogger() *logger.Logger {
	l := logger.NewLogger("error")
	l.SetOutput(io.Discard)
	return l
}

func newTestRaytracer(t *testing.T, sc *scene.Scene, workers int) *Raytracer {
	t.Helper()
	cfg := config.DefaultConfig().Render
	cfg.Workers = workers
	rt, err := NewRaytracer(sc, cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewRaytracer: %v", err)
	}
	return rt
}

func smallOptions(w, h int) scene.Options {
	opts := scene.DefaultOptions()
	opts.Width, opts.Height = w, h
	return opts
}

func TestNewRaytracerErrors(t *testing.T) {
	cfg := config.DefaultConfig().Render

	if _, err := NewRaytracer(nil, cfg, quietLogger()); !errors.Is(err, ErrSceneNotDefined) {
		t.Errorf("Expected ErrSceneNotDefined, got %v", err)
	}

	cfg.Workers = 0
	if _, err := NewRaytracer(scene.New(scene.DefaultOptions()), cfg, quietLogger()); !errors.Is(err, ErrNoWorkers) {
		t.Errorf("Expected ErrNoWorkers, got %v", err)
	}
}

func TestFindNearest(t *testing.T) {
	far := scene.NewSphere(linalg.Vec3(0, 0, -10), 1)
	near := scene.NewSphere(linalg.Vec3(0, 0, -4), 1)
	objects := []scene.Object{far, near}

	ray := linalg.Ray{Direction: linalg.Vec3(0, 0, -1)}
	obj, dist := FindNearest(ray, objects)
	if obj != scene.Object(near) {
		t.Errorf("Expected the near sphere, got %v", obj)
	}
	if dist > 3.01 || dist < 2.99 {
		t.Errorf("Expected distance close to 3, got %v", dist)
	}

	miss := linalg.Ray{Direction: linalg.Vec3(0, 1, 0)}
	if obj, dist := FindNearest(miss, objects); obj != nil || dist != linalg.Infinity {
		t.Errorf("Expected no hit, got %v at %v", obj, dist)
	}
	if Occluded(miss, objects) {
		t.Errorf("Expected a miss not to be occluded")
	}
	if obj, _ := FindNearest(ray, nil); obj != nil {
		t.Errorf("Expected no hit in an empty scene")
	}
}

func TestBinpow(t *testing.T) {
	tests := []struct {
		x    float32
		n    int
		want float32
	}{
		{2, 0, 1},
		{2, 1, 2},
		{2, 10, 1024},
		{0.5, 3, 0.125},
		{3, 5, 243},
	}
	for _, tt := range tests {
		if got := binpow(tt.x, tt.n); got != tt.want {
			t.Errorf("binpow(%v, %d): expected %v, got %v", tt.x, tt.n, tt.want, got)
		}
	}
}

// shadowScene puts a unit sphere at the origin lit by a diagonal
// directional light and optionally a box blocking that light
func shadowScene(blocked bool) (*scene.Scene, *scene.Sphere) {
	sc := scene.New(smallOptions(8, 8))
	sphere := scene.NewSphere(linalg.Vector3{}, 1)
	sc.AddObject(sphere)
	if blocked {
		sc.AddObject(scene.NewBox(linalg.Vec3(3, 0, 6), 4))
	}
	sc.AddLight(scene.NewDistantLight(linalg.Vec3(-1, 0, -1), linalg.Splat(1), 1000))
	return sc, sphere
}

func TestOccludedLightContributesNothing(t *testing.T) {
	viewDir := linalg.Vec3(0, 0, -1)
	origin := linalg.Vec3(0, 0, 5)

	for _, blocked := range []bool{false, true} {
		sc, sphere := shadowScene(blocked)
		rt := newTestRaytracer(t, sc, 1)

		tHit, ok := sphere.Intersect(linalg.Ray{Origin: origin, Direction: viewDir})
		if !ok {
			t.Fatalf("Expected the camera ray to hit the sphere")
		}
		hit := origin.Add(viewDir.Scale(tHit))
		normal := sphere.SurfaceNormal(hit, viewDir)

		diffuse, specular := rt.illuminate(sphere, hit, normal, viewDir)
		color := rt.CastRay(origin, viewDir, 0)

		if blocked {
			if diffuse != (linalg.Vector3{}) || specular != (linalg.Vector3{}) {
				t.Errorf("Expected zero light when occluded, got diffuse %v specular %v", diffuse, specular)
			}
			if color != sphere.Material().Ambient {
				t.Errorf("Expected only the ambient term, got %v", color)
			}
		} else {
			if diffuse.X <= 0 {
				t.Errorf("Expected diffuse light when unoccluded, got %v", diffuse)
			}
			if color.X <= sphere.Material().Ambient.X {
				t.Errorf("Expected more than ambient, got %v", color)
			}
		}
	}
}

func TestDepthGate(t *testing.T) {
	sc, _ := shadowScene(false)
	rt := newTestRaytracer(t, sc, 1)

	origin, dir := linalg.Vec3(0, 0, 5), linalg.Vec3(0, 0, -1)
	if got := rt.CastRay(origin, dir, sc.Options.MaxDepth); got == sc.Options.Background {
		t.Errorf("Expected a shaded hit at the maximum depth")
	}
	if got := rt.CastRay(origin, dir, sc.Options.MaxDepth+1); got != sc.Options.Background {
		t.Errorf("Expected background past the maximum depth, got %v", got)
	}
}

func TestEmptySceneRendersBackground(t *testing.T) {
	sc := scene.New(smallOptions(16, 12))
	sc.AddLight(scene.NewDistantLight(linalg.Vec3(0, -1, 0), linalg.Splat(1), 3))

	rt := newTestRaytracer(t, sc, 4)
	fb := NewFrameBuffer(16, 12)
	stats := rt.Render(fb)

	// 0.01^0.55 * 255 truncates to 20
	want := PackRGBA(20, 20, 20, 255)
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			if got := fb.Pixel(x, y); got != want {
				t.Fatalf("Pixel (%d, %d): expected %#x, got %#x", x, y, want, got)
			}
		}
	}

	if len(stats.Workers) != 4 {
		t.Errorf("Expected 4 worker stats, got %d", len(stats.Workers))
	}
}

func TestRenderIsIndependentOfWorkerCount(t *testing.T) {
	opts := smallOptions(48, 36)

	render := func(workers int) (*FrameBuffer, FrameStats) {
		sc := scene.NewDefaultScene(opts, scene.DefaultCameraPosition)
		rt := newTestRaytracer(t, sc, workers)
		fb := NewFrameBuffer(opts.Width, opts.Height)
		return fb, rt.Render(fb)
	}

	reference, _ := render(1)
	for _, workers := range []int{2, 3, 8, 64} {
		fb, stats := render(workers)
		if !bytes.Equal(reference.Image().Pix, fb.Image().Pix) {
			t.Errorf("%d workers: frame differs from the single worker render", workers)
		}

		rows := 0
		for _, w := range stats.Workers {
			rows += w.Rows
		}
		if rows != opts.Height {
			t.Errorf("%d workers: expected %d rows in total, got %d", workers, opts.Height, rows)
		}
	}

	// The default scene must not render as a flat background
	bg := reference.Pixel(0, 0)
	center := reference.Pixel(opts.Width/2, opts.Height/2)
	if bg == center {
		t.Errorf("Expected the central sphere to be visible")
	}
}

func TestRowStriping(t *testing.T) {
	sc := scene.New(smallOptions(4, 10))
	rt := newTestRaytracer(t, sc, 3)
	stats := rt.Render(NewFrameBuffer(4, 10))

	want := []int{4, 3, 3}
	for i, w := range stats.Workers {
		if w.ID != i || w.Rows != want[i] {
			t.Errorf("Worker %d: expected %d rows, got %+v", i, want[i], w)
		}
	}
}

func TestCustomPackFunc(t *testing.T) {
	sc := scene.New(smallOptions(2, 2))
	rt := newTestRaytracer(t, sc, 1)
	rt.Pack = func(r, g, b, a uint8) uint32 {
		return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
	}

	fb := NewFrameBuffer(2, 2)
	rt.Render(fb)
	if got := fb.Pixel(1, 1); got != 0x141414ff {
		t.Errorf("Expected the custom layout, got %#x", got)
	}
}

func TestCameraPrimaryRay(t *testing.T) {
	opts := smallOptions(3, 3)
	opts.CameraToWorld = linalg.Translation(linalg.Vec3(0, 1, 15))
	cam := NewCamera(opts)

	r := cam.PrimaryRay(1, 1)
	if r.Origin != linalg.Vec3(0, 1, 15) {
		t.Errorf("Expected origin (0, 1, 15), got %v", r.Origin)
	}
	if r.Direction != linalg.Vec3(0, 0, -1) {
		t.Errorf("Expected the center ray to look down -z, got %v", r.Direction)
	}

	corner := cam.PrimaryRay(0, 0).Direction
	if corner.X >= 0 || corner.Y <= 0 {
		t.Errorf("Expected the top-left ray to point up and left, got %v", corner)
	}
}

func TestFrameBufferLayout(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.WritePixel(1, 0, PackRGBA(1, 2, 3, 4))
	fb.WritePixel(5, 5, PackRGBA(9, 9, 9, 9))

	if got := fb.Image().Pix[4:8]; !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("Expected R, G, B, A byte order, got %v", got)
	}
	if got := fb.Pixel(1, 0); got != 0x04030201 {
		t.Errorf("Expected %#x, got %#x", 0x04030201, got)
	}
}

func TestASCIIRenderer(t *testing.T) {
	cfg := config.PreviewConfig{Width: 4, Height: 2, CharSet: " .#"}

	var buf bytes.Buffer
	r, err := NewASCIIRenderer(cfg, &buf)
	if err != nil {
		t.Fatalf("NewASCIIRenderer: %v", err)
	}
	defer r.Close()

	fb := NewFrameBuffer(8, 4)
	for y := 0; y < 4; y++ {
		for x := 4; x < 8; x++ {
			fb.WritePixel(x, y, PackRGBA(255, 255, 255, 255))
		}
	}

	if err := r.Render(fb); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %q", buf.String())
	}
	for _, line := range lines {
		if len(line) != 4 || line[0] != ' ' || line[3] != '#' {
			t.Errorf("Expected dark left and bright right, got %q", line)
		}
	}

	if _, err := NewASCIIRenderer(config.PreviewConfig{CharSet: " "}, &buf); !errors.Is(err, ErrFrameSize) {
		t.Errorf("Expected ErrFrameSize for an empty grid, got %v", err)
	}
}

func TestSaveScreenshot(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.WritePixel(2, 1, PackRGBA(10, 20, 30, 255))

	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	if err := SaveScreenshot(fb, path); err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}
	r, g, b, _ := img.At(2, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("Expected (10, 20, 30), got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}

	if err := SaveScreenshot(nil, path); !errors.Is(err, ErrNoFrame) {
		t.Errorf("Expected ErrNoFrame, got %v", err)
	}
}
