package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"raycaster/internal/logger"
	"raycaster/internal/util"
	"raycaster/pkg/config"
	"raycaster/pkg/engine"
	"raycaster/pkg/scene"
)

// Engine runs the interactive raycaster window
type Engine struct {
	window    *glfw.Window
	config    *config.Config
	logger    *logger.Logger
	scene     *scene.Scene
	animator  *scene.Animator
	raytracer *engine.Raytracer
	renderer  engine.Renderer
	input     *InputHandler
	frame     *engine.FrameBuffer
	fps       *util.FPSCounter
	isRunning bool
	paused    bool
	released  bool
}

// NewEngine creates the window, the GL presenter and the demo scene.
// It must be called from the main OS thread.
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// Set window hints
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Window.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	// Create window
	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	window.MakeContextCurrent()

	renderer, err := NewOpenGLRenderer(window, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL renderer: %v", err)
	}

	sc := scene.NewDefaultScene(cfg.SceneOptions(), cfg.CameraPosition())
	animator := scene.DefaultAnimation()
	if err := animator.Validate(sc); err != nil {
		renderer.Close()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to set up animation: %v", err)
	}

	raytracer, err := engine.NewRaytracer(sc, cfg.Render, log)
	if err != nil {
		renderer.Close()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize raytracer: %v", err)
	}

	log.Infof("Viewer ready: %dx%d, %d workers, %d objects, %d lights",
		cfg.Window.Width, cfg.Window.Height, raytracer.Workers(), len(sc.Objects), len(sc.Lights))

	return &Engine{
		window:    window,
		config:    cfg,
		logger:    log,
		scene:     sc,
		animator:  animator,
		raytracer: raytracer,
		renderer:  renderer,
		input:     NewInputHandler(window),
		frame:     engine.NewFrameBuffer(cfg.Window.Width, cfg.Window.Height),
		fps:       util.NewFPSCounter(cfg.Window.FrameRate),
	}, nil
}

// Run starts the main loop and returns when the window is closed
func (e *Engine) Run() {
	e.isRunning = true
	interval := util.FrameInterval(e.config.Window.FrameRate)
	lastReport := time.Now()
	lastFrame := time.Now()

	for e.isRunning {
		frameStart := time.Now()

		glfw.PollEvents()
		e.processInput()
		if !e.isRunning {
			break
		}

		if e.config.Animation.Enabled && !e.paused {
			e.animator.Step(e.scene)
		}

		e.render()
		e.window.SwapBuffers()

		now := time.Now()
		e.fps.Add(now.Sub(lastFrame))
		lastFrame = now
		if now.Sub(lastReport) >= time.Second {
			e.logger.Infof("FPS: %.1f", e.fps.FPS())
			lastReport = now
		}

		// Cap the frame rate
		if interval > 0 {
			if elapsed := time.Since(frameStart); elapsed < interval {
				time.Sleep(interval - elapsed)
			}
		}
	}

	e.cleanup()
}

// processInput handles user input
func (e *Engine) processInput() {
	e.input.Update()

	if e.input.QuitRequested() {
		e.isRunning = false
		return
	}

	if e.input.PauseToggled() {
		e.paused = !e.paused
		e.logger.Infof("Animation paused: %v", e.paused)
	}

	if e.input.ScreenshotRequested() {
		path := e.config.Screenshot.Path
		if err := engine.SaveScreenshot(e.frame, path); err != nil {
			e.logger.Errorf("Screenshot failed: %v", err)
		} else {
			e.logger.Infof("Screenshot saved to %s", path)
		}
	}
}

// render traces the current frame and presents it
func (e *Engine) render() {
	stats := e.raytracer.Render(e.frame)
	e.logger.Debugf("Frame %d traced in %v", e.animator.Frames(), stats.RenderTime)

	if err := e.renderer.Render(e.frame); err != nil {
		e.logger.Errorf("Present failed: %v", err)
	}
}

// cleanup performs necessary cleanup before exiting
func (e *Engine) cleanup() {
	e.logger.Info("Shutting down viewer...")
	if !e.released {
		n := e.scene.Release()
		e.released = true
		e.logger.Debugf("Released %d scene entities", n)
	}
	e.renderer.Close()
	glfw.Terminate()
}
