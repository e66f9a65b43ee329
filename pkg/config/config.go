package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"raycaster/pkg/linalg"
	"raycaster/pkg/scene"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the main configuration
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Render     RenderConfig     `yaml:"render"`
	Camera     CameraConfig     `yaml:"camera"`
	Animation  AnimationConfig  `yaml:"animation"`
	Preview    PreviewConfig    `yaml:"preview"`
	Logging    LoggingConfig    `yaml:"logging"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
}

// WindowConfig contains window-related configuration
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Title      string `yaml:"title"`
	FrameRate  int    `yaml:"framerate"` // 0 disables frame pacing
}

// RenderConfig contains raytracer configuration
type RenderConfig struct {
	FOV        float32    `yaml:"fov"`
	Background [3]float32 `yaml:"background"`
	MaxDepth   int        `yaml:"max_depth"`
	Workers    int        `yaml:"workers"`
	Gamma      float32    `yaml:"gamma"`
}

// CameraConfig places the camera in the world
type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
}

// AnimationConfig controls the per-frame motion of the demo scene
type AnimationConfig struct {
	Enabled bool `yaml:"enabled"`
}

// PreviewConfig contains the terminal preview configuration
type PreviewConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	CharSet string `yaml:"charset"` // Characters ordered from dark to bright
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Optional: also log to this file
}

// ScreenshotConfig contains screenshot configuration
type ScreenshotConfig struct {
	Path string `yaml:"path"`
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	opts := scene.DefaultOptions()
	cam := scene.DefaultCameraPosition

	return &Config{
		Window: WindowConfig{
			Width:      opts.Width,
			Height:     opts.Height,
			Fullscreen: false,
			Title:      "raycaster",
			FrameRate:  35,
		},
		Render: RenderConfig{
			FOV:        opts.FOV,
			Background: [3]float32{opts.Background.X, opts.Background.Y, opts.Background.Z},
			MaxDepth:   opts.MaxDepth,
			Workers:    8,
			Gamma:      0.55,
		},
		Camera: CameraConfig{
			Position: [3]float32{cam.X, cam.Y, cam.Z},
		},
		Animation: AnimationConfig{
			Enabled: true,
		},
		Preview: PreviewConfig{
			Width:   100,
			Height:  40,
			CharSet: " .'`,:;\"-+=*#%@$",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Screenshot: ScreenshotConfig{
			Path: "screenshot.png",
		},
	}
}

// LoadConfig loads the configuration from a file
func LoadConfig(filePath string) (*Config, error) {
	// Create default config
	config := DefaultConfig()

	// Read file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %v", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}

// Validate checks the values a renderer cannot work with
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Render.FOV <= 0 || c.Render.FOV >= 180:
		return fmt.Errorf("%w: fov %v outside (0, 180)", ErrInvalidConfig, c.Render.FOV)
	case c.Render.Workers < 1:
		return fmt.Errorf("%w: need at least one worker, got %d", ErrInvalidConfig, c.Render.Workers)
	case c.Render.MaxDepth < 0:
		return fmt.Errorf("%w: negative max depth %d", ErrInvalidConfig, c.Render.MaxDepth)
	case c.Render.Gamma <= 0:
		return fmt.Errorf("%w: gamma must be positive, got %v", ErrInvalidConfig, c.Render.Gamma)
	case c.Window.FrameRate < 0:
		return fmt.Errorf("%w: negative frame rate %d", ErrInvalidConfig, c.Window.FrameRate)
	case len(c.Preview.CharSet) == 0:
		return fmt.Errorf("%w: empty preview charset", ErrInvalidConfig)
	}
	return nil
}

// SceneOptions converts the render settings into per-frame scene options
func (c *Config) SceneOptions() scene.Options {
	opts := scene.DefaultOptions()
	opts.Width = c.Window.Width
	opts.Height = c.Window.Height
	opts.FOV = c.Render.FOV
	opts.Background = linalg.Vec3(c.Render.Background[0], c.Render.Background[1], c.Render.Background[2])
	opts.MaxDepth = c.Render.MaxDepth
	return opts
}

// CameraPosition returns the configured camera position
func (c *Config) CameraPosition() linalg.Vector3 {
	p := c.Camera.Position
	return linalg.Vec3(p[0], p[1], p[2])
}
