// Package config loads the viewer settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/samuelyuan/go-gltutorial/camera"
	"github.com/samuelyuan/go-gltutorial/scene"
)

type Config struct {
	Window   WindowSpec   `yaml:"window"`
	Shaders  ShaderSpec   `yaml:"shaders"`
	Camera   CameraSpec   `yaml:"camera"`
	Controls ControlsSpec `yaml:"controls"`
	Light    LightSpec    `yaml:"light"`
	LogLevel string       `yaml:"log_level"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type ShaderSpec struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	// Reload the program when either file changes on disk
	Watch bool `yaml:"watch"`
}

type CameraSpec struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Up       [3]float32 `yaml:"up"`
	Fov      float32    `yaml:"fov"`
	ZNear    float32    `yaml:"z_near"`
	ZFar     float32    `yaml:"z_far"`
	Zoom     float32    `yaml:"zoom"`
}

type ControlsSpec struct {
	MoveStep   float32 `yaml:"move_step"`
	PanStep    float32 `yaml:"pan_step"`
	RotateStep float32 `yaml:"rotate_step"`
	ZoomStep   float32 `yaml:"zoom_step"`
	FovStep    float32 `yaml:"fov_step"`
	FovMin     float32 `yaml:"fov_min"`
	FovMax     float32 `yaml:"fov_max"`
	ZoomMin    float32 `yaml:"zoom_min"`
}

type LightSpec struct {
	Direction         [3]float32 `yaml:"direction"`
	Ambient           [3]float32 `yaml:"ambient"`
	Diffuse           [3]float32 `yaml:"diffuse"`
	Specular          [3]float32 `yaml:"specular"`
	AmbientIntensity  float32    `yaml:"ambient_intensity"`
	DiffuseIntensity  float32    `yaml:"diffuse_intensity"`
	SpecularIntensity float32    `yaml:"specular_intensity"`
}

func Default() *Config {
	cam := camera.Default()
	steps := camera.DefaultSteps()
	light := scene.DefaultLight()

	return &Config{
		Window: WindowSpec{
			Width:  800,
			Height: 600,
			Title:  "OpenGL Tutorial",
		},
		Shaders: ShaderSpec{
			Vertex:   "shaders/lighting.vert",
			Fragment: "shaders/lighting.frag",
			Watch:    true,
		},
		Camera: CameraSpec{
			Position: cam.Position,
			Target:   cam.Target,
			Up:       cam.Up,
			Fov:      cam.Fov,
			ZNear:    cam.ZNear,
			ZFar:     cam.ZFar,
			Zoom:     cam.Zoom,
		},
		Controls: ControlsSpec{
			MoveStep:   steps.Move,
			PanStep:    steps.Pan,
			RotateStep: steps.Rotate,
			ZoomStep:   steps.Zoom,
			FovStep:    steps.Fov,
			FovMin:     steps.FovMin,
			FovMax:     steps.FovMax,
			ZoomMin:    steps.ZoomMin,
		},
		Light: LightSpec{
			Direction:         light.Direction,
			Ambient:           light.Ambient,
			Diffuse:           light.Diffuse,
			Specular:          light.Specular,
			AmbientIntensity:  light.AmbientIntensity,
			DiffuseIntensity:  light.DiffuseIntensity,
			SpecularIntensity: light.SpecularIntensity,
		},
		LogLevel: "info",
	}
}

// Load reads the config at path on top of the defaults. Keys missing from
// the file keep their default value. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("config: defaults: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return errors.New("shader paths must not be empty")
	}

	ctl := c.Controls
	steps := []struct {
		name  string
		value float32
	}{
		{"move_step", ctl.MoveStep},
		{"pan_step", ctl.PanStep},
		{"rotate_step", ctl.RotateStep},
		{"zoom_step", ctl.ZoomStep},
		{"fov_step", ctl.FovStep},
		{"zoom_min", ctl.ZoomMin},
	}
	for _, step := range steps {
		if !positiveFinite(step.value) {
			return fmt.Errorf("%s %v must be positive and finite", step.name, step.value)
		}
	}
	// Written so that NaN fails every comparison
	if !(ctl.FovMin > 0 && ctl.FovMax < 180 && ctl.FovMin < ctl.FovMax) {
		return fmt.Errorf("fov range [%v, %v] must lie inside (0, 180)", ctl.FovMin, ctl.FovMax)
	}
	if !positiveFinite(c.Camera.Zoom) || c.Camera.Zoom < ctl.ZoomMin {
		return fmt.Errorf("camera zoom %v must be finite and at least %v", c.Camera.Zoom, ctl.ZoomMin)
	}

	if err := c.CameraValue().Validate(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func positiveFinite(v float32) bool {
	return v > 0 && !math32.IsInf(v, 1)
}

// CameraValue returns the startup camera. The aspect ratio comes from the
// window size.
func (c *Config) CameraValue() camera.Camera {
	return camera.Camera{
		Position:    mgl32.Vec3(c.Camera.Position),
		Target:      mgl32.Vec3(c.Camera.Target),
		Up:          mgl32.Vec3(c.Camera.Up),
		Fov:         c.Camera.Fov,
		AspectRatio: float32(c.Window.Width) / float32(c.Window.Height),
		ZNear:       c.Camera.ZNear,
		ZFar:        c.Camera.ZFar,
		Zoom:        c.Camera.Zoom,
	}
}

func (c *Config) ControlsValue() camera.Controls {
	ctl := c.Controls
	return camera.Controls{
		Defaults: c.CameraValue(),
		Steps: camera.Steps{
			Move:    ctl.MoveStep,
			Pan:     ctl.PanStep,
			Rotate:  ctl.RotateStep,
			Zoom:    ctl.ZoomStep,
			Fov:     ctl.FovStep,
			FovMin:  ctl.FovMin,
			FovMax:  ctl.FovMax,
			ZoomMin: ctl.ZoomMin,
		},
	}
}

func (c *Config) LightValue() scene.DirectionalLight {
	l := c.Light
	return scene.DirectionalLight{
		Direction:         mgl32.Vec3(l.Direction),
		Ambient:           mgl32.Vec3(l.Ambient),
		Diffuse:           mgl32.Vec3(l.Diffuse),
		Specular:          mgl32.Vec3(l.Specular),
		AmbientIntensity:  l.AmbientIntensity,
		DiffuseIntensity:  l.DiffuseIntensity,
		SpecularIntensity: l.SpecularIntensity,
	}
}

// Level parses log_level ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
