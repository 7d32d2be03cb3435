package config

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelyuan/go-gltutorial/camera"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cam := cfg.CameraValue()
	assert.InDelta(t, 800.0/600.0, cam.AspectRatio, 1e-6)
	assert.Equal(t, camera.DefaultSteps(), cfg.ControlsValue().Steps)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1024
  height: 512
camera:
  position: [0, 1, 5]
  fov: 45
controls:
  move_step: 0.5
log_level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, "OpenGL Tutorial", cfg.Window.Title)
	assert.Equal(t, "shaders/lighting.vert", cfg.Shaders.Vertex)

	cam := cfg.CameraValue()
	assert.Equal(t, mgl32.Vec3{0, 1, 5}, cam.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cam.Target)
	assert.Equal(t, float32(45), cam.Fov)
	assert.Equal(t, float32(2), cam.AspectRatio)

	ctl := cfg.ControlsValue()
	assert.Equal(t, float32(0.5), ctl.Steps.Move)
	assert.Equal(t, float32(0.003), ctl.Steps.Pan)
	assert.Equal(t, cam, ctl.Defaults)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{"bad frustum", "camera:\n  z_near: 10\n  z_far: 1\n", camera.ErrInvalidFrustum},
		{"zero target", "camera:\n  target: [0, 0, 0]\n", camera.ErrDegenerateBasis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.target)
		})
	}

	invalid := []string{
		"window:\n  width: 0\n",
		"shaders:\n  vertex: \"\"\n",
		"controls:\n  fov_min: 90\n  fov_max: 30\n",
		"controls:\n  zoom_min: 0\n",
		"log_level: loud\n",
		"camera:\n  position: [1, 2]\n",
		"window: [",
	}
	for _, content := range invalid {
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err, content)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLightValue(t *testing.T) {
	path := writeConfig(t, "light:\n  direction: [0, -1, 0]\n  diffuse_intensity: 0.5\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	light := cfg.LightValue()
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, light.Direction)
	assert.Equal(t, float32(0.5), light.DiffuseIntensity)
	assert.Equal(t, float32(1), light.SpecularIntensity)
}

func TestLoadRejectsNonFiniteControls(t *testing.T) {
	tests := []struct {
		content string
		field   string
	}{
		{"camera:\n  zoom: .nan\n", "camera zoom"},
		{"camera:\n  zoom: .inf\n", "camera zoom"},
		{"camera:\n  zoom: 0.0001\n", "camera zoom"},
		{"controls:\n  move_step: 0\n", "move_step"},
		{"controls:\n  pan_step: -1\n", "pan_step"},
		{"controls:\n  rotate_step: .nan\n", "rotate_step"},
		{"controls:\n  zoom_step: .inf\n", "zoom_step"},
		{"controls:\n  fov_step: -.inf\n", "fov_step"},
		{"controls:\n  zoom_min: .nan\n", "zoom_min"},
		{"controls:\n  fov_min: .nan\n", "fov range"},
		{"controls:\n  fov_max: .nan\n", "fov range"},
	}
	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateDefaultsBeforeUse(t *testing.T) {
	cfg := Default()
	cfg.Controls.PanStep = float32(math.NaN())
	assert.ErrorContains(t, cfg.Validate(), "pan_step")

	cfg = Default()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	// Load without a file runs the same checks as a loaded file
	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded)
}
