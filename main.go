package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/samuelyuan/go-gltutorial/camera"
	"github.com/samuelyuan/go-gltutorial/config"
	"github.com/samuelyuan/go-gltutorial/render"
	"github.com/samuelyuan/go-gltutorial/scene"
	"github.com/samuelyuan/go-gltutorial/watch"
)

func init() {
	// GL calls must come from the thread that owns the context
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(cfg); err != nil {
		slog.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	windowHandler, err := NewWindowHandler(cfg.Window)
	if err != nil {
		return err
	}
	defer windowHandler.destroy()

	renderer := render.NewRenderer()
	if err := renderer.Init(cfg.Shaders.Vertex, cfg.Shaders.Fragment); err != nil {
		return err
	}
	defer renderer.Delete()
	slog.Info("OpenGL initialized", "version", renderer.Version())

	light := cfg.LightValue()
	renderer.Upload(scene.Lighting(light))

	width, height := windowHandler.framebufferSize()
	renderer.SetViewport(width, height)

	controls := cfg.ControlsValue()
	cam := controls.Apply(cfg.CameraValue(), camera.Resize{Width: width, Height: height})

	initial, err := cam.ViewProjection()
	if err != nil {
		return fmt.Errorf("startup camera: %w", err)
	}
	last := camera.NewLast(initial, slog.Default())

	var shaderChanges <-chan string
	var watchErrors <-chan error
	if cfg.Shaders.Watch {
		watcher, err := watch.NewWatcher(cfg.Shaders.Vertex, cfg.Shaders.Fragment)
		if err != nil {
			slog.Warn("shader hot reload disabled", "error", err)
		} else {
			defer watcher.Close()
			shaderChanges = watcher.Events
			watchErrors = watcher.Errors
		}
	}

	slog.Info("Rendering scene", "meshes", len(renderer.Meshes))

	for !windowHandler.shouldClose() {
		windowHandler.startFrame()

		events, actions := windowHandler.inputHandler.Drain()
		for _, ev := range events {
			if resize, ok := ev.(camera.Resize); ok {
				renderer.SetViewport(resize.Width, resize.Height)
			}
			cam = controls.Apply(cam, ev)
		}

		for _, action := range actions {
			switch action {
			case PROGRAM_QUIT:
				windowHandler.close()
			case PROGRAM_WIREFRAME:
				renderer.SetWireframe(true)
			case PROGRAM_FILL:
				renderer.SetWireframe(false)
			case PROGRAM_VERSION:
				slog.Info("OpenGL version", "version", renderer.Version())
			case PROGRAM_RELOAD_SHADERS:
				reloadShaders(renderer, "key")
			}
		}

		select {
		case path := <-shaderChanges:
			reloadShaders(renderer, path)
		case err := <-watchErrors:
			slog.Warn("shader watcher", "error", err)
		default:
		}

		renderer.PrepareFrame(last.Update(cam), cam.Position, light)
		renderer.DrawAll()
	}
	return nil
}

func reloadShaders(renderer *render.Renderer, trigger string) {
	slog.Info("Re-loading shaders", "trigger", trigger)
	if err := renderer.Shader.Reload(); err != nil {
		slog.Error("shader reload failed, keeping previous program", "error", err)
		return
	}
	slog.Info("Shaders reloaded")
}
