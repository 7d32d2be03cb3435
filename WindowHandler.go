package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/samuelyuan/go-gltutorial/config"
)

type WindowHandler struct {
	glfwWindow   *glfw.Window
	inputHandler *InputHandler
}

// NewWindowHandler creates the window and an OpenGL 4.1 core context.
// glfw must be initialized.
func NewWindowHandler(spec config.WindowSpec) (*WindowHandler, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glfwWindow, err := glfw.CreateWindow(spec.Width, spec.Height, spec.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create OpenGL window: %w", err)
	}
	glfwWindow.MakeContextCurrent()
	glfw.SwapInterval(1)

	inputHandler := NewInputHandler()

	// Check for resize
	glfwWindow.SetFramebufferSizeCallback(inputHandler.resizeCallback)
	// Keyboard callback
	glfwWindow.SetKeyCallback(inputHandler.keyCallback)
	// Mouse callbacks
	glfwWindow.SetMouseButtonCallback(inputHandler.mouseButtonCallback)
	glfwWindow.SetCursorPosCallback(inputHandler.mouseCallback)
	glfwWindow.SetScrollCallback(inputHandler.scrollCallback)

	return &WindowHandler{
		glfwWindow:   glfwWindow,
		inputHandler: inputHandler,
	}, nil
}

func (windowHandler *WindowHandler) startFrame() {
	windowHandler.glfwWindow.SwapBuffers()

	// Window events for keyboard and mouse
	glfw.PollEvents()
}

func (windowHandler *WindowHandler) framebufferSize() (int, int) {
	return windowHandler.glfwWindow.GetFramebufferSize()
}

func (windowHandler *WindowHandler) close() {
	windowHandler.glfwWindow.SetShouldClose(true)
}

func (windowHandler *WindowHandler) shouldClose() bool {
	return windowHandler.glfwWindow.ShouldClose()
}

func (windowHandler *WindowHandler) destroy() {
	windowHandler.glfwWindow.Destroy()
}
