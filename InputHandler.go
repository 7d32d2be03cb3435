package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/samuelyuan/go-gltutorial/camera"
)

// ProgramAction is a key command that is not a camera movement.
type ProgramAction int

const (
	PROGRAM_QUIT ProgramAction = iota
	PROGRAM_WIREFRAME
	PROGRAM_FILL
	PROGRAM_VERSION
	PROGRAM_RELOAD_SHADERS
)

// Scroll wheel steps are scaled to drag pixels for the zoom gesture
const scrollPixels = 20

type InputHandler struct {
	cameraKeys   map[glfw.Key]camera.Action
	programKeys  map[glfw.Key]ProgramAction
	mouseButtons map[glfw.MouseButton]camera.Button

	dragging     bool
	dragButton   camera.Button
	lastX, lastY float64

	events  []camera.Event
	actions []ProgramAction
}

func NewInputHandler() *InputHandler {
	cameraKeys := map[glfw.Key]camera.Action{
		glfw.KeyW:        camera.MoveForward,
		glfw.KeyS:        camera.MoveBackward,
		glfw.KeyA:        camera.StrafeLeft,
		glfw.KeyD:        camera.StrafeRight,
		glfw.KeyC:        camera.MoveDown,
		glfw.KeySpace:    camera.MoveUp,
		glfw.KeyR:        camera.Reset,
		glfw.KeyPageUp:   camera.IncreaseFov,
		glfw.KeyPageDown: camera.DecreaseFov,
	}

	programKeys := map[glfw.Key]ProgramAction{
		glfw.KeyQ:      PROGRAM_QUIT,
		glfw.KeyEscape: PROGRAM_QUIT,
		glfw.KeyP:      PROGRAM_WIREFRAME,
		glfw.KeyO:      PROGRAM_FILL,
		glfw.KeyG:      PROGRAM_VERSION,
		glfw.KeyL:      PROGRAM_RELOAD_SHADERS,
		glfw.KeyF5:     PROGRAM_RELOAD_SHADERS,
	}

	mouseButtons := map[glfw.MouseButton]camera.Button{
		glfw.MouseButtonLeft:   camera.ButtonLeft,
		glfw.MouseButtonRight:  camera.ButtonRight,
		glfw.MouseButtonMiddle: camera.ButtonMiddle,
	}

	return &InputHandler{
		cameraKeys:   cameraKeys,
		programKeys:  programKeys,
		mouseButtons: mouseButtons,
	}
}

// Drain returns the input collected since the last call.
func (handler *InputHandler) Drain() ([]camera.Event, []ProgramAction) {
	events, actions := handler.events, handler.actions
	handler.events, handler.actions = nil, nil
	return events, actions
}

func (handler *InputHandler) keyCallback(window *glfw.Window, key glfw.Key, scancode int,
	action glfw.Action, mods glfw.ModifierKey) {

	// Camera keys move a fixed step per press and per auto-repeat
	if action == glfw.Release {
		return
	}
	if a, ok := handler.cameraKeys[key]; ok {
		handler.events = append(handler.events, camera.KeyPress{Action: a})
		return
	}
	if a, ok := handler.programKeys[key]; ok && action == glfw.Press {
		handler.actions = append(handler.actions, a)
	}
}

func (handler *InputHandler) mouseButtonCallback(window *glfw.Window, button glfw.MouseButton,
	action glfw.Action, mods glfw.ModifierKey) {

	b, ok := handler.mouseButtons[button]
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		handler.dragging = true
		handler.dragButton = b
		handler.lastX, handler.lastY = window.GetCursorPos()
	case glfw.Release:
		if b == handler.dragButton {
			handler.dragging = false
		}
	}
}

func (handler *InputHandler) mouseCallback(window *glfw.Window, xpos, ypos float64) {
	if !handler.dragging {
		return
	}

	dx, dy := xpos-handler.lastX, ypos-handler.lastY
	handler.lastX, handler.lastY = xpos, ypos
	if dx == 0 && dy == 0 {
		return
	}
	handler.events = append(handler.events, camera.MouseDrag{
		Button: handler.dragButton,
		DX:     float32(dx),
		DY:     float32(dy),
	})
}

func (handler *InputHandler) scrollCallback(window *glfw.Window, xoff, yoff float64) {
	handler.events = append(handler.events, camera.MouseZoom{DY: float32(yoff * scrollPixels)})
}

func (handler *InputHandler) resizeCallback(window *glfw.Window, width int, height int) {
	handler.events = append(handler.events, camera.Resize{Width: width, Height: height})
}
