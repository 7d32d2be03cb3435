package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Action is a keyboard-driven camera command.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	StrafeLeft
	StrafeRight
	MoveDown
	MoveUp
	IncreaseFov
	DecreaseFov
	Reset
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is an input event understood by Controls.Apply.
type Event interface {
	isEvent()
}

type KeyPress struct {
	Action Action
}

// MouseDrag is a cursor movement in pixels while Button is held.
// DY grows downward, as in window coordinates.
type MouseDrag struct {
	Button Button
	DX, DY float32
}

// MouseZoom changes the zoom by DY drag pixels.
type MouseZoom struct {
	DY float32
}

// Resize reports a new framebuffer size.
type Resize struct {
	Width, Height int
}

func (KeyPress) isEvent()  {}
func (MouseDrag) isEvent() {}
func (MouseZoom) isEvent() {}
func (Resize) isEvent()    {}

// Steps are the per-event increments of each gesture.
type Steps struct {
	Move   float32 // per key press
	Pan    float32 // per pixel, right drag
	Rotate float32 // degrees per pixel, left drag
	Zoom   float32 // per pixel, middle drag
	Fov    float32 // degrees per key press

	FovMin  float32
	FovMax  float32
	ZoomMin float32
}

func DefaultSteps() Steps {
	return Steps{
		Move:    0.1,
		Pan:     0.003,
		Rotate:  0.1,
		Zoom:    0.003,
		Fov:     1,
		FovMin:  MinFov,
		FovMax:  MaxFov,
		ZoomMin: MinZoom,
	}
}

// Controls maps input events to camera updates. Defaults is the camera
// restored by the Reset action.
type Controls struct {
	Defaults Camera
	Steps    Steps
}

func DefaultControls() Controls {
	return Controls{
		Defaults: Default(),
		Steps:    DefaultSteps(),
	}
}

// ApplyInputEvent applies ev with the default controls.
func ApplyInputEvent(c Camera, ev Event) Camera {
	return DefaultControls().Apply(c, ev)
}

// Apply returns the camera after ev. The input camera is not modified.
// Unknown events leave the camera unchanged.
func (ctl Controls) Apply(c Camera, ev Event) Camera {
	switch e := ev.(type) {
	case KeyPress:
		return ctl.applyKey(c, e.Action)
	case MouseDrag:
		return ctl.applyDrag(c, e)
	case MouseZoom:
		return ctl.applyZoom(c, e.DY)
	case Resize:
		// A minimized window reports a zero height
		if e.Width > 0 && e.Height > 0 {
			c.AspectRatio = float32(e.Width) / float32(e.Height)
		}
	}
	return c
}

func (ctl Controls) applyKey(c Camera, a Action) Camera {
	s := ctl.Steps
	right := c.Target.Cross(c.Up)

	switch a {
	case MoveForward:
		c.Position = c.Position.Add(c.Target.Mul(s.Move))
	case MoveBackward:
		c.Position = c.Position.Sub(c.Target.Mul(s.Move))
	case StrafeLeft:
		c.Position = c.Position.Sub(right.Mul(s.Move))
	case StrafeRight:
		c.Position = c.Position.Add(right.Mul(s.Move))
	case MoveDown:
		c.Position = c.Position.Sub(c.Up.Mul(s.Move))
	case MoveUp:
		c.Position = c.Position.Add(c.Up.Mul(s.Move))
	case IncreaseFov:
		c.Fov = math32.Min(c.Fov+s.Fov, s.FovMax)
	case DecreaseFov:
		c.Fov = math32.Max(c.Fov-s.Fov, s.FovMin)
	case Reset:
		aspect := c.AspectRatio
		c = ctl.Defaults
		c.AspectRatio = aspect
	}
	return c
}

func (ctl Controls) applyDrag(c Camera, e MouseDrag) Camera {
	s := ctl.Steps

	switch e.Button {
	case ButtonRight:
		c.Position = c.Position.Add(c.Target.Mul(s.Pan * -e.DY))
		c.Position = c.Position.Add(c.Target.Cross(c.Up).Mul(s.Pan * e.DX))
	case ButtonMiddle:
		return ctl.applyZoom(c, e.DY)
	case ButtonLeft:
		// Horizontal rotation about the world up axis
		yaw := mgl32.HomogRotate3D(mgl32.DegToRad(s.Rotate*-e.DX), mgl32.Vec3{0, 1, 0})
		c.Target = rotate(yaw, c.Target)
		c.Up = rotate(yaw, c.Up)

		// Vertical rotation about the camera right axis
		right := c.Target.Cross(c.Up)
		if l := right.Len(); l >= minBasisLength {
			pitch := mgl32.HomogRotate3D(mgl32.DegToRad(s.Rotate*-e.DY), right.Mul(1/l))
			c.Target = rotate(pitch, c.Target)
			c.Up = rotate(pitch, c.Up)
		}
	}
	return c
}

func (ctl Controls) applyZoom(c Camera, dy float32) Camera {
	c.Zoom = math32.Max(ctl.Steps.ZoomMin, c.Zoom+ctl.Steps.Zoom*dy)
	return c
}

func rotate(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}
