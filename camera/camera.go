// Package camera turns a user-controlled perspective camera into the single
// matrix that maps world-space vertices into clip space.
package camera

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Vectors shorter than this cannot be normalized.
	minBasisLength = float32(1e-6)

	MinFov = float32(1)
	MaxFov = float32(179)

	MinZoom = float32(0.001)
)

// Camera is a perspective camera. Target is a viewing direction, not a point.
// Target and Up do not need to be unit length or orthogonal.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	// Vertical field of view in degrees
	Fov         float32
	AspectRatio float32

	ZNear float32
	ZFar  float32

	// Scale applied to x and y in clip space
	Zoom float32
}

// Default returns a camera at the origin looking down -Z.
func Default() Camera {
	return Camera{
		Position:    mgl32.Vec3{0, 0, 0},
		Target:      mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		Fov:         30,
		AspectRatio: 1,
		ZNear:       0.1,
		ZFar:        100,
		Zoom:        1,
	}
}

// Validate reports whether the camera can produce a transform.
func (c Camera) Validate() error {
	if _, _, _, err := c.Basis(); err != nil {
		return err
	}
	return c.validateFrustum()
}

func (c Camera) validateFrustum() error {
	switch {
	case math32.IsNaN(c.Fov) || c.Fov <= 0 || c.Fov >= 180:
		return fmt.Errorf("%w: fov %v outside (0, 180)", ErrInvalidFrustum, c.Fov)
	case math32.IsNaN(c.ZNear) || c.ZNear <= 0:
		return fmt.Errorf("%w: zNear %v must be positive", ErrInvalidFrustum, c.ZNear)
	case math32.IsNaN(c.ZFar) || c.ZFar <= c.ZNear:
		return fmt.Errorf("%w: zFar %v must be greater than zNear %v", ErrInvalidFrustum, c.ZFar, c.ZNear)
	case math32.IsNaN(c.AspectRatio) || math32.IsInf(c.AspectRatio, 0) || c.AspectRatio <= 0:
		return fmt.Errorf("%w: aspect ratio %v must be positive", ErrInvalidFrustum, c.AspectRatio)
	}
	return nil
}

// Basis returns the orthonormal right, up and forward vectors of the camera.
// Up is re-derived from right and forward, so it is always perpendicular to
// Target even when the stored Up is not.
func (c Camera) Basis() (right, up, forward mgl32.Vec3, err error) {
	forward, err = normalize(c.Target, "target")
	if err != nil {
		return
	}
	up, err = normalize(c.Up, "up")
	if err != nil {
		return
	}

	right, err = normalize(forward.Cross(up), "right (target parallel to up)")
	if err != nil {
		return
	}
	up = right.Cross(forward)
	return right, up, forward, nil
}

func normalize(v mgl32.Vec3, name string) (mgl32.Vec3, error) {
	l := v.Len()
	if math32.IsNaN(l) || math32.IsInf(l, 0) || l < minBasisLength {
		return mgl32.Vec3{}, fmt.Errorf("%w: %s %v cannot be normalized", ErrDegenerateBasis, name, v)
	}
	return v.Mul(1 / l), nil
}

// Rotation returns the matrix rotating world directions into camera space.
// Its rows are right, up and -forward, so the camera looks down its local -Z.
func (c Camera) Rotation() (mgl32.Mat4, error) {
	r, u, t, err := c.Basis()
	if err != nil {
		return mgl32.Mat4{}, err
	}
	return mgl32.Mat4FromRows(
		r.Vec4(0),
		u.Vec4(0),
		t.Mul(-1).Vec4(0),
		mgl32.Vec4{0, 0, 0, 1},
	), nil
}

// Translation returns the matrix moving the camera position to the origin.
func (c Camera) Translation() mgl32.Mat4 {
	return mgl32.Translate3D(-c.Position.X(), -c.Position.Y(), -c.Position.Z())
}

// Projection returns the OpenGL perspective matrix. Clip-space w equals the
// camera-space -z, matching the -forward row of Rotation.
func (c Camera) Projection() (mgl32.Mat4, error) {
	if err := c.validateFrustum(); err != nil {
		return mgl32.Mat4{}, err
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.ZNear, c.ZFar), nil
}

// ZoomMatrix scales x and y in clip space.
func (c Camera) ZoomMatrix() mgl32.Mat4 {
	return mgl32.Scale3D(c.Zoom, c.Zoom, 1)
}

// ViewProjection is shorthand for ComputeViewProjection(c).
func (c Camera) ViewProjection() (mgl32.Mat4, error) {
	return ComputeViewProjection(c)
}
