package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComputeViewProjection returns Zoom * Projection * Rotation * Translation.
// Applied to a column vector, vertices are first moved into camera space,
// then projected into clip space, then zoomed in clip space.
//
// The function only validates its input. Clamping fov and zoom is left to
// the input handling in Controls.
func ComputeViewProjection(c Camera) (mgl32.Mat4, error) {
	rotation, err := c.Rotation()
	if err != nil {
		return mgl32.Mat4{}, err
	}

	projection, err := c.Projection()
	if err != nil {
		return mgl32.Mat4{}, err
	}

	// Order matters: zooming before the projection would change the
	// foreshortening instead of magnifying the image
	return c.ZoomMatrix().Mul4(projection).Mul4(rotation).Mul4(c.Translation()), nil
}
