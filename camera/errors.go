package camera

import "errors"

var (
	// ErrDegenerateBasis is returned when Target or Up cannot be normalized,
	// or when they are parallel and no right vector exists.
	ErrDegenerateBasis = errors.New("camera: degenerate basis")

	// ErrInvalidFrustum is returned when the projection parameters do not
	// describe a valid view frustum.
	ErrInvalidFrustum = errors.New("camera: invalid frustum")
)
