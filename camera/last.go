package camera

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Last holds the most recent good transform of a camera that changes every
// frame. An invalid camera keeps the previous transform.
type Last struct {
	transform mgl32.Mat4
	failing   bool
	logger    *slog.Logger
}

// NewLast starts from initial. A nil logger logs to slog.Default().
func NewLast(initial mgl32.Mat4, logger *slog.Logger) *Last {
	if logger == nil {
		logger = slog.Default()
	}
	return &Last{transform: initial, logger: logger}
}

// Update returns the transform of c, or the previous one when c is invalid.
// A failure is logged once until c becomes valid again.
func (l *Last) Update(c Camera) mgl32.Mat4 {
	transform, err := c.ViewProjection()
	if err != nil {
		if !l.failing {
			l.logger.Warn("keeping previous camera transform", "error", err)
			l.failing = true
		}
		return l.transform
	}

	if l.failing {
		l.logger.Info("camera transform recovered")
		l.failing = false
	}
	l.transform = transform
	return transform
}

func (l *Last) Transform() mgl32.Mat4 {
	return l.transform
}

func (l *Last) Failing() bool {
	return l.failing
}
