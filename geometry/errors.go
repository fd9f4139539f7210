package geometry

import "github.com/pkg/errors"

// Failures are reported synchronously and carry one of these sentinels as
// their cause, so callers can match with errors.Is.
var (
	// ErrInvalidInput means the coordinate sequence given at construction was
	// malformed. No polygon is produced.
	ErrInvalidInput = errors.New("invalid polygon input")

	// ErrDegeneratePolygon means the signed area is zero (all vertices
	// collinear or coincident), which leaves the centroid undefined.
	ErrDegeneratePolygon = errors.New("degenerate polygon")
)
