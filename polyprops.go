// Geometric properties of simple 2D polygons.
//
// This package lets you take a polygon, given as an ordered flat sequence of
// vertex coordinates, and compute its area and centroid. The polygon must be
// simple (edges may not intersect each other) and its vertices must be listed
// in one consistent winding order. Neither requirement is validated.
package polyprops

import "github.com/osuushi/polyprops/geometry"

type Point = geometry.Point
type Polygon = geometry.Polygon

var (
	ErrInvalidInput      = geometry.ErrInvalidInput
	ErrDegeneratePolygon = geometry.ErrDegeneratePolygon
)

// Take a flat coordinate sequence [x0, y0, x1, y1, ...] and convert it into a
// polygon. Fails with ErrInvalidInput if the sequence has odd length or
// describes fewer than three vertices.
func New(coords ...float64) (*Polygon, error) {
	return geometry.NewPolygon(coords)
}
