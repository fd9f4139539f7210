package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// SignedArea returns the shoelace sum over the boundary, without the final
// absolute value. The sign encodes the winding order: positive for
// counter-clockwise vertices, negative for clockwise.
func (poly *Polygon) SignedArea() float64 {
	var sum float64
	n := len(poly.vertices)
	for i, vertex := range poly.vertices {
		nextVertex := poly.vertices[CircularIndex(i+1, n)]
		sum += vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
	}
	return sum / 2
}

// Area returns the unsigned area of the polygon. It is independent of the
// winding order and always non-negative.
func (poly *Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

// IsCounterClockwise reports the winding order of the vertices. A degenerate
// polygon (zero area) reports false either way around.
func (poly *Polygon) IsCounterClockwise() bool {
	return poly.SignedArea() > 0
}

// Centroid returns the center of mass of the polygon's interior, assuming
// uniform density. It uses the signed area internally; the sign cancellation
// between the area and the edge summations makes the result correct for
// either winding order. Fails with ErrDegeneratePolygon when the signed area
// is zero.
func (poly *Polygon) Centroid() (Point, error) {
	return poly.CentroidWithArea(poly.SignedArea())
}

// CentroidWithArea is Centroid for callers that already hold the polygon's
// signed area, skipping its recomputation. Passing anything other than the
// actual signed area gives a meaningless result.
func (poly *Polygon) CentroidWithArea(signedArea float64) (Point, error) {
	if signedArea == 0 {
		return Point{}, errors.Wrap(ErrDegeneratePolygon, "signed area is zero")
	}
	var sumX, sumY float64
	n := len(poly.vertices)
	for i, vertex := range poly.vertices {
		nextVertex := poly.vertices[CircularIndex(i+1, n)]
		cross := vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
		sumX += (vertex.X + nextVertex.X) * cross
		sumY += (vertex.Y + nextVertex.Y) * cross
	}
	return Point{X: sumX / (6 * signedArea), Y: sumY / (6 * signedArea)}, nil
}
