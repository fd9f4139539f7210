package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// NewPolygon converts a flat coordinate sequence [x0, y0, x1, y1, ...] into a
// polygon, pairing the values into vertices in order. The order defines the
// boundary; the caller chooses the winding direction. The coordinates are
// copied, so the caller's slice can be reused afterwards.
func NewPolygon(coords []float64) (*Polygon, error) {
	if len(coords)%2 != 0 {
		return nil, errors.Wrapf(ErrInvalidInput,
			"coordinates must be flat (x, y) pairs, got %d values", len(coords))
	}
	if len(coords) < 6 {
		return nil, errors.Wrapf(ErrInvalidInput,
			"a polygon needs at least 3 vertices, got %d", len(coords)/2)
	}
	vertices := make([]Point, len(coords)/2)
	for i := range vertices {
		vertices[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return &Polygon{vertices: vertices}, nil
}

// NewPolygonFromPoints is NewPolygon for callers that already hold vertices.
func NewPolygonFromPoints(points []Point) (*Polygon, error) {
	if len(points) < 3 {
		return nil, errors.Wrapf(ErrInvalidInput,
			"a polygon needs at least 3 vertices, got %d", len(points))
	}
	vertices := make([]Point, len(points))
	copy(vertices, points)
	return &Polygon{vertices: vertices}, nil
}

// Len returns the number of vertices.
func (poly *Polygon) Len() int {
	return len(poly.vertices)
}

// Vertices returns a copy of the vertex ring in construction order.
func (poly *Polygon) Vertices() []Point {
	vertices := make([]Point, len(poly.vertices))
	copy(vertices, poly.vertices)
	return vertices
}

// Edge returns the i-th boundary edge. The index wraps, so Edge(Len()-1) is
// the closing edge back to the first vertex.
func (poly *Polygon) Edge(i int) (start, end Point) {
	n := len(poly.vertices)
	return poly.vertices[CircularIndex(i, n)], poly.vertices[CircularIndex(i+1, n)]
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (poly *Polygon) Bounds() (min, max Point) {
	min = Point{X: math.Inf(1), Y: math.Inf(1)}
	max = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range poly.vertices {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

// Reverse returns a polygon with the same boundary in the opposite winding
// order.
func (poly *Polygon) Reverse() *Polygon {
	newPoly := &Polygon{}
	for i := len(poly.vertices) - 1; i >= 0; i-- {
		newPoly.vertices = append(newPoly.vertices, poly.vertices[i])
	}
	return newPoly
}

// Rotate returns the same boundary listed from a different starting vertex.
// Rotation doesn't change the polygon, so area and centroid are unaffected.
func (poly *Polygon) Rotate(k int) *Polygon {
	n := len(poly.vertices)
	vertices := make([]Point, n)
	for i := range vertices {
		vertices[i] = poly.vertices[CircularIndex(i+k, n)]
	}
	return &Polygon{vertices: vertices}
}

// Translated returns a copy shifted by (dx, dy). The centroid shifts with it;
// the area is unchanged.
func (poly *Polygon) Translated(dx, dy float64) *Polygon {
	vertices := make([]Point, len(poly.vertices))
	for i, p := range poly.vertices {
		vertices[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return &Polygon{vertices: vertices}
}

// Scaled returns a copy scaled about the origin by k. The area scales by k².
func (poly *Polygon) Scaled(k float64) *Polygon {
	vertices := make([]Point, len(poly.vertices))
	for i, p := range poly.vertices {
		vertices[i] = Point{X: p.X * k, Y: p.Y * k}
	}
	return &Polygon{vertices: vertices}
}

// ContainsPoint reports whether p is inside the polygon by the even-odd
// winding rule. Points exactly on the boundary may land on either side.
func (poly *Polygon) ContainsPoint(p Point) bool {
	return poly.crossingCount(p)%2 == 1
}

// Crossing count for the even-odd rule: the number of edges a rightward ray
// from p passes through.
func (poly *Polygon) crossingCount(p Point) int {
	crossingCount := 0
	n := len(poly.vertices)
	for i, vertex := range poly.vertices {
		nextVertex := poly.vertices[CircularIndex(i+1, n)]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		crossX := vertex.X + (p.Y-vertex.Y)/(nextVertex.Y-vertex.Y)*(nextVertex.X-vertex.X)
		if crossX > p.X {
			crossingCount++
		}
	}
	return crossingCount
}
