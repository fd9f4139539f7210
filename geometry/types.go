package geometry

type Point struct {
	X float64
	Y float64
}

// A Polygon is an ordered ring of vertices. Consecutive vertices form edges,
// and the last vertex implicitly connects back to the first to close the
// boundary. The ring is fixed at construction; because nothing can mutate it,
// a polygon can be shared freely between goroutines.
type Polygon struct {
	vertices []Point
}
