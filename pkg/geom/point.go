// Package geom provides the 2D primitives used by the electrode layout engine.
//
// All coordinates are in centimeters within a subject-centered frame:
// the nasion sits at the origin and y decreases toward the inion.
package geom

// Point is an immutable 2D coordinate pair in centimeters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Lerp returns p1 + t*(p2-p1).
//
// t=0 yields p1 and t=1 yields p2. Values of t outside [0,1] extrapolate
// linearly along the same line; the temporal chain relies on this.
func Lerp(p1, p2 Point, t float64) Point {
	return Point{
		X: p1.X + t*(p2.X-p1.X),
		Y: p1.Y + t*(p2.Y-p1.Y),
	}
}

// Mirror returns the point reflected about the x=0 sagittal plane.
func (p Point) Mirror() Point {
	return Point{X: -p.X, Y: p.Y}
}
