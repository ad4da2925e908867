package chain

import "math"

// TipPosition returns the Cartesian position of the terminal mass, found by
// accumulating each link's (L·sin θ, −L·cos θ) offset from the fixed pivot
// at (0, BaseY).
func TipPosition(c *Chain) Point {
	x, y := 0.0, BaseY
	for _, l := range c.links {
		x += l.Length * math.Sin(l.Theta)
		y -= l.Length * math.Cos(l.Theta)
	}
	return Point{X: x, Y: y}
}

// JointPositions returns the pivot followed by the end of each link, in
// attachment order; the result has Len()+1 entries. Renderers use it to draw
// rods and bobs.
func JointPositions(c *Chain) []Point {
	pts := make([]Point, 0, len(c.links)+1)
	x, y := 0.0, BaseY
	pts = append(pts, Point{X: x, Y: y})
	for _, l := range c.links {
		x += l.Length * math.Sin(l.Theta)
		y -= l.Length * math.Cos(l.Theta)
		pts = append(pts, Point{X: x, Y: y})
	}
	return pts
}
