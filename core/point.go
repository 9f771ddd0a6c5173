package core

// Point is an integer grid cell (column, row)
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Step returns the neighbouring cell one unit in direction d
func (p Point) Step(d Direction) Point {
	return p.Add(d.Delta())
}

// In reports whether p lies inside the inclusive rectangle [minX,maxX] x [minY,maxY]
func (p Point) In(minX, minY, maxX, maxY int) bool {
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
