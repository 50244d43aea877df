package model

// Cell is a position on the unbounded grid
type Cell struct {
	X int
	Y int
}

// Add returns the cell offset by other
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// neighborOffsets is the Moore neighborhood, shared by every neighbor query
var neighborOffsets = [8]Cell{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
	{X: 1, Y: 1},
	{X: -1, Y: -1},
}

// Rect is an inclusive rectangle of cells
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the number of columns covered by r
func (r Rect) Width() int { return r.MaxX - r.MinX + 1 }

// Height returns the number of rows covered by r
func (r Rect) Height() int { return r.MaxY - r.MinY + 1 }

// Area returns the number of cells covered by r
func (r Rect) Area() int { return r.Width() * r.Height() }

// Contains reports whether c lies inside r
func (r Rect) Contains(c Cell) bool {
	return c.X >= r.MinX && c.X <= r.MaxX && c.Y >= r.MinY && c.Y <= r.MaxY
}
