package table

import "fmt"

// Coord is a cell on the table. It carries no bounds of its own.
type Coord struct {
	X, Y int
}

func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
