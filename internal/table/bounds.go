package table

import (
	"fmt"
	"io"
	"strings"
)

// Bounds is the inclusive rectangle [0,MaxX]x[0,MaxY].
type Bounds struct {
	MaxX, MaxY int
}

// DefaultBounds is the 6x6 table.
var DefaultBounds = Bounds{MaxX: 5, MaxY: 5}

func (b Bounds) Contains(c Coord) bool {
	return c.X >= 0 && c.X <= b.MaxX && c.Y >= 0 && c.Y <= b.MaxY
}

var glyphs = [numDirections]byte{North: '^', East: '>', South: 'v', West: '<'}

// Render draws the table with the top row (y = MaxY) first. The robot is
// drawn with a heading glyph when placed is true.
func (b Bounds) Render(w io.Writer, pos Coord, dir Direction, placed bool) error {
	var sb strings.Builder
	for y := b.MaxY; y >= 0; y-- {
		for x := 0; x <= b.MaxX; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if placed && pos.X == x && pos.Y == y && dir.Valid() {
				sb.WriteByte(glyphs[dir])
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	_, err := fmt.Fprint(w, sb.String())
	return err
}
