package interpreter

import (
	"errors"
	"math"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"toyrobot/internal/table"
)

// The PLACE argument lexer has no whitespace, sign or lower-case rules, so
// anything other than X,Y,DIRECTION fails to tokenize.
var placeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Dir", Pattern: `NORTH|SOUTH|EAST|WEST`},
	{Name: "Comma", Pattern: `,`},
})

// Placement is the argument of PLACE, e.g. "0,1,NORTH".
type Placement struct {
	X   string `parser:"@Int ','"`
	Y   string `parser:"@Int ','"`
	Dir string `parser:"@Dir"`
}

var placeParser = participle.MustBuild[Placement](participle.Lexer(placeLexer))

func ParsePlacement(arg string) (*Placement, error) {
	return placeParser.ParseString("PLACE", arg)
}

// Coord converts the digits to a coordinate. Values too large for int
// saturate, which keeps them off any table.
func (p *Placement) Coord() table.Coord {
	return table.Coord{X: atoiSaturated(p.X), Y: atoiSaturated(p.Y)}
}

func (p *Placement) Direction() table.Direction {
	d, _ := table.ParseDirection(p.Dir)
	return d
}

func atoiSaturated(s string) int {
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt
	}
	return n
}
