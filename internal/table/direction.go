package table

// Direction is a compass heading. Values are ordered clockwise so that
// rotation is index arithmetic modulo 4.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

const numDirections = 4

var directionNames = [numDirections]string{"NORTH", "EAST", "SOUTH", "WEST"}

var deltas = [numDirections]Coord{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

func (d Direction) String() string {
	if !d.Valid() {
		return "UNKNOWN"
	}
	return directionNames[d]
}

func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// Delta returns the unit displacement of one step in direction d.
func (d Direction) Delta() Coord {
	if !d.Valid() {
		return Coord{}
	}
	return deltas[d]
}

// Rotate turns d by delta quarter turns, clockwise for positive delta.
func (d Direction) Rotate(delta int) Direction {
	i := (int(d) + delta) % numDirections
	if i < 0 {
		i += numDirections
	}
	return Direction(i)
}

func (d Direction) Left() Direction  { return d.Rotate(-1) }
func (d Direction) Right() Direction { return d.Rotate(1) }

// ParseDirection maps an upper-case direction name to its Direction.
func ParseDirection(name string) (Direction, bool) {
	for i, n := range directionNames {
		if n == name {
			return Direction(i), true
		}
	}
	return North, false
}
