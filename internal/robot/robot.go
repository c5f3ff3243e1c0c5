package robot

import (
	"fmt"

	"toyrobot/internal/table"
)

// Robot represents the robot on a bounded table.
// Until the first successful Place only Place has an effect.
type Robot struct {
	bounds table.Bounds
	pos    table.Coord
	facing table.Direction
	placed bool
}

func New(bounds table.Bounds) *Robot {
	return &Robot{bounds: bounds, facing: table.North}
}

func (r *Robot) Bounds() table.Bounds { return r.bounds }

func (r *Robot) Placed() bool { return r.placed }

// State returns position and heading. ok is false before placement.
func (r *Robot) State() (pos table.Coord, facing table.Direction, ok bool) {
	return r.pos, r.facing, r.placed
}

// Place puts the robot at c facing d. An out-of-bounds coordinate leaves
// the previous state untouched.
func (r *Robot) Place(c table.Coord, d table.Direction) error {
	if !d.Valid() {
		return fmt.Errorf("place %v: invalid direction %d", c, int(d))
	}
	if !r.bounds.Contains(c) {
		return fmt.Errorf("place %v: %w", c, ErrPlacementRejected)
	}
	r.pos, r.facing, r.placed = c, d, true
	return nil
}

// Move advances one unit in the current heading unless that leaves the table.
func (r *Robot) Move() error {
	if !r.placed {
		return ErrNotPlaced
	}
	next := r.pos.Add(r.facing.Delta())
	if !r.bounds.Contains(next) {
		return fmt.Errorf("move %s from %v: %w", r.facing, r.pos, ErrMovementBlocked)
	}
	r.pos = next
	return nil
}

func (r *Robot) Left() error {
	return r.turn(-1)
}

func (r *Robot) Right() error {
	return r.turn(1)
}

func (r *Robot) turn(delta int) error {
	if !r.placed {
		return ErrNotPlaced
	}
	r.facing = r.facing.Rotate(delta)
	return nil
}

// Report formats the state as X=<x>,Y=<y>,Facing=<DIRECTION>.
func (r *Robot) Report() (string, error) {
	if !r.placed {
		return "", ErrNotPlaced
	}
	return r.String(), nil
}

func (r *Robot) String() string {
	return fmt.Sprintf("X=%d,Y=%d,Facing=%s", r.pos.X, r.pos.Y, r.facing)
}
