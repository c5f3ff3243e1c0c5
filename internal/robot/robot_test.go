package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toyrobot/internal/table"
)

func placed(t *testing.T, x, y int, d table.Direction) *Robot {
	t.Helper()
	r := New(table.DefaultBounds)
	require.NoError(t, r.Place(table.Coord{X: x, Y: y}, d))
	return r
}

func TestPlaceAndReport(t *testing.T) {
	r := placed(t, 2, 2, table.East)
	got, err := r.Report()
	require.NoError(t, err)
	assert.Equal(t, "X=2,Y=2,Facing=EAST", got)
	assert.Equal(t, got, r.String())
}

func TestUnplacedRobotIgnoresCommands(t *testing.T) {
	r := New(table.DefaultBounds)
	assert.False(t, r.Placed())
	assert.ErrorIs(t, r.Move(), ErrNotPlaced)
	assert.ErrorIs(t, r.Left(), ErrNotPlaced)
	assert.ErrorIs(t, r.Right(), ErrNotPlaced)
	_, err := r.Report()
	assert.ErrorIs(t, err, ErrNotPlaced)

	_, _, ok := r.State()
	assert.False(t, ok)
}

func TestPlaceOutOfBoundsKeepsState(t *testing.T) {
	r := New(table.DefaultBounds)
	err := r.Place(table.Coord{X: 6, Y: 0}, table.North)
	assert.ErrorIs(t, err, ErrPlacementRejected)
	assert.False(t, r.Placed())

	r = placed(t, 1, 1, table.South)
	err = r.Place(table.Coord{X: -1, Y: 3}, table.West)
	assert.ErrorIs(t, err, ErrPlacementRejected)
	pos, facing, ok := r.State()
	require.True(t, ok)
	assert.Equal(t, table.Coord{X: 1, Y: 1}, pos)
	assert.Equal(t, table.South, facing)
}

func TestPlaceOverwritesState(t *testing.T) {
	r := placed(t, 1, 1, table.South)
	require.NoError(t, r.Place(table.Coord{X: 4, Y: 3}, table.West))
	assert.Equal(t, "X=4,Y=3,Facing=WEST", r.String())
}

func TestPlaceInvalidDirection(t *testing.T) {
	r := New(table.DefaultBounds)
	assert.Error(t, r.Place(table.Coord{}, table.Direction(9)))
	assert.False(t, r.Placed())
}

func TestMove(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		facing  table.Direction
		want    table.Coord
		blocked bool
	}{
		{"north", 0, 1, table.North, table.Coord{X: 0, Y: 2}, false},
		{"east", 2, 2, table.East, table.Coord{X: 3, Y: 2}, false},
		{"south", 2, 2, table.South, table.Coord{X: 2, Y: 1}, false},
		{"west", 2, 2, table.West, table.Coord{X: 1, Y: 2}, false},
		{"top edge", 0, 5, table.North, table.Coord{X: 0, Y: 5}, true},
		{"right edge", 5, 0, table.East, table.Coord{X: 5, Y: 0}, true},
		{"bottom edge", 1, 0, table.South, table.Coord{X: 1, Y: 0}, true},
		{"left edge", 0, 1, table.West, table.Coord{X: 0, Y: 1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := placed(t, tt.x, tt.y, tt.facing)
			err := r.Move()
			if tt.blocked {
				assert.ErrorIs(t, err, ErrMovementBlocked)
			} else {
				assert.NoError(t, err)
			}
			pos, facing, _ := r.State()
			assert.Equal(t, tt.want, pos)
			assert.Equal(t, tt.facing, facing)
		})
	}
}

func TestTurns(t *testing.T) {
	r := placed(t, 0, 1, table.North)
	require.NoError(t, r.Left())
	assert.Equal(t, "X=0,Y=1,Facing=WEST", r.String())
	require.NoError(t, r.Right())
	require.NoError(t, r.Right())
	assert.Equal(t, "X=0,Y=1,Facing=EAST", r.String())
}

func TestSmallerTable(t *testing.T) {
	r := New(table.Bounds{MaxX: 1, MaxY: 1})
	assert.ErrorIs(t, r.Place(table.Coord{X: 2, Y: 0}, table.North), ErrPlacementRejected)
	require.NoError(t, r.Place(table.Coord{X: 1, Y: 1}, table.North))
	assert.ErrorIs(t, r.Move(), ErrMovementBlocked)
}
