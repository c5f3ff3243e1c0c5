package robot

import "errors"

var (
	ErrNotPlaced         = errors.New("robot is not on the table")
	ErrPlacementRejected = errors.New("placement outside the table")
	ErrMovementBlocked   = errors.New("movement would leave the table")
)
