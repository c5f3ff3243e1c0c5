package interpreter

import (
	"io"
	"log/slog"

	"toyrobot/internal/robot"
)

// Context stores the robot and the sinks a run writes to.
type Context struct {
	Robot *robot.Robot
	// Out receives REPORT lines and usage diagnostics.
	Out io.Writer
	// Notices receives advisories for blocked moves and rejected placements.
	Notices io.Writer
	// Trace, when set, receives a drawing of the table after each command.
	Trace io.Writer
	Log   *slog.Logger
}

func NewContext(r *robot.Robot, out io.Writer) *Context {
	return &Context{
		Robot:   r,
		Out:     out,
		Notices: io.Discard,
		Log:     slog.Default(),
	}
}
