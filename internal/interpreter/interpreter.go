package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"toyrobot/internal/robot"
)

const maxLineSize = 1 << 20

type StopReason int

const (
	StopEOF StopReason = iota
	StopExit
	// StopFirstLine: the first non-blank line was not a PLACE. Nothing is
	// printed for it, unlike malformed lines later in the stream.
	StopFirstLine
)

func (r StopReason) String() string {
	switch r {
	case StopExit:
		return "exit"
	case StopFirstLine:
		return "first line not PLACE"
	}
	return "eof"
}

// Result describes how a run ended.
type Result struct {
	Lines  int
	Reason StopReason
}

// Run reads commands from in until it is exhausted, EXIT is read, or the
// first command is not a PLACE. Only a failure to read or write is returned
// as an error.
func Run(ctx *Context, in io.Reader) (Result, error) {
	var res Result
	br := bufio.NewReader(in)
	for {
		line, long, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read commands: %w", err)
		}
		var cmd Command
		ok := true
		if long {
			cmd.Err = fmt.Errorf("%w: line longer than %d bytes", ErrMalformedCommand, maxLineSize)
		} else {
			cmd, ok = ParseLine(line)
		}
		if !ok {
			continue
		}
		res.Lines++
		if res.Lines == 1 && cmd.Keyword != "PLACE" {
			ctx.Log.Debug("first command is not PLACE, stopping", "keyword", cmd.Keyword)
			res.Reason = StopFirstLine
			return res, nil
		}
		stop, err := Exec(ctx, cmd)
		if err != nil {
			return res, err
		}
		if stop {
			res.Reason = StopExit
			return res, nil
		}
	}
	res.Reason = StopEOF
	return res, nil
}

// readLine returns the next line without its terminator. A line longer than
// maxLineSize is drained and reported as long with its content dropped.
func readLine(br *bufio.Reader) (line string, long bool, err error) {
	var (
		buf      []byte
		chunk    []byte
		isPrefix bool
	)
	for {
		chunk, isPrefix, err = br.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !long {
			if len(buf)+len(chunk) > maxLineSize {
				long, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), long, nil
		}
	}
}

// Exec applies one command to the robot. stop is true for EXIT.
func Exec(ctx *Context, cmd Command) (stop bool, err error) {
	r := ctx.Robot
	switch cmd.Kind {
	case KindPlace:
		err = r.Place(cmd.Placement.Coord(), cmd.Placement.Direction())
	case KindMove:
		err = r.Move()
	case KindLeft:
		err = r.Left()
	case KindRight:
		err = r.Right()
	case KindReport:
		var line string
		line, err = r.Report()
		if err == nil {
			_, err = fmt.Fprintln(ctx.Out, line)
			return false, err
		}
	case KindExit:
		ctx.Log.Debug("exit requested")
		return true, nil
	default:
		ctx.Log.Debug("malformed command", "keyword", cmd.Keyword, "error", cmd.Err)
		_, err = fmt.Fprintln(ctx.Out, Usage)
		return false, err
	}

	if err = advise(ctx, cmd, err); err != nil {
		return false, err
	}
	if ctx.Trace != nil {
		pos, facing, placed := r.State()
		if err := r.Bounds().Render(ctx.Trace, pos, facing, placed); err != nil {
			return false, err
		}
		_, err = fmt.Fprintln(ctx.Trace)
	}
	return false, err
}

// advise turns a robot error into an advisory line. Unexpected errors are
// returned.
func advise(ctx *Context, cmd Command, err error) error {
	var msg string
	switch {
	case err == nil:
		ctx.Log.Debug("applied", "command", cmd.Kind, "state", ctx.Robot)
		return nil
	case errors.Is(err, robot.ErrNotPlaced):
		ctx.Log.Debug("ignored before placement", "command", cmd.Kind)
		return nil
	case errors.Is(err, robot.ErrMovementBlocked):
		_, facing, _ := ctx.Robot.State()
		msg = fmt.Sprintf("Robot can't be moved in %s direction.", facing)
	case errors.Is(err, robot.ErrPlacementRejected):
		b := ctx.Robot.Bounds()
		msg = fmt.Sprintf("Invalid position. Max allowed position is %dX%d", b.MaxX, b.MaxY)
	default:
		return err
	}
	ctx.Log.Debug("rejected", "command", cmd.Kind, "error", err)
	_, werr := fmt.Fprintln(ctx.Notices, msg)
	return werr
}
