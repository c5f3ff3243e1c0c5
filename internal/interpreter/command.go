package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

var ErrMalformedCommand = errors.New("malformed command")

type Kind int

const (
	KindInvalid Kind = iota
	KindPlace
	KindMove
	KindLeft
	KindRight
	KindReport
	KindExit
)

var keywords = map[string]Kind{
	"PLACE":  KindPlace,
	"MOVE":   KindMove,
	"LEFT":   KindLeft,
	"RIGHT":  KindRight,
	"REPORT": KindReport,
	"EXIT":   KindExit,
}

var kindNames = [...]string{"INVALID", "PLACE", "MOVE", "LEFT", "RIGHT", "REPORT", "EXIT"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// Command is one parsed input line.
type Command struct {
	Kind      Kind
	Keyword   string
	Args      []string
	Placement *Placement
	// Err is set when Kind is KindInvalid.
	Err error
}

// ParseLine splits line shell-style and classifies it. ok is false for a
// line with no tokens.
func ParseLine(line string) (cmd Command, ok bool) {
	words, err := shellquote.Split(strings.TrimSpace(line))
	if err != nil {
		return Command{Err: fmt.Errorf("%w: %v", ErrMalformedCommand, err)}, true
	}
	if len(words) == 0 {
		return Command{}, false
	}

	cmd = Command{Keyword: words[0], Args: words[1:]}
	kind, known := keywords[cmd.Keyword]
	if !known {
		cmd.Err = fmt.Errorf("%w: unknown keyword %q", ErrMalformedCommand, cmd.Keyword)
		return cmd, true
	}
	if kind == KindPlace {
		if len(cmd.Args) != 1 {
			cmd.Err = fmt.Errorf("%w: PLACE takes one argument, got %d", ErrMalformedCommand, len(cmd.Args))
			return cmd, true
		}
		p, err := ParsePlacement(cmd.Args[0])
		if err != nil {
			cmd.Err = fmt.Errorf("%w: %v", ErrMalformedCommand, err)
			return cmd, true
		}
		cmd.Placement = p
	}
	cmd.Kind = kind
	return cmd, true
}
