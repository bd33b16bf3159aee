package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// parser errors
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

// Op is a console operation
type Op int

// console operations
const (
	OpScroll Op = iota
	OpProcess
	OpQuit
)

func (o Op) String() string {
	switch o {
	case OpScroll:
		return "scroll"
	case OpProcess:
		return "process"
	case OpQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a parsed console line
type Command struct {
	Op  Op
	Arg uint32
}

var commands = map[string]struct {
	op    Op
	nargs int
}{
	"s":       {OpScroll, 1},
	"scroll":  {OpScroll, 1},
	"p":       {OpProcess, 1},
	"process": {OpProcess, 1},
	"q":       {OpQuit, 0},
	"quit":    {OpQuit, 0},
}

// Parse reads a console line
//
//	s | scroll <addr>   move the world view to addr
//	p | process <id>    select process id
//	q | quit            leave the viewer
func Parse(line string) (Command, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return Command{}, fmt.Errorf("empty line: %w", ErrUnknownCommand)
	}

	c, ok := commands[strings.ToLower(words[0])]
	if !ok {
		return Command{}, fmt.Errorf("%q: %w", words[0], ErrUnknownCommand)
	}
	if len(words)-1 != c.nargs {
		return Command{}, fmt.Errorf("%s takes %d argument(s): %w", c.op, c.nargs, ErrBadArguments)
	}

	cmd := Command{Op: c.op}
	if c.nargs == 1 {
		n, err := ParseNumber(words[1])
		if err != nil {
			return Command{}, err
		}
		cmd.Arg = n
	}
	return cmd, nil
}

// ParseNumber reads a 32 bit number, decimal or 0x prefixed hexadecimal
func ParseNumber(s string) (uint32, error) {
	base := 10
	digits := s
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		base = 16
		digits = s[2:]
	}
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, ErrBadArguments)
	}
	return uint32(n), nil
}
