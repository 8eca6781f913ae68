package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// CommandType identifies one of the textual commands understood by the
// session loop.
type CommandType int

const (
	CmdNone CommandType = iota // blank line or comment
	CmdAuto
	CmdBlock
	CmdClear
	CmdDump
	CmdHelp
	CmdLoad
	CmdManual
	CmdMove
	CmdPass
	CmdQuit
	CmdSeed
	CmdStart
)

// Command is one parsed input line.
type Command struct {
	Type     CommandType
	Operands []string
}

var (
	squarePattern = regexp.MustCompile(`^[a-g][1-7]$`)
	tokenPattern  = regexp.MustCompile(`^[a-g][1-7]-[a-g][1-7]$`)
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)
)

// Parse converts an input line into a Command. Text after '#' is a comment.
// Unknown words and malformed operands are reported as errors, not guessed
// at.
func Parse(line string) (Command, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Type: CmdNone}, nil
	}

	word, operands := fields[0], fields[1:]
	need := func(typ CommandType, n int, check func(string) bool) (Command, error) {
		if len(operands) != n {
			return Command{}, fmt.Errorf("'%s' takes %d operand(s)", word, n)
		}
		for _, op := range operands {
			if check != nil && !check(op) {
				return Command{}, fmt.Errorf("bad operand %q for '%s'", op, word)
			}
		}
		return Command{Type: typ, Operands: operands}, nil
	}
	isColor := func(s string) bool { return s == "red" || s == "blue" }

	switch word {
	case "auto":
		return need(CmdAuto, 1, isColor)
	case "manual":
		return need(CmdManual, 1, isColor)
	case "block":
		return need(CmdBlock, 1, squarePattern.MatchString)
	case "seed":
		return need(CmdSeed, 1, digitsPattern.MatchString)
	case "load":
		return need(CmdLoad, 1, nil)
	case "start":
		return need(CmdStart, 0, nil)
	case "clear":
		return need(CmdClear, 0, nil)
	case "dump":
		return need(CmdDump, 0, nil)
	case "help":
		return need(CmdHelp, 0, nil)
	case "quit":
		return need(CmdQuit, 0, nil)
	case "-":
		return need(CmdPass, 0, nil)
	default:
		if tokenPattern.MatchString(word) && len(operands) == 0 {
			return Command{Type: CmdMove, Operands: []string{word}}, nil
		}
		return Command{}, fmt.Errorf("command not understood: %s", word)
	}
}
