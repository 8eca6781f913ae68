package engine

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"ataxx/game"
	"ataxx/searcher"
)

// State is the session phase: accepting setup commands, playing out a game,
// or sitting on a finished one.
type State int

const (
	Setup State = iota
	Playing
	Finished
)

const helpText = `Commands:
  c0r0-c1r1    move from square c0r0 to c1r1 (e.g. a7-b7)
  -            pass (only when you have no move)
  block cr     place blocks at cr and its reflections (setup only)
  auto COLOR   let the machine play COLOR
  manual COLOR take over COLOR yourself
  start        begin play
  clear        abandon the game and return to setup
  seed N       reseed the random strategy
  dump         print the board
  load FILE    read commands from FILE
  quit         exit
`

// Engine drives one interactive session: a setup loop, the turn loop
// alternating the two players against the shared board, and a finished loop,
// repeated until the input runs dry or a quit command arrives.
type Engine struct {
	board    *game.Board
	cfg      Config
	sources  []CommandSource
	reporter Reporter
	out      io.Writer

	state State
	red   string
	blue  string
	seed  uint64

	quitting bool
}

// New builds an engine reading commands from in and writing prompts, dumps
// and help to out.
func New(cfg Config, in io.Reader, out io.Writer, reporter Reporter) *Engine {
	e := &Engine{
		board:    game.New(),
		cfg:      cfg,
		reporter: reporter,
		out:      out,
		state:    Setup,
		red:      cfg.Players.Red,
		blue:     cfg.Players.Blue,
		seed:     cfg.Board.Seed,
	}
	e.sources = []CommandSource{NewReaderSource(in, out, true)}
	e.board.AddListener(func(b *game.Board) {
		log.Debug().
			Stringer("to_move", b.WhoseMove()).
			Int("red", b.NumPieces(game.Red)).
			Int("blue", b.NumPieces(game.Blue)).
			Int("jumps", b.Jumps()).
			Msg("board changed")
	})
	return e
}

// Board exposes the engine's board for inspection.
func (e *Engine) Board() *game.Board {
	return e.board
}

// Run executes sessions until quit or end of input.
func (e *Engine) Run() {
	for !e.quitting {
		e.doClear()
		for e.state == Setup && !e.quitting {
			e.doCommand()
		}
		if e.quitting {
			return
		}

		log.Info().Str("red", e.red).Str("blue", e.blue).Msg("game started")
		red := e.newPlayer(game.Red)
		blue := e.newPlayer(game.Blue)
		for e.state == Playing && !e.board.GameOver() && !e.quitting {
			player := red
			if e.board.WhoseMove() == game.Blue {
				player = blue
			}
			mv, ok := player.Move()
			for ok && !e.legalNow(mv) {
				e.reporter.ErrMsg("that move is illegal")
				mv, ok = player.Move()
			}
			if !ok {
				break
			}
			if e.state == Playing && !e.board.GameOver() {
				e.board.MakeMove(mv)
			}
		}
		if e.quitting {
			return
		}

		if e.state != Setup {
			e.reportWinner()
		}
		if e.state == Playing {
			e.state = Finished
		}
		for e.state == Finished && !e.quitting {
			e.doCommand()
		}
	}
}

// legalNow extends board legality with the turn-loop rule that passing is
// only allowed when no move exists, keeping the board's caller contract
// guarded at the call site.
func (e *Engine) legalNow(mv game.Move) bool {
	if mv.IsPass() {
		return !e.board.CanMove(e.board.WhoseMove())
	}
	return e.board.LegalMove(mv)
}

func (e *Engine) newPlayer(color game.Cell) Player {
	strategy := e.red
	if color == game.Blue {
		strategy = e.blue
	}
	switch strategy {
	case StrategyManual:
		return &manualPlayer{engine: e, color: color}
	case StrategyRandom:
		seed := e.seed
		if color == game.Blue {
			seed++
		}
		return &agentPlayer{engine: e, color: color, agent: searcher.NewRandom(color, seed)}
	default:
		return &agentPlayer{engine: e, color: color, agent: searcher.NewMinimax(color, e.cfg.Search.Depth)}
	}
}

// getLine reads from the top input source, popping exhausted ones.
func (e *Engine) getLine(prompt string) (string, bool) {
	for len(e.sources) > 0 {
		top := e.sources[len(e.sources)-1]
		if line, ok := top.GetLine(prompt); ok {
			return line, true
		}
		e.sources = e.sources[:len(e.sources)-1]
	}
	return "", false
}

// doCommand reads and executes one command in a command loop.
func (e *Engine) doCommand() {
	line, ok := e.getLine("ataxx: ")
	if !ok {
		e.quitting = true
		return
	}
	cmd, err := Parse(line)
	if err != nil {
		e.reporter.ErrMsg("%v", err)
		return
	}
	e.dispatch(cmd)
}

// readMove reads input for the manual player until it produces a move or
// pass, executing any other commands on the way. It gives up when the
// session leaves playing state.
func (e *Engine) readMove(color game.Cell) (game.Move, bool) {
	prompt := fmt.Sprintf("%s: ", color)
	for e.state == Playing && !e.quitting {
		line, ok := e.getLine(prompt)
		if !ok {
			e.quitting = true
			break
		}
		cmd, err := Parse(line)
		if err != nil {
			e.reporter.ErrMsg("%v", err)
			continue
		}
		switch cmd.Type {
		case CmdMove:
			mv, err := game.ParseMove(cmd.Operands[0])
			if err != nil {
				e.reporter.ErrMsg("%v", err)
				continue
			}
			return mv, true
		case CmdPass:
			return game.PassMove(), true
		default:
			e.dispatch(cmd)
		}
	}
	return game.Move{}, false
}

func (e *Engine) dispatch(cmd Command) {
	switch cmd.Type {
	case CmdNone:
	case CmdAuto:
		e.setStrategy(cmd.Operands[0], false)
	case CmdManual:
		e.setStrategy(cmd.Operands[0], true)
	case CmdBlock:
		if e.state != Setup {
			e.reporter.ErrMsg("'block' command is not allowed now")
			return
		}
		cr := cmd.Operands[0]
		if err := e.board.SetBlock(cr[0], cr[1]); err != nil {
			e.reporter.ErrMsg("%v", err)
		}
	case CmdClear:
		e.doClear()
	case CmdDump:
		fmt.Fprint(e.out, e.board.Dump())
	case CmdHelp:
		fmt.Fprint(e.out, helpText)
	case CmdLoad:
		e.doLoad(cmd.Operands[0])
	case CmdSeed:
		seed, err := strconv.ParseUint(cmd.Operands[0], 10, 64)
		if err != nil {
			e.reporter.ErrMsg("bad seed: %v", err)
			return
		}
		e.seed = seed
	case CmdStart:
		if e.state != Setup {
			e.reporter.ErrMsg("'start' command is not allowed now")
			return
		}
		e.state = Playing
	case CmdMove, CmdPass:
		// Reachable only from the setup and finished loops.
		e.reporter.ErrMsg("no game in progress")
	case CmdQuit:
		e.quitting = true
	}
}

// setStrategy flips one color between manual play and its automated
// strategy. "auto" restores the configured machine strategy, defaulting to
// minimax for a color configured as manual.
func (e *Engine) setStrategy(color string, manual bool) {
	strategy := StrategyManual
	if !manual {
		configured := e.cfg.Players.Red
		if color == "blue" {
			configured = e.cfg.Players.Blue
		}
		strategy = configured
		if strategy == StrategyManual {
			strategy = StrategyMinimax
		}
	}
	if color == "red" {
		e.red = strategy
	} else {
		e.blue = strategy
	}
}

// doClear returns to setup on a fresh board with the configured blocks.
func (e *Engine) doClear() {
	e.state = Setup
	e.board.Clear()
	for _, cr := range e.cfg.Board.Blocks {
		if err := e.board.SetBlock(cr[0], cr[1]); err != nil {
			e.reporter.ErrMsg("%v", err)
		}
	}
}

// doLoad pushes the contents of a command file as the active input source.
func (e *Engine) doLoad(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		e.reporter.ErrMsg("cannot open file %s", path)
		return
	}
	e.sources = append(e.sources, NewReaderSource(strings.NewReader(string(data)), nil, false))
}

func (e *Engine) reportWinner() {
	if !e.board.GameOver() {
		e.reporter.OutcomeMsg("Game over.")
		return
	}
	e.state = Finished
	switch e.board.Winner() {
	case game.Red:
		e.reporter.OutcomeMsg("Red wins.")
	case game.Blue:
		e.reporter.OutcomeMsg("Blue wins.")
	default:
		e.reporter.OutcomeMsg("Draw.")
	}
}
