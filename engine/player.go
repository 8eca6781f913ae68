package engine

import (
	"ataxx/game"
	"ataxx/searcher"
)

// A Player supplies the next move for its color. The second result is false
// when no move can be produced: input ran out, the session left playing
// state, or the side has no pieces.
type Player interface {
	Move() (game.Move, bool)
}

// manualPlayer reads moves from the engine's input, letting other commands
// interleave with play.
type manualPlayer struct {
	engine *Engine
	color  game.Cell
}

func (p *manualPlayer) Move() (game.Move, bool) {
	return p.engine.readMove(p.color)
}

// agentPlayer adapts a searcher.Agent and announces its choices.
type agentPlayer struct {
	engine *Engine
	color  game.Cell
	agent  searcher.Agent
}

func (p *agentPlayer) Move() (game.Move, bool) {
	mv, ok := p.agent.FindMove(p.engine.board)
	if !ok {
		return game.Move{}, false
	}
	p.engine.reporter.MoveMsg("%s moves %s.", p.color, mv)
	return mv, true
}
