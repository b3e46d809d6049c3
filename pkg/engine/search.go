package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	. "github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

type searcher struct {
	options    *Options
	evaluator  Evaluator
	transTable *transTable
	stats      SearchStats
	stack      [stackSize]struct {
		position Position
		moveList [MaxMoves]Move
	}
}

func searchRoot(s *searcher, ml []Move, depth int) (int, Move) {
	const height = 0
	var position = &s.stack[height].position
	var child = &s.stack[height+1].position
	s.expand(height)

	var alpha, beta = -valueInfinity, valueInfinity
	var best = -valueInfinity
	var bestMove = MoveEmpty
	for _, move := range ml {
		position.MakeMove(move, child)
		s.stats.Explored++
		var score = -s.negamax(-beta, -alpha, depth-1, height+1)
		// ties keep the move searched first
		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
		}
	}

	if s.transTable != nil {
		s.transTable.Update(position.Key, depth, valueToTT(best, height), boundExact, bestMove)
	}
	return best, bestMove
}

// main search method
func (s *searcher) negamax(alpha, beta, depth, height int) int {
	if alpha > beta {
		panic(fmt.Errorf("negamax: alpha %v > beta %v at height %v", alpha, beta, height))
	}
	if !s.options.AlphaBeta {
		alpha, beta = -valueInfinity, valueInfinity
	}
	if depth <= 0 {
		if s.options.Quiescence {
			return s.quiescence(alpha, beta, height, s.options.QuiescenceDepth)
		}
		return s.evaluate(height)
	}

	var position = &s.stack[height].position
	var ml = position.GenerateMoves(s.stack[height].moveList[:])
	if len(ml) == 0 {
		return lossIn(height)
	}

	// transposition table
	var ttMove = MoveEmpty
	if s.transTable != nil {
		var ttDepth, ttValue, ttBound, move, ttHit = s.transTable.Read(position.Key)
		if ttHit {
			ttMove = move
			ttValue = valueFromTT(ttValue, height)
			// entries of another depth only order moves
			if ttDepth == depth {
				if ttBound == boundExact {
					s.stats.TTExact++
					return ttValue
				}
				if ttValue >= beta && (ttBound&boundLower) != 0 ||
					ttValue <= alpha && (ttBound&boundUpper) != 0 {
					s.stats.TTCuts++
					return ttValue
				}
			}
		}
	}

	s.expand(height)
	if ttMove != MoveEmpty {
		moveToBegin(ml, slices.Index(ml, ttMove))
	}

	var child = &s.stack[height+1].position
	var oldAlpha = alpha
	var best = -valueInfinity
	var bestMove = MoveEmpty
	for _, move := range ml {
		position.MakeMove(move, child)
		s.stats.Explored++
		var score = -s.negamax(-beta, -alpha, depth-1, height+1)
		if score > best {
			best = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
			if alpha >= beta {
				s.stats.BetaCuts++
				break
			}
		}
	}

	if s.transTable != nil {
		var bound = 0
		if best > oldAlpha {
			bound |= boundLower
		}
		if best < beta {
			bound |= boundUpper
		}
		s.transTable.Update(position.Key, depth, valueToTT(best, height), bound, bestMove)
	}

	return best
}

// quiescence resolves pending captures. Captures are compulsory, so there is no stand pat.
func (s *searcher) quiescence(alpha, beta, height, qdepth int) int {
	if alpha > beta {
		panic(fmt.Errorf("quiescence: alpha %v > beta %v at height %v", alpha, beta, height))
	}
	if !s.options.AlphaBeta {
		alpha, beta = -valueInfinity, valueInfinity
	}
	var position = &s.stack[height].position
	var ml = position.GenerateMoves(s.stack[height].moveList[:])
	if len(ml) == 0 {
		return lossIn(height)
	}
	if qdepth <= 0 || !ml[0].IsCapture() {
		return s.evaluate(height)
	}

	s.expand(height)
	var child = &s.stack[height+1].position
	var best = -valueInfinity
	for _, move := range ml {
		position.MakeMove(move, child)
		s.stats.Explored++
		var score = -s.quiescence(-beta, -alpha, height+1, qdepth-1)
		best = Max(best, score)
		if score > alpha {
			alpha = score
			if alpha >= beta {
				s.stats.BetaCuts++
				break
			}
		}
	}
	return best
}

func (s *searcher) evaluate(height int) int {
	var score = s.evaluator.Evaluate(&s.stack[height].position)
	if score <= -ValueMate {
		return lossIn(height)
	}
	return score
}

func (s *searcher) expand(height int) {
	s.stats.MaxDepth = Max(s.stats.MaxDepth, height+1)
}
