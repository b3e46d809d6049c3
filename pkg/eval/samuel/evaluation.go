package eval

import (
	. "github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

// Terms after A. L. Samuel, "Some Studies in Machine Learning Using the Game of Checkers" (1959).
// Weights are powers of two so that material always dominates.

const (
	weightMaterial = 1 << 20
	weightMoc2     = 1 << 18
	weightKcent    = 1 << 16
	weightMoc4     = 1 << 14
	weightMode3    = 1 << 13
	weightDemmo    = 1 << 11
	weightMove     = 1 << 8
	weightAdv      = 1 << 8
	weightMode2    = 1 << 8
	weightBack     = 1 << 6
	weightCent     = 1 << 5
	weightThret    = 1 << 5
	weightMoc3     = 1 << 4
)

// relative masks, Player1 view
const (
	moveSystemMask = Rank1Mask | Rank1Mask<<8 | Rank1Mask<<16 | Rank1Mask<<24
	advRanks34     = Rank1Mask<<8 | Rank1Mask<<12
	advRanks56     = Rank1Mask<<16 | Rank1Mask<<20
	bridgeMask     = 1<<1 | 1<<3
)

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

type mobility struct {
	mob, deny, thret int
}

func (e *EvaluationService) Evaluate(p *Position) int {
	if !p.HasMoves() {
		return -ValueMate
	}
	var us = p.SideToMove
	var them = us ^ 1

	var me = 2*PopCount(p.Men(us)) + 3*PopCount(p.KingsOf(us))
	var you = 2*PopCount(p.Men(them)) + 3*PopCount(p.KingsOf(them))

	var m = computeMobility(p, us)

	var mov = 0
	if me < 25 && me == you {
		if PopCount(RelativeBitboard(us, p.Occupied())&moveSystemMask)%2 == 0 {
			mov = 1
		}
	}

	var passiveMen = RelativeBitboard(them, p.Men(them))
	var adv = PopCount(passiveMen&advRanks56) - PopCount(passiveMen&advRanks34)

	var back = 0
	if p.KingsOf(us) == 0 &&
		RelativeBitboard(them, p.Pieces[them])&bridgeMask == bridgeMask {
		back = 1
	}

	var cent = PopCount(p.Men(us) & CenterMask)
	var kcent = PopCount(p.KingsOf(us) & CenterMask)

	var undeniedMobility = m.mob-m.deny > 0
	var totalMobility = m.mob > 0
	var denial = m.deny > 0
	var control = cent+kcent > 0

	var score = (me - you) * weightMaterial
	score += kcent * weightKcent
	score += mov * weightMove
	score -= adv * weightAdv
	score -= back * weightBack
	score += cent * weightCent
	score += m.thret * weightThret
	if denial && !totalMobility {
		score -= weightDemmo
	}
	if undeniedMobility && !denial {
		score -= weightMode2
	}
	if !undeniedMobility && denial {
		score -= weightMode3
	}
	if !undeniedMobility && control {
		score -= weightMoc2
	}
	if undeniedMobility && !control {
		score += weightMoc3
	}
	if !undeniedMobility && !control {
		score -= weightMoc4
	}
	return score
}

// computeMobility counts the slides of side (mob), the slides that land on a
// square the opponent can immediately jump from (deny) and the slides after
// which the moved piece attacks an enemy piece (thret).
func computeMobility(p *Position, side int) mobility {
	var result mobility
	var occupied = p.Occupied()
	var enemies = p.Pieces[side^1]
	for x := p.Pieces[side]; x != 0; x &= x - 1 {
		var from = FirstOne(x)
		var isKing = p.Kings&SquareMask(from) != 0
		for dir := 0; dir < 4; dir++ {
			if !isKing && !IsForward(side, dir) {
				continue
			}
			var to = Neighbour(from, dir)
			if to == SquareNone || occupied&SquareMask(to) != 0 {
				continue
			}
			result.mob++
			var after = occupied&^SquareMask(from) | SquareMask(to)
			if isAttacked(p, side^1, to, after) {
				result.deny++
			}
			for jumpDir := 0; jumpDir < 4; jumpDir++ {
				if !isKing && !IsForward(side, jumpDir) {
					continue
				}
				var over = Neighbour(to, jumpDir)
				if over == SquareNone || enemies&SquareMask(over) == 0 {
					continue
				}
				var land = Neighbour(over, jumpDir)
				if land != SquareNone && after&SquareMask(land) == 0 {
					result.thret++
				}
			}
		}
	}
	return result
}

// isAttacked reports whether a piece of attacker can jump the square sq
// given the occupancy after a move.
func isAttacked(p *Position, attacker, sq int, occupied uint32) bool {
	for dir := 0; dir < 4; dir++ {
		var from = Neighbour(sq, dir)
		var land = Neighbour(sq, OppositeDir(dir))
		if from == SquareNone || land == SquareNone {
			continue
		}
		if p.Pieces[attacker]&SquareMask(from) == 0 || occupied&SquareMask(land) != 0 {
			continue
		}
		if p.Kings&SquareMask(from) != 0 || IsForward(attacker, OppositeDir(dir)) {
			return true
		}
	}
	return false
}
