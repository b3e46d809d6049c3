package eval

import (
	. "github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

const (
	manValue      = 105
	kingValue     = 125
	exchangeBonus = 250
	kingCenter    = 30
	cramp         = 10
)

// relative squares, Player1 view
const (
	crampSquare   = 16 // a5
	crampBlocker  = 20 // b6
	advancedRanks = uint32(0xFFF) << 20
)

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

type sideInfo struct {
	men, kings uint32
}

func (e *EvaluationService) Evaluate(p *Position) int {
	if !p.HasMoves() {
		return -ValueMate
	}
	var us = p.SideToMove
	var them = us ^ 1
	var own = sideInfo{
		men:   RelativeBitboard(us, p.Men(us)),
		kings: RelativeBitboard(us, p.KingsOf(us)),
	}
	var opp = sideInfo{
		men:   RelativeBitboard(them, p.Men(them)),
		kings: RelativeBitboard(them, p.KingsOf(them)),
	}

	var me = PopCount(p.Pieces[us])
	var you = PopCount(p.Pieces[them])
	var total = me + you

	var defenceWeight = 15
	if total <= 12 {
		defenceWeight = -10
	}
	var tempoWeight = 40
	if total <= 16 {
		tempoWeight = 10
	}

	var score = manValue*(PopCount(own.men)-PopCount(opp.men)) +
		kingValue*(PopCount(own.kings)-PopCount(opp.kings))
	score += defenceWeight * (PopCount(own.men&Rank1Mask) - PopCount(opp.men&Rank1Mask))
	score += tempoWeight * (PopCount(own.men&advancedRanks) - PopCount(opp.men&advancedRanks))
	if total != 0 {
		score += exchangeBonus * (me - you) / total
	}
	score += me - you
	score += kingCenter * (PopCount(own.kings&CenterMask) - PopCount(opp.kings&CenterMask))
	score += cramp * (crampScore(own, opp) - crampScore(opp, own))
	return score
}

// A man on a5 facing an enemy piece on b6 holds two of the opponent's men.
func crampScore(side, other sideInfo) int {
	var otherPieces = FlipBitboard(other.men | other.kings)
	if side.men&SquareMask(crampSquare) != 0 &&
		otherPieces&SquareMask(crampBlocker) != 0 {
		return 1
	}
	return 0
}
