package eval

import (
	"github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

const (
	manValue  = 100
	kingValue = 300
)

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p *common.Position) int {
	if !p.HasMoves() {
		return -common.ValueMate
	}
	var us = p.SideToMove
	var them = us ^ 1
	return manValue*(common.PopCount(p.Men(us))-common.PopCount(p.Men(them))) +
		kingValue*(common.PopCount(p.KingsOf(us))-common.PopCount(p.KingsOf(them)))
}
