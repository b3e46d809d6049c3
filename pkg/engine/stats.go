package engine

import (
	. "github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

// SearchStats counts the work of one move decision.
type SearchStats struct {
	Explored int
	BetaCuts int
	TTExact  int
	TTCuts   int
	MaxDepth int
}

func (s *SearchStats) Add(other SearchStats) {
	s.Explored += other.Explored
	s.BetaCuts += other.BetaCuts
	s.TTExact += other.TTExact
	s.TTCuts += other.TTCuts
	s.MaxDepth = Max(s.MaxDepth, other.MaxDepth)
}
