package engine

import (
	"fmt"
	"time"

	"github.com/ChizhovVadim/CounterCheckers/internal/evalbuilder"
)

const (
	KindAI     = "ai"
	KindRandom = "random"
)

type Options struct {
	Kind            string
	AlphaBeta       bool
	TransTable      bool
	Quiescence      bool
	Iterative       bool
	Depth           int
	Eval            string
	TableSize       int
	QuiescenceDepth int
	MoveTime        time.Duration
	Seed            uint64
}

func NewOptions() Options {
	return Options{
		Kind:            KindAI,
		AlphaBeta:       true,
		TransTable:      true,
		Quiescence:      true,
		Iterative:       false,
		Depth:           6,
		Eval:            "v1",
		TableSize:       1 << 18,
		QuiescenceDepth: 16,
	}
}

func (o *Options) validate() error {
	switch o.Kind {
	case KindAI, KindRandom:
	default:
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidOptions, o.Kind)
	}
	if o.Kind == KindRandom {
		return nil
	}
	if o.Depth < 1 {
		return fmt.Errorf("%w: depth %v", ErrInvalidOptions, o.Depth)
	}
	if o.Quiescence && o.QuiescenceDepth < 0 {
		return fmt.Errorf("%w: quiescence depth %v", ErrInvalidOptions, o.QuiescenceDepth)
	}
	if o.Depth+o.maxQuiescencePlies() >= maxHeight {
		return fmt.Errorf("%w: depth %v exceeds search stack", ErrInvalidOptions, o.Depth)
	}
	if o.TransTable && o.TableSize < 1 {
		return fmt.Errorf("%w: table size %v", ErrInvalidOptions, o.TableSize)
	}
	if o.MoveTime < 0 {
		return fmt.Errorf("%w: move time %v", ErrInvalidOptions, o.MoveTime)
	}
	if _, err := evalbuilder.Get(o.Eval); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

func (o *Options) maxQuiescencePlies() int {
	if !o.Quiescence {
		return 0
	}
	return o.QuiescenceDepth
}
