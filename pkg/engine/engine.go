package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/ChizhovVadim/CounterCheckers/internal/evalbuilder"
	. "github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

var (
	ErrNoLegalMove    = errors.New("no legal move")
	ErrInvalidOptions = errors.New("invalid engine options")
)

type Evaluator interface {
	Evaluate(p *Position) int
}

// Chooser is implemented by every engine kind.
type Chooser interface {
	ChooseMove(ctx context.Context, p *Position) (SearchInfo, error)
	Clear()
}

type SearchInfo struct {
	Move  Move
	Score int
	Depth int
	Stats SearchStats
	Time  time.Duration
}

type Engine struct {
	options  Options
	searcher *searcher
}

// Options returns a copy of the configuration fixed at construction.
func (e *Engine) Options() Options {
	return e.options
}

func New(options Options) (Chooser, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}
	if options.Kind == KindRandom {
		return NewRandomEngine(options), nil
	}
	var e, err = NewEngine(options)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func NewEngine(options Options) (*Engine, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}
	if options.Kind != KindAI {
		return nil, fmt.Errorf("%w: engine %q is not a search engine", ErrInvalidOptions, options.Kind)
	}
	evalBuilder, err := evalbuilder.Get(options.Eval)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	evaluator, ok := evalBuilder().(Evaluator)
	if !ok {
		return nil, fmt.Errorf("%w: bad eval builder %v", ErrInvalidOptions, options.Eval)
	}
	var e = &Engine{
		options: options,
	}
	e.searcher = &searcher{
		options:   &e.options,
		evaluator: evaluator,
	}
	if options.TransTable {
		e.searcher.transTable = newTransTable(options.TableSize)
	}
	return e, nil
}

func (e *Engine) ChooseMove(ctx context.Context, p *Position) (SearchInfo, error) {
	var start = time.Now()
	var s = e.searcher
	s.stats = SearchStats{}
	s.stack[0].position = *p

	var buffer [MaxMoves]Move
	var ml = p.GenerateMoves(buffer[:])
	if len(ml) == 0 {
		return SearchInfo{}, ErrNoLegalMove
	}
	if s.transTable != nil {
		s.transTable.IncDate()
	}

	var tm = newTimeManager(ctx, start, e.options.MoveTime)
	var result = iterativeDeepening(e, tm, ml)
	result.Stats = s.stats
	result.Time = time.Since(start)
	return result, nil
}

func (e *Engine) Clear() {
	if e.searcher.transTable != nil {
		e.searcher.transTable.Clear()
	}
}

// orderRootMoves puts the move remembered for the root first.
func (e *Engine) orderRootMoves(ml []Move) {
	var tt = e.searcher.transTable
	if tt == nil {
		return
	}
	var _, _, _, transMove, ok = tt.Read(e.searcher.stack[0].position.Key)
	if ok && transMove != MoveEmpty {
		moveToBegin(ml, slices.Index(ml, transMove))
	}
}

func logIteration(info SearchInfo, stats SearchStats) {
	log.Debug().
		Int("depth", info.Depth).
		Int("score", info.Score).
		Str("move", info.Move.String()).
		Int("explored", stats.Explored).
		Int("betaCuts", stats.BetaCuts).
		Msg("iteration complete")
}
