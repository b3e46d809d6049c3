package engine

import (
	"context"
	"time"

	. "github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

// Without Iterative only the last iteration is searched.
// Limits are checked between iterations, a started iteration always completes.
func iterativeDeepening(e *Engine, tm *timeManager, ml []Move) SearchInfo {
	var minDepth = e.options.Depth
	if e.options.Iterative {
		minDepth = 1
	}
	var result SearchInfo
	for depth := minDepth; depth <= e.options.Depth; depth++ {
		if depth > minDepth && tm.IsDone() {
			break
		}
		e.orderRootMoves(ml)
		var score, move = searchRoot(e.searcher, ml, depth)
		result = SearchInfo{
			Move:  move,
			Score: score,
			Depth: depth,
		}
		logIteration(result, e.searcher.stats)
	}
	return result
}

type timeManager struct {
	ctx      context.Context
	start    time.Time
	moveTime time.Duration
}

func newTimeManager(ctx context.Context, start time.Time, moveTime time.Duration) *timeManager {
	return &timeManager{
		ctx:      ctx,
		start:    start,
		moveTime: moveTime,
	}
}

func (tm *timeManager) IsDone() bool {
	if tm.ctx.Err() != nil {
		return true
	}
	return tm.moveTime > 0 && time.Since(tm.start) >= tm.moveTime
}
