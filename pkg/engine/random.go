package engine

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	. "github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

// RandomEngine plays a uniformly random legal move.
type RandomEngine struct {
	rng *frand.RNG
}

func NewRandomEngine(options Options) *RandomEngine {
	if options.AlphaBeta || options.TransTable || options.Quiescence || options.Iterative {
		log.Debug().
			Bool("alphaBeta", options.AlphaBeta).
			Bool("transTable", options.TransTable).
			Bool("quiescence", options.Quiescence).
			Bool("iterative", options.Iterative).
			Msg("random engine ignores search options")
	}
	var rng *frand.RNG
	if options.Seed != 0 {
		var seed [32]byte
		binary.LittleEndian.PutUint64(seed[:], options.Seed)
		rng = frand.NewCustom(seed[:], 1024, 12)
	} else {
		rng = frand.New()
	}
	return &RandomEngine{rng: rng}
}

func (e *RandomEngine) ChooseMove(ctx context.Context, p *Position) (SearchInfo, error) {
	var start = time.Now()
	var buffer [MaxMoves]Move
	var ml = p.GenerateMoves(buffer[:])
	if len(ml) == 0 {
		return SearchInfo{}, ErrNoLegalMove
	}
	return SearchInfo{
		Move: ml[e.rng.Intn(len(ml))],
		Time: time.Since(start),
	}, nil
}

func (e *RandomEngine) Clear() {}
