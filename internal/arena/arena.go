package arena

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/CounterCheckers/pkg/common"
	"github.com/ChizhovVadim/CounterCheckers/pkg/engine"
)

// Run plays config.Games games between the two configured players.
// Every worker owns a private pair of engines.
func Run(ctx context.Context, config Config) (Summary, error) {
	if config.Concurrency < 1 || config.MaxPlies < 1 {
		return Summary{}, fmt.Errorf("bad arena config %+v", config)
	}
	if _, err := common.NewPositionFromFEN(config.StartFen); err != nil {
		return Summary{}, err
	}
	for side := range config.Players {
		if _, err := engine.New(config.Players[side]); err != nil {
			return Summary{}, fmt.Errorf("%v: %w", common.PlayerName(side), err)
		}
	}

	log.Info().
		Int("numCPU", runtime.NumCPU()).
		Int("gomaxprocs", runtime.GOMAXPROCS(0)).
		Int("games", config.Games).
		Int("concurrency", config.Concurrency).
		Msg("arena started")
	defer log.Info().Msg("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var summary Summary

	g.Go(func() error {
		defer close(gameInfos)
		return loadGames(ctx, config.Games, gameInfos)
	})

	g.Go(func() error {
		var err error
		summary, err = showResults(ctx, config.Output, gameResults)
		return err
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < config.Concurrency; i++ {
		var worker = i
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, config, worker, gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return summary, err
}

func playGames(
	ctx context.Context,
	config Config,
	worker int,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	var engines [2]engine.Chooser
	for side := range engines {
		var eng, err = engine.New(workerOptions(config.Players[side], worker))
		if err != nil {
			return err
		}
		engines[side] = eng
	}
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, engines, config, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}

// workerOptions gives each worker its own random stream when a seed is fixed.
func workerOptions(options engine.Options, worker int) engine.Options {
	if options.Seed != 0 {
		options.Seed += uint64(worker)
	}
	return options
}
