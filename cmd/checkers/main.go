package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/CounterCheckers/internal/arena"
	"github.com/ChizhovVadim/CounterCheckers/internal/console"
	"github.com/ChizhovVadim/CounterCheckers/pkg/common"
	"github.com/ChizhovVadim/CounterCheckers/pkg/engine"
)

type Config struct {
	Games       int
	Concurrency int
	MaxPlies    int
	Fen         string
	Human       bool
	Verbose     bool
	Players     [2]engine.Options
}

var config Config

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Caller().Logger()
	var err = run()
	if err != nil {
		log.Error().Err(err).Msg("checkers failed")
		os.Exit(1)
	}
}

func run() error {
	var defaults = arena.NewConfig()
	flag.IntVar(&config.Games, "games", defaults.Games, "number of games")
	flag.IntVar(&config.Concurrency, "concurrency", defaults.Concurrency, "number of games played at once")
	flag.IntVar(&config.MaxPlies, "max-plies", defaults.MaxPlies, "plies after which a game is a draw")
	flag.StringVar(&config.Fen, "fen", defaults.StartFen, "start position")
	flag.BoolVar(&config.Human, "human", false, "play as player1 against player2 engine")
	flag.BoolVar(&config.Verbose, "verbose", false, "debug logging")
	for side := range config.Players {
		config.Players[side] = defaults.Players[side]
		playerFlags(fmt.Sprintf("p%v-", side+1), &config.Players[side])
	}
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Interface("config", config).Msg("config")

	var ctx, cancel = signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if config.Human {
		var eng, err = engine.New(config.Players[common.Player2])
		if err != nil {
			return err
		}
		game, err := console.NewGame(os.Stdin, os.Stdout, eng, config.Fen)
		if err != nil {
			return err
		}
		_, err = game.Run(ctx)
		return err
	}

	var arenaConfig = arena.Config{
		Games:       config.Games,
		Concurrency: config.Concurrency,
		MaxPlies:    config.MaxPlies,
		StartFen:    config.Fen,
		Players:     config.Players,
		Output:      os.Stdout,
	}
	var summary, err = arena.Run(ctx, arenaConfig)
	if err != nil {
		return err
	}
	fmt.Printf("player1 = %v\nplayer2 = %v\ndraw = %v\n",
		summary.Player1Wins, summary.Player2Wins, summary.Draws)
	return nil
}

func playerFlags(prefix string, o *engine.Options) {
	flag.StringVar(&o.Kind, prefix+"engine", o.Kind, "engine: ai or random")
	flag.BoolVar(&o.AlphaBeta, prefix+"alpha-beta", o.AlphaBeta, "alpha-beta pruning")
	flag.BoolVar(&o.TransTable, prefix+"tt", o.TransTable, "transposition table")
	flag.BoolVar(&o.Quiescence, prefix+"quiescence", o.Quiescence, "quiescence search")
	flag.BoolVar(&o.Iterative, prefix+"iterative", o.Iterative, "iterative deepening")
	flag.IntVar(&o.Depth, prefix+"depth", o.Depth, "search depth")
	flag.StringVar(&o.Eval, prefix+"eval", o.Eval, "evaluation: v1, v2 or v3")
	flag.DurationVar(&o.MoveTime, prefix+"time", o.MoveTime, "iterative deepening budget per move")
	flag.IntVar(&o.TableSize, prefix+"tt-size", o.TableSize, "transposition table entries")
	flag.Uint64Var(&o.Seed, prefix+"seed", o.Seed, "random engine seed, 0 for a random seed")
}
