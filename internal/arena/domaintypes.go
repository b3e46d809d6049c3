package arena

import (
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/ChizhovVadim/CounterCheckers/pkg/common"
	"github.com/ChizhovVadim/CounterCheckers/pkg/engine"
)

const (
	gameResultDraw = iota
	gameResultPlayer1Wins
	gameResultPlayer2Wins
)

type Config struct {
	Games       int
	Concurrency int
	MaxPlies    int
	StartFen    string
	Players     [2]engine.Options
	Output      io.Writer
}

func NewConfig() Config {
	var random = engine.NewOptions()
	random.Kind = engine.KindRandom
	return Config{
		Games:       1,
		Concurrency: 1,
		MaxPlies:    400,
		StartFen:    common.InitialPositionFen,
		Players:     [2]engine.Options{engine.NewOptions(), random},
		Output:      os.Stdout,
	}
}

type PlayerStats struct {
	Moves int
	engine.SearchStats
}

func (s *PlayerStats) Add(info engine.SearchInfo) {
	s.Moves++
	s.SearchStats.Add(info.Stats)
}

type Summary struct {
	Games       int
	Player1Wins int
	Player2Wins int
	Draws       int
}

type gameInfo struct {
	id         uuid.UUID
	gameNumber int
}

type gameResult struct {
	gameInfo gameInfo
	result   int
	comment  string
	plies    int
	stats    [2]PlayerStats
}
