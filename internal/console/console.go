package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ChizhovVadim/CounterCheckers/pkg/common"
	"github.com/ChizhovVadim/CounterCheckers/pkg/engine"
)

var errQuit = errors.New("quit")

// Game is a human (Player1) against an engine (Player2) played over text streams.
type Game struct {
	scanner  *bufio.Scanner
	out      io.Writer
	engine   engine.Chooser
	position common.Position
}

func NewGame(in io.Reader, out io.Writer, eng engine.Chooser, fen string) (*Game, error) {
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{
		scanner:  bufio.NewScanner(in),
		out:      out,
		engine:   eng,
		position: p,
	}, nil
}

// Run plays until one side has no legal move and returns the winner.
// Input "quit" or the end of input stop the game with an empty winner.
func (g *Game) Run(ctx context.Context) (string, error) {
	var buffer [common.MaxMoves]common.Move
	var child common.Position
	for {
		fmt.Fprintln(g.out, boardString(&g.position))
		var side = g.position.SideToMove
		var ml = g.position.GenerateMoves(buffer[:])
		if len(ml) == 0 {
			var winner = common.PlayerName(side ^ 1)
			fmt.Fprintf(g.out, "%v wins\n", winner)
			return winner, nil
		}
		var move common.Move
		if side == common.Player1 {
			var err error
			move, err = g.readMove(ml)
			if errors.Is(err, errQuit) {
				return "", nil
			}
			if err != nil {
				return "", err
			}
		} else {
			var info, err = g.engine.ChooseMove(ctx, &g.position)
			if err != nil {
				return "", err
			}
			move = info.Move
			log.Debug().
				Str("move", move.String()).
				Int("score", info.Score).
				Int("depth", info.Depth).
				Int("explored", info.Stats.Explored).
				Msg("engine move")
			fmt.Fprintf(g.out, "engine plays %v\n", move)
		}
		g.position.MakeMove(move, &child)
		g.position = child
	}
}

func (g *Game) readMove(ml []common.Move) (common.Move, error) {
	for {
		fmt.Fprintf(g.out, "your move %v: ", strings.Join(lo.Map(ml, func(m common.Move, i int) string {
			return fmt.Sprintf("%v)%v", i+1, m)
		}), " "))
		if !g.scanner.Scan() {
			if err := g.scanner.Err(); err != nil {
				return common.MoveEmpty, err
			}
			return common.MoveEmpty, errQuit
		}
		var line = strings.ToLower(strings.TrimSpace(g.scanner.Text()))
		if line == "quit" {
			return common.MoveEmpty, errQuit
		}
		if move, ok := parseMove(ml, line); ok {
			return move, nil
		}
		fmt.Fprintf(g.out, "illegal move %q\n", line)
	}
}

// parseMove accepts the move text ("c3-d4", "c3xe5xc7") or its number in the list.
func parseMove(ml []common.Move, s string) (common.Move, bool) {
	if index, err := strconv.Atoi(s); err == nil {
		if index >= 1 && index <= len(ml) {
			return ml[index-1], true
		}
		return common.MoveEmpty, false
	}
	return lo.Find(ml, func(m common.Move) bool {
		return m.String() == s
	})
}

func boardString(p *common.Position) string {
	var sb strings.Builder
	for rank := common.Rank8; rank >= common.Rank1; rank-- {
		fmt.Fprintf(&sb, "%v ", rank+1)
		for file := common.FileA; file <= common.FileH; file++ {
			var ch = " "
			if common.IsDarkSquare(file, rank) {
				ch = "."
				var piece, side = p.WhatPiece(common.MakeSquare(file, rank))
				switch {
				case piece == common.Man && side == common.Player1:
					ch = "o"
				case piece == common.King && side == common.Player1:
					ch = "O"
				case piece == common.Man && side == common.Player2:
					ch = "x"
				case piece == common.King && side == common.Player2:
					ch = "X"
				}
			}
			sb.WriteString(ch)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  abcdefgh")
	return sb.String()
}
