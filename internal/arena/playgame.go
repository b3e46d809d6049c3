package arena

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/ChizhovVadim/CounterCheckers/pkg/common"
	"github.com/ChizhovVadim/CounterCheckers/pkg/engine"
)

func playGame(
	ctx context.Context,
	engines [2]engine.Chooser,
	config Config,
	info gameInfo,
) (gameResult, error) {

	log.Info().Int("game", info.gameNumber).Str("id", info.id.String()).Msg("started game")

	engines[common.Player1].Clear()
	engines[common.Player2].Clear()

	var position, err = common.NewPositionFromFEN(config.StartFen)
	if err != nil {
		return gameResult{}, err
	}

	var result = gameResult{gameInfo: info}
	var buf [common.MaxMoves]common.Move
	var child common.Position

	for {
		if err := ctx.Err(); err != nil {
			return gameResult{}, err
		}
		if result.plies >= config.MaxPlies {
			result.result = gameResultDraw
			result.comment = "max plies"
			return result, nil
		}
		var side = position.SideToMove
		var searchResult, err = engines[side].ChooseMove(ctx, &position)
		if errors.Is(err, engine.ErrNoLegalMove) {
			if side == common.Player1 {
				result.result = gameResultPlayer2Wins
			} else {
				result.result = gameResultPlayer1Wins
			}
			result.comment = "no legal move"
			return result, nil
		}
		if err != nil {
			return gameResult{}, err
		}
		var ml = position.GenerateMoves(buf[:])
		if !slices.Contains(ml, searchResult.Move) {
			return gameResult{}, fmt.Errorf("bad move %v in %v", searchResult.Move, position.String())
		}
		result.stats[side].Add(searchResult)
		log.Trace().
			Int("game", info.gameNumber).
			Str("player", common.PlayerName(side)).
			Str("move", searchResult.Move.String()).
			Int("score", searchResult.Score).
			Msg("move")
		position.MakeMove(searchResult.Move, &child)
		position = child
		result.plies++
	}
}
