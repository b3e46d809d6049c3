package arena

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

func showResults(
	ctx context.Context,
	out io.Writer,
	gameResults <-chan gameResult,
) (Summary, error) {
	var results []gameResult
	for gameResult := range gameResults {
		results = append(results, gameResult)
		if err := printGameResult(out, gameResult); err != nil {
			return Summary{}, err
		}
		log.Info().
			Int("game", gameResult.gameInfo.gameNumber).
			Str("winner", gameResultString(gameResult.result)).
			Str("comment", gameResult.comment).
			Int("plies", gameResult.plies).
			Msg("finished game")

		var summary = summarize(results)
		var stat = computeStat(summary.Player1Wins, summary.Player2Wins, summary.Draws)
		log.Info().
			Int("player1", summary.Player1Wins).
			Int("player2", summary.Player2Wins).
			Int("draws", summary.Draws).
			Int("games", summary.Games).
			Float64("winningFraction", stat.winningFraction).
			Float64("eloDifference", stat.eloDifference).
			Float64("los", stat.los).
			Msg("score")
	}
	return summarize(results), nil
}

func summarize(results []gameResult) Summary {
	return Summary{
		Games: len(results),
		Player1Wins: lo.CountBy(results, func(r gameResult) bool {
			return r.result == gameResultPlayer1Wins
		}),
		Player2Wins: lo.CountBy(results, func(r gameResult) bool {
			return r.result == gameResultPlayer2Wins
		}),
		Draws: lo.CountBy(results, func(r gameResult) bool {
			return r.result == gameResultDraw
		}),
	}
}

func printGameResult(out io.Writer, res gameResult) error {
	var id = res.gameInfo.id
	var _, err = fmt.Fprintf(out, "game.%v.winner = %v\n", id, gameResultString(res.result))
	if err != nil {
		return err
	}
	for side, stats := range res.stats {
		var player = common.PlayerName(side)
		for _, item := range []struct {
			key   string
			value int
		}{
			{"moves", stats.Moves},
			{"explored", stats.Explored},
			{"beta_cuts", stats.BetaCuts},
			{"tt_exact", stats.TTExact},
			{"tt_cuts", stats.TTCuts},
			{"max_depth", stats.MaxDepth},
		} {
			_, err = fmt.Fprintf(out, "game.%v.%v.%v = %v\n", id, player, item.key, item.value)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

type GameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

// Player1 point of view
//https://chessprogramming.wikispaces.com/Match%20Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	var winning_fraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var elo_difference = -math.Log(1/winning_fraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	return GameStatistics{
		winningFraction: winning_fraction,
		eloDifference:   elo_difference,
		los:             los,
	}
}

func gameResultString(v int) string {
	if v == gameResultPlayer1Wins {
		return common.PlayerName(common.Player1)
	}
	if v == gameResultPlayer2Wins {
		return common.PlayerName(common.Player2)
	}
	if v == gameResultDraw {
		return "draw"
	}
	return ""
}
