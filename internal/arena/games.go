package arena

import (
	"context"

	"github.com/google/uuid"
)

func loadGames(
	ctx context.Context,
	games int,
	gameInfos chan<- gameInfo,
) error {
	for i := 0; i < games; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{id: uuid.New(), gameNumber: i + 1}:
		}
	}
	return nil
}
