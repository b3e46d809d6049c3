package common

const (
	Player1 = iota
	Player2
)

const (
	Empty = iota
	Man
	King
)

const (
	MaxMoves    = 128
	MaxCaptures = 12
	MaxPieces   = 12
)

const (
	// ValueMate is the score of a side to move without legal moves.
	ValueMate = 1 << 30
	// ValueEvalLimit bounds every static evaluation.
	ValueEvalLimit = 1 << 27
)

const InitialPositionFen = "xxxx/xxxx/xxxx/4/4/oooo/oooo/oooo o"

const (
	Rank1Mask  uint32 = 0xF
	Rank8Mask  uint32 = 0xF << 28
	CenterMask uint32 = 1<<9 | 1<<10 | 1<<13 | 1<<14 | 1<<17 | 1<<18 | 1<<21 | 1<<22
)

func RankMask(rank int) uint32 {
	return Rank1Mask << uint(4*rank)
}

func PlayerName(side int) string {
	if side == Player1 {
		return "player1"
	}
	return "player2"
}
