package common

import "math/rand"

var (
	sideKey        uint64
	pieceSquareKey [2 * 2 * SquareCount]uint64
)

func PieceSquareKey(side int, king bool, sq int) uint64 {
	var piece = side << 1
	if king {
		piece |= 1
	}
	return pieceSquareKey[piece*SquareCount+sq]
}

func (p *Position) computeKey() uint64 {
	var result = uint64(0)
	if p.SideToMove == Player2 {
		result ^= sideKey
	}
	for side := Player1; side <= Player2; side++ {
		for x := p.Pieces[side]; x != 0; x &= x - 1 {
			var sq = FirstOne(x)
			result ^= PieceSquareKey(side, p.Kings&SquareMask(sq) != 0, sq)
		}
	}
	return result
}

func initKeys() {
	var r = rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for i := range pieceSquareKey {
		pieceSquareKey[i] = r.Uint64()
	}
}

func init() {
	initKeys()
}
