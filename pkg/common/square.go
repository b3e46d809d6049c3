package common

import "strings"

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	SquareCount = 32
	SquareNone  = -1
)

// Playable squares are numbered 0..31, four per rank, starting at a1.
// Square 0 is a1, square 3 is g1, square 4 is b2, square 31 is h8.

const (
	DirUpLeft = iota
	DirUpRight
	DirDownLeft
	DirDownRight
)

var neighbours [SquareCount][4]int

func Rank(sq int) int {
	return sq >> 2
}

func File(sq int) int {
	return ((sq & 3) << 1) | (Rank(sq) & 1)
}

func IsDarkSquare(file, rank int) bool {
	return (file & 1) == (rank & 1)
}

func MakeSquare(file, rank int) int {
	if file < FileA || file > FileH ||
		rank < Rank1 || rank > Rank8 ||
		!IsDarkSquare(file, rank) {
		return SquareNone
	}
	return (rank << 2) | (file >> 1)
}

func IsValidSquare(sq int) bool {
	return sq >= 0 && sq < SquareCount
}

// FlipSquare rotates the board by 180 degrees.
func FlipSquare(sq int) int {
	return sq ^ 31
}

func RelativeSquare(side, sq int) int {
	if side == Player1 {
		return sq
	}
	return FlipSquare(sq)
}

func RelativeRank(side, sq int) int {
	return Rank(RelativeSquare(side, sq))
}

func Neighbour(sq, dir int) int {
	return neighbours[sq][dir]
}

func OppositeDir(dir int) int {
	return dir ^ 3
}

func IsForward(side, dir int) bool {
	if side == Player1 {
		return dir == DirUpLeft || dir == DirUpRight
	}
	return dir == DirDownLeft || dir == DirDownRight
}

func IsPromotionSquare(side, sq int) bool {
	return RelativeRank(side, sq) == Rank8
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}

func ParseSquare(s string) int {
	if len(s) != 2 {
		return SquareNone
	}
	var file = strings.IndexByte(fileNames, s[0]|0x20)
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return SquareNone
	}
	return MakeSquare(file, rank)
}

func init() {
	var deltas = [4][2]int{
		DirUpLeft:    {-1, 1},
		DirUpRight:   {1, 1},
		DirDownLeft:  {-1, -1},
		DirDownRight: {1, -1},
	}
	for sq := 0; sq < SquareCount; sq++ {
		for dir, d := range deltas {
			neighbours[sq][dir] = MakeSquare(File(sq)+d[0], Rank(sq)+d[1])
		}
	}
}
