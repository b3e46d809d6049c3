package common

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

func Min[T constraints.Ordered](l, r T) T {
	if l < r {
		return l
	}
	return r
}

func Max[T constraints.Ordered](l, r T) T {
	if l > r {
		return l
	}
	return r
}

func AbsDelta(x, y int) int {
	if x > y {
		return x - y
	}
	return y - x
}

func SquareMask(sq int) uint32 {
	return uint32(1) << uint(sq)
}

func PopCount(b uint32) int {
	return bits.OnesCount32(b)
}

func FirstOne(b uint32) int {
	return bits.TrailingZeros32(b)
}

// FlipBitboard is FlipSquare applied to every square of b.
func FlipBitboard(b uint32) uint32 {
	return bits.Reverse32(b)
}

func RelativeBitboard(side int, b uint32) uint32 {
	if side == Player1 {
		return b
	}
	return FlipBitboard(b)
}

func BitboardString(b uint32) string {
	var s = ""
	for x := b; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		if s != "" {
			s += ","
		}
		s += SquareName(sq)
	}
	return "(" + s + ")"
}
