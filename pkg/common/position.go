package common

import (
	"fmt"
	"strconv"
	"strings"
)

type Position struct {
	Pieces     [2]uint32
	Kings      uint32
	SideToMove int
	MoveCount  int
	Key        uint64
}

func NewInitialPosition() Position {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFromFEN parses ranks 8 to 1 separated by '/'. Every rank lists its four
// dark squares from file a: 'o' and 'O' are Player1 man and king, 'x' and 'X' are
// Player2 man and king, a digit skips empty squares. The second field is the side to
// move ('o' or 'x'), the optional third one is the move counter.
func NewPositionFromFEN(fen string) (Position, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 2 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}
	var ranks = strings.Split(tokens[0], "/")
	if len(ranks) != 8 {
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}
	var p Position
	for i, rankString := range ranks {
		var rank = Rank8 - i
		var index = 0
		for _, ch := range rankString {
			if ch >= '1' && ch <= '4' {
				index += int(ch - '0')
				continue
			}
			if index >= 4 {
				return Position{}, fmt.Errorf("parse fen failed %v", fen)
			}
			var sq = rank<<2 | index
			switch ch {
			case 'o':
				p.Pieces[Player1] |= SquareMask(sq)
			case 'O':
				p.Pieces[Player1] |= SquareMask(sq)
				p.Kings |= SquareMask(sq)
			case 'x':
				p.Pieces[Player2] |= SquareMask(sq)
			case 'X':
				p.Pieces[Player2] |= SquareMask(sq)
				p.Kings |= SquareMask(sq)
			default:
				return Position{}, fmt.Errorf("parse fen failed %v", fen)
			}
			index++
		}
		if index != 4 {
			return Position{}, fmt.Errorf("parse fen failed %v", fen)
		}
	}
	switch tokens[1] {
	case "o":
		p.SideToMove = Player1
	case "x":
		p.SideToMove = Player2
	default:
		return Position{}, fmt.Errorf("parse fen failed %v", fen)
	}
	if len(tokens) > 2 {
		var moveCount, err = strconv.Atoi(tokens[2])
		if err != nil || moveCount < 0 {
			return Position{}, fmt.Errorf("parse fen failed %v", fen)
		}
		p.MoveCount = moveCount
	}
	if PopCount(p.Pieces[Player1]) > MaxPieces ||
		PopCount(p.Pieces[Player2]) > MaxPieces {
		return Position{}, fmt.Errorf("too many pieces %v", fen)
	}
	p.Key = p.computeKey()
	return p, nil
}

func (p *Position) String() string {
	var sb strings.Builder
	for rank := Rank8; rank >= Rank1; rank-- {
		var emptyCount = 0
		for index := 0; index < 4; index++ {
			var piece, side = p.WhatPiece(rank<<2 | index)
			if piece == Empty {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteString(pieceToChar(piece, side))
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank != Rank1 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(pieceToChar(Man, p.SideToMove))
	if p.MoveCount != 0 {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(p.MoveCount))
	}
	return sb.String()
}

func pieceToChar(piece, side int) string {
	var result = "o"
	if side == Player2 {
		result = "x"
	}
	if piece == King {
		result = strings.ToUpper(result)
	}
	return result
}

// WhatPiece returns Empty, Man or King and the owner of the square.
func (p *Position) WhatPiece(sq int) (piece, side int) {
	var mask = SquareMask(sq)
	switch {
	case p.Pieces[Player1]&mask != 0:
		side = Player1
	case p.Pieces[Player2]&mask != 0:
		side = Player2
	default:
		return Empty, Player1
	}
	if p.Kings&mask != 0 {
		return King, side
	}
	return Man, side
}

func (p *Position) Occupied() uint32 {
	return p.Pieces[Player1] | p.Pieces[Player2]
}

func (p *Position) Men(side int) uint32 {
	return p.Pieces[side] &^ p.Kings
}

func (p *Position) KingsOf(side int) uint32 {
	return p.Pieces[side] & p.Kings
}

// MakeMove writes the position after move into result. The source position is not modified.
func (src *Position) MakeMove(move Move, result *Position) {
	var side = src.SideToMove
	var from, to = move.From(), move.To()
	if !IsValidSquare(from) || !IsValidSquare(to) ||
		src.Pieces[side]&SquareMask(from) == 0 {
		panic(fmt.Errorf("bad move %v in position %v", move, src.String()))
	}
	var isKing = src.Kings&SquareMask(from) != 0

	*result = *src
	xorPiece(result, side, isKing, from)
	for i := 0; i < move.CaptureCount(); i++ {
		var sq = int(move.Jump(i).Captured)
		if !IsValidSquare(sq) || src.Pieces[side^1]&SquareMask(sq) == 0 {
			panic(fmt.Errorf("bad move %v in position %v", move, src.String()))
		}
		xorPiece(result, side^1, src.Kings&SquareMask(sq) != 0, sq)
	}
	var promotion = !isKing && (move.Promotion() || IsPromotionSquare(side, to))
	xorPiece(result, side, isKing || promotion, to)

	result.SideToMove = side ^ 1
	result.Key ^= sideKey
	result.MoveCount = src.MoveCount + 1
}

func xorPiece(p *Position, side int, king bool, sq int) {
	var mask = SquareMask(sq)
	p.Pieces[side] ^= mask
	if king {
		p.Kings ^= mask
	}
	p.Key ^= PieceSquareKey(side, king, sq)
}

// MirrorPosition rotates the board and swaps the colours of all pieces and the side to move.
func MirrorPosition(p *Position) Position {
	var result = Position{
		Pieces: [2]uint32{
			FlipBitboard(p.Pieces[Player2]),
			FlipBitboard(p.Pieces[Player1]),
		},
		Kings:      FlipBitboard(p.Kings),
		SideToMove: p.SideToMove ^ 1,
		MoveCount:  p.MoveCount,
	}
	result.Key = result.computeKey()
	return result
}
