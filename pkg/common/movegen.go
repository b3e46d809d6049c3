package common

// GenerateMoves returns the legal moves of the side to move. When a capture exists only
// captures are returned. Moves are appended to ml[:0] in generation order: origin squares
// ascending, directions DirUpLeft..DirDownRight, jump chains depth-first.
func (p *Position) GenerateMoves(ml []Move) []Move {
	ml = p.GenerateCaptures(ml)
	if len(ml) != 0 {
		return ml
	}
	return p.generateSlides(ml)
}

// GenerateCaptures returns every maximal jump chain of the side to move.
func (p *Position) GenerateCaptures(ml []Move) []Move {
	ml = ml[:0]
	var side = p.SideToMove
	var own = p.Pieces[side]
	var opp = p.Pieces[side^1]
	for x := own; x != 0; x &= x - 1 {
		var from = FirstOne(x)
		var isKing = p.Kings&SquareMask(from) != 0
		// the moving piece leaves its origin, captured pieces stay until the move ends
		var occupied = (own | opp) &^ SquareMask(from)
		ml = addJumps(ml, newJumpStart(from), side, isKing, from, occupied, opp, 0)
	}
	return ml
}

func addJumps(ml []Move, move Move, side int, isKing bool, sq int,
	occupied, opp, captured uint32) []Move {
	var found = false
	for dir := DirUpLeft; dir <= DirDownRight; dir++ {
		if !isKing && !IsForward(side, dir) {
			continue
		}
		var over = neighbours[sq][dir]
		if over == SquareNone ||
			opp&SquareMask(over) == 0 ||
			captured&SquareMask(over) != 0 {
			continue
		}
		var to = neighbours[over][dir]
		if to == SquareNone || occupied&SquareMask(to) != 0 {
			continue
		}
		found = true
		var next = move.addJump(over, to)
		var promoted = !isKing && IsPromotionSquare(side, to)
		if promoted {
			next.promotion = true
		}
		ml = addJumps(ml, next, side, isKing || promoted, to,
			occupied, opp, captured|SquareMask(over))
	}
	if !found && move.IsCapture() {
		ml = append(ml, move)
	}
	return ml
}

func (p *Position) generateSlides(ml []Move) []Move {
	ml = ml[:0]
	var side = p.SideToMove
	var occupied = p.Occupied()
	for x := p.Pieces[side]; x != 0; x &= x - 1 {
		var from = FirstOne(x)
		var isKing = p.Kings&SquareMask(from) != 0
		for dir := DirUpLeft; dir <= DirDownRight; dir++ {
			if !isKing && !IsForward(side, dir) {
				continue
			}
			var to = neighbours[from][dir]
			if to == SquareNone || occupied&SquareMask(to) != 0 {
				continue
			}
			ml = append(ml, NewSlide(from, to, !isKing && IsPromotionSquare(side, to)))
		}
	}
	return ml
}

func (p *Position) HasCaptures() bool {
	var side = p.SideToMove
	var occupied = p.Occupied()
	var opp = p.Pieces[side^1]
	for x := p.Pieces[side]; x != 0; x &= x - 1 {
		var from = FirstOne(x)
		var isKing = p.Kings&SquareMask(from) != 0
		for dir := DirUpLeft; dir <= DirDownRight; dir++ {
			if !isKing && !IsForward(side, dir) {
				continue
			}
			var over = neighbours[from][dir]
			if over == SquareNone || opp&SquareMask(over) == 0 {
				continue
			}
			var to = neighbours[over][dir]
			if to != SquareNone && occupied&SquareMask(to) == 0 {
				return true
			}
		}
	}
	return false
}

func (p *Position) HasMoves() bool {
	var side = p.SideToMove
	var occupied = p.Occupied()
	for x := p.Pieces[side]; x != 0; x &= x - 1 {
		var from = FirstOne(x)
		var isKing = p.Kings&SquareMask(from) != 0
		for dir := DirUpLeft; dir <= DirDownRight; dir++ {
			if !isKing && !IsForward(side, dir) {
				continue
			}
			var to = neighbours[from][dir]
			if to != SquareNone && occupied&SquareMask(to) == 0 {
				return true
			}
		}
	}
	return p.HasCaptures()
}

// Perft counts the leaf nodes of the legal move tree.
func Perft(p *Position, depth int) int {
	var result = 0
	var buffer [MaxMoves]Move
	var child Position
	for _, move := range p.GenerateMoves(buffer[:]) {
		if depth > 1 {
			p.MakeMove(move, &child)
			result += Perft(&child, depth-1)
		} else {
			result++
		}
	}
	return result
}
