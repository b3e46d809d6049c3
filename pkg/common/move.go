package common

import "strings"

type Jump struct {
	Captured int8
	Landing  int8
}

// Move is a comparable value: two moves are equal when they describe the same path.
// Unused jump slots are always zero.
type Move struct {
	from      int8
	to        int8
	count     int8
	promotion bool
	jumps     [MaxCaptures]Jump
}

var MoveEmpty = Move{}

func NewSlide(from, to int, promotion bool) Move {
	return Move{
		from:      int8(from),
		to:        int8(to),
		promotion: promotion,
	}
}

func newJumpStart(from int) Move {
	return Move{
		from: int8(from),
		to:   int8(from),
	}
}

func (m Move) addJump(captured, landing int) Move {
	m.jumps[m.count] = Jump{Captured: int8(captured), Landing: int8(landing)}
	m.count++
	m.to = int8(landing)
	return m
}

func (m Move) From() int {
	return int(m.from)
}

func (m Move) To() int {
	return int(m.to)
}

func (m Move) Promotion() bool {
	return m.promotion
}

func (m Move) IsCapture() bool {
	return m.count != 0
}

func (m Move) CaptureCount() int {
	return int(m.count)
}

func (m Move) Jump(i int) Jump {
	return m.jumps[i]
}

func (m Move) Jumps() []Jump {
	var result = make([]Jump, m.count)
	copy(result, m.jumps[:m.count])
	return result
}

func (m Move) String() string {
	if m == MoveEmpty {
		return "0000"
	}
	if !m.IsCapture() {
		return SquareName(m.From()) + "-" + SquareName(m.To())
	}
	var sb strings.Builder
	sb.WriteString(SquareName(m.From()))
	for i := 0; i < int(m.count); i++ {
		sb.WriteString("x")
		sb.WriteString(SquareName(int(m.jumps[i].Landing)))
	}
	return sb.String()
}
