package engine

import (
	. "github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

const (
	boundLower = 1 << iota
	boundUpper
)

const boundExact = boundLower | boundUpper

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

type transEntry struct {
	key   uint64
	move  Move
	score int32
	depth int16
	date  uint16
	bound uint8
}

// transTable belongs to one Engine and is never shared between goroutines.
type transTable struct {
	entries []transEntry
	date    uint16
	mask    uint64
}

func newTransTable(size int) *transTable {
	size = roundPowerOfTwo(size)
	return &transTable{
		entries: make([]transEntry, size),
		mask:    uint64(size - 1),
	}
}

func (tt *transTable) Size() int {
	return len(tt.entries)
}

func (tt *transTable) IncDate() {
	tt.date++
}

func (tt *transTable) Clear() {
	tt.date = 0
	for i := range tt.entries {
		tt.entries[i] = transEntry{}
	}
}

func (tt *transTable) Read(key uint64) (depth, score, bound int, move Move, ok bool) {
	var entry = &tt.entries[key&tt.mask]
	if entry.bound != 0 && entry.key == key {
		score = int(entry.score)
		move = entry.move
		depth = int(entry.depth)
		bound = int(entry.bound)
		ok = true
	}
	return
}

func (tt *transTable) Update(key uint64, depth, score, bound int, move Move) {
	var entry = &tt.entries[key&tt.mask]
	var replace bool
	if entry.bound != 0 && entry.key == key {
		replace = depth >= int(entry.depth)
	} else {
		replace = entry.date != tt.date ||
			depth >= int(entry.depth)
	}
	if replace {
		*entry = transEntry{
			key:   key,
			move:  move,
			score: int32(score),
			depth: int16(depth),
			date:  tt.date,
			bound: uint8(bound),
		}
	}
}
