package engine

import (
	. "github.com/ChizhovVadim/CounterCheckers/pkg/common"
)

const (
	stackSize     = 128
	maxHeight     = stackSize - 1
	valueInfinity = ValueMate + 1
	valueWin      = ValueMate - 2*maxHeight
	valueLoss     = -valueWin
)

func winIn(height int) int {
	return ValueMate - height
}

func lossIn(height int) int {
	return -ValueMate + height
}

func valueToTT(v, height int) int {
	if v >= valueWin {
		return v + height
	}

	if v <= valueLoss {
		return v - height
	}

	return v
}

func valueFromTT(v, height int) int {
	if v >= valueWin {
		return v - height
	}

	if v <= valueLoss {
		return v + height
	}

	return v
}

func moveToBegin(ml []Move, index int) {
	if index <= 0 {
		return
	}
	var item = ml[index]
	copy(ml[1:index+1], ml[:index])
	ml[0] = item
}
