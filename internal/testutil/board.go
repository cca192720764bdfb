package testutil

import (
	"github.com/mcoot/jewelmatch/internal/model"
)

// MustParseBoard builds a board from letter-code rows, top row first.
// Panics on malformed input, so only use it with literal boards in tests.
func MustParseBoard(rows ...string) *model.Board {
	board, err := model.ParseBoard(rows)
	if err != nil {
		panic(err)
	}
	return board
}

// Cells is shorthand for building a CellSet from (x, y) pairs
func Cells(coords ...[2]int) model.CellSet {
	set := model.NewCellSet()
	for _, c := range coords {
		set.Add(model.Cell{X: c[0], Y: c[1]})
	}
	return set
}
