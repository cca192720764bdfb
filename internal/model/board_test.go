package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) TestNewBoardIsEmpty() {
	board := NewBoard(3, 2)
	s.Equal(3, board.Width())
	s.Equal(2, board.Height())
	s.Equal(6, board.EmptyCount())
}

func (s *BoardSuite) TestNewBoardPanicsOnBadDimensions() {
	s.Panics(func() { NewBoard(0, 3) })
	s.Panics(func() { NewBoard(3, -1) })
	s.ErrorIs(ValidateDimensions(0, 1), ErrInvalidDimensions)
	s.NoError(ValidateDimensions(1, 1))
}

func (s *BoardSuite) TestGetSetOutOfRangePanics() {
	board := NewBoard(2, 2)
	s.Panics(func() { board.Get(2, 0) })
	s.Panics(func() { board.Set(0, -1, Red) })
	s.False(board.Contains(Cell{X: -1, Y: 0}))
	s.True(board.Contains(Cell{X: 1, Y: 1}))
}

func (s *BoardSuite) TestParseBoardTopRowFirst() {
	board, err := ParseBoard([]string{"RG", "by"})
	s.Require().NoError(err)

	s.Equal(Blue, board.Get(0, 0))
	s.Equal(Yellow, board.Get(1, 0))
	s.Equal(Red, board.Get(0, 1))
	s.Equal(Green, board.Get(1, 1))
	s.Equal("RG\nBY", board.String())
}

func (s *BoardSuite) TestParseBoardErrors() {
	for name, rows := range map[string][]string{
		"no rows":      nil,
		"empty row":    {""},
		"ragged rows":  {"RG", "R"},
		"unknown code": {"RX"},
	} {
		_, err := ParseBoard(rows)
		s.ErrorIs(err, ErrInvalidBoard, name)
	}
}

func (s *BoardSuite) TestCloneIsIndependent() {
	board, _ := ParseBoard([]string{"RGB"})
	clone := board.Clone()
	s.True(board.Equal(clone))

	clone.Set(0, 0, Empty)
	s.False(board.Equal(clone))
	s.Equal(Red, board.Get(0, 0))
}

func (s *BoardSuite) TestEqualChecksShape() {
	a, _ := ParseBoard([]string{"RG"})
	b, _ := ParseBoard([]string{"R", "G"})
	s.False(a.Equal(b))
	s.False(a.Equal(nil))
}

func (s *BoardSuite) TestRowsTopFirst() {
	board, _ := ParseBoard([]string{"R.", "GB"})
	s.Equal([][]JewelKind{{Red, Empty}, {Green, Blue}}, board.Rows())
	s.Equal(1, board.EmptyCount())
}
