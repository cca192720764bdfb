package simulator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/jewelmatch/internal/model"
	"github.com/mcoot/jewelmatch/internal/services/match"
	"github.com/mcoot/jewelmatch/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	matcher *match.Service
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.matcher = match.New()
	s.service = New(s.matcher, testutil.NopLogger())
}

// chainBoard scores 3 for the swap, then two cascade chains of 3 each
func chainBoard() *model.Board {
	return testutil.MustParseBoard(
		"GVB",
		"OIY",
		"BRY",
		"RGG",
		"ROY",
	)
}

var chainMove = model.Move{Origin: model.Cell{X: 0, Y: 2}, Direction: model.Right}

// Swap tests

func (s *ServiceSuite) TestSwapExchangesJewels() {
	board := testutil.MustParseBoard("RGB")

	err := s.service.Swap(model.Move{Origin: model.Cell{X: 0, Y: 0}, Direction: model.Right}, board)
	s.Require().NoError(err)
	s.Equal("GRB", board.String())
}

func (s *ServiceSuite) TestSwapUpIsPositiveY() {
	board := testutil.MustParseBoard(
		"G",
		"R",
	)

	err := s.service.Swap(model.Move{Origin: model.Cell{X: 0, Y: 0}, Direction: model.Up}, board)
	s.Require().NoError(err)
	s.Equal(model.Green, board.Get(0, 0))
	s.Equal(model.Red, board.Get(0, 1))
}

func (s *ServiceSuite) TestSwapOffBoardIsInvalid() {
	board := testutil.MustParseBoard("RGB", "BRG")
	before := board.Clone()

	cases := []model.Move{
		{Origin: model.Cell{X: 2, Y: 0}, Direction: model.Right},
		{Origin: model.Cell{X: 0, Y: 0}, Direction: model.Left},
		{Origin: model.Cell{X: 1, Y: 1}, Direction: model.Up},
		{Origin: model.Cell{X: 1, Y: 0}, Direction: model.Down},
		{Origin: model.Cell{X: 7, Y: 7}, Direction: model.Down},
		{Origin: model.Cell{X: 0, Y: 0}, Direction: model.Direction(9)},
	}
	for _, move := range cases {
		err := s.service.Swap(move, board)
		s.ErrorIs(err, model.ErrInvalidMove, move.String())
		s.True(board.Equal(before), "board changed for %s", move)
	}
}

func (s *ServiceSuite) TestSwapThenInverseRestoresBoard() {
	board := testutil.MustParseBoard(
		"RGBY",
		"GBYR",
		"BYRG",
	)
	before := board.Clone()
	move := model.Move{Origin: model.Cell{X: 1, Y: 1}, Direction: model.Up}

	groups, err := s.service.ApplyMove(move, board)
	s.Require().NoError(err)
	s.Empty(groups)
	s.False(board.Equal(before))

	groups, err = s.service.ApplyMove(move.Inverse(), board)
	s.Require().NoError(err)
	s.Empty(groups)
	s.True(board.Equal(before))
}

// ApplyMove tests

func (s *ServiceSuite) TestApplyMoveResolvesAndRepopulates() {
	board := chainBoard()

	groups, err := s.service.ApplyMove(chainMove, board)
	s.Require().NoError(err)
	s.Require().Len(groups, 1)
	s.Equal(model.Red, groups[0].Kind)
	s.Equal(testutil.Cells([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}), groups[0].Cells)

	// Column 0 dropped three rows; the G from the top lands in row 1
	s.Equal(
		".VB\n"+
			".IY\n"+
			".BY\n"+
			"GGG\n"+
			"OOY",
		board.String(),
	)
}

func (s *ServiceSuite) TestApplyMoveWithoutMatchStillSwaps() {
	// [Red, Red, Blue] moving (2,0) Left gives [Red, Blue, Red]
	board := testutil.MustParseBoard("RRB")

	groups, err := s.service.ApplyMove(model.Move{Origin: model.Cell{X: 2, Y: 0}, Direction: model.Left}, board)
	s.Require().NoError(err)
	s.Empty(groups)
	s.Equal("RBR", board.String())
}

func (s *ServiceSuite) TestApplyMoveThresholdBoundary() {
	// Moving (1,0) Right gives [Red, Red, Blue, Red]: only two connected Reds
	board := testutil.MustParseBoard("RBRR")
	groups, err := s.service.ApplyMove(model.Move{Origin: model.Cell{X: 1, Y: 0}, Direction: model.Right}, board)
	s.Require().NoError(err)
	s.Empty(groups)
	s.Equal("RRBR", board.String())

	// Moving (0,0) Right gives [Blue, Red, Red, Red]: exactly three
	board = testutil.MustParseBoard("RBRR")
	groups, err = s.service.ApplyMove(model.Move{Origin: model.Cell{X: 0, Y: 0}, Direction: model.Right}, board)
	s.Require().NoError(err)
	s.Require().Len(groups, 1)
	s.Equal(3, groups[0].Size())
	s.Equal("B...", board.String())
}

func (s *ServiceSuite) TestApplyMoveInvalidDoesNotMutate() {
	board := testutil.MustParseBoard("RRB")
	before := board.Clone()

	_, err := s.service.ApplyMove(model.Move{Origin: model.Cell{X: 2, Y: 0}, Direction: model.Right}, board)
	s.ErrorIs(err, model.ErrInvalidMove)
	s.True(board.Equal(before))
}

func (s *ServiceSuite) TestApplyMoveSeedsOnlySwappedCells() {
	// The GGG run exists before the move; only the swapped cells are checked
	board := testutil.MustParseBoard("GGGBRB")

	groups, err := s.service.ApplyMove(model.Move{Origin: model.Cell{X: 3, Y: 0}, Direction: model.Right}, board)
	s.Require().NoError(err)
	s.Empty(groups)
	s.Equal("GGGRBB", board.String())
}

// Repopulate tests

func (s *ServiceSuite) TestRepopulateProcessesTopCellFirst() {
	board := testutil.MustParseBoard(
		"G",
		"R",
		"B",
		"R",
	)
	groups := []model.MatchGroup{{
		Kind:  model.Red,
		Cells: testutil.Cells([2]int{0, 0}, [2]int{0, 2}),
	}}

	s.service.Repopulate(groups, board)
	s.Equal(".\n.\nG\nB", board.String())
}

func (s *ServiceSuite) TestRepopulateColumnsAreIndependent() {
	board := testutil.MustParseBoard(
		"YO",
		"RG",
		"RB",
	)
	groups := []model.MatchGroup{{
		Kind:  model.Red,
		Cells: testutil.Cells([2]int{0, 0}, [2]int{0, 1}),
	}}

	s.service.Repopulate(groups, board)
	s.Equal(".O\n.G\nYB", board.String())
}

func (s *ServiceSuite) TestResolveEmptiesCells() {
	board := testutil.MustParseBoard("RRRG")
	groups := []model.MatchGroup{{Kind: model.Red, Cells: testutil.Cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})}}

	s.service.Resolve(groups, board)
	s.Equal("...G", board.String())
}

// Cascade tests

func (s *ServiceSuite) TestCascadeRunsChainsUntilStable() {
	board := chainBoard()
	_, err := s.service.ApplyMove(chainMove, board)
	s.Require().NoError(err)

	first := s.service.Cascade(board)
	s.Require().Len(first, 1)
	s.Equal(model.Green, first[0].Kind)
	s.Equal(3, first[0].Size())

	second := s.service.Cascade(board)
	s.Require().Len(second, 1)
	s.Equal(model.Yellow, second[0].Kind)
	s.Equal(testutil.Cells([2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}), second[0].Cells)

	s.Empty(s.service.Cascade(board))
	s.False(s.matcher.HasMatches(board))
}

func (s *ServiceSuite) TestCascadeOnStableBoardIsNoop() {
	board := testutil.MustParseBoard("RGB", "GBR")
	before := board.Clone()

	s.Empty(s.service.Cascade(board))
	s.True(board.Equal(before))
}

// ScoreMove tests

func (s *ServiceSuite) TestScoreMoveCountsSharedCellsOnce() {
	// Both swapped cells hold R, so both seeds find the same group
	board := testutil.MustParseBoard("RRRG")
	move := model.Move{Origin: model.Cell{X: 0, Y: 0}, Direction: model.Right}

	groups := s.service.FindMatchesAfterMove(move, board)
	s.Len(groups, 2)

	score, err := s.service.ScoreMove(move, board)
	s.Require().NoError(err)
	s.Equal(3, score)
}

func (s *ServiceSuite) TestScoreMoveSumsAllChains() {
	board := chainBoard()
	before := board.Clone()

	score, err := s.service.ScoreMove(chainMove, board)
	s.Require().NoError(err)
	s.Equal(9, score)
	s.True(board.Equal(before), "ScoreMove must not touch the caller's board")
}

func (s *ServiceSuite) TestScoreMoveNoMatchIsZero() {
	score, err := s.service.ScoreMove(model.Move{Origin: model.Cell{X: 2, Y: 0}, Direction: model.Left}, testutil.MustParseBoard("RRB"))
	s.Require().NoError(err)
	s.Equal(0, score)
}

func (s *ServiceSuite) TestScoreMoveCountsBothSwappedGroups() {
	// Swapping (1,1) Up completes an R row and a G row at once
	board := testutil.MustParseBoard(
		"GRG",
		"RGR",
		"BOB",
	)

	score, err := s.service.ScoreMove(model.Move{Origin: model.Cell{X: 1, Y: 1}, Direction: model.Up}, board)
	s.Require().NoError(err)
	s.Equal(6, score)
}

func (s *ServiceSuite) TestScoreMoveInvalid() {
	_, err := s.service.ScoreMove(model.Move{Origin: model.Cell{X: 0, Y: 0}, Direction: model.Down}, testutil.MustParseBoard("RRB"))
	s.ErrorIs(err, model.ErrInvalidMove)
}

// UniqueCells tests

func (s *ServiceSuite) TestUniqueCellsMergesOverlap() {
	a := model.MatchGroup{Kind: model.Red, Cells: testutil.Cells([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})}
	b := model.MatchGroup{Kind: model.Red, Cells: testutil.Cells([2]int{2, 0}, [2]int{1, 0}, [2]int{0, 0})}

	s.Len(UniqueCells([]model.MatchGroup{a, b}), 3)
}
