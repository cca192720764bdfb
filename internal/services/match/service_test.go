package match

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/jewelmatch/internal/model"
	"github.com/mcoot/jewelmatch/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

// FindMatchGroup tests

func (s *ServiceSuite) TestFindMatchGroupFollowsConnectedCells() {
	// Rows top first, so (0,0) is the bottom-left R
	board := testutil.MustParseBoard(
		"GBB",
		"RGB",
		"RRG",
	)

	group := s.service.FindMatchGroup(model.Cell{X: 0, Y: 0}, board)
	s.Equal(testutil.Cells([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}), group)
	s.True(s.service.IsMatch(group))
}

func (s *ServiceSuite) TestFindMatchGroupIgnoresDiagonals() {
	board := testutil.MustParseBoard(
		"RGR",
		"GRG",
		"RGR",
	)

	group := s.service.FindMatchGroup(model.Cell{X: 1, Y: 1}, board)
	s.Len(group, 1)
	s.False(s.service.IsMatch(group))
}

func (s *ServiceSuite) TestFindMatchGroupEmptySeed() {
	board := testutil.MustParseBoard(
		"...",
		"RRR",
	)

	s.Empty(s.service.FindMatchGroup(model.Cell{X: 1, Y: 1}, board))
}

func (s *ServiceSuite) TestFindMatchGroupDoesNotCrossEmpty() {
	board := testutil.MustParseBoard("RR.RR")

	group := s.service.FindMatchGroup(model.Cell{X: 0, Y: 0}, board)
	s.Len(group, 2)
}

func (s *ServiceSuite) TestFindMatchGroupOutsideBoard() {
	board := testutil.MustParseBoard("RRR")
	s.Empty(s.service.FindMatchGroup(model.Cell{X: 5, Y: 0}, board))
}

func (s *ServiceSuite) TestFindMatchGroupLargeBoardDoesNotRecurse() {
	board := model.NewBoard(400, 400)
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			board.Set(x, y, model.Blue)
		}
	}

	group := s.service.FindMatchGroup(model.Cell{X: 0, Y: 0}, board)
	s.Len(group, 400*400)
}

func (s *ServiceSuite) TestThresholdBoundary() {
	// Two adjacent Reds then a Blue break: below threshold
	board := testutil.MustParseBoard("RRBR")
	s.False(s.service.IsMatch(s.service.FindMatchGroup(model.Cell{X: 0, Y: 0}, board)))

	// Exactly three connected Reds: a match
	board = testutil.MustParseBoard("RRRB")
	s.True(s.service.IsMatch(s.service.FindMatchGroup(model.Cell{X: 0, Y: 0}, board)))
}

func (s *ServiceSuite) TestSmallNeighborhoodNeverMatches() {
	board := testutil.MustParseBoard(
		"RGBY",
		"GBYR",
		"BYRG",
	)
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			group := s.service.FindMatchGroup(model.Cell{X: x, Y: y}, board)
			s.Less(len(group), model.MatchThreshold)
		}
	}
}

// FindGroup tests

func (s *ServiceSuite) TestFindGroupReportsKind() {
	board := testutil.MustParseBoard("GGGR")

	group, ok := s.service.FindGroup(model.Cell{X: 2, Y: 0}, board)
	s.Require().True(ok)
	s.Equal(model.Green, group.Kind)
	s.Equal(3, group.Size())

	_, ok = s.service.FindGroup(model.Cell{X: 3, Y: 0}, board)
	s.False(ok)
}

// FindAllMatches tests

func (s *ServiceSuite) TestFindAllMatchesReturnsEachGroupOnce() {
	board := testutil.MustParseBoard(
		"BBBY",
		"RGYY",
		"RGGY",
		"RRBO",
	)

	groups := s.service.FindAllMatches(board)
	s.Require().Len(groups, 4)

	// Row-major seed order: R from (0,0), G from (1,1), Y from (3,1), B from (0,3)
	s.Equal(model.Red, groups[0].Kind)
	s.Equal(4, groups[0].Size())
	s.Equal(model.Green, groups[1].Kind)
	s.Equal(3, groups[1].Size())
	s.Equal(model.Yellow, groups[2].Kind)
	s.Equal(4, groups[2].Size())
	s.Equal(model.Blue, groups[3].Kind)
	s.Equal(3, groups[3].Size())
}

func (s *ServiceSuite) TestHasMatches() {
	s.False(s.service.HasMatches(testutil.MustParseBoard("RGB", "GBR")))
	s.True(s.service.HasMatches(testutil.MustParseBoard("RGB", "RRB", "GGB")))
}
