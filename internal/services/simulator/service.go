package simulator

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/jewelmatch/internal/model"
	"github.com/mcoot/jewelmatch/internal/services/match"
)

// maxCascadePasses bounds ScoreMove. Every pass clears at least MatchThreshold
// jewels and nothing refills the board, so width*height passes can never be reached.
func maxCascadePasses(board *model.Board) int {
	return board.Width()*board.Height() + 1
}

// Service applies moves to a board and resolves the resulting matches
type Service struct {
	matcher match.ServiceInterface
	logger  *slog.Logger
}

// New creates a new simulator Service
func New(matcher match.ServiceInterface, logger *slog.Logger) *Service {
	return &Service{
		matcher: matcher,
		logger:  logger.With(slog.String("component", "simulator")),
	}
}

// Swap exchanges the jewels at the move's origin and target.
// Returns ErrInvalidMove without touching the board if either cell is off the board.
func (s *Service) Swap(move model.Move, board *model.Board) error {
	if !move.Direction.IsValid() {
		return fmt.Errorf("%w: unknown direction %d", model.ErrInvalidMove, move.Direction)
	}
	target := move.Target()
	if !board.Contains(move.Origin) || !board.Contains(target) {
		return fmt.Errorf("%w: %s", model.ErrInvalidMove, move)
	}

	src := board.At(move.Origin)
	dst := board.At(target)
	board.Set(move.Origin.X, move.Origin.Y, dst)
	board.Set(target.X, target.Y, src)
	return nil
}

// FindMatchesAfterMove checks only the two swapped cells for matches.
//
// This assumes the board held no matches before the move. If it did, a group
// touching both swapped cells is returned twice; scoring dedupes cells within
// a pass, but groups elsewhere on the board are not found until the cascade scan.
func (s *Service) FindMatchesAfterMove(move model.Move, board *model.Board) []model.MatchGroup {
	var groups []model.MatchGroup
	for _, seed := range []model.Cell{move.Origin, move.Target()} {
		if group, ok := s.matcher.FindGroup(seed, board); ok {
			groups = append(groups, group)
		}
	}
	return groups
}

// FindCascadeMatches rescans the whole board for matches
func (s *Service) FindCascadeMatches(board *model.Board) []model.MatchGroup {
	return s.matcher.FindAllMatches(board)
}

// Resolve empties every cell in the given groups
func (s *Service) Resolve(groups []model.MatchGroup, board *model.Board) {
	for _, group := range groups {
		for cell := range group.Cells {
			board.Set(cell.X, cell.Y, model.Empty)
		}
	}
}

// Repopulate drops jewels down into the matched cells.
// Each matched cell is removed by shifting the rest of its column down one row,
// leaving the top cell Empty. Cells are processed top row first so shifting a
// higher cell never moves a lower cell that is still waiting to be processed.
func (s *Service) Repopulate(groups []model.MatchGroup, board *model.Board) {
	cells := UniqueCells(groups).Sorted()
	top := board.Height() - 1
	for i := len(cells) - 1; i >= 0; i-- {
		cell := cells[i]
		for y := cell.Y; y < top; y++ {
			board.Set(cell.X, y, board.Get(cell.X, y+1))
		}
		board.Set(cell.X, top, model.Empty)
	}
}

// ApplyMove performs one non-cascading step: swap, detect matches at the
// swapped cells, clear them and let the columns fall.
// A swap that makes no match still succeeds and returns no groups.
func (s *Service) ApplyMove(move model.Move, board *model.Board) ([]model.MatchGroup, error) {
	if err := s.Swap(move, board); err != nil {
		return nil, err
	}
	groups := s.FindMatchesAfterMove(move, board)
	s.Resolve(groups, board)
	s.Repopulate(groups, board)
	return groups, nil
}

// Cascade performs one rescan pass: find every match on the board, clear it
// and let the columns fall. Returns no groups once the board is stable.
func (s *Service) Cascade(board *model.Board) []model.MatchGroup {
	groups := s.FindCascadeMatches(board)
	s.Resolve(groups, board)
	s.Repopulate(groups, board)
	return groups
}

// ScoreMove simulates the move and every following cascade on a copy of the board.
// The score is the number of unique cells cleared in each pass, summed over all passes.
func (s *Service) ScoreMove(move model.Move, board *model.Board) (int, error) {
	working := board.Clone()
	groups, err := s.ApplyMove(move, working)
	if err != nil {
		return 0, err
	}

	total := 0
	passes := 0
	for len(groups) > 0 {
		total += len(UniqueCells(groups))
		passes++
		if passes > maxCascadePasses(working) {
			// Unreachable while repopulation only removes jewels
			s.logger.Error("cascade did not settle", slog.String("move", move.String()))
			break
		}
		groups = s.Cascade(working)
	}

	if total > 0 {
		s.logger.Debug("move scored",
			slog.String("move", move.String()),
			slog.Int("score", total),
			slog.Int("passes", passes),
		)
	}
	return total, nil
}

// UniqueCells merges the groups into one set so each cell counts once
func UniqueCells(groups []model.MatchGroup) model.CellSet {
	cells := model.NewCellSet()
	for _, group := range groups {
		cells.Union(group.Cells)
	}
	return cells
}

// ServiceInterface for dependency injection
type ServiceInterface interface {
	Swap(move model.Move, board *model.Board) error
	FindMatchesAfterMove(move model.Move, board *model.Board) []model.MatchGroup
	FindCascadeMatches(board *model.Board) []model.MatchGroup
	Resolve(groups []model.MatchGroup, board *model.Board)
	Repopulate(groups []model.MatchGroup, board *model.Board)
	ApplyMove(move model.Move, board *model.Board) ([]model.MatchGroup, error)
	Cascade(board *model.Board) []model.MatchGroup
	ScoreMove(move model.Move, board *model.Board) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
