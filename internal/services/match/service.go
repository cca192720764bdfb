package match

import (
	"github.com/mcoot/jewelmatch/internal/model"
)

// Service finds groups of same-kind, 4-connected jewels
type Service struct {
	threshold int
}

// New creates a match Service using model.MatchThreshold
func New() *Service {
	return &Service{threshold: model.MatchThreshold}
}

// Threshold returns the minimum group size counted as a match
func (s *Service) Threshold() int {
	return s.threshold
}

// FindMatchGroup returns the connected group of cells sharing the seed's kind.
// The seed is included. An empty seed yields an empty set.
// The group is returned regardless of size; use IsMatch to apply the threshold.
func (s *Service) FindMatchGroup(seed model.Cell, board *model.Board) model.CellSet {
	group := model.NewCellSet()
	if !board.Contains(seed) {
		return group
	}
	kind := board.At(seed)
	if kind == model.Empty {
		return group
	}

	// Explicit stack so board size never bounds call depth
	visited := model.NewCellSet(seed)
	stack := []model.Cell{seed}
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group.Add(cell)

		for _, dir := range neighborDirections {
			next := cell.Neighbor(dir)
			if !board.Contains(next) || visited.Contains(next) {
				continue
			}
			visited.Add(next)
			if board.At(next) == kind {
				stack = append(stack, next)
			}
		}
	}
	return group
}

var neighborDirections = []model.Direction{model.Left, model.Down, model.Right, model.Up}

// IsMatch returns true if the group is large enough to score
func (s *Service) IsMatch(group model.CellSet) bool {
	return len(group) >= s.threshold
}

// FindGroup runs FindMatchGroup and reports whether the result is a match
func (s *Service) FindGroup(seed model.Cell, board *model.Board) (model.MatchGroup, bool) {
	cells := s.FindMatchGroup(seed, board)
	if !s.IsMatch(cells) {
		return model.MatchGroup{}, false
	}
	return model.MatchGroup{Kind: board.At(seed), Cells: cells}, true
}

// FindAllMatches scans every cell in row-major order and returns each
// qualifying group once. A cell belongs to at most one returned group.
func (s *Service) FindAllMatches(board *model.Board) []model.MatchGroup {
	var groups []model.MatchGroup
	seen := model.NewCellSet()
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			seed := model.Cell{X: x, Y: y}
			if seen.Contains(seed) {
				continue
			}
			cells := s.FindMatchGroup(seed, board)
			seen.Union(cells)
			if s.IsMatch(cells) {
				groups = append(groups, model.MatchGroup{Kind: board.At(seed), Cells: cells})
			}
		}
	}
	return groups
}

// HasMatches returns true if any qualifying group exists on the board
func (s *Service) HasMatches(board *model.Board) bool {
	return len(s.FindAllMatches(board)) > 0
}

// ServiceInterface for dependency injection
type ServiceInterface interface {
	FindMatchGroup(seed model.Cell, board *model.Board) model.CellSet
	IsMatch(group model.CellSet) bool
	FindGroup(seed model.Cell, board *model.Board) (model.MatchGroup, bool)
	FindAllMatches(board *model.Board) []model.MatchGroup
	HasMatches(board *model.Board) bool
}

var _ ServiceInterface = (*Service)(nil)
