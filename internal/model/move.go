package model

import (
	"fmt"
	"sort"
)

// Cell identifies a position on the board
type Cell struct {
	X int // 0-indexed from left
	Y int // 0-indexed from bottom, so Height-1 is the top row
}

// Less orders cells row-major: by Y, then by X
func (c Cell) Less(other Cell) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

func (c Cell) String() string {
	return fmt.Sprintf("[x:%d y:%d]", c.X, c.Y)
}

// Neighbor returns the adjacent cell in the given direction.
// The result may lie outside the board.
func (c Cell) Neighbor(dir Direction) Cell {
	switch dir {
	case Up:
		return Cell{X: c.X, Y: c.Y + 1}
	case Down:
		return Cell{X: c.X, Y: c.Y - 1}
	case Left:
		return Cell{X: c.X - 1, Y: c.Y}
	case Right:
		return Cell{X: c.X + 1, Y: c.Y}
	default:
		return c
	}
}

// CellSet is an unordered set of cells
type CellSet map[Cell]struct{}

// NewCellSet builds a set from the given cells
func NewCellSet(cells ...Cell) CellSet {
	set := make(CellSet, len(cells))
	for _, c := range cells {
		set.Add(c)
	}
	return set
}

// Add inserts a cell
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Contains reports whether the cell is in the set
func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Union adds every cell of other to s
func (s CellSet) Union(other CellSet) {
	for c := range other {
		s.Add(c)
	}
}

// Sorted returns the cells in row-major order
func (s CellSet) Sorted() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Less(cells[j])
	})
	return cells
}

// Direction of a swap. Up and Right are the positive-index directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// IsValid returns true for the four known directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// ParseDirection parses a direction name (case-sensitive, as printed by String)
func ParseDirection(s string) (Direction, error) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Move swaps the jewel at Origin with its neighbor in Direction
type Move struct {
	Origin    Cell
	Direction Direction
}

// Target returns the cell the origin is swapped with
func (m Move) Target() Cell {
	return m.Origin.Neighbor(m.Direction)
}

// Inverse returns the move that undoes this swap
func (m Move) Inverse() Move {
	return Move{Origin: m.Target(), Direction: m.Direction.Opposite()}
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s", m.Origin, m.Direction)
}

// MatchGroup is a 4-connected set of same-kind cells that reached MatchThreshold
type MatchGroup struct {
	Kind  JewelKind
	Cells CellSet
}

// Size returns the number of cells in the group
func (g MatchGroup) Size() int {
	return len(g.Cells)
}

// RankedMoves maps a score to the moves that produce it, in discovery order
type RankedMoves map[int][]Move

// Add records a move under its score
func (r RankedMoves) Add(score int, move Move) {
	r[score] = append(r[score], move)
}

// Scores returns the distinct scores, highest first
func (r RankedMoves) Scores() []int {
	scores := make([]int, 0, len(r))
	for score := range r {
		scores = append(scores, score)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	return scores
}

// Best returns the highest score and its moves.
// ok is false when there are no ranked moves.
func (r RankedMoves) Best() (score int, moves []Move, ok bool) {
	scores := r.Scores()
	if len(scores) == 0 {
		return 0, nil, false
	}
	return scores[0], r[scores[0]], true
}

// Count returns the total number of ranked moves
func (r RankedMoves) Count() int {
	n := 0
	for _, moves := range r {
		n += len(moves)
	}
	return n
}
