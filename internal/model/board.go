package model

import (
	"fmt"
	"strings"
)

// Board is a fixed-size grid of jewels.
// Cells are stored row-major with row 0 at the bottom.
type Board struct {
	width  int
	height int
	cells  []JewelKind
}

// NewBoard creates a board with every cell Empty.
// Panics on non-positive dimensions; callers taking external input check ValidateDimensions first.
func NewBoard(width, height int) *Board {
	if err := ValidateDimensions(width, height); err != nil {
		panic(fmt.Sprintf("model: NewBoard(%d, %d): %v", width, height, err))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]JewelKind, width*height),
	}
}

// ValidateDimensions returns ErrInvalidDimensions unless both sides are positive
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Width returns the number of columns
func (b *Board) Width() int { return b.width }

// Height returns the number of rows
func (b *Board) Height() int { return b.height }

// Get returns the jewel at (x, y). Panics if out of range.
func (b *Board) Get(x, y int) JewelKind {
	return b.cells[b.index(x, y)]
}

// Set places a jewel at (x, y). Panics if out of range.
func (b *Board) Set(x, y int, kind JewelKind) {
	b.cells[b.index(x, y)] = kind
}

// At returns the jewel at the given cell
func (b *Board) At(c Cell) JewelKind {
	return b.Get(c.X, c.Y)
}

// Contains returns true if the cell lies within the board
func (b *Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

func (b *Board) index(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("model: cell (%d, %d) outside %dx%d board", x, y, b.width, b.height))
	}
	return y*b.width + x
}

// Clone returns a deep copy
func (b *Board) Clone() *Board {
	cells := make([]JewelKind, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:  b.width,
		height: b.height,
		cells:  cells,
	}
}

// Equal returns true if both boards have the same shape and contents
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	count := 0
	for _, kind := range b.cells {
		if kind == Empty {
			count++
		}
	}
	return count
}

// Rows returns the board contents top row first, as printed
func (b *Board) Rows() [][]JewelKind {
	rows := make([][]JewelKind, 0, b.height)
	for y := b.height - 1; y >= 0; y-- {
		row := make([]JewelKind, b.width)
		copy(row, b.cells[y*b.width:(y+1)*b.width])
		rows = append(rows, row)
	}
	return rows
}

// String renders the board with one letter code per cell, top row first
func (b *Board) String() string {
	var sb strings.Builder
	for i, row := range b.Rows() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, kind := range row {
			sb.WriteRune(kind.Code())
		}
	}
	return sb.String()
}

// ParseBoard builds a board from letter-code rows, top row first.
// Every row must have the same non-zero length.
func ParseBoard(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, fmt.Errorf("%w: empty row", ErrInvalidBoard)
	}

	board := NewBoard(width, len(rows))
	for i, row := range rows {
		codes := []rune(row)
		if len(codes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, i, len(codes), width)
		}
		y := len(rows) - 1 - i
		for x, code := range codes {
			kind, ok := JewelKindFromCode(code)
			if !ok {
				return nil, fmt.Errorf("%w: unknown jewel %q at row %d", ErrInvalidBoard, code, i)
			}
			board.Set(x, y, kind)
		}
	}
	return board, nil
}
