package generator

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/jewelmatch/internal/dependencies/random"
	"github.com/mcoot/jewelmatch/internal/model"
	"github.com/mcoot/jewelmatch/internal/services/match"
)

const (
	// MinPaletteSize is one more than the number of already-filled orthogonal
	// neighbors (left and below) a cell can have during a row-major fill.
	// Each of those neighbors rules out at most one kind, so at least one kind is always safe.
	MinPaletteSize = 3
	// MaxDrawsPerCell caps redraws for a single cell
	MaxDrawsPerCell = 1000
)

// Service generates boards that contain no starting matches
type Service struct {
	matcher match.ServiceInterface
	random  random.Random
	palette model.Palette
	logger  *slog.Logger
}

// New creates a generator. A nil palette uses model.DefaultPalette.
func New(matcher match.ServiceInterface, rnd random.Random, palette model.Palette, logger *slog.Logger) *Service {
	if palette == nil {
		palette = model.DefaultPalette()
	}
	return &Service{
		matcher: matcher,
		random:  rnd,
		palette: palette,
		logger:  logger.With(slog.String("component", "generator")),
	}
}

// Palette returns the kinds the generator draws from
func (s *Service) Palette() model.Palette {
	return s.palette
}

// Generate fills a width x height board row by row, redrawing each cell
// until placing it does not complete a match with the cells filled so far.
func (s *Service) Generate(width, height int) (*model.Board, error) {
	if err := model.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	if err := s.palette.Validate(); err != nil {
		return nil, err
	}
	if len(s.palette) < MinPaletteSize {
		return nil, fmt.Errorf("%w: have %d kinds, need %d", model.ErrPaletteTooSmall, len(s.palette), MinPaletteSize)
	}

	board := model.NewBoard(width, height)
	redraws := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := model.Cell{X: x, Y: y}
			placed := false
			for draw := 0; draw < MaxDrawsPerCell; draw++ {
				board.Set(x, y, s.palette[s.random.Intn(len(s.palette))])
				if !s.matcher.IsMatch(s.matcher.FindMatchGroup(cell, board)) {
					placed = true
					break
				}
				redraws++
			}
			if !placed {
				return nil, fmt.Errorf("%w: cell %s", model.ErrGenerationFailed, cell)
			}
		}
	}

	s.logger.Debug("board generated",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("redraws", redraws),
	)
	return board, nil
}

// ServiceInterface for dependency injection
type ServiceInterface interface {
	Generate(width, height int) (*model.Board, error)
}

var _ ServiceInterface = (*Service)(nil)
