package model

import "errors"

// Common errors used across the application
var (
	// Board errors
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrInvalidBoard      = errors.New("invalid board")

	// Move errors
	ErrInvalidMove  = errors.New("move target is outside the board")
	ErrNoValidMoves = errors.New("no valid moves can be performed")

	// Generator errors
	ErrInvalidPalette   = errors.New("palette must hold distinct non-empty jewels")
	ErrPaletteTooSmall  = errors.New("palette too small to avoid starting matches")
	ErrGenerationFailed = errors.New("failed to generate board without matches")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameFinished = errors.New("game is already finished")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
)
