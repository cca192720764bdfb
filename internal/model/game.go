package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStatePlaying  GameState = "playing"  // Moves may be applied
	GameStateFinished GameState = "finished" // No scoring move left, or turn limit reached
)

// Game is a single session owning the authoritative board
type Game struct {
	ID    GameID
	State GameState
	Board *Board

	Score     int // Sum of all turn scores
	MoveCount int // Number of moves applied

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy, including the board
func (g *Game) Clone() *Game {
	clone := *g
	if g.Board != nil {
		clone.Board = g.Board.Clone()
	}
	return &clone
}

// IsFinished returns true once no further moves are accepted
func (g *Game) IsFinished() bool {
	return g.State == GameStateFinished
}

// StepKind labels a phase of a turn
type StepKind string

const (
	StepSwap    StepKind = "swap"    // Board right after the swap, before any clearing
	StepCascade StepKind = "cascade" // A follow-up chain found by rescanning the board
	StepFinal   StepKind = "final"   // Stable board after the last chain
)

// Step is a read-only snapshot of one phase of a turn, for rendering
type Step struct {
	Kind   StepKind
	Chain  int          // 0 for the swap, 1.. for cascade chains
	Board  *Board       // Board before the groups were cleared
	Groups []MatchGroup // Groups cleared in this step
	Score  int          // Unique cells cleared in this step
}

// Turn is the outcome of applying one move to a game
type Turn struct {
	GameID GameID
	Move   Move
	Steps  []Step
	Score  int // Total across all steps
}

// Chains returns the number of cascade chains after the initial match
func (t *Turn) Chains() int {
	n := 0
	for _, step := range t.Steps {
		if step.Kind == StepCascade {
			n++
		}
	}
	return n
}
