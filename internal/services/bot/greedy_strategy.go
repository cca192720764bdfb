package bot

import (
	"context"

	"github.com/mcoot/jewelmatch/internal/model"
)

// Ranker is the part of the ranker service strategies need
type Ranker interface {
	RankMoves(ctx context.Context, board *model.Board) (model.RankedMoves, error)
	BestMove(ctx context.Context, board *model.Board) (model.Move, int, error)
}

// GreedyStrategy always plays the first move of the highest-scoring bucket
type GreedyStrategy struct {
	ranker Ranker
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(ranker Ranker) *GreedyStrategy {
	return &GreedyStrategy{ranker: ranker}
}

// ChooseMove returns the ranker's best move
func (s *GreedyStrategy) ChooseMove(ctx context.Context, board *model.Board) (model.Move, error) {
	move, _, err := s.ranker.BestMove(ctx, board)
	return move, err
}
