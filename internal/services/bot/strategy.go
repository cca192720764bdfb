package bot

import (
	"context"

	"github.com/mcoot/jewelmatch/internal/dependencies/random"
	"github.com/mcoot/jewelmatch/internal/model"
)

// Strategy defines how a bot chooses its next move
type Strategy interface {
	// ChooseMove picks a scoring move, or returns model.ErrNoValidMoves
	ChooseMove(ctx context.Context, board *model.Board) (model.Move, error)
}

// New returns the named strategy, or false if the name is unknown
func New(name model.BotStrategy, ranker Ranker, rnd random.Random) (Strategy, bool) {
	switch name {
	case model.BotStrategyGreedy:
		return NewGreedyStrategy(ranker), true
	case model.BotStrategyRandom:
		return NewRandomStrategy(ranker, rnd), true
	default:
		return nil, false
	}
}
