package bot

import (
	"context"

	"github.com/mcoot/jewelmatch/internal/dependencies/random"
	"github.com/mcoot/jewelmatch/internal/model"
)

// RandomStrategy picks uniformly among every move that scores, ignoring the score
type RandomStrategy struct {
	ranker Ranker
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(ranker Ranker, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{ranker: ranker, random: rnd}
}

// ChooseMove picks a random scoring move. Moves are listed best bucket first
// so a given random sequence always yields the same choice.
func (s *RandomStrategy) ChooseMove(ctx context.Context, board *model.Board) (model.Move, error) {
	ranked, err := s.ranker.RankMoves(ctx, board)
	if err != nil {
		return model.Move{}, err
	}

	var moves []model.Move
	for _, score := range ranked.Scores() {
		moves = append(moves, ranked[score]...)
	}
	if len(moves) == 0 {
		return model.Move{}, model.ErrNoValidMoves
	}
	return moves[s.random.Intn(len(moves))], nil
}
