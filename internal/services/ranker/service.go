package ranker

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/jewelmatch/internal/model"
	"github.com/mcoot/jewelmatch/internal/services/simulator"
)

// Service ranks every legal move on a board by the score it would produce
type Service struct {
	simulator simulator.ServiceInterface
	workers   int
	logger    *slog.Logger
}

// New creates a ranker. workers <= 1 evaluates candidates sequentially.
func New(sim simulator.ServiceInterface, workers int, logger *slog.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		simulator: sim,
		workers:   workers,
		logger:    logger.With(slog.String("component", "ranker")),
	}
}

// Candidates lists every adjacent pair exactly once, in row-major order with
// Up before Right. Down and Left are the same swaps seen from the neighbor.
func (s *Service) Candidates(board *model.Board) []model.Move {
	moves := make([]model.Move, 0, 2*board.Width()*board.Height())
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			origin := model.Cell{X: x, Y: y}
			if y < board.Height()-1 {
				moves = append(moves, model.Move{Origin: origin, Direction: model.Up})
			}
			if x < board.Width()-1 {
				moves = append(moves, model.Move{Origin: origin, Direction: model.Right})
			}
		}
	}
	return moves
}

// RankMoves scores every candidate on its own copy of the board and buckets
// the moves that score above zero. Moves within a bucket keep candidate order.
func (s *Service) RankMoves(ctx context.Context, board *model.Board) (model.RankedMoves, error) {
	candidates := s.Candidates(board)
	scores := make([]int, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, move := range candidates {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			score, err := s.simulator.ScoreMove(move, board)
			if err != nil {
				return err
			}
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked := make(model.RankedMoves)
	for i, move := range candidates {
		if scores[i] > 0 {
			ranked.Add(scores[i], move)
		}
	}

	s.logger.Debug("moves ranked",
		slog.Int("candidates", len(candidates)),
		slog.Int("scoring_moves", ranked.Count()),
		slog.Int("workers", s.workers),
	)
	return ranked, nil
}

// BestMove returns the first move in the highest-scoring bucket and its score.
// Returns ErrNoValidMoves when nothing scores.
func (s *Service) BestMove(ctx context.Context, board *model.Board) (model.Move, int, error) {
	ranked, err := s.RankMoves(ctx, board)
	if err != nil {
		return model.Move{}, 0, err
	}
	score, moves, ok := ranked.Best()
	if !ok {
		return model.Move{}, 0, model.ErrNoValidMoves
	}
	return moves[0], score, nil
}

// ServiceInterface for dependency injection
type ServiceInterface interface {
	Candidates(board *model.Board) []model.Move
	RankMoves(ctx context.Context, board *model.Board) (model.RankedMoves, error)
	BestMove(ctx context.Context, board *model.Board) (model.Move, int, error)
}

var _ ServiceInterface = (*Service)(nil)
