package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/jewelmatch/internal/dependencies/clock"
	"github.com/mcoot/jewelmatch/internal/dependencies/random"
	"github.com/mcoot/jewelmatch/internal/model"
	"github.com/mcoot/jewelmatch/internal/services/bot"
	"github.com/mcoot/jewelmatch/internal/services/generator"
	"github.com/mcoot/jewelmatch/internal/services/ranker"
	"github.com/mcoot/jewelmatch/internal/services/simulator"
	"github.com/mcoot/jewelmatch/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generated game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// Controller owns the authoritative board of each game and plays moves on it in place
type Controller struct {
	storage   storage.Storage
	generator generator.ServiceInterface
	simulator simulator.ServiceInterface
	ranker    ranker.ServiceInterface
	greedy    bot.Strategy
	clock     clock.Clock
	ids       random.Random
	logger    *slog.Logger
}

// NewController creates a new game Controller.
// ids is only used for game IDs, so it never disturbs a seeded board generator.
func NewController(
	storage storage.Storage,
	generator generator.ServiceInterface,
	simulator simulator.ServiceInterface,
	ranker ranker.ServiceInterface,
	clock clock.Clock,
	ids random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		generator: generator,
		simulator: simulator,
		ranker:    ranker,
		greedy:    bot.NewGreedyStrategy(ranker),
		clock:     clock,
		ids:       ids,
		logger:    logger.With(slog.String("component", "game-controller")),
	}
}

// NewGame generates a match-free board and starts a session on it
func (c *Controller) NewGame(ctx context.Context, width, height int) (*model.Game, error) {
	board, err := c.generator.Generate(width, height)
	if err != nil {
		return nil, err
	}
	return c.StartGame(ctx, board)
}

// StartGame starts a session on a copy of the given board
func (c *Controller) StartGame(ctx context.Context, board *model.Board) (*model.Game, error) {
	now := c.clock.Now()
	game := &model.Game{
		ID:        c.newID(),
		State:     model.GameStatePlaying,
		Board:     board.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("width", board.Width()),
		slog.Int("height", board.Height()),
	)
	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns every live game, oldest first
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	return c.storage.ListGames(ctx)
}

// DeleteGame discards a game session
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// Hint returns the best move on the game's board without playing it
func (c *Controller) Hint(ctx context.Context, gameID model.GameID) (model.Move, int, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return model.Move{}, 0, err
	}
	return c.ranker.BestMove(ctx, game.Board)
}

// RankMoves ranks every move on the game's board
func (c *Controller) RankMoves(ctx context.Context, gameID model.GameID) (model.RankedMoves, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return c.ranker.RankMoves(ctx, game.Board)
}

// PlayMove applies the move to the game's board and resolves every cascade,
// recording a snapshot of each step. A move that matches nothing still swaps
// the jewels and scores zero.
func (c *Controller) PlayMove(ctx context.Context, gameID model.GameID, move model.Move) (*model.Turn, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsFinished() {
		return nil, model.ErrGameFinished
	}

	turn, err := c.resolveTurn(game.Board, move)
	if err != nil {
		return nil, err
	}
	turn.GameID = gameID

	game.Score += turn.Score
	game.MoveCount++
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("move played",
		slog.String("game_id", string(gameID)),
		slog.String("move", move.String()),
		slog.Int("score", turn.Score),
		slog.Int("chains", turn.Chains()),
		slog.Int("total_score", game.Score),
	)
	return turn, nil
}

// resolveTurn mutates board in place
func (c *Controller) resolveTurn(board *model.Board, move model.Move) (*model.Turn, error) {
	if err := c.simulator.Swap(move, board); err != nil {
		return nil, err
	}

	turn := &model.Turn{Move: move}
	groups := c.simulator.FindMatchesAfterMove(move, board)
	for chain := 0; ; chain++ {
		kind := model.StepCascade
		if chain == 0 {
			kind = model.StepSwap
		}
		step := model.Step{
			Kind:   kind,
			Chain:  chain,
			Board:  board.Clone(),
			Groups: groups,
			Score:  len(simulator.UniqueCells(groups)),
		}
		turn.Steps = append(turn.Steps, step)
		turn.Score += step.Score

		if len(groups) == 0 {
			break
		}
		c.simulator.Resolve(groups, board)
		c.simulator.Repopulate(groups, board)
		groups = c.simulator.FindCascadeMatches(board)
		if len(groups) == 0 {
			break
		}
	}

	turn.Steps = append(turn.Steps, model.Step{
		Kind:  model.StepFinal,
		Chain: turn.Chains(),
		Board: board.Clone(),
	})
	return turn, nil
}

// PlayBest plays the best move. When no move scores, the game is marked
// finished and ErrNoValidMoves is returned.
func (c *Controller) PlayBest(ctx context.Context, gameID model.GameID) (*model.Turn, error) {
	return c.PlayBot(ctx, gameID, c.greedy)
}

// PlayBot plays the move chosen by strategy, finishing the game when the
// strategy finds no scoring move.
func (c *Controller) PlayBot(ctx context.Context, gameID model.GameID, strategy bot.Strategy) (*model.Turn, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsFinished() {
		return nil, model.ErrGameFinished
	}

	move, err := strategy.ChooseMove(ctx, game.Board)
	if errors.Is(err, model.ErrNoValidMoves) {
		if finishErr := c.finish(ctx, gameID); finishErr != nil {
			return nil, finishErr
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return c.PlayMove(ctx, gameID, move)
}

// AutoPlay plays the strategy's moves until none score or maxTurns is reached.
// A nil strategy plays the best move each turn.
// Running out of moves is not an error; the game is marked finished.
func (c *Controller) AutoPlay(ctx context.Context, gameID model.GameID, strategy bot.Strategy, maxTurns int) ([]*model.Turn, error) {
	if strategy == nil {
		strategy = c.greedy
	}

	started := c.clock.Now()
	var turns []*model.Turn
	for len(turns) < maxTurns {
		turn, err := c.PlayBot(ctx, gameID, strategy)
		if errors.Is(err, model.ErrNoValidMoves) {
			break
		}
		if err != nil {
			return turns, err
		}
		turns = append(turns, turn)
	}

	c.logger.Debug("autoplay stopped",
		slog.String("game_id", string(gameID)),
		slog.Int("turns", len(turns)),
		slog.Duration("elapsed", c.clock.Since(started)),
	)
	return turns, nil
}

func (c *Controller) finish(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	if game.IsFinished() {
		return nil
	}
	game.State = model.GameStateFinished
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	c.logger.Info("game finished",
		slog.String("game_id", string(gameID)),
		slog.Int("total_score", game.Score),
		slog.Int("moves", game.MoveCount),
	)
	return nil
}

func (c *Controller) newID() model.GameID {
	id := make([]byte, GameIDLength)
	for i := range id {
		id[i] = GameIDAlphabet[c.ids.Intn(len(GameIDAlphabet))]
	}
	return model.GameID(id)
}
