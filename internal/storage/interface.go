package storage

import (
	"context"

	"github.com/mcoot/jewelmatch/internal/model"
)

// Storage holds live game sessions for the lifetime of the process
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGames(ctx context.Context) ([]*model.Game, error)
}
