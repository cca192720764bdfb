package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/jewelmatch/internal/dependencies/clock"
	"github.com/mcoot/jewelmatch/internal/dependencies/random"
	"github.com/mcoot/jewelmatch/internal/model"
	"github.com/mcoot/jewelmatch/internal/services/bot"
	"github.com/mcoot/jewelmatch/internal/services/game"
	"github.com/mcoot/jewelmatch/internal/services/generator"
	"github.com/mcoot/jewelmatch/internal/services/match"
	"github.com/mcoot/jewelmatch/internal/services/ranker"
	"github.com/mcoot/jewelmatch/internal/services/simulator"
	"github.com/mcoot/jewelmatch/internal/storage"
	"github.com/mcoot/jewelmatch/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Matcher        *match.Service
	Simulator      *simulator.Service
	Ranker         *ranker.Service
	Generator      *generator.Service
	GameController *game.Controller

	// Bot strategies keyed by name
	Strategies map[model.BotStrategy]bot.Strategy
}

// Config holds configuration for the application factory
type Config struct {
	// Seed drives board generation. Zero means an unseeded crypto source.
	Seed uint64
	// Workers is the number of moves the ranker evaluates at once (optional)
	// If zero, moves are evaluated sequentially
	Workers int
	// Palette restricts the generated jewel kinds (optional)
	// If nil, every kind is used
	Palette model.Palette
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if cfg.Palette != nil {
		if err := cfg.Palette.Validate(); err != nil {
			return nil, err
		}
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New(cfg.Seed)

	return newWithDependencies(memory.New(), clk, rnd, random.NewCrypto(), cfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, ids random.Random, cfg Config, logger *slog.Logger) *App {
	matcher := match.New()
	sim := simulator.New(matcher, logger)
	rank := ranker.New(sim, cfg.Workers, logger)
	gen := generator.New(matcher, rnd, cfg.Palette, logger)
	gameController := game.NewController(store, gen, sim, rank, clk, ids, logger)

	// Strategies share the seeded source so a seed replays the whole game
	strategies := make(map[model.BotStrategy]bot.Strategy)
	for _, name := range model.ValidBotStrategies() {
		strategy, _ := bot.New(name, rank, rnd)
		strategies[name] = strategy
	}

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Matcher:        matcher,
		Simulator:      sim,
		Ranker:         rank,
		Generator:      gen,
		GameController: gameController,
		Strategies:     strategies,
	}
}
