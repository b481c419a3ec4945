package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/connectfour-go/internal/dependencies/clock"
	"github.com/mcoot/connectfour-go/internal/dependencies/random"
	"github.com/mcoot/connectfour-go/internal/model"
	"github.com/mcoot/connectfour-go/internal/services/board"
	"github.com/mcoot/connectfour-go/internal/services/bot"
	"github.com/mcoot/connectfour-go/internal/services/game"
	"github.com/mcoot/connectfour-go/internal/services/player"
	"github.com/mcoot/connectfour-go/internal/storage"
	"github.com/mcoot/connectfour-go/internal/storage/memory"
	redisstorage "github.com/mcoot/connectfour-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	GameController *game.Controller

	botStrategy string
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes computer moves reproducible (optional)
	// If nil, a crypto-backed source is used
	Seed *uint64
	// BotStrategy names how the computer picks columns
	// If empty, defaults to model.BotStrategyRandom
	BotStrategy string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	strategy := cfg.BotStrategy
	if strategy == "" {
		strategy = model.BotStrategyRandom
	}
	if !model.IsValidBotStrategy(strategy) {
		return nil, errors.New("invalid BotStrategy: must be 'random' or 'rejection'")
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	logger.Debug("application wired",
		slog.String("storage", storageType),
		slog.String("bot_strategy", strategy),
		slog.Bool("seeded", cfg.Seed != nil),
	)

	app := newWithDependencies(store, clk, rnd, logger)
	app.botStrategy = strategy
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	boardService := board.New(store, logger)
	gameController := game.NewController(store, boardService, clk, rnd, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		GameController: gameController,
		botStrategy:    model.BotStrategyRandom,
	}
}

// NewComputer creates the computer opponent using the configured strategy
func (a *App) NewComputer(mark model.Mark) (*player.Computer, error) {
	strategy, err := bot.NewStrategy(a.botStrategy, a.Random)
	if err != nil {
		return nil, err
	}
	return player.NewComputer(model.ComputerName, mark, strategy), nil
}

// Close releases the storage backend if it holds a connection
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
