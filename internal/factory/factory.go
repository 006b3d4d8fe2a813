package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/playably/arcade/internal/dependencies/clock"
	"github.com/playably/arcade/internal/model"
	"github.com/playably/arcade/internal/services/leaderboard"
	"github.com/playably/arcade/internal/services/results"
	"github.com/playably/arcade/internal/storage"
	"github.com/playably/arcade/internal/storage/memory"
	redisstorage "github.com/playably/arcade/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Store combines the two storage interfaces both backends implement
type Store interface {
	storage.ResultStore
	storage.UserDirectory
}

// App contains all wired application components
type App struct {
	// Storage
	ResultStore   storage.ResultStore
	UserDirectory storage.UserDirectory

	// External dependencies
	Clock clock.Clock

	// Game registry
	Games map[model.GameID]model.GameRules

	// Services
	ResultsService     *results.Service
	LeaderboardService *leaderboard.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Games is the registry of playable games (optional)
	// If nil, defaults to model.DefaultRules()
	Games map[model.GameID]model.GameRules
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store Store
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

	games := cfg.Games
	if games == nil {
		games = model.DefaultRules()
	}

	clk := clock.New()

	return newWithDependencies(store, games, clk, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store Store, games map[model.GameID]model.GameRules, clk clock.Clock, logger *slog.Logger) *App {
	resultsService := results.New(store, games, clk, logger)
	leaderboardService := leaderboard.New(store, store, games, clk, logger)

	return &App{
		ResultStore:        store,
		UserDirectory:      store,
		Clock:              clk,
		Games:              games,
		ResultsService:     resultsService,
		LeaderboardService: leaderboardService,
	}
}
