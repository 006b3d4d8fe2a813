package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/playably/arcade/internal/api/handler"
	"github.com/playably/arcade/internal/api/middleware"
	"github.com/playably/arcade/internal/services/leaderboard"
	"github.com/playably/arcade/internal/services/results"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	JWTSecret          []byte
	ResultsService     *results.Service
	LeaderboardService *leaderboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	resultsHandler := handler.NewResultsHandler(cfg.ResultsService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.JWTSecret)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Leaderboards are public
	api.HandleFunc("/games/{game_id}/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)

	// Result submission requires auth
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("/{game_id}/results", resultsHandler.Submit).Methods(http.MethodPost)
	games.HandleFunc("/{game_id}/results/batch", resultsHandler.SubmitBatch).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
