package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/playably/arcade/internal/api/response"
	"github.com/playably/arcade/internal/model"
	"github.com/playably/arcade/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	leaderboardService *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// Get handles GET /api/v1/games/{game_id}/leaderboard
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	timeRange, err := model.ParseTimeRange(r.URL.Query().Get("range"))
	if err != nil {
		WriteError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			WriteError(w, NewInvalidRequestError("Limit must be a non-negative integer"))
			return
		}
	}

	category := r.URL.Query().Get("filter")

	entries, err := h.leaderboardService.Get(r.Context(), gameID, timeRange, limit, category)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(gameID, timeRange, category, entries))
}
