package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/playably/arcade/internal/api/middleware"
	"github.com/playably/arcade/internal/api/request"
	"github.com/playably/arcade/internal/api/response"
	"github.com/playably/arcade/internal/model"
	"github.com/playably/arcade/internal/services/results"
)

// ResultsHandler handles result submission endpoints
type ResultsHandler struct {
	resultsService *results.Service
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultsService *results.Service) *ResultsHandler {
	return &ResultsHandler{
		resultsService: resultsService,
	}
}

// Submit handles POST /api/v1/games/{game_id}/results
func (h *ResultsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var raw results.RawSession
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	result, err := h.resultsService.Submit(r.Context(), userID, gameID, &raw)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.ScoredResultFromModel(result))
}

// SubmitBatch handles POST /api/v1/games/{game_id}/results/batch
func (h *ResultsHandler) SubmitBatch(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.SubmitBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	recorded, err := h.resultsService.SubmitMany(r.Context(), userID, gameID, req.Sessions)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.SubmitBatchResponse{
		Results: make([]response.ScoredResult, len(recorded)),
	}
	for i, res := range recorded {
		resp.Results[i] = response.ScoredResultFromModel(res)
	}

	response.JSON(w, http.StatusCreated, resp)
}
