package results

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/playably/arcade/internal/dependencies/clock"
	"github.com/playably/arcade/internal/model"
	"github.com/playably/arcade/internal/services/scoring"
	"github.com/playably/arcade/internal/storage"
)

// Service ingests finished game sessions: it shape-validates the raw
// payload, scores it, and appends the scored result to the store.
// Store failures propagate unmodified; retry policy belongs to callers.
type Service struct {
	store   storage.ResultStore
	games   map[model.GameID]model.GameRules
	scorers map[model.GameID]*scoring.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a results service over the given games registry
func New(store storage.ResultStore, games map[model.GameID]model.GameRules, clk clock.Clock, logger *slog.Logger) *Service {
	scorers := make(map[model.GameID]*scoring.Service, len(games))
	for id, rules := range games {
		scorers[id] = scoring.New(rules)
	}
	return &Service{
		store:   store,
		games:   games,
		scorers: scorers,
		clock:   clk,
		logger:  logger,
	}
}

// Submit validates, scores and persists one finished session for the
// authenticated user
func (s *Service) Submit(ctx context.Context, userID model.UserID, gameID model.GameID, raw *RawSession) (*model.ScoredResult, error) {
	result, err := s.buildResult(userID, gameID, raw)
	if err != nil {
		return nil, err
	}

	if err := s.store.AppendResult(ctx, result); err != nil {
		return nil, err
	}

	s.logger.Info("result recorded",
		slog.String("game_id", string(result.GameID)),
		slog.String("user_id", string(result.UserID)),
		slog.String("result_id", result.ID),
		slog.Int("score", result.Score),
	)

	return result, nil
}

// SubmitMany validates and scores every session, then persists the batch
// through one bulk append. If any element fails validation the whole
// batch is rejected; the bulk append itself is all-or-nothing at the
// store level.
func (s *Service) SubmitMany(ctx context.Context, userID model.UserID, gameID model.GameID, raws []*RawSession) ([]*model.ScoredResult, error) {
	if len(raws) == 0 {
		return nil, model.NewSessionValidationError([]string{"at least one session is required"})
	}

	results := make([]*model.ScoredResult, len(raws))
	for i, raw := range raws {
		result, err := s.buildResult(userID, gameID, raw)
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		results[i] = result
	}

	if err := s.store.AppendResults(ctx, results); err != nil {
		return nil, err
	}

	s.logger.Info("result batch recorded",
		slog.String("game_id", string(gameID)),
		slog.String("user_id", string(userID)),
		slog.Int("count", len(results)),
	)

	return results, nil
}

// buildResult runs the validate-then-score steps shared by both entry points
func (s *Service) buildResult(userID model.UserID, gameID model.GameID, raw *RawSession) (*model.ScoredResult, error) {
	rules, ok := s.games[gameID]
	if !ok {
		return nil, model.ErrGameNotFound
	}

	session, err := parseSession(rules, raw)
	if err != nil {
		return nil, err
	}

	return &model.ScoredResult{
		ID:        uuid.New().String(),
		GameID:    gameID,
		UserID:    userID,
		TargetID:  session.TargetID,
		Category:  session.Category,
		Session:   *session,
		Score:     s.scorers[gameID].Score(session),
		CreatedAt: s.clock.Now().UTC(),
	}, nil
}
