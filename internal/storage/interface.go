package storage

import (
	"context"
	"time"

	"github.com/playably/arcade/internal/model"
)

// ResultStore is the append-only record store for scored results.
// Results are keyed by user and game and are never updated or deleted.
type ResultStore interface {
	// AppendResult persists a single scored result
	AppendResult(ctx context.Context, result *model.ScoredResult) error

	// AppendResults persists a batch in one store-level operation;
	// the batch applies all-or-nothing
	AppendResults(ctx context.Context, results []*model.ScoredResult) error

	// ResultsSince returns the records for a game with CreatedAt >= cutoff.
	// A non-empty category restricts the query to results in that category.
	ResultsSince(ctx context.Context, gameID model.GameID, cutoff time.Time, category string) ([]model.ResultRecord, error)
}

// UserDirectory resolves user IDs to public display profiles
type UserDirectory interface {
	// LookupProfiles returns the profiles for the given IDs. IDs without
	// a profile (e.g. deleted accounts) are absent from the map; that is
	// not an error.
	LookupProfiles(ctx context.Context, ids []model.UserID) (map[model.UserID]model.UserProfile, error)

	// SaveProfile stores or replaces a public profile
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
}
