package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playably/arcade/internal/model"
)

func result(id string, userID model.UserID, score int, createdAt time.Time) *model.ScoredResult {
	return &model.ScoredResult{
		ID:        id,
		GameID:    model.GameGuessTheMovie,
		UserID:    userID,
		Score:     score,
		CreatedAt: createdAt,
	}
}

func TestAppendAndQuery(t *testing.T) {
	s := New()
	ctx := context.Background()
	cutoff := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.AppendResult(ctx, result("r1", "u1", 100, cutoff.Add(-time.Second))))
	require.NoError(t, s.AppendResult(ctx, result("r2", "u2", 200, cutoff)))
	require.NoError(t, s.AppendResult(ctx, result("r3", "u3", 300, cutoff.Add(time.Hour))))

	records, err := s.ResultsSince(ctx, model.GameGuessTheMovie, cutoff, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, model.UserID("u2"), records[0].UserID)
	assert.Equal(t, model.UserID("u3"), records[1].UserID)
}

func TestAppendResultsBatch(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	batch := []*model.ScoredResult{
		result("r1", "u1", 100, now),
		result("r2", "u1", 200, now),
	}
	require.NoError(t, s.AppendResults(ctx, batch))

	records, err := s.ResultsSince(ctx, model.GameGuessTheMovie, now, "")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCategoryFilter(t *testing.T) {
	s := New()
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	r := result("r1", "u1", 100, now)
	r.Category = "hollywood"
	require.NoError(t, s.AppendResult(ctx, r))
	require.NoError(t, s.AppendResult(ctx, result("r2", "u2", 200, now)))

	records, err := s.ResultsSince(ctx, model.GameGuessTheMovie, now, "hollywood")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.UserID("u1"), records[0].UserID)
}

func TestProfiles(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveProfile(ctx, &model.UserProfile{
		UserID:   "u1",
		Username: "alice",
		Name:     "Alice",
	}))

	profiles, err := s.LookupProfiles(ctx, []model.UserID{"u1", "missing"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "alice", profiles["u1"].Username)
}
