package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/playably/arcade/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) result(id string, userID model.UserID, score int, createdAt time.Time) *model.ScoredResult {
	return &model.ScoredResult{
		ID:       id,
		GameID:   model.GameGuessTheMovie,
		UserID:   userID,
		TargetID: "movie-1",
		Session: model.GameSession{
			Difficulty:        model.DifficultyMedium,
			Outcome:           model.OutcomeWin,
			UnguessedTemplate: "****",
			TargetID:          "movie-1",
		},
		Score:     score,
		CreatedAt: createdAt,
	}
}

// Result store tests

func (s *StorageSuite) TestAppendAndQueryResult() {
	createdAt := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	err := s.storage.AppendResult(s.ctx, s.result("r1", "user-1", 380, createdAt))
	s.Require().NoError(err)

	records, err := s.storage.ResultsSince(s.ctx, model.GameGuessTheMovie, createdAt.Add(-time.Hour), "")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(model.UserID("user-1"), records[0].UserID)
	s.Equal(380, records[0].Score)
	s.True(records[0].CreatedAt.Equal(createdAt))
}

func (s *StorageSuite) TestResultsSinceExcludesOlderResults() {
	cutoff := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	_ = s.storage.AppendResult(s.ctx, s.result("old", "user-1", 100, cutoff.Add(-time.Second)))
	_ = s.storage.AppendResult(s.ctx, s.result("at", "user-2", 200, cutoff))
	_ = s.storage.AppendResult(s.ctx, s.result("new", "user-3", 300, cutoff.Add(time.Second)))

	records, err := s.storage.ResultsSince(s.ctx, model.GameGuessTheMovie, cutoff, "")
	s.Require().NoError(err)
	s.Require().Len(records, 2)

	// Results at or after the cutoff survive, in time order
	s.Equal(model.UserID("user-2"), records[0].UserID)
	s.Equal(model.UserID("user-3"), records[1].UserID)
}

func (s *StorageSuite) TestResultsAreScopedPerGame() {
	createdAt := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	movieResult := s.result("r1", "user-1", 100, createdAt)
	rebusResult := s.result("r2", "user-1", 200, createdAt)
	rebusResult.GameID = model.GameRebus

	_ = s.storage.AppendResult(s.ctx, movieResult)
	_ = s.storage.AppendResult(s.ctx, rebusResult)

	records, err := s.storage.ResultsSince(s.ctx, model.GameRebus, createdAt.Add(-time.Hour), "")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(200, records[0].Score)
}

func (s *StorageSuite) TestCategoryIndex() {
	createdAt := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	hollywood := s.result("r1", "user-1", 100, createdAt)
	hollywood.Category = "hollywood"
	bollywood := s.result("r2", "user-2", 200, createdAt)
	bollywood.Category = "bollywood"

	_ = s.storage.AppendResult(s.ctx, hollywood)
	_ = s.storage.AppendResult(s.ctx, bollywood)

	records, err := s.storage.ResultsSince(s.ctx, model.GameGuessTheMovie, createdAt.Add(-time.Hour), "hollywood")
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(model.UserID("user-1"), records[0].UserID)

	// The unfiltered query still sees both
	records, err = s.storage.ResultsSince(s.ctx, model.GameGuessTheMovie, createdAt.Add(-time.Hour), "")
	s.Require().NoError(err)
	s.Len(records, 2)
}

func (s *StorageSuite) TestAppendResults() {
	createdAt := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	batch := make([]*model.ScoredResult, 5)
	for i := range batch {
		batch[i] = s.result(fmt.Sprintf("r%d", i), "user-1", 100+i, createdAt.Add(time.Duration(i)*time.Second))
	}

	err := s.storage.AppendResults(s.ctx, batch)
	s.Require().NoError(err)

	records, err := s.storage.ResultsSince(s.ctx, model.GameGuessTheMovie, createdAt, "")
	s.Require().NoError(err)
	s.Len(records, 5)
}

func (s *StorageSuite) TestAppendResultsEmptyBatch() {
	err := s.storage.AppendResults(s.ctx, nil)
	s.NoError(err)
}

func (s *StorageSuite) TestResultsSinceEmptyWindow() {
	records, err := s.storage.ResultsSince(s.ctx, model.GameGuessTheMovie, time.Now(), "")
	s.Require().NoError(err)
	s.Empty(records)
}

// User directory tests

func (s *StorageSuite) TestSaveAndLookupProfiles() {
	err := s.storage.SaveProfile(s.ctx, &model.UserProfile{
		UserID:   "user-1",
		Username: "alice",
		Name:     "Alice Smith",
	})
	s.Require().NoError(err)

	err = s.storage.SaveProfile(s.ctx, &model.UserProfile{
		UserID:   "user-2",
		Username: "bob",
		Name:     "Bob Jones",
	})
	s.Require().NoError(err)

	profiles, err := s.storage.LookupProfiles(s.ctx, []model.UserID{"user-1", "user-2"})
	s.Require().NoError(err)
	s.Require().Len(profiles, 2)
	s.Equal("alice", profiles["user-1"].Username)
	s.Equal("Bob Jones", profiles["user-2"].Name)
}

func (s *StorageSuite) TestLookupProfilesSkipsMissing() {
	err := s.storage.SaveProfile(s.ctx, &model.UserProfile{
		UserID:   "user-1",
		Username: "alice",
	})
	s.Require().NoError(err)

	profiles, err := s.storage.LookupProfiles(s.ctx, []model.UserID{"user-1", "ghost"})
	s.Require().NoError(err)
	s.Len(profiles, 1)
	s.NotContains(profiles, model.UserID("ghost"))
}

func (s *StorageSuite) TestLookupProfilesEmptyInput() {
	profiles, err := s.storage.LookupProfiles(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(profiles)
}
