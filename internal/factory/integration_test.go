package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/playably/arcade/internal/model"
	"github.com/playably/arcade/internal/services/results"
)

func ptr[T any](v T) *T { return &v }

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// winSession builds a medium win with one life used and timer off,
// all 4 masked positions guessed correctly. Scores 380.
func (s *IntegrationSuite) winSession() *results.RawSession {
	guessedAt := s.app.MockClock.Now().Add(-time.Minute)
	guesses := make([]results.RawGuess, 4)
	for i := range guesses {
		guesses[i] = results.RawGuess{
			Character: ptr("a"),
			Correct:   ptr(true),
			GuessedAt: ptr(guessedAt.Add(time.Duration(i) * time.Second)),
		}
	}
	return &results.RawSession{
		Difficulty:        ptr("medium"),
		TimerOn:           ptr(false),
		LivesUsed:         ptr(1),
		Outcome:           ptr("win"),
		UnguessedTemplate: ptr("****"),
		Guesses:           guesses,
		TargetID:          ptr("movie-42"),
	}
}

// Test: submissions from several users flow through to the leaderboard
func (s *IntegrationSuite) TestSubmitThenLeaderboard() {
	s.Require().NoError(s.app.UserDirectory.SaveProfile(s.ctx, &model.UserProfile{
		UserID: "alice", Username: "alice", Name: "Alice",
	}))
	s.Require().NoError(s.app.UserDirectory.SaveProfile(s.ctx, &model.UserProfile{
		UserID: "bob", Username: "bob",
	}))

	// Alice plays twice, Bob once
	_, err := s.app.ResultsService.Submit(s.ctx, "alice", model.GameGuessTheMovie, s.winSession())
	s.Require().NoError(err)
	s.app.MockClock.Advance(time.Minute)
	_, err = s.app.ResultsService.Submit(s.ctx, "alice", model.GameGuessTheMovie, s.winSession())
	s.Require().NoError(err)
	s.app.MockClock.Advance(time.Minute)
	_, err = s.app.ResultsService.Submit(s.ctx, "bob", model.GameGuessTheMovie, s.winSession())
	s.Require().NoError(err)

	entries, err := s.app.LeaderboardService.Get(s.ctx, model.GameGuessTheMovie, model.TimeRangeDaily, 10, "")
	s.Require().NoError(err)

	s.Require().Len(entries, 2)
	s.Equal(1, entries[0].Rank)
	s.Equal(model.UserID("alice"), entries[0].User.UserID)
	s.Equal("Alice", entries[0].User.Name)
	s.Equal(760, entries[0].TotalScore)
	s.Equal(2, entries[0].MatchesPlayed)
	s.Equal(model.UserID("bob"), entries[1].User.UserID)
	s.Equal(380, entries[1].TotalScore)
}

// Test: results are isolated per game
func (s *IntegrationSuite) TestLeaderboardScopedToGame() {
	_, err := s.app.ResultsService.Submit(s.ctx, "alice", model.GameGuessTheMovie, s.winSession())
	s.Require().NoError(err)

	entries, err := s.app.LeaderboardService.Get(s.ctx, model.GameRebus, model.TimeRangeAllTime, 10, "")
	s.Require().NoError(err)
	s.Empty(entries)
}

// Test: batch submission is visible to the aggregator as separate matches
func (s *IntegrationSuite) TestBatchSubmitThenLeaderboard() {
	recorded, err := s.app.ResultsService.SubmitMany(s.ctx, "alice", model.GameRebus,
		[]*results.RawSession{s.winSession(), s.winSession()})
	s.Require().NoError(err)
	s.Len(recorded, 2)

	entries, err := s.app.LeaderboardService.Get(s.ctx, model.GameRebus, model.TimeRangeWeekly, 10, "")
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(2, entries[0].MatchesPlayed)
	s.Equal(760, entries[0].TotalScore)
}

// Test: defaults are wired when config fields are omitted
func TestNewDefaults(t *testing.T) {
	app, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.ResultsService == nil || app.LeaderboardService == nil {
		t.Fatal("services not wired")
	}
	if _, ok := app.Games[model.GameGuessTheMovie]; !ok {
		t.Fatal("default game registry missing guess-the-movie")
	}
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(Config{StorageType: "postgres"})
	if err == nil {
		t.Fatal("expected error for unknown storage type")
	}
}
