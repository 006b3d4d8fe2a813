package leaderboard

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/playably/arcade/internal/dependencies/clock"
	"github.com/playably/arcade/internal/model"
	"github.com/playably/arcade/internal/storage"
)

// allTimeEpoch is the platform launch date; the all-time window starts here
var allTimeEpoch = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	// DefaultLimit is used when a request does not specify a top-N
	DefaultLimit = 10

	// MaxLimit bounds how many entries a single request may ask for
	MaxLimit = 100
)

// Service computes time-windowed rankings over stored results.
// Rankings are derived per call and never cached here; any caching is a
// decorator concern of the calling layer.
type Service struct {
	store  storage.ResultStore
	users  storage.UserDirectory
	games  map[model.GameID]model.GameRules
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a leaderboard service
func New(store storage.ResultStore, users storage.UserDirectory, games map[model.GameID]model.GameRules, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		users:  users,
		games:  games,
		clock:  clk,
		logger: logger,
	}
}

// tally accumulates one user's results within the window
type tally struct {
	userID   model.UserID
	total    int
	matches  int
	earliest time.Time
}

// Get returns the top-N users for a game ranked by summed score over the
// requested window. Ties are broken by earliest counted result, then by
// user ID, so the ordering is fully deterministic. A non-empty category
// restricts the ranking to results in that category.
func (s *Service) Get(ctx context.Context, gameID model.GameID, timeRange model.TimeRange, limit int, category string) ([]model.LeaderboardEntry, error) {
	if _, ok := s.games[gameID]; !ok {
		return nil, model.ErrGameNotFound
	}

	cutoff, err := s.cutoff(timeRange)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	records, err := s.store.ResultsSince(ctx, gameID, cutoff, category)
	if err != nil {
		return nil, err
	}

	tallies := make(map[model.UserID]*tally)
	for _, r := range records {
		t, ok := tallies[r.UserID]
		if !ok {
			t = &tally{userID: r.UserID, earliest: r.CreatedAt}
			tallies[r.UserID] = t
		}
		t.total += r.Score
		t.matches++
		if r.CreatedAt.Before(t.earliest) {
			t.earliest = r.CreatedAt
		}
	}

	ranked := make([]*tally, 0, len(tallies))
	for _, t := range tallies {
		ranked = append(ranked, t)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].total != ranked[j].total {
			return ranked[i].total > ranked[j].total
		}
		if !ranked[i].earliest.Equal(ranked[j].earliest) {
			return ranked[i].earliest.Before(ranked[j].earliest)
		}
		return ranked[i].userID < ranked[j].userID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]model.UserID, len(ranked))
	for i, t := range ranked {
		ids[i] = t.userID
	}

	profiles, err := s.users.LookupProfiles(ctx, ids)
	if err != nil {
		return nil, err
	}

	entries := make([]model.LeaderboardEntry, len(ranked))
	for i, t := range ranked {
		profile, ok := profiles[t.userID]
		if !ok {
			// Deleted or unknown account: keep the row so ranks stay
			// stable, with a placeholder profile
			profile = model.UserProfile{UserID: t.userID, Username: "unknown"}
		}
		entries[i] = model.LeaderboardEntry{
			Rank:          i + 1,
			User:          profile,
			TotalScore:    t.total,
			MatchesPlayed: t.matches,
		}
	}

	s.logger.Debug("leaderboard computed",
		slog.String("game_id", string(gameID)),
		slog.String("range", string(timeRange)),
		slog.Int("entries", len(entries)),
	)

	return entries, nil
}

// cutoff computes the lower time bound of the scoring window, in UTC
func (s *Service) cutoff(timeRange model.TimeRange) (time.Time, error) {
	now := s.clock.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch timeRange {
	case model.TimeRangeDaily:
		return midnight, nil
	case model.TimeRangeWeekly:
		return midnight.AddDate(0, 0, -7), nil
	case model.TimeRangeAllTime:
		return allTimeEpoch, nil
	}
	return time.Time{}, model.ErrInvalidTimeRange
}
