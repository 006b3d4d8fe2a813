package response

import (
	"time"

	"github.com/playably/arcade/internal/model"
)

// ScoredResult represents a persisted result in API responses
type ScoredResult struct {
	ID        string    `json:"id"`
	GameID    string    `json:"game_id"`
	UserID    string    `json:"user_id"`
	TargetID  string    `json:"target_id"`
	Category  string    `json:"category,omitempty"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoredResultFromModel converts a model.ScoredResult
func ScoredResultFromModel(r *model.ScoredResult) ScoredResult {
	return ScoredResult{
		ID:        r.ID,
		GameID:    string(r.GameID),
		UserID:    string(r.UserID),
		TargetID:  r.TargetID,
		Category:  r.Category,
		Score:     r.Score,
		CreatedAt: r.CreatedAt,
	}
}

// SubmitBatchResponse wraps the results of a batch submission
type SubmitBatchResponse struct {
	Results []ScoredResult `json:"results"`
}

// User represents public profile fields in API responses
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// LeaderboardEntry is one row of a leaderboard response
type LeaderboardEntry struct {
	Rank          int  `json:"rank"`
	User          User `json:"user"`
	TotalScore    int  `json:"total_score"`
	MatchesPlayed int  `json:"matches_played"`
}

// LeaderboardEntryFromModel converts a model.LeaderboardEntry
func LeaderboardEntryFromModel(e model.LeaderboardEntry) LeaderboardEntry {
	return LeaderboardEntry{
		Rank: e.Rank,
		User: User{
			UserID:   string(e.User.UserID),
			Username: e.User.Username,
			Name:     e.User.Name,
		},
		TotalScore:    e.TotalScore,
		MatchesPlayed: e.MatchesPlayed,
	}
}

// Leaderboard wraps a computed leaderboard
type Leaderboard struct {
	GameID    string             `json:"game_id"`
	TimeRange string             `json:"time_range"`
	Category  string             `json:"category,omitempty"`
	Entries   []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromModel converts a slice of leaderboard entries
func LeaderboardFromModel(gameID model.GameID, timeRange model.TimeRange, category string, entries []model.LeaderboardEntry) Leaderboard {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntryFromModel(e)
	}
	return Leaderboard{
		GameID:    string(gameID),
		TimeRange: string(timeRange),
		Category:  category,
		Entries:   out,
	}
}
