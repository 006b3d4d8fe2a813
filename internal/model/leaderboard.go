package model

// TimeRange selects the scoring window for a leaderboard
type TimeRange string

const (
	TimeRangeDaily   TimeRange = "daily"
	TimeRangeWeekly  TimeRange = "weekly"
	TimeRangeAllTime TimeRange = "all-time"
)

// ParseTimeRange converts a request string into a TimeRange
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case TimeRangeDaily, TimeRangeWeekly, TimeRangeAllTime:
		return TimeRange(s), nil
	}
	return "", ErrInvalidTimeRange
}

// LeaderboardEntry is one row of a computed leaderboard.
// Entries are derived per request and never persisted.
type LeaderboardEntry struct {
	Rank          int
	User          UserProfile
	TotalScore    int
	MatchesPlayed int
}
