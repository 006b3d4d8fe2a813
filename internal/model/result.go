package model

import "time"

// ScoredResult is the immutable record of one scored session.
// It is written exactly once at ingestion time and never updated or
// deleted by this backend.
type ScoredResult struct {
	ID       string
	GameID   GameID
	UserID   UserID
	TargetID string
	Category string
	Session  GameSession
	Score    int

	CreatedAt time.Time
}

// ResultRecord is the projection of a ScoredResult that the leaderboard
// aggregation consumes from a time-window query
type ResultRecord struct {
	UserID    UserID
	Score     int
	CreatedAt time.Time
}
