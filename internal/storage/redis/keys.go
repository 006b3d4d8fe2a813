package redis

import (
	"fmt"

	"github.com/playably/arcade/internal/model"
)

// Key prefix for all arcade data
const keyPrefix = "arcade"

// resultKey returns the Redis key for a ScoredResult
func resultKey(id string) string {
	return fmt.Sprintf("%s:result:%s", keyPrefix, id)
}

// resultsByGameKey returns the Redis key for the sorted-set index of a
// game's results, scored by creation time
func resultsByGameKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:idx:results:%s", keyPrefix, gameID)
}

// resultsByCategoryKey returns the Redis key for the per-category
// sorted-set index of a game's results
func resultsByCategoryKey(gameID model.GameID, category string) string {
	return fmt.Sprintf("%s:idx:results:%s:cat:%s", keyPrefix, gameID, category)
}

// userKey returns the Redis key for a UserProfile
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}
