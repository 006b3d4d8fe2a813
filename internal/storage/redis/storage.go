package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playably/arcade/internal/model"
	"github.com/playably/arcade/internal/storage"
)

// Storage is a Redis-backed implementation of the result store and user
// directory. Results are stored as JSON values with a per-game sorted-set
// index scored by creation time, so time-window queries are range reads.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements both collaborator interfaces
var (
	_ storage.ResultStore   = (*Storage)(nil)
	_ storage.UserDirectory = (*Storage)(nil)
)

// Result store operations

func (s *Storage) AppendResult(ctx context.Context, result *model.ScoredResult) error {
	pipe := s.client.Pipeline()
	if err := appendToPipe(ctx, pipe, result); err != nil {
		return err
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append result: %w", err)
	}
	return nil
}

func (s *Storage) AppendResults(ctx context.Context, results []*model.ScoredResult) error {
	if len(results) == 0 {
		return nil
	}

	// One pipeline for the whole batch: it applies all-or-nothing
	pipe := s.client.Pipeline()
	for _, r := range results {
		if err := appendToPipe(ctx, pipe, r); err != nil {
			return err
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append result batch: %w", err)
	}
	return nil
}

// appendToPipe queues the value write and index updates for one result
func appendToPipe(ctx context.Context, pipe redis.Pipeliner, result *model.ScoredResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	entry := redis.Z{
		Score:  float64(result.CreatedAt.UnixMilli()),
		Member: result.ID,
	}

	pipe.Set(ctx, resultKey(result.ID), data, 0)
	pipe.ZAdd(ctx, resultsByGameKey(result.GameID), entry)
	if result.Category != "" {
		pipe.ZAdd(ctx, resultsByCategoryKey(result.GameID, result.Category), entry)
	}
	return nil
}

func (s *Storage) ResultsSince(ctx context.Context, gameID model.GameID, cutoff time.Time, category string) ([]model.ResultRecord, error) {
	indexKey := resultsByGameKey(gameID)
	if category != "" {
		indexKey = resultsByCategoryKey(gameID, category)
	}

	ids, err := s.client.ZRangeByScore(ctx, indexKey, &redis.ZRangeBy{
		Min: fmt.Sprintf("%d", cutoff.UnixMilli()),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to query result index: %w", err)
	}

	if len(ids) == 0 {
		return []model.ResultRecord{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = resultKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}

	records := make([]model.ResultRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // indexed but evicted
		}
		var result model.ScoredResult
		if err := json.Unmarshal([]byte(val.(string)), &result); err != nil {
			continue // skip invalid data
		}
		records = append(records, model.ResultRecord{
			UserID:    result.UserID,
			Score:     result.Score,
			CreatedAt: result.CreatedAt,
		})
	}

	return records, nil
}

// User directory operations

func (s *Storage) LookupProfiles(ctx context.Context, ids []model.UserID) (map[model.UserID]model.UserProfile, error) {
	if len(ids) == 0 {
		return map[model.UserID]model.UserProfile{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	profiles := make(map[model.UserID]model.UserProfile, len(ids))
	for i, val := range values {
		if val == nil {
			continue // no profile for this ID
		}
		var profile model.UserProfile
		if err := json.Unmarshal([]byte(val.(string)), &profile); err != nil {
			continue
		}
		profiles[ids[i]] = profile
	}

	return profiles, nil
}

func (s *Storage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, userKey(profile.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
