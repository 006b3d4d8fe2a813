package memory

import (
	"context"
	"sync"
	"time"

	"github.com/playably/arcade/internal/model"
	"github.com/playably/arcade/internal/storage"
)

// Storage is an in-memory implementation of the result store and user
// directory, used for tests and local development
type Storage struct {
	mu sync.RWMutex

	// results per game, in append order
	results  map[model.GameID][]*model.ScoredResult
	profiles map[model.UserID]*model.UserProfile
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		results:  make(map[model.GameID][]*model.ScoredResult),
		profiles: make(map[model.UserID]*model.UserProfile),
	}
}

// Ensure Storage implements both collaborator interfaces
var (
	_ storage.ResultStore   = (*Storage)(nil)
	_ storage.UserDirectory = (*Storage)(nil)
)

// Result store operations

func (s *Storage) AppendResult(ctx context.Context, result *model.ScoredResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[result.GameID] = append(s.results[result.GameID], result)
	return nil
}

func (s *Storage) AppendResults(ctx context.Context, results []*model.ScoredResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range results {
		s.results[r.GameID] = append(s.results[r.GameID], r)
	}
	return nil
}

func (s *Storage) ResultsSince(ctx context.Context, gameID model.GameID, cutoff time.Time, category string) ([]model.ResultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []model.ResultRecord{}
	for _, r := range s.results[gameID] {
		if r.CreatedAt.Before(cutoff) {
			continue
		}
		if category != "" && r.Category != category {
			continue
		}
		records = append(records, model.ResultRecord{
			UserID:    r.UserID,
			Score:     r.Score,
			CreatedAt: r.CreatedAt,
		})
	}
	return records, nil
}

// User directory operations

func (s *Storage) LookupProfiles(ctx context.Context, ids []model.UserID) (map[model.UserID]model.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make(map[model.UserID]model.UserProfile, len(ids))
	for _, id := range ids {
		if p, ok := s.profiles[id]; ok {
			profiles[id] = *p
		}
	}
	return profiles, nil
}

func (s *Storage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = profile
	return nil
}
