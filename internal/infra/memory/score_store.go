package memory

import (
	"context"
	"sync"
)

// ScoreStore is an in-memory implementation of app.ScoreStore, used
// when no persistence backend is configured and in tests.
type ScoreStore struct {
	mu     sync.RWMutex
	scores map[string]int
}

func NewScoreStore() *ScoreStore {
	return &ScoreStore{scores: make(map[string]int)}
}

func (s *ScoreStore) Load(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.scores))
	for player, score := range s.scores {
		out[player] = score
	}
	return out, nil
}

func (s *ScoreStore) Save(_ context.Context, scores map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = make(map[string]int, len(scores))
	for player, score := range scores {
		s.scores[player] = score
	}
	return nil
}

func (s *ScoreStore) Increment(_ context.Context, player string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[player] += delta
	return nil
}
