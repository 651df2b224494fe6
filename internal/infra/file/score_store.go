// Package file persists the cumulative score mapping as a single JSON
// document, the way the original scores file worked: read fully, parse,
// rewrite fully. There is no cross-process coordination; two processes
// sharing one file can lose updates.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// ScoreStore is a flat-file implementation of app.ScoreStore.
type ScoreStore struct {
	path string
	mu   sync.Mutex
}

func NewScoreStore(path string) *ScoreStore {
	return &ScoreStore{path: path}
}

// Load reads the whole mapping. It fails soft: a missing file, an
// unreadable file or corrupt JSON all yield an empty mapping.
func (s *ScoreStore) Load(_ context.Context) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(), nil
}

func (s *ScoreStore) loadLocked() map[string]int {
	scores := make(map[string]int)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return scores
	}
	if err := json.Unmarshal(data, &scores); err != nil {
		return make(map[string]int)
	}
	return scores
}

// Save rewrites the whole mapping. The write goes through a temp file
// and a rename so readers never observe a partially written document.
func (s *ScoreStore) Save(_ context.Context, scores map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(scores)
}

func (s *ScoreStore) saveLocked(scores map[string]int) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".scores-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Increment applies a read-modify-write under the store's mutex, which
// serializes submissions within this process.
func (s *ScoreStore) Increment(_ context.Context, player string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	scores := s.loadLocked()
	scores[player] += delta
	return s.saveLocked(scores)
}
