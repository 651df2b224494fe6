package redis

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// scoresKey holds the cumulative scoreboard as a Redis hash:
// HSET trivia:scores {playerID} {score}
const scoresKey = "trivia:scores"

// ScoreStore is a Redis-backed implementation of app.ScoreStore.
// HINCRBY makes Increment atomic, so concurrent submissions cannot lose
// updates the way the flat-file backend can.
type ScoreStore struct {
	client *redis.Client
}

func NewScoreStore(client *redis.Client) *ScoreStore {
	return &ScoreStore{client: client}
}

// Load reads the whole hash. Entries that do not parse as integers are
// skipped rather than failing the read.
func (s *ScoreStore) Load(ctx context.Context) (map[string]int, error) {
	raw, err := s.client.HGetAll(ctx, scoresKey).Result()
	if err != nil {
		return nil, err
	}
	scores := make(map[string]int, len(raw))
	for player, value := range raw {
		score, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		scores[player] = score
	}
	return scores, nil
}

// Save replaces the whole hash with the given mapping.
func (s *ScoreStore) Save(ctx context.Context, scores map[string]int) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, scoresKey)
	for player, score := range scores {
		pipe.HSet(ctx, scoresKey, player, score)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *ScoreStore) Increment(ctx context.Context, player string, delta int) error {
	return s.client.HIncrBy(ctx, scoresKey, player, int64(delta)).Err()
}
