package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestIncrementAndLoad(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewScoreStore(newClient(mr))

	if err := store.Increment(ctx, "alice", 3); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := store.Increment(ctx, "alice", 5); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := store.Increment(ctx, "bob", 2); err != nil {
		t.Fatalf("increment: %v", err)
	}

	scores, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if scores["alice"] != 8 || scores["bob"] != 2 {
		t.Fatalf("unexpected scores: %v", scores)
	}
}

func TestSaveReplacesHash(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	ctx := context.Background()
	store := NewScoreStore(newClient(mr))

	if err := store.Increment(ctx, "stale", 99); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := store.Save(ctx, map[string]int{"alice": 10}); err != nil {
		t.Fatalf("save: %v", err)
	}

	scores, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(scores) != 1 || scores["alice"] != 10 {
		t.Fatalf("expected only alice=10, got %v", scores)
	}
}

func TestLoadSkipsNonIntegerEntries(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	mr.HSet(scoresKey, "alice", "7")
	mr.HSet(scoresKey, "broken", "not-a-number")

	store := NewScoreStore(newClient(mr))
	scores, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(scores) != 1 || scores["alice"] != 7 {
		t.Fatalf("expected only alice=7, got %v", scores)
	}
}

func newClient(mr *miniredis.Miniredis) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}
