package app

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"ton-trivia-service/internal/domain"
)

// CatalogRepository loads question pools (from cache/backing store).
type CatalogRepository interface {
	Category(ctx context.Context, name string) ([]domain.Question, error)
}

// ScoreStore abstracts the durable player→score mapping. Load must fail
// soft: a missing or unreadable store yields an empty mapping, not an
// error. Increment lets atomic backends avoid read-modify-write.
type ScoreStore interface {
	Load(ctx context.Context) (map[string]int, error)
	Save(ctx context.Context, scores map[string]int) error
	Increment(ctx context.Context, player string, delta int) error
}

// Options tune settlement behavior.
type Options struct {
	CommissionRate float64 // defaults to DefaultCommissionRate when zero
	OwnerWallet    string  // logged as the commission destination
}

// DefaultCommissionRate is the share of the stake withheld from a
// decided match.
const DefaultCommissionRate = 0.15

// TriviaService contains the question, settlement and leaderboard use cases.
type TriviaService struct {
	catalog CatalogRepository
	scores  ScoreStore
	rate    float64
	owner   string

	rndMu sync.Mutex
	rnd   *rand.Rand

	feedMu      sync.Mutex
	subscribers map[chan []domain.LeaderboardEntry]struct{}
}

func NewTriviaService(catalog CatalogRepository, scores ScoreStore, opts Options) *TriviaService {
	rate := opts.CommissionRate
	if rate == 0 {
		rate = DefaultCommissionRate
	}
	return &TriviaService{
		catalog:     catalog,
		scores:      scores,
		rate:        rate,
		owner:       opts.OwnerWallet,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
		subscribers: make(map[chan []domain.LeaderboardEntry]struct{}),
	}
}

// GetQuestions returns a uniform sample, without replacement, of up to
// QuestionsPerMatch questions from the requested category. Category
// matching is case-insensitive and an unknown category silently falls
// back to the default pool; the only error surface is the repository's.
func (s *TriviaService) GetQuestions(ctx context.Context, category string) ([]domain.Question, error) {
	name := strings.ToLower(strings.TrimSpace(category))
	if name == "" {
		name = domain.DefaultCategory
	}

	pool, err := s.catalog.Category(ctx, name)
	if err == domain.ErrCategoryNotFound && name != domain.DefaultCategory {
		pool, err = s.catalog.Category(ctx, domain.DefaultCategory)
	}
	if err != nil {
		return nil, err
	}

	n := len(pool)
	k := domain.QuestionsPerMatch
	if n < k {
		k = n
	}

	s.rndMu.Lock()
	order := s.rnd.Perm(n)
	s.rndMu.Unlock()

	selected := make([]domain.Question, 0, k)
	for _, idx := range order[:k] {
		selected = append(selected, pool[idx])
	}
	return selected, nil
}

// SubmitResult settles a finished match and records the player's score.
// The settlement is a reporting stub: commission and net reward are
// computed and logged against the owner wallet but never transferred.
// Store failures are logged and swallowed; the outcome is always returned.
func (s *TriviaService) SubmitResult(ctx context.Context, result domain.MatchResult) domain.SettlementOutcome {
	outcome := s.settle(result)
	identity := domain.DeriveIdentity(result.Wallet)

	log.Printf("result: player=%s (%s) category=%s user=%d opponent=%d winner=%s",
		identity.ID, identity.Source, result.Category, result.UserScore, result.OpponentScore, outcome.Winner)
	log.Printf("settlement: stake=%g commission=%g net_reward=%g", result.Stake, outcome.Commission, outcome.NetReward)
	if outcome.Commission > 0 && s.owner != "" {
		log.Printf("settlement: commission %g due to owner wallet %s", outcome.Commission, s.owner)
	}

	if err := s.scores.Increment(ctx, identity.ID, result.UserScore); err != nil {
		log.Printf("score update failed for %s: %v", identity.ID, err)
	} else {
		s.broadcast(ctx)
	}
	return outcome
}

func (s *TriviaService) settle(result domain.MatchResult) domain.SettlementOutcome {
	var winner domain.Winner
	switch {
	case result.UserScore > result.OpponentScore:
		winner = domain.WinnerUser
	case result.UserScore < result.OpponentScore:
		winner = domain.WinnerOpponent
	default:
		winner = domain.WinnerTie
	}

	// Commission and net reward are never negative; a negative stake is
	// coerced to zero like any other out-of-range submission.
	stake := result.Stake
	if stake < 0 {
		stake = 0
	}

	outcome := domain.SettlementOutcome{Winner: winner}
	if winner != domain.WinnerTie {
		outcome.Commission = stake * s.rate
		outcome.NetReward = stake - outcome.Commission
	}
	return outcome
}

// Leaderboard returns the cumulative scoreboard ordered by score
// descending, ties broken by player identifier ascending, with dense
// 1-based ranks. A fresh or unreadable store yields an empty list.
func (s *TriviaService) Leaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	scores, err := s.scores.Load(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(scores))
	for player, score := range scores {
		entries = append(entries, domain.LeaderboardEntry{Player: player, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Player < entries[j].Player
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// Subscribe returns a channel receiving the recomputed leaderboard
// after every accepted result submission. The caller must invoke the
// cancel function to avoid leaks.
func (s *TriviaService) Subscribe(ctx context.Context) (<-chan []domain.LeaderboardEntry, func(), error) {
	initial, err := s.Leaderboard(ctx)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan []domain.LeaderboardEntry, 8)

	// Registration and the snapshot go under one lock so a concurrent
	// broadcast cannot enqueue a fresher update ahead of the snapshot.
	s.feedMu.Lock()
	s.subscribers[ch] = struct{}{}
	ch <- initial
	s.feedMu.Unlock()

	cancel := func() {
		s.feedMu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.feedMu.Unlock()
	}
	return ch, cancel, nil
}

func (s *TriviaService) broadcast(ctx context.Context) {
	s.feedMu.Lock()
	if len(s.subscribers) == 0 {
		s.feedMu.Unlock()
		return
	}
	s.feedMu.Unlock()

	entries, err := s.Leaderboard(ctx)
	if err != nil {
		log.Printf("leaderboard refresh for feed failed: %v", err)
		return
	}

	s.feedMu.Lock()
	defer s.feedMu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- entries:
		default:
			// Drop the stale update so a slow client cannot block the rest.
			select {
			case <-ch:
			default:
			}
			ch <- entries
		}
	}
}
