package domain

// Question is a single multiple-choice trivia question. The correct
// option index is served to the client because the match itself is
// played entirely client-side.
type Question struct {
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// Catalog maps a category name to its question pool. Built once at
// startup and never mutated afterwards.
type Catalog map[string][]Question

// DefaultCategory receives every request for an unknown category.
const DefaultCategory = "general"

// QuestionsPerMatch caps how many questions a single match is dealt.
const QuestionsPerMatch = 5

// Winner identifies which side of a match came out ahead.
type Winner string

const (
	WinnerUser     Winner = "user"
	WinnerOpponent Winner = "opponent"
	WinnerTie      Winner = "tie"
)

// MatchResult is a finished match as reported by the client. The wallet
// payload stays opaque; identity derivation happens in DeriveIdentity.
type MatchResult struct {
	Wallet        WalletInfo
	UserScore     int
	OpponentScore int
	Stake         float64
	Category      string
}

// SettlementOutcome is the computed commission split for a match. It is
// reported back to the client and logged, never transferred anywhere.
type SettlementOutcome struct {
	Winner     Winner
	Commission float64
	NetReward  float64
}

// LeaderboardEntry is one ranked row of the cumulative scoreboard.
type LeaderboardEntry struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
	Rank   int    `json:"rank"`
}
