package http

import (
	"encoding/json"
	"log"
	"net/http"

	"ton-trivia-service/internal/app"
	"ton-trivia-service/internal/domain"
)

// Handler exposes the trivia use cases as the JSON-over-HTTP surface
// the mini app front end talks to. Inputs are coerced, never rejected:
// an unparseable result body is treated as an empty submission and an
// unknown category silently falls back to the default pool.
type Handler struct {
	service *app.TriviaService
}

func NewHandler(service *app.TriviaService) *Handler {
	return &Handler{service: service}
}

// Register wires the handler's routes into the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/questions", h.Questions)
	mux.HandleFunc("/result", h.SubmitResult)
	mux.HandleFunc("/leaderboard", h.Leaderboard)
}

type questionsResponse struct {
	Questions []domain.Question `json:"questions"`
}

// Questions serves GET /questions?category=<name>.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.GetQuestions(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		log.Printf("questions: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if questions == nil {
		questions = []domain.Question{}
	}
	writeJSON(w, questionsResponse{Questions: questions})
}

type resultRequest struct {
	Wallet domain.WalletInfo `json:"wallet"`
	Score  struct {
		User     int `json:"user"`
		Opponent int `json:"opponent"`
	} `json:"score"`
	Stake    *float64 `json:"stake"`
	Category string   `json:"category"`
}

type resultResponse struct {
	Status     string        `json:"status"`
	Winner     domain.Winner `json:"winner"`
	Commission float64       `json:"commission"`
	NetReward  float64       `json:"net_reward"`
}

// SubmitResult serves POST /result. Missing fields take defaults and a
// body that fails to parse counts as an empty object, so the endpoint
// never returns a validation error.
func (h *Handler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req resultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req = resultRequest{}
	}

	stake := 1.0
	if req.Stake != nil {
		stake = *req.Stake
	}
	category := req.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	outcome := h.service.SubmitResult(r.Context(), domain.MatchResult{
		Wallet:        req.Wallet,
		UserScore:     clampScore(req.Score.User),
		OpponentScore: clampScore(req.Score.Opponent),
		Stake:         stake,
		Category:      category,
	})

	writeJSON(w, resultResponse{
		Status:     "ok",
		Winner:     outcome.Winner,
		Commission: outcome.Commission,
		NetReward:  outcome.NetReward,
	})
}

type leaderboardResponse struct {
	Leaderboard []domain.LeaderboardEntry `json:"leaderboard"`
}

// Leaderboard serves GET /leaderboard.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Leaderboard(r.Context())
	if err != nil {
		log.Printf("leaderboard: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	writeJSON(w, leaderboardResponse{Leaderboard: entries})
}

// clampScore coerces negative submissions to zero; cumulative scores
// only ever grow.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}
