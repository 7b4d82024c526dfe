package main

import (
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"
)

// server holds every piece of long-lived state the HTTP handlers share:
// the time-budget store, the lifecycle notifier, and the in-memory
// per-game diagnostic trail that gets archived on /end.
type server struct {
	budgets    *BudgetStore
	notifier   *Notifier
	diagBucket string

	mu       sync.Mutex
	summaries map[string]*gameSummary
}

func newServer(notifier *Notifier, diagBucket string) *server {
	return &server{
		budgets:    NewBudgetStore(),
		notifier:   notifier,
		diagBucket: diagBucket,
		summaries:  make(map[string]*gameSummary),
	}
}

func main() {
	logger := slog.New(NewGoogleCloudHandler(os.Stdout, slog.LevelInfo))
	slog.SetDefault(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx := context.Background()
	webhookURL := os.Getenv("SNAKE_WEBHOOK_URL")
	if secretName := os.Getenv("SNAKE_WEBHOOK_SECRET_NAME"); secretName != "" {
		if resolved := resolveWebhookSecret(ctx, secretName); resolved != "" {
			webhookURL = resolved
		}
	}

	srv := newServer(NewNotifier(webhookURL), os.Getenv("SNAKE_DIAGNOSTICS_BUCKET"))
	srv.notifier.send("starting up", nil)
	defer srv.notifier.send("shutting down", nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/", handleIndex)
	mux.HandleFunc("/start", srv.handleStart)
	mux.HandleFunc("/move", srv.handleMove)
	mux.HandleFunc("/end", srv.handleEnd)

	slog.Info("starting battlesnake", "port", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"apiversion": "1",
		"author":     "",
		"color":      "#553388",
		"head":       "default",
		"tail":       "default",
		"version":    "1.0.0",
	})
}

func (s *server) handleStart(w http.ResponseWriter, r *http.Request) {
	var game BattleSnakeGame
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	budget := s.budgets.Set(game.Game.ID, game.Game.Timeout)

	s.mu.Lock()
	s.summaries[game.Game.ID] = &gameSummary{GameID: game.Game.ID}
	s.mu.Unlock()

	slog.Info("game started", "game_id", game.Game.ID, "timeout_ms", game.Game.Timeout, "budget_ms", budget)
	s.notifier.NotifyGameStart(game)

	writeJSON(w, map[string]string{})
}

func (s *server) handleMove(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var game BattleSnakeGame
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ourIndex := findSnake(game.Board, game.You.ID)
	if ourIndex == -1 {
		slog.Error("our snake missing from board", "game_id", game.Game.ID)
		writeJSON(w, map[string]string{"move": string(Up)})
		return
	}

	budgetMS := s.budgets.Get(game.Game.ID)
	deadline := start.Add(time.Duration(budgetMS) * time.Millisecond)

	decision := ChooseMove(game.Board, ourIndex, game.Turn, deadline)
	profile := selectProfile(game.Board, game.Turn, ourIndex)
	breakdown := evaluateWithBreakdown(game.Board, ourIndex, profile, nil).Components

	trace := newDecisionTrace(game.Game.ID, game.Turn, decision, profile, breakdown, time.Since(start))

	s.mu.Lock()
	if summary, ok := s.summaries[game.Game.ID]; ok {
		summary.Turns = append(summary.Turns, trace)
	}
	s.mu.Unlock()

	slog.Info("move chosen",
		"game_id", game.Game.ID,
		"turn", game.Turn,
		"move", decision.Move,
		"score", decision.Score,
		"profile", profile.Name,
		"duration_ms", trace.DurationMS,
		"trace_id", trace.TraceID,
	)

	writeJSON(w, map[string]string{"move": string(decision.Move)})
}

func (s *server) handleEnd(w http.ResponseWriter, r *http.Request) {
	var game BattleSnakeGame
	if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.budgets.Clear(game.Game.ID)

	outcome, reason := describeGameOutcome(game)
	board := visualizeBoard(game.Board, WithNewlineCharacter("\n"))
	voronoi := VisualizeVoronoi(GenerateVoronoi(game.Board), game.Board.Snakes, WithNewlineCharacter("\n"))

	slog.Info("game ended", "game_id", game.Game.ID, "turn", game.Turn, "reason", reason)
	slog.Debug("territorial control at game end", "game_id", game.Game.ID, "voronoi", voronoi)
	s.notifier.NotifyGameEnd(game, outcome, reason, board)

	s.mu.Lock()
	summary, ok := s.summaries[game.Game.ID]
	delete(s.summaries, game.Game.ID)
	s.mu.Unlock()

	if ok {
		summary.Outcome = outcome.String()
		summary.Reason = reason
		summary.Board = board
		summary.Voronoi = voronoi
		if err := archiveGameSummary(r.Context(), s.diagBucket, *summary); err != nil {
			slog.Error("failed to archive game summary", "game_id", game.Game.ID, "err", err)
		}
	}

	writeJSON(w, map[string]string{})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
