package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Embed is a Discord-compatible rich embed. Other webhook providers that
// accept the same payload shape (several do) get it for free; providers
// that don't simply ignore the field since it rides inside an
// omitempty-guarded JSON body.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Timestamp   string       `json:"timestamp,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Notifier posts lifecycle events to a single webhook URL. A zero-value
// Notifier (empty URL) logs instead of posting, so the decision core runs
// unchanged in environments with no configured webhook.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

func (n *Notifier) send(content string, embeds []Embed) {
	if n == nil || n.webhookURL == "" {
		slog.Info("webhook not configured, logging notification instead", "content", content)
		return
	}

	body, err := json.Marshal(webhookPayload{Content: content, Embeds: embeds})
	if err != nil {
		slog.Error("failed to marshal webhook payload", "err", err)
		return
	}

	resp, err := n.client.Post(n.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Error("failed to send webhook", "err", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		slog.Error("webhook returned non-ok status", "code", resp.StatusCode)
		return
	}
	slog.Debug("webhook notification sent")
}

// NotifyGameStart announces a new game and its opponents.
func (n *Notifier) NotifyGameStart(game BattleSnakeGame) {
	var opponents []string
	for _, snake := range game.Board.Snakes {
		if snake.ID == game.You.ID {
			continue
		}
		opponents = append(opponents, snake.Name)
	}
	n.send(fmt.Sprintf("game %s started against %s", game.Game.ID, strings.Join(opponents, ", ")), nil)
}

// NotifyGameEnd announces a finished game, its outcome and a board
// diagram, colored by outcome.
func (n *Notifier) NotifyGameEnd(game BattleSnakeGame, outcome GameOutcome, reason string, board string) {
	embed := Embed{
		Title:       fmt.Sprintf("%s game %s", outcomeEmoji(outcome), game.Game.ID),
		Description: fmt.Sprintf("turn %d: %s\n```\n%s\n```", game.Turn, reason, board),
		Color:       getColorForOutcome(outcome),
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	n.send("", []Embed{embed})
}

func getColorForOutcome(outcome GameOutcome) int {
	switch outcome {
	case Win:
		return 0x00FF00
	case Draw:
		return 0xFFFF00
	case Loss:
		return 0xFF0000
	default:
		return 0x0099ff
	}
}
