package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// resolveWebhookSecret loads a webhook URL from Secret Manager when
// secretName is set; an empty secretName or any failure yields an empty
// string, which Notifier treats as "log instead of post".
func resolveWebhookSecret(ctx context.Context, secretName string) string {
	if secretName == "" {
		return ""
	}

	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		slog.Error("failed to create secret manager client", "err", err)
		return ""
	}
	defer client.Close()

	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: secretName})
	if err != nil {
		slog.Error("failed to access webhook secret", "err", err)
		return ""
	}
	return string(result.Payload.GetData())
}

// decisionTrace is the diagnostic record archived for a single /move
// response: which move was chosen, the score that justified it, the
// heuristic breakdown, and a trace id correlating it with structured logs.
type decisionTrace struct {
	TraceID    string             `json:"trace_id"`
	GameID     string             `json:"game_id"`
	Turn       int                `json:"turn"`
	Move       Direction          `json:"move"`
	Score      float64            `json:"score"`
	Profile    string             `json:"profile"`
	Breakdown  map[string]float64 `json:"breakdown,omitempty"`
	DurationMS int64              `json:"duration_ms"`
}

// newDecisionTrace stamps a fresh trace id for a single decision.
func newDecisionTrace(gameID string, turn int, decision MoveDecision, profile WeightProfile, breakdown map[string]float64, duration time.Duration) decisionTrace {
	return decisionTrace{
		TraceID:    uuid.NewString(),
		GameID:     gameID,
		Turn:       turn,
		Move:       decision.Move,
		Score:      decision.Score,
		Profile:    profile.Name,
		Breakdown:  breakdown,
		DurationMS: duration.Milliseconds(),
	}
}

// gameSummary is the end-of-game diagnostic archive: every turn's decision
// trace plus the final outcome.
type gameSummary struct {
	GameID  string          `json:"game_id"`
	Outcome string          `json:"outcome"`
	Reason  string          `json:"reason"`
	Turns   []decisionTrace `json:"turns"`
	Board   string          `json:"final_board"`
	Voronoi string          `json:"final_voronoi,omitempty"`
}

// archiveGameSummary uploads summary as JSON to bucket, keyed by game id.
// A zero-value bucket name is treated as "archival disabled".
func archiveGameSummary(ctx context.Context, bucketName string, summary gameSummary) error {
	if bucketName == "" {
		return nil
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	object := client.Bucket(bucketName).Object(fmt.Sprintf("%s.json", summary.GameID))
	writer := object.NewWriter(ctx)

	encoder := json.NewEncoder(writer)
	if err := encoder.Encode(summary); err != nil {
		_ = writer.Close()
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}

	slog.Debug("archived game summary", "game_id", summary.GameID)
	return nil
}
