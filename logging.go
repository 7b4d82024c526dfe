package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"
)

// GoogleCloudHandler is a slog.Handler that emits one JSON object per line
// with a "severity" field Google Cloud Logging recognizes, so logs shipped
// from the running container get correctly leveled and searchable without
// any sidecar agent configuration.
type GoogleCloudHandler struct {
	writer     *os.File
	level      slog.Level
	extraAttrs map[string]interface{}
}

// NewGoogleCloudHandler returns a handler that writes to writer, dropping
// records below level.
func NewGoogleCloudHandler(writer *os.File, level slog.Level) *GoogleCloudHandler {
	return &GoogleCloudHandler{
		writer: writer,
		level:  level,
	}
}

func (h *GoogleCloudHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *GoogleCloudHandler) Handle(_ context.Context, r slog.Record) error {
	severity := convertToSeverity(r.Level)

	attrs := map[string]interface{}{}
	r.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})
	for k, v := range h.extraAttrs {
		attrs[k] = v
	}

	logEntry := map[string]interface{}{
		"severity": severity,
		"message":  r.Message,
		"time":     time.Now().Format(time.RFC3339Nano),
	}
	for k, v := range attrs {
		logEntry[k] = v
	}

	return json.NewEncoder(h.writer).Encode(logEntry)
}

func (h *GoogleCloudHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandler := *h
	if newHandler.extraAttrs == nil {
		newHandler.extraAttrs = map[string]interface{}{}
	} else {
		merged := make(map[string]interface{}, len(h.extraAttrs))
		for k, v := range h.extraAttrs {
			merged[k] = v
		}
		newHandler.extraAttrs = merged
	}
	for _, attr := range attrs {
		newHandler.extraAttrs[attr.Key] = attr.Value.Any()
	}
	return &newHandler
}

func (h *GoogleCloudHandler) WithGroup(name string) slog.Handler {
	return h
}

func convertToSeverity(level slog.Level) string {
	switch level {
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	case slog.LevelDebug:
		return "DEBUG"
	default:
		return "DEFAULT"
	}
}
