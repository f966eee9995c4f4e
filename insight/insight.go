// Package insight turns one prompt into one string. Every failure mode is
// folded into the returned string so callers can print it without handling
// errors themselves.
package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/taniiarch/mediaintel/llm"
	"github.com/taniiarch/mediaintel/providers/openrouter"
)

const DefaultModel = "openai/gpt-4o-mini"

// EmptyResponse is returned when the call succeeds but the completion
// carries no usable content. Empty choices, a missing message and an empty
// content string are deliberately not distinguished.
const EmptyResponse = "Respons kosong atau tidak valid."

type Options struct {
	// Model names the remote model as a vendor/model pair. Empty means
	// DefaultModel.
	Model  string
	Logger *slog.Logger
}

// Fetch sends a single user message and returns the completion text. It
// never returns an error: API-level failures come back as
// "Kesalahan API <code>: <body>", everything else as
// "Kesalahan umum: <message>".
func Fetch(ctx context.Context, client llm.Client, prompt string, opts Options) string {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}

	reqID := uuid.NewString()
	res, err := client.Chat(ctx, llm.Request{
		Model: model,
		Messages: []llm.Message{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		var apiErr *openrouter.APIError
		if errors.As(err, &apiErr) {
			log.Warn("insight_api_error", "request_id", reqID, "model", model, "status", apiErr.StatusCode)
			return fmt.Sprintf("Kesalahan API %d: %s", apiErr.StatusCode, apiErr.Body)
		}
		log.Warn("insight_error", "request_id", reqID, "model", model, "error", err.Error())
		return fmt.Sprintf("Kesalahan umum: %s", err.Error())
	}

	log.Info("insight_done",
		"request_id", reqID,
		"model", model,
		"duration", res.Duration.String(),
		"total_tokens", res.Usage.TotalTokens,
	)

	if strings.TrimSpace(res.Text) == "" {
		return EmptyResponse
	}
	return res.Text
}
