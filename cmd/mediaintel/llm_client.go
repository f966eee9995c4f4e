package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/taniiarch/mediaintel/insight"
	"github.com/taniiarch/mediaintel/llm"
	"github.com/taniiarch/mediaintel/providers/openrouter"
)

const defaultModelHelp = insight.DefaultModel

type llmClientConfig struct {
	Endpoint       string
	APIKey         string
	RequestTimeout time.Duration
}

func llmClientFromCmd(cmd *cobra.Command) llm.Client {
	cfg := llmClientConfig{
		Endpoint:       strings.TrimSpace(flagOrViperString(cmd, "endpoint", "llm.endpoint")),
		APIKey:         strings.TrimSpace(flagOrViperString(cmd, "api-key", "llm.api_key")),
		RequestTimeout: flagOrViperDuration(cmd, "llm-request-timeout", "llm.request_timeout"),
	}

	c := openrouter.New(cfg.Endpoint, cfg.APIKey)
	c.Referer = "https://github.com/taniiarch/mediaintel"
	c.Title = "mediaintel"
	if cfg.RequestTimeout > 0 && c.HTTP != nil {
		c.HTTP.Timeout = cfg.RequestTimeout
	}
	return c
}

func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().String("endpoint", "https://openrouter.ai/api/v1", "Base URL for the OpenAI-compatible endpoint.")
	cmd.Flags().String("api-key", "", "API key (or MEDIAINTEL_LLM_API_KEY / llm.api_key in config).")
	cmd.Flags().String("model", "", "Model name as vendor/model pair (defaults to "+defaultModelHelp+").")
	cmd.Flags().Duration("llm-request-timeout", 90*time.Second, "Per-request HTTP timeout.")
}
