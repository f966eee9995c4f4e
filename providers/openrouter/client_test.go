package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taniiarch/mediaintel/llm"
)

func TestChatReturnsFirstChoiceContent(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "X"}}],
			"usage": {"prompt_tokens": 7, "completion_tokens": 3, "total_tokens": 10}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "sk-test")
	res, err := c.Chat(context.Background(), llm.Request{
		Model:    "openai/gpt-4o-mini",
		Messages: []llm.Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if res.Text != "X" {
		t.Fatalf("Text = %q, want %q", res.Text, "X")
	}
	if res.Usage.TotalTokens != 10 {
		t.Fatalf("TotalTokens = %d, want 10", res.Usage.TotalTokens)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotBody["model"] != "openai/gpt-4o-mini" {
		t.Fatalf("model in payload = %v", gotBody["model"])
	}
}

func TestChatCustomModelInPayload(t *testing.T) {
	var gotBody chatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "ok"}}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Chat(context.Background(), llm.Request{
		Model:    "mistralai/mistral-small",
		Messages: []llm.Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if gotBody.Model != "mistralai/mistral-small" {
		t.Fatalf("Model = %q, want custom model", gotBody.Model)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" {
		t.Fatalf("Messages = %+v, want one user message", gotBody.Messages)
	}
}

func TestChatNon2xxReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("unauthorized"))
	}))
	defer srv.Close()

	c := New(srv.URL, "bad-key")
	_, err := c.Chat(context.Background(), llm.Request{
		Model:    "openai/gpt-4o-mini",
		Messages: []llm.Message{{Role: "user", Content: "hello"}},
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
	if apiErr.Body != "unauthorized" {
		t.Fatalf("Body = %q, want %q", apiErr.Body, "unauthorized")
	}
}

func TestChatEmptyChoicesIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	res, err := c.Chat(context.Background(), llm.Request{
		Model:    "openai/gpt-4o-mini",
		Messages: []llm.Message{{Role: "user", Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if res.Text != "" {
		t.Fatalf("Text = %q, want empty", res.Text)
	}
}

func TestChatMalformed2xxBodyIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Chat(context.Background(), llm.Request{
		Model:    "openai/gpt-4o-mini",
		Messages: []llm.Message{{Role: "user", Content: "hello"}},
	})
	if err == nil {
		t.Fatalf("expected decode error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("malformed 2xx must not be an APIError, got %v", err)
	}
	if !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("err = %v", err)
	}
}

func TestNewDefaultsBaseURL(t *testing.T) {
	c := New("", "k")
	if c.BaseURL != "https://openrouter.ai/api/v1" {
		t.Fatalf("BaseURL = %q", c.BaseURL)
	}
	c = New("https://example.com/v1/", "k")
	if c.BaseURL != "https://example.com/v1" {
		t.Fatalf("BaseURL = %q, want trailing slash trimmed", c.BaseURL)
	}
}
