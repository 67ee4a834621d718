package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(Config{
		Provider: "openai",
		APIKey:   "test-key",
		BaseURL:  server.URL + "/v1",
	})
	require.NoError(t, err)
	return p
}

func chatCompletion(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 12,
			"total_tokens":      52,
		},
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var captured map[string]any
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"score":0.75,"rationale":"two of three points"}`))
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are an examiner.",
		Prompt:    "Grade this.",
		Schema:    scoreSchema,
		MaxTokens: 128,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"score":0.75,"rationale":"two of three points"}`, string(resp.Content))
	assert.Equal(t, 40, resp.Usage.InputTokens)
	assert.Equal(t, 12, resp.Usage.OutputTokens)
	assert.Equal(t, "gpt-4o-mini", p.ModelID())

	require.NotNil(t, captured)
	assert.Equal(t, "gpt-4o-mini", captured["model"])
	format, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])
	assert.Len(t, captured["messages"], 2)
}

func TestOpenAIProvider_SchemaMismatch(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"grade":"A"}`))
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "Grade this.", Schema: scoreSchema})
	var invalid *ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid))
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "slow down", "type": "rate_limit_error"},
		})
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "Grade this."})
	var rateLimit *ErrRateLimit
	assert.True(t, errors.As(err, &rateLimit))
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "upstream down", "type": "server_error"},
		})
	})

	_, err := p.Generate(context.Background(), Request{Prompt: "Grade this."})
	var unavailable *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable))
}

func TestOpenAIProvider_RequiresKey(t *testing.T) {
	_, err := NewOpenAIProvider(Config{Provider: "openai"})
	assert.Error(t, err)
}

func TestOpenAIProvider_StrictDefinitionOnlyOnWire(t *testing.T) {
	schema := &Schema{
		Name: "test-optional-rationale",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":     map[string]any{"type": "number"},
				"rationale": map[string]any{"type": "string"},
			},
			"required": []any{"score"},
		},
		Strict: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":     map[string]any{"type": "number"},
				"rationale": map[string]any{"type": "string"},
			},
			"required":             []any{"score", "rationale"},
			"additionalProperties": false,
		},
	}

	var captured map[string]any
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatCompletion(`{"score":0.8}`))
	})

	// 请求端使用 strict 定义，本地校验允许省略 rationale
	resp, err := p.Generate(context.Background(), Request{Prompt: "Grade this.", Schema: schema})
	require.NoError(t, err)
	assert.JSONEq(t, `{"score":0.8}`, string(resp.Content))

	format, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	jsonSchema, ok := format["json_schema"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, jsonSchema["strict"])
	wire, ok := jsonSchema["schema"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"score", "rationale"}, wire["required"])
	assert.Equal(t, false, wire["additionalProperties"])
}
