package service

import (
	"context"
	"encoding/json"
	"errors"
	"exam_platform_backend/internal/grading"
	"exam_platform_backend/pkg/llm"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider 记录请求并返回固定内容
type mockProvider struct {
	content string
	err     error
	reqs    []llm.Request
}

func (m *mockProvider) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llm.Response{Content: json.RawMessage(m.content), Model: "mock"}, nil
}

func (m *mockProvider) ModelID() string { return "mock" }

func TestAIServiceGradeOpenAnswer(t *testing.T) {
	provider := &mockProvider{content: `{"score":0.65,"rationale":"covers the main point"}`}
	svc := NewAIService(provider, 0)

	res, err := svc.GradeOpenAnswer(context.Background(), grading.OpenAnswerRequest{
		QuestionText:   "Why do bees dance?",
		ExpectedPoints: []any{"share food location", "direction and distance"},
		StudentAnswer:  "to tell others where flowers are",
		Strictness:     grading.StrictnessStrict,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Score)
	assert.Equal(t, 0.65, *res.Score)
	assert.Equal(t, "covers the main point", res.Rationale)

	require.Len(t, provider.reqs, 1)
	req := provider.reqs[0]
	assert.Equal(t, 512, req.MaxTokens)
	assert.Same(t, openAnswerSchema, req.Schema)
	assert.Contains(t, req.Prompt, "Why do bees dance?")
	assert.Contains(t, req.Prompt, "- share food location\n- direction and distance")
	assert.Contains(t, req.Prompt, "to tell others where flowers are")
	assert.Contains(t, req.Prompt, strictnessGuides[grading.StrictnessStrict])
}

func TestAIServiceErrors(t *testing.T) {
	_, err := NewAIService(nil, 0).GradeOpenAnswer(context.Background(), grading.OpenAnswerRequest{})
	assert.ErrorIs(t, err, grading.ErrNoGrader)

	upstream := &llm.ErrProviderUnavailable{Err: errors.New("502")}
	_, err = NewAIService(&mockProvider{err: upstream}, 0).GradeOpenAnswer(context.Background(), grading.OpenAnswerRequest{})
	assert.ErrorIs(t, err, upstream)

	_, err = NewAIService(&mockProvider{content: `"not an object"`}, 0).GradeOpenAnswer(context.Background(), grading.OpenAnswerRequest{})
	var invalid *llm.ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid))
}

func TestAIServiceThroughPolicy(t *testing.T) {
	// 模型给出超范围分数时由策略截断
	provider := &mockProvider{content: `{"score":1.4,"rationale":"generous"}`}
	policy := grading.NewOpenAnswerPolicy(NewAIService(provider, 128), grading.DefaultSettings())

	res := policy.Grade(context.Background(), "Why?", nil, "because")
	assert.Equal(t, grading.Result{IsCorrect: true, Score: 1}, res)
}

func TestAIServiceOptionalRationale(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected grading.Result
	}{
		{name: "只有分数", content: `{"score":0.8}`, expected: grading.Result{IsCorrect: true, Score: 0.8}},
		{name: "多余字段忽略", content: `{"score":0.5,"rationale":"half","confidence":"high"}`, expected: grading.Result{IsCorrect: false, Score: 0.5}},
		{name: "缺少分数", content: `{"rationale":"no score"}`, expected: grading.Result{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]any{
					"id":      "chatcmpl-test",
					"object":  "chat.completion",
					"created": 1234567890,
					"model":   "gpt-4o-mini",
					"choices": []map[string]any{{
						"index":         0,
						"message":       map[string]any{"role": "assistant", "content": tt.content},
						"finish_reason": "stop",
					}},
				})
			}))
			defer server.Close()

			provider, err := llm.NewOpenAIProvider(llm.Config{Provider: "openai", APIKey: "test-key", BaseURL: server.URL + "/v1"})
			require.NoError(t, err)
			policy := grading.NewOpenAnswerPolicy(NewAIService(provider, 128), grading.DefaultSettings())

			res := policy.Grade(context.Background(), "Why do bees dance?", []any{"direction"}, "to show direction")
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestFormatExpectedPoints(t *testing.T) {
	assert.Contains(t, formatExpectedPoints(nil), "none provided")
	assert.Equal(t, "free text", formatExpectedPoints("free text"))
	assert.Equal(t, "- a\n- {\"k\":1}", formatExpectedPoints([]any{"a", map[string]any{"k": 1}}))
	assert.Equal(t, `{"points":["a"]}`, formatExpectedPoints(map[string]any{"points": []any{"a"}}))
}
