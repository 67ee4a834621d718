package llm

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scoreSchema = &Schema{
	Name: "test-score",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":     map[string]any{"type": "number"},
			"rationale": map[string]any{"type": "string"},
		},
		"required":             []any{"score", "rationale"},
		"additionalProperties": false,
	},
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(nil, json.RawMessage(`anything`)))
	assert.NoError(t, Validate(scoreSchema, json.RawMessage(`{"score":0.4,"rationale":"ok"}`)))

	tests := []struct {
		name string
		raw  string
	}{
		{name: "非法 JSON", raw: `{"score":`},
		{name: "缺少字段", raw: `{"score":0.4}`},
		{name: "类型错误", raw: `{"score":"high","rationale":"ok"}`},
		{name: "多余字段", raw: `{"score":1,"rationale":"ok","extra":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(scoreSchema, json.RawMessage(tt.raw))
			require.Error(t, err)
			var invalid *ErrInvalidResponse
			assert.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.raw, string(invalid.Content))
		})
	}
}

func TestFinish(t *testing.T) {
	content, err := finish(scoreSchema, "Sure!\n```json\n{\"score\":1,\"rationale\":\"all points\"}\n```")
	require.NoError(t, err)
	assert.JSONEq(t, `{"score":1,"rationale":"all points"}`, string(content))

	// 无 Schema 时把文本编码为 JSON 字符串
	content, err = finish(nil, `plain "text"`)
	require.NoError(t, err)
	assert.Equal(t, `"plain \"text\""`, string(content))

	_, err = finish(scoreSchema, "I cannot grade this.")
	assert.Error(t, err)
}
