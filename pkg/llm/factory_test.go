package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, Config{})
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = NewProvider(ctx, Config{Provider: "openai", APIKey: "k", Model: "gpt-4.1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", p.ModelID())

	p, err = NewProvider(ctx, Config{Provider: "anthropic", APIKey: "k"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ModelID())

	_, err = NewProvider(ctx, Config{Provider: "openai"})
	assert.Error(t, err)

	_, err = NewProvider(ctx, Config{Provider: "mistral", APIKey: "k"})
	assert.Error(t, err)
}
