package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Config 语言模型连接参数
type Config struct {
	Provider string // openai | anthropic | gemini
	BaseURL  string
	APIKey   string
	Model    string
	Timeout  time.Duration // 单次 HTTP 请求超时，0 表示不限制
}

func (c Config) httpClient() *http.Client {
	return &http.Client{Timeout: c.Timeout}
}

// NewProvider 按配置创建 Provider；Provider 为空时返回 (nil, nil)，表示不启用
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		p, err = NewOpenAIProvider(cfg)
	case "anthropic":
		p, err = NewAnthropicProvider(cfg)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}
	return p, nil
}
