package llm

import (
	"context"
	"encoding/json"
)

// Provider 语言模型调用的最小抽象：给定提示词，返回符合 Schema 的 JSON
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

type Request struct {
	System string
	Prompt string
	// Schema 非空时要求模型输出符合该 JSON Schema 的对象，并在返回前校验
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Schema Name 用作各厂商结构化输出的名称，同时作为编译缓存的键。
// Definition 用于本地校验；Strict 非空时作为 OpenAI strict 模式的请求定义，
// 该模式要求全部字段 required 且禁止额外字段。
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
	Strict      map[string]any
}

// wireDefinition 发送给厂商的定义及是否启用 strict
func (s *Schema) wireDefinition() (map[string]any, bool) {
	if s.Strict != nil {
		return s.Strict, true
	}
	return s.Definition, false
}

type Response struct {
	Content json.RawMessage
	Model   string
	Usage   Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// resolveModel 未配置模型时使用默认值
func resolveModel(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
