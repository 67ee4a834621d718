package service

import (
	"context"
	"encoding/json"
	"exam_platform_backend/internal/grading"
	"exam_platform_backend/pkg/llm"
	"fmt"
	"strings"
)

var openAnswerProperties = map[string]any{
	"score": map[string]any{
		"type":        "number",
		"description": "Fraction of the expected points covered, between 0 and 1",
	},
	"rationale": map[string]any{
		"type":        "string",
		"description": "One or two sentences explaining the score",
	},
}

// openAnswerSchema 评分输出格式：只有 score 必填，rationale 可省略，多余字段忽略
var openAnswerSchema = &llm.Schema{
	Name:        "open-answer-grade",
	Description: "Score for a student's free-text answer",
	Definition: map[string]any{
		"type":       "object",
		"properties": openAnswerProperties,
		"required":   []any{"score"},
	},
	Strict: map[string]any{
		"type":                 "object",
		"properties":           openAnswerProperties,
		"required":             []any{"score", "rationale"},
		"additionalProperties": false,
	},
}

const openAnswerSystemPrompt = "You are an experienced reading-comprehension examiner. " +
	"Grade the student's answer against the expected points and reply with JSON only."

var strictnessGuides = map[grading.Strictness]string{
	grading.StrictnessStrict:   "Award credit only when an expected point is stated explicitly and accurately.",
	grading.StrictnessModerate: "Award credit when an expected point is clearly conveyed, even if paraphrased.",
	grading.StrictnessLenient:  "Award credit when the answer shows a reasonable grasp of an expected point.",
}

// AIService 基于语言模型的主观题评分者
type AIService struct {
	provider  llm.Provider
	maxTokens int
}

func NewAIService(provider llm.Provider, maxTokens int) *AIService {
	if maxTokens <= 0 {
		maxTokens = 512
	}
	return &AIService{provider: provider, maxTokens: maxTokens}
}

type openAnswerGrade struct {
	Score     *float64 `json:"score"`
	Rationale string   `json:"rationale"`
}

func (s *AIService) GradeOpenAnswer(ctx context.Context, req grading.OpenAnswerRequest) (*grading.OpenAnswerResult, error) {
	if s.provider == nil {
		return nil, grading.ErrNoGrader
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    openAnswerSystemPrompt,
		Prompt:    buildOpenAnswerPrompt(req),
		Schema:    openAnswerSchema,
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	var out openAnswerGrade
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &grading.OpenAnswerResult{Score: out.Score, Rationale: out.Rationale}, nil
}

func buildOpenAnswerPrompt(req grading.OpenAnswerRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question:\n%s\n\n", req.QuestionText)
	fmt.Fprintf(&b, "Expected points:\n%s\n\n", formatExpectedPoints(req.ExpectedPoints))
	fmt.Fprintf(&b, "Student answer:\n%s\n\n", req.StudentAnswer)
	fmt.Fprintf(&b, "Marking strictness: %s. %s\n", req.Strictness, strictnessGuides[req.Strictness])
	b.WriteString(`Return {"score": <number between 0 and 1>, "rationale": "<short reason>"}.`)
	return b.String()
}

func formatExpectedPoints(v any) string {
	switch val := v.(type) {
	case nil:
		return "(none provided; judge against the question itself)"
	case string:
		return val
	case []any:
		lines := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				lines = append(lines, "- "+s)
				continue
			}
			b, _ := json.Marshal(item)
			lines = append(lines, "- "+string(b))
		}
		return strings.Join(lines, "\n")
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
