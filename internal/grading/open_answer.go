package grading

import (
	"context"
	"errors"
	"exam_platform_backend/pkg/logger"
	"exam_platform_backend/pkg/monitoring"
	"exam_platform_backend/pkg/tracing"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// PassThreshold 主观题得分不低于该值即判为正确
const PassThreshold = 0.6

// Strictness 主观题评分宽严程度
type Strictness string

const (
	StrictnessStrict   Strictness = "strict"
	StrictnessModerate Strictness = "moderate"
	StrictnessLenient  Strictness = "lenient"
)

// ParseStrictness 非法取值回退为 moderate
func ParseStrictness(s string) Strictness {
	switch Strictness(strings.ToLower(strings.TrimSpace(s))) {
	case StrictnessStrict:
		return StrictnessStrict
	case StrictnessLenient:
		return StrictnessLenient
	default:
		return StrictnessModerate
	}
}

var ErrNoGrader = errors.New("open answer grader not configured")

// OpenAnswerRequest 交给外部评分者的单题请求
type OpenAnswerRequest struct {
	QuestionText   string
	ExpectedPoints any
	StudentAnswer  string
	Strictness     Strictness
}

// OpenAnswerResult Score 为 nil 表示评分者没有给出可用分数
type OpenAnswerResult struct {
	Score     *float64
	Rationale string
}

// OpenAnswerGrader 主观题评分者（语言模型、规则、缓存等均可替换）
type OpenAnswerGrader interface {
	GradeOpenAnswer(ctx context.Context, req OpenAnswerRequest) (*OpenAnswerResult, error)
}

// Settings 主观题评分策略参数，可在运行时热更新
type Settings struct {
	MaxAnswerChars int
	Strictness     Strictness
	Timeout        time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		MaxAnswerChars: 1200,
		Strictness:     StrictnessModerate,
		Timeout:        30 * time.Second,
	}
}

// OpenAnswerPolicy 包裹评分者：空答案短路、截断、解码评分要点、
// 分数截断到 [0,1]，任何失败都按 0 分处理。
type OpenAnswerPolicy struct {
	grader OpenAnswerGrader

	mu       sync.RWMutex
	settings Settings
}

func NewOpenAnswerPolicy(grader OpenAnswerGrader, settings Settings) *OpenAnswerPolicy {
	p := &OpenAnswerPolicy{grader: grader}
	p.UpdateSettings(settings)
	return p
}

func (p *OpenAnswerPolicy) UpdateSettings(s Settings) {
	def := DefaultSettings()
	if s.MaxAnswerChars <= 0 {
		s.MaxAnswerChars = def.MaxAnswerChars
	}
	if s.Strictness == "" {
		s.Strictness = def.Strictness
	}
	if s.Timeout <= 0 {
		s.Timeout = def.Timeout
	}

	p.mu.Lock()
	p.settings = s
	p.mu.Unlock()
}

func (p *OpenAnswerPolicy) Settings() Settings {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.settings
}

// Grade 对单道主观题评分，不向调用方传播评分者的失败
func (p *OpenAnswerPolicy) Grade(ctx context.Context, questionText string, expected any, answer string) Result {
	if strings.TrimSpace(answer) == "" {
		monitoring.GradedAnswers.WithLabelValues(string(PathOpen), "empty").Inc()
		return Result{}
	}

	settings := p.Settings()
	score, err := p.delegate(ctx, settings, OpenAnswerRequest{
		QuestionText:   questionText,
		ExpectedPoints: DecodeExpectedPoints(expected),
		StudentAnswer:  truncateRunes(answer, settings.MaxAnswerChars),
		Strictness:     settings.Strictness,
	})
	if err != nil {
		monitoring.DelegateFailures.Inc()
		monitoring.GradedAnswers.WithLabelValues(string(PathOpen), "failed").Inc()
		logger.L().Warn("open answer grading failed, scoring 0", zap.Error(err))
		return Result{}
	}

	outcome := "incorrect"
	if score >= PassThreshold {
		outcome = "correct"
	}
	monitoring.GradedAnswers.WithLabelValues(string(PathOpen), outcome).Inc()
	return Result{IsCorrect: score >= PassThreshold, Score: score}
}

func (p *OpenAnswerPolicy) delegate(ctx context.Context, settings Settings, req OpenAnswerRequest) (score float64, err error) {
	if p.grader == nil {
		return 0, ErrNoGrader
	}

	// 评分者 panic 同样按失败处理，不中断整份试卷的评分
	defer func() {
		if r := recover(); r != nil {
			score, err = 0, fmt.Errorf("open answer grader panicked: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, settings.Timeout)
	defer cancel()

	ctx, span := tracing.Tracer.Start(ctx, "grading.open_answer")
	defer span.End()
	span.SetAttributes(
		attribute.String("grading.strictness", string(req.Strictness)),
		attribute.Int("grading.answer_chars", len([]rune(req.StudentAnswer))),
	)

	res, err := p.grader.GradeOpenAnswer(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	if res == nil || res.Score == nil {
		span.SetStatus(codes.Error, "missing score")
		return 0, errors.New("grader returned no score")
	}
	score = ClampScore(*res.Score)
	span.SetAttributes(attribute.Float64("grading.score", score))
	return score, nil
}

// ClampScore 将分数截断到 [0,1]，NaN 视为 0
func ClampScore(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
