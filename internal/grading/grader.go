package grading

import (
	"context"
	"exam_platform_backend/internal/model"
	"exam_platform_backend/pkg/monitoring"
)

// Grader 按题型把单题分派到客观题或主观题评分
type Grader struct {
	Open *OpenAnswerPolicy
}

func NewGrader(open *OpenAnswerPolicy) *Grader {
	return &Grader{Open: open}
}

// GradeQuestion 评分结果只依赖本题与本次作答，与同一提交中的其他题目无关
func (g *Grader) GradeQuestion(ctx context.Context, q *model.Question, answer string) (Result, Path) {
	if ClassifyType(q.QuestionType) == PathObjective {
		res := GradeObjective(q.CorrectAnswer, answer)
		outcome := "incorrect"
		if res.IsCorrect {
			outcome = "correct"
		}
		monitoring.GradedAnswers.WithLabelValues(string(PathObjective), outcome).Inc()
		return res, PathObjective
	}

	if g.Open == nil {
		return Result{}, PathOpen
	}
	return g.Open.Grade(ctx, q.QuestionText, q.ExpectedPoints(), answer), PathOpen
}
