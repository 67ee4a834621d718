package grading

import (
	"context"
	"exam_platform_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestGraderDispatch(t *testing.T) {
	mock := &mockGrader{score: scoreOf(0.7)}
	g := NewGrader(NewOpenAnswerPolicy(mock, DefaultSettings()))
	ctx := context.Background()

	mcq := &model.Question{QuestionType: "MCQ", CorrectAnswer: datatypes.JSON(`"B"`)}
	res, path := g.GradeQuestion(ctx, mcq, "b")
	assert.Equal(t, PathObjective, path)
	assert.Equal(t, Result{IsCorrect: true, Score: 1}, res)
	assert.Empty(t, mock.calls)

	short := &model.Question{
		QuestionType:        "short",
		QuestionText:        "Why?",
		CorrectAnswerSchema: datatypes.JSON(`{"points":["x"]}`),
	}
	res, path = g.GradeQuestion(ctx, short, "because x")
	assert.Equal(t, PathOpen, path)
	assert.Equal(t, Result{IsCorrect: true, Score: 0.7}, res)
	if assert.Len(t, mock.calls, 1) {
		assert.Equal(t, map[string]any{"points": []any{"x"}}, mock.calls[0].ExpectedPoints)
	}

	// 未知题型走主观题路径
	_, path = g.GradeQuestion(ctx, &model.Question{QuestionType: "essay"}, "text")
	assert.Equal(t, PathOpen, path)
}

func TestGraderWithoutOpenPolicy(t *testing.T) {
	g := NewGrader(nil)
	res, path := g.GradeQuestion(context.Background(), &model.Question{QuestionType: "short"}, "text")
	assert.Equal(t, PathOpen, path)
	assert.Equal(t, Result{}, res)
}
