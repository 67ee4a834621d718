package grading

import "strings"

// Path 评分路径
type Path string

const (
	PathObjective Path = "objective"
	PathOpen      Path = "open"
)

var objectiveTypes = map[string]struct{}{
	"mcq":        {},
	"tf":         {},
	"true_false": {},
	"truefalse":  {},
	"matching":   {},
	"gap":        {},
	"cloze":      {},
	"table":      {},
	"objective":  {},
}

var openTypes = map[string]struct{}{
	"short":               {},
	"short_answer":        {},
	"long":                {},
	"open":                {},
	"summary":             {},
	"sentence_completion": {},
	"phrase_extraction":   {},
}

// Result 单题评分结果
type Result struct {
	IsCorrect bool    `json:"isCorrect"`
	Score     float64 `json:"score"`
}

// ClassifyType 按题型选择评分路径，题型大小写与首尾空白不敏感。
// 不在客观题集合中的题型一律走主观题路径。
func ClassifyType(questionType string) Path {
	if IsObjectiveType(questionType) {
		return PathObjective
	}
	return PathOpen
}

func IsObjectiveType(questionType string) bool {
	_, ok := objectiveTypes[strings.ToLower(strings.TrimSpace(questionType))]
	return ok
}

func IsOpenType(questionType string) bool {
	_, ok := openTypes[strings.ToLower(strings.TrimSpace(questionType))]
	return ok
}

// GradeObjective 客观题判分：规范化后的作答非空且在可接受答案集合中即得 1 分，否则 0 分
func GradeObjective(correctAnswer any, studentAnswer string) Result {
	student := Normalize(studentAnswer)
	if student == "" {
		return Result{}
	}
	for _, v := range ToList(correctAnswer) {
		if Normalize(v) == student {
			return Result{IsCorrect: true, Score: 1}
		}
	}
	return Result{}
}
