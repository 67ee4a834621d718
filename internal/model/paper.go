package model

import (
	"strings"

	"gorm.io/datatypes"
)

// swagger:model Paper
type Paper struct {
	BaseModel
	Title          string     `gorm:"size:255;not null" json:"title"`
	ArticleContent string     `gorm:"type:text" json:"articleContent"`
	ClassID        *uint      `gorm:"index" json:"classId"`
	CreatedBy      uint       `gorm:"index;not null" json:"createdBy"`
	Questions      []Question `gorm:"foreignKey:PaperID" json:"questions,omitempty"`
}

func (Paper) TableName() string {
	return "papers"
}

// swagger:model Question
type Question struct {
	BaseModel
	PaperID      uint   `gorm:"index;not null" json:"paperId"`
	QuestionText string `gorm:"type:text" json:"questionText"`
	QuestionType string `gorm:"size:50" json:"questionType"`
	// Options / CorrectAnswer / CorrectAnswerSchema 以 JSON 原样存储
	Options             datatypes.JSON `json:"options,omitempty" swaggertype:"object"`
	CorrectAnswer       datatypes.JSON `json:"correctAnswer,omitempty" swaggertype:"object"`
	CorrectAnswerSchema datatypes.JSON `json:"correctAnswerSchema,omitempty" swaggertype:"object"`
	SkillTag            *string        `gorm:"size:100;index" json:"skillTag"`
	Difficulty          *int           `json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}

// NormalizedType 去除首尾空白并转小写
func (q *Question) NormalizedType() string {
	return strings.ToLower(strings.TrimSpace(q.QuestionType))
}

// ExpectedPoints 主观题评分要点：优先 correct_answer，否则 correct_answer_schema
func (q *Question) ExpectedPoints() datatypes.JSON {
	if !IsNullJSON(q.CorrectAnswer) {
		return q.CorrectAnswer
	}
	return q.CorrectAnswerSchema
}

// IsNullJSON 空值或 JSON null
func IsNullJSON(v datatypes.JSON) bool {
	s := strings.TrimSpace(string(v))
	return s == "" || s == "null"
}
