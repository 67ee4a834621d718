package model

import (
	"time"

	"gorm.io/gorm"
)

// swagger:model Submission
type Submission struct {
	BaseModel
	StudentID   uint      `gorm:"index;not null" json:"studentId"`
	PaperID     uint      `gorm:"index;not null" json:"paperId"`
	SubmittedAt time.Time `gorm:"index" json:"submittedAt"`
	// Score 为空表示尚未评分
	Score   *float64 `json:"score"`
	Answers []Answer `gorm:"foreignKey:SubmissionID" json:"answers,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.SubmittedAt.IsZero() {
		s.SubmittedAt = time.Now()
	}
	return nil
}

// swagger:model Answer
type Answer struct {
	BaseModel
	SubmissionID uint     `gorm:"index;not null" json:"submissionId"`
	QuestionID   uint     `gorm:"index;not null" json:"questionId"`
	Content      string   `gorm:"column:answer;type:text" json:"answer"`
	IsCorrect    *bool    `json:"isCorrect"`
	Score        *float64 `json:"score"`
}

func (Answer) TableName() string {
	return "answers"
}
