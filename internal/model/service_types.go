package model

import (
	"time"

	"gorm.io/datatypes"
)

type RegisterRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=64"`
	Password string   `json:"password" binding:"required,min=6"`
	FullName string   `json:"full_name"`
	Role     UserRole `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type CreateClassRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type EnrollRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
}

// QuestionInput 新建试卷时的题目
type QuestionInput struct {
	QuestionText        string         `json:"question_text" binding:"required"`
	QuestionType        string         `json:"question_type" binding:"required"`
	Options             datatypes.JSON `json:"options" swaggertype:"object"`
	CorrectAnswer       datatypes.JSON `json:"correct_answer" swaggertype:"object"`
	CorrectAnswerSchema datatypes.JSON `json:"correct_answer_schema" swaggertype:"object"`
	SkillTag            *string        `json:"skill_tag"`
	Difficulty          *int           `json:"difficulty"`
}

type CreatePaperRequest struct {
	Title          string          `json:"title" binding:"required,max=255"`
	ArticleContent string          `json:"article_content"`
	ClassID        *uint           `json:"class_id"`
	Questions      []QuestionInput `json:"questions" binding:"dive"`
}

// UpdateQuestionRequest 未提供的字段保持不变
type UpdateQuestionRequest struct {
	QuestionText        *string        `json:"question_text"`
	QuestionType        *string        `json:"question_type"`
	Options             datatypes.JSON `json:"options" swaggertype:"object"`
	CorrectAnswer       datatypes.JSON `json:"correct_answer" swaggertype:"object"`
	CorrectAnswerSchema datatypes.JSON `json:"correct_answer_schema" swaggertype:"object"`
	SkillTag            *string        `json:"skill_tag"`
	Difficulty          *int           `json:"difficulty"`
}

// PaperListItem 学生视图附带本人的提交情况
type PaperListItem struct {
	ID                 uint      `json:"id"`
	Title              string    `json:"title"`
	ClassID            *uint     `json:"class_id"`
	CreatedBy          uint      `json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	SubmittedCount     *int      `json:"submitted_count,omitempty"`
	LatestScore        *float64  `json:"latest_score,omitempty"`
	LatestSubmissionID *uint     `json:"latest_submission_id,omitempty"`
	Status             string    `json:"status,omitempty"` // completed | pending
}

// LatestSubmission 学生在该试卷上的最近一次提交
type LatestSubmission struct {
	ID           uint            `json:"id"`
	Score        *float64        `json:"score"`
	SubmittedAt  time.Time       `json:"submitted_at"`
	AttemptCount int             `json:"attempt_count"`
	Answers      map[uint]string `json:"answers"`
}

type PaperDetail struct {
	ID             uint              `json:"id"`
	Title          string            `json:"title"`
	ArticleContent string            `json:"article_content"`
	ClassID        *uint             `json:"class_id"`
	CreatedBy      uint              `json:"created_by"`
	Questions      []Question        `json:"questions"`
	Submission     *LatestSubmission `json:"submission"`
}

type AnswerInput struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
}

type SubmitRequest struct {
	Answers []AnswerInput `json:"answers" binding:"dive"`
}

type ScoreResult struct {
	SubmissionID uint    `json:"submission_id"`
	Score        float64 `json:"score"`
}

// OverrideScoreRequest 教师手动评分，分值不做范围限制
type OverrideScoreRequest struct {
	Score     *float64 `json:"score" binding:"required"`
	IsCorrect *bool    `json:"is_correct"`
}

type OverrideScoreResponse struct {
	Message    string  `json:"message"`
	TotalScore float64 `json:"total_score"`
}

type AnswerDetail struct {
	ID           uint     `json:"id"`
	QuestionID   uint     `json:"question_id"`
	QuestionText string   `json:"question_text"`
	QuestionType string   `json:"question_type"`
	MaxScore     int      `json:"max_score"`
	Answer       string   `json:"answer"`
	IsCorrect    *bool    `json:"is_correct"`
	Score        *float64 `json:"score"`
}

type SubmissionDetail struct {
	ID          uint           `json:"id"`
	StudentID   uint           `json:"student_id"`
	StudentName string         `json:"student_name"`
	PaperID     uint           `json:"paper_id"`
	PaperTitle  string         `json:"paper_title"`
	Score       *float64       `json:"score"`
	SubmittedAt time.Time      `json:"submitted_at"`
	Answers     []AnswerDetail `json:"answers"`
}
