package model

import "time"

// AnalyticsOverview 提交总览
type AnalyticsOverview struct {
	TotalSubmissions int64   `json:"total_submissions"`
	AverageScore     float64 `json:"average_score"`
	ActiveStudents   int64   `json:"active_students"`
}

// SkillErrors 技能错题数
type SkillErrors struct {
	Skill  string `json:"skill"`
	Errors int64  `json:"errors"`
}

// SkillAccuracy 技能维度的正确率，accuracy 为百分比
type SkillAccuracy struct {
	Skill    string  `json:"skill"`
	Errors   int64   `json:"errors"`
	Accuracy float64 `json:"accuracy"`
	Total    int64   `json:"total"`
}

// TypeAccuracy 题型维度的正确率
type TypeAccuracy struct {
	QuestionType string  `json:"question_type"`
	Errors       int64   `json:"errors"`
	Accuracy     float64 `json:"accuracy"`
	Total        int64   `json:"total"`
}

// PaperPerformance 试卷平均分
type PaperPerformance struct {
	PaperID      uint    `json:"paper_id"`
	Title        string  `json:"title"`
	AverageScore float64 `json:"average_score"`
	Submissions  int64   `json:"submissions"`
}

// StudentPerformance 学生平均分
type StudentPerformance struct {
	StudentID    uint    `json:"student_id"`
	Student      string  `json:"student"`
	AverageScore float64 `json:"average_score"`
	ExamsTaken   int64   `json:"exams_taken"`
}

// StudentWeakness 附带该生最薄弱的技能
type StudentWeakness struct {
	StudentPerformance
	WeakSkills []SkillAccuracy `json:"weak_skills"`
}

// WeakAreas 薄弱环节
type WeakAreas struct {
	Skills        []SkillAccuracy    `json:"skills"`
	QuestionTypes []TypeAccuracy     `json:"question_types"`
	Papers        []PaperPerformance `json:"papers"`
	Students      []StudentWeakness  `json:"students"`
}

// ReportOverview 学生个人总览，无提交时 latest_score 为 null
type ReportOverview struct {
	AverageScore     float64  `json:"average_score"`
	TotalSubmissions int64    `json:"total_submissions"`
	LatestScore      *float64 `json:"latest_score"`
}

// ScorePoint 单次提交的得分
type ScorePoint struct {
	SubmissionID uint      `json:"submission_id"`
	PaperID      uint      `json:"paper_id"`
	PaperTitle   string    `json:"paper_title"`
	Score        *float64  `json:"score"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// StudentReport 学生个人学习报告
type StudentReport struct {
	Overview      ReportOverview  `json:"overview"`
	Trend         []ScorePoint    `json:"trend"`  // 旧 → 新
	Recent        []ScorePoint    `json:"recent"` // 新 → 旧
	WeakSkills    []SkillErrors   `json:"weak_skills"`
	SkillAccuracy []SkillAccuracy `json:"skill_accuracy"`
	TypeAccuracy  []TypeAccuracy  `json:"type_accuracy"`
	Summary       string          `json:"summary"`
}
