package repository

import (
	"time"

	"gorm.io/gorm"
)

// AnalyticsRepository 只读统计查询，全部按 Scope 过滤
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// submissions s ⋈ papers p
func (r *AnalyticsRepository) submissions(scope Scope) *gorm.DB {
	query := r.DB.Table("submissions AS s").
		Joins("JOIN papers AS p ON p.id = s.paper_id AND p.deleted_at IS NULL").
		Where("s.deleted_at IS NULL")
	return scope.apply(query)
}

// answers a ⋈ submissions s ⋈ questions q ⋈ papers p
func (r *AnalyticsRepository) answers(scope Scope) *gorm.DB {
	query := r.DB.Table("answers AS a").
		Joins("JOIN submissions AS s ON s.id = a.submission_id AND s.deleted_at IS NULL").
		Joins("JOIN questions AS q ON q.id = a.question_id AND q.deleted_at IS NULL").
		Joins("JOIN papers AS p ON p.id = s.paper_id AND p.deleted_at IS NULL").
		Where("a.deleted_at IS NULL")
	return scope.apply(query)
}

type OverviewRow struct {
	TotalSubmissions int64
	AverageScore     *float64
	ActiveStudents   int64
}

func (r *AnalyticsRepository) Overview(scope Scope) (*OverviewRow, error) {
	var row OverviewRow
	err := r.submissions(scope).
		Select("COUNT(s.id) AS total_submissions, AVG(s.score) AS average_score, COUNT(DISTINCT s.student_id) AS active_students").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

type SkillErrorRow struct {
	Skill  string
	Errors int64
}

// SkillErrors 只统计判错的答案，错误数降序
func (r *AnalyticsRepository) SkillErrors(scope Scope, limit int) ([]SkillErrorRow, error) {
	rows := make([]SkillErrorRow, 0)
	err := r.answers(scope).
		Select("q.skill_tag AS skill, COUNT(a.id) AS errors").
		Where("a.is_correct = ?", false).
		Where("q.skill_tag IS NOT NULL AND q.skill_tag <> ''").
		Group("q.skill_tag").
		Order("errors DESC, skill ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// BreakdownRow 按某一维度分组的作答统计；未评分的答案只计入 Total
type BreakdownRow struct {
	StudentID uint
	Label     string
	Total     int64
	Correct   int64
	Errors    int64
}

const breakdownColumns = "COUNT(a.id) AS total, " +
	"SUM(CASE WHEN a.is_correct = ? THEN 1 ELSE 0 END) AS correct, " +
	"SUM(CASE WHEN a.is_correct = ? THEN 1 ELSE 0 END) AS errors"

func (r *AnalyticsRepository) SkillBreakdown(scope Scope) ([]BreakdownRow, error) {
	rows := make([]BreakdownRow, 0)
	err := r.answers(scope).
		Select("q.skill_tag AS label, "+breakdownColumns, true, false).
		Where("q.skill_tag IS NOT NULL AND q.skill_tag <> ''").
		Group("q.skill_tag").
		Scan(&rows).Error
	return rows, err
}

// TypeBreakdown 题型原样分组，大小写与空白由调用方归并
func (r *AnalyticsRepository) TypeBreakdown(scope Scope) ([]BreakdownRow, error) {
	rows := make([]BreakdownRow, 0)
	err := r.answers(scope).
		Select("q.question_type AS label, "+breakdownColumns, true, false).
		Group("q.question_type").
		Scan(&rows).Error
	return rows, err
}

// StudentSkillBreakdown 指定学生各自的技能统计
func (r *AnalyticsRepository) StudentSkillBreakdown(scope Scope, studentIDs []uint) ([]BreakdownRow, error) {
	rows := make([]BreakdownRow, 0)
	if len(studentIDs) == 0 {
		return rows, nil
	}
	err := r.answers(scope).
		Select("s.student_id AS student_id, q.skill_tag AS label, "+breakdownColumns, true, false).
		Where("s.student_id IN ?", studentIDs).
		Where("q.skill_tag IS NOT NULL AND q.skill_tag <> ''").
		Group("s.student_id, q.skill_tag").
		Scan(&rows).Error
	return rows, err
}

type PaperAverageRow struct {
	PaperID      uint
	Title        string
	AverageScore *float64
	Submissions  int64
}

func (r *AnalyticsRepository) PaperAverages(scope Scope) ([]PaperAverageRow, error) {
	rows := make([]PaperAverageRow, 0)
	err := r.submissions(scope).
		Select("p.id AS paper_id, p.title AS title, AVG(s.score) AS average_score, COUNT(s.id) AS submissions").
		Group("p.id, p.title").
		Scan(&rows).Error
	return rows, err
}

type StudentAverageRow struct {
	StudentID    uint
	Username     string
	AverageScore *float64
	ExamsTaken   int64
}

func (r *AnalyticsRepository) StudentAverages(scope Scope) ([]StudentAverageRow, error) {
	rows := make([]StudentAverageRow, 0)
	err := r.submissions(scope).
		Joins("JOIN users AS u ON u.id = s.student_id AND u.deleted_at IS NULL").
		Select("u.id AS student_id, u.username AS username, AVG(s.score) AS average_score, COUNT(s.id) AS exams_taken").
		Group("u.id, u.username").
		Scan(&rows).Error
	return rows, err
}

type SubmissionScoreRow struct {
	SubmissionID uint
	PaperID      uint
	PaperTitle   string
	Score        *float64
	SubmittedAt  time.Time
}

// RecentSubmissions 最新的在前（提交时间相同时 ID 大的在前）
func (r *AnalyticsRepository) RecentSubmissions(scope Scope, limit int) ([]SubmissionScoreRow, error) {
	rows := make([]SubmissionScoreRow, 0)
	query := r.submissions(scope).
		Select("s.id AS submission_id, p.id AS paper_id, p.title AS paper_title, s.score AS score, s.submitted_at AS submitted_at").
		Order("s.submitted_at DESC, s.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(&rows).Error
	return rows, err
}
