package repository

import (
	"exam_platform_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

// CreateWithAnswers 提交与其答案作为一个整体写入
func (r *SubmissionRepository) CreateWithAnswers(sub *model.Submission) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(sub).Error
	})
}

func (r *SubmissionRepository) FindByID(id uint) (*model.Submission, error) {
	var sub model.Submission
	err := r.DB.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("answers.id ASC")
	}).First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepository) FindAnswer(id uint) (*model.Answer, error) {
	var answer model.Answer
	err := r.DB.First(&answer, id).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// OverrideAnswerScore 改写单题得分后，把提交总分重算为全部答案得分之和（空值按 0）
func (r *SubmissionRepository) OverrideAnswerScore(answer *model.Answer, score float64, isCorrect *bool) (float64, error) {
	var total float64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{"score": score}
		if isCorrect != nil {
			updates["is_correct"] = *isCorrect
		}
		if err := tx.Model(answer).Updates(updates).Error; err != nil {
			return err
		}

		var sum struct {
			Total *float64
		}
		if err := tx.Model(&model.Answer{}).
			Select("SUM(score) AS total").
			Where("submission_id = ?", answer.SubmissionID).
			Scan(&sum).Error; err != nil {
			return err
		}
		if sum.Total != nil {
			total = *sum.Total
		}

		return tx.Model(&model.Submission{}).
			Where("id = ?", answer.SubmissionID).
			Update("score", total).Error
	})
	return total, err
}

// StudentSubmission 学生提交列表中的一行
type StudentSubmission struct {
	ID          uint      `json:"id"`
	PaperID     uint      `json:"paper_id"`
	PaperTitle  string    `json:"paper_title"`
	SubmittedAt time.Time `json:"submitted_at"`
	Score       *float64  `json:"score"`
}

// ListByStudent 最新的在前；scope 限定可见试卷
func (r *SubmissionRepository) ListByStudent(studentID uint, scope Scope) ([]StudentSubmission, error) {
	rows := make([]StudentSubmission, 0)
	query := r.DB.Table("submissions AS s").
		Select("s.id AS id, s.paper_id AS paper_id, p.title AS paper_title, s.submitted_at AS submitted_at, s.score AS score").
		Joins("JOIN papers AS p ON p.id = s.paper_id AND p.deleted_at IS NULL").
		Where("s.deleted_at IS NULL").
		Where("s.student_id = ?", studentID)
	err := scope.apply(query).
		Order("s.submitted_at DESC, s.id DESC").
		Scan(&rows).Error
	return rows, err
}

// ForStudentPapers 学生在指定试卷上的全部提交，最新的在前
func (r *SubmissionRepository) ForStudentPapers(studentID uint, paperIDs []uint) ([]model.Submission, error) {
	var subs []model.Submission
	if len(paperIDs) == 0 {
		return subs, nil
	}
	err := r.DB.Where("student_id = ? AND paper_id IN ?", studentID, paperIDs).
		Order("submitted_at DESC, id DESC").
		Find(&subs).Error
	return subs, err
}
