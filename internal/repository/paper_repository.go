package repository

import (
	"exam_platform_backend/internal/model"

	"gorm.io/gorm"
)

type PaperRepository struct {
	DB *gorm.DB
}

func NewPaperRepository(db *gorm.DB) *PaperRepository {
	return &PaperRepository{DB: db}
}

// Create 试卷与题目一并写入
func (r *PaperRepository) Create(paper *model.Paper) error {
	return r.DB.Create(paper).Error
}

func (r *PaperRepository) FindByID(id uint) (*model.Paper, error) {
	var paper model.Paper
	err := r.DB.First(&paper, id).Error
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *PaperRepository) FindWithQuestions(id uint) (*model.Paper, error) {
	var paper model.Paper
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).First(&paper, id).Error
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

// List createdBy 为 nil 时返回全部试卷
func (r *PaperRepository) List(createdBy *uint) ([]model.Paper, error) {
	var papers []model.Paper
	query := r.DB.Order("id DESC")
	if createdBy != nil {
		query = query.Where("created_by = ?", *createdBy)
	}
	err := query.Find(&papers).Error
	return papers, err
}

// ListByClasses 学生可见的试卷：布置给其所在班级的试卷
func (r *PaperRepository) ListByClasses(classIDs []uint) ([]model.Paper, error) {
	var papers []model.Paper
	if len(classIDs) == 0 {
		return papers, nil
	}
	err := r.DB.Where("class_id IN ?", classIDs).Order("id DESC").Find(&papers).Error
	return papers, err
}

// QuestionsByPaper 以题目 ID 为键
func (r *PaperRepository) QuestionsByPaper(paperID uint) (map[uint]*model.Question, error) {
	var questions []model.Question
	if err := r.DB.Where("paper_id = ?", paperID).Find(&questions).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}
	return byID, nil
}

func (r *PaperRepository) FindQuestion(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *PaperRepository) FindQuestionsByIDs(ids []uint) (map[uint]*model.Question, error) {
	byID := make(map[uint]*model.Question, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var questions []model.Question
	if err := r.DB.Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}
	return byID, nil
}

func (r *PaperRepository) UpdateQuestion(question *model.Question) error {
	return r.DB.Save(question).Error
}

// Delete 级联删除答案、提交、题目与试卷
func (r *PaperRepository) Delete(paperID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		submissionIDs := tx.Model(&model.Submission{}).Select("id").Where("paper_id = ?", paperID)
		if err := tx.Where("submission_id IN (?)", submissionIDs).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("paper_id = ?", paperID).Delete(&model.Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("paper_id = ?", paperID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Paper{}, paperID).Error
	})
}
