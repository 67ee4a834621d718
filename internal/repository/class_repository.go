package repository

import (
	"exam_platform_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClassRepository struct {
	DB *gorm.DB
}

func NewClassRepository(db *gorm.DB) *ClassRepository {
	return &ClassRepository{DB: db}
}

func (r *ClassRepository) Create(class *model.Class) error {
	return r.DB.Create(class).Error
}

func (r *ClassRepository) FindByID(id uint) (*model.Class, error) {
	var class model.Class
	err := r.DB.First(&class, id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

// List teacherID 为 nil 时返回全部班级
func (r *ClassRepository) List(teacherID *uint) ([]model.Class, error) {
	var classes []model.Class
	query := r.DB.Order("id ASC")
	if teacherID != nil {
		query = query.Where("teacher_id = ?", *teacherID)
	}
	err := query.Find(&classes).Error
	return classes, err
}

// Enroll 重复加入不报错
func (r *ClassRepository) Enroll(classID, userID uint) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ClassStudent{ClassID: classID, UserID: userID}).Error
}

func (r *ClassRepository) ListStudents(classID uint) ([]model.User, error) {
	var users []model.User
	err := r.DB.Joins("JOIN class_students ON class_students.user_id = users.id").
		Where("class_students.class_id = ?", classID).
		Order("users.id ASC").
		Find(&users).Error
	return users, err
}

// ClassIDsOfStudent 学生所在的全部班级
func (r *ClassRepository) ClassIDsOfStudent(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.ClassStudent{}).
		Where("user_id = ?", userID).
		Pluck("class_id", &ids).Error
	return ids, err
}
