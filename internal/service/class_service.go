package service

import (
	"errors"
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/util"

	"gorm.io/gorm"
)

type ClassService struct {
	ClassRepo *repository.ClassRepository
	UserRepo  *repository.UserRepository
}

func NewClassService(classRepo *repository.ClassRepository, userRepo *repository.UserRepository) *ClassService {
	return &ClassService{ClassRepo: classRepo, UserRepo: userRepo}
}

func (s *ClassService) CreateClass(actor *util.Claims, name string) (*model.Class, error) {
	class := &model.Class{Name: name, TeacherID: actor.UserID}
	if err := s.ClassRepo.Create(class); err != nil {
		return nil, err
	}
	return class, nil
}

// ListClasses 管理员看到全部班级
func (s *ClassService) ListClasses(actor *util.Claims) ([]model.Class, error) {
	if actor.IsAdmin() {
		return s.ClassRepo.List(nil)
	}
	return s.ClassRepo.List(&actor.UserID)
}

func (s *ClassService) ownedClass(actor *util.Claims, classID uint) (*model.Class, error) {
	class, err := s.ClassRepo.FindByID(classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrClassNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() && class.TeacherID != actor.UserID {
		return nil, util.ErrPermissionDenied
	}
	return class, nil
}

// Enroll 只能加入学生角色的用户，重复加入视为成功
func (s *ClassService) Enroll(actor *util.Claims, classID, studentID uint) error {
	if _, err := s.ownedClass(actor, classID); err != nil {
		return err
	}
	student, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	if student.Role != model.Student {
		return util.ErrStudentNotEnrollable
	}
	return s.ClassRepo.Enroll(classID, studentID)
}

func (s *ClassService) ListStudents(actor *util.Claims, classID uint) ([]model.User, error) {
	if _, err := s.ownedClass(actor, classID); err != nil {
		return nil, err
	}
	return s.ClassRepo.ListStudents(classID)
}
