package service

import (
	"errors"
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/util"
	"exam_platform_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaperService struct {
	PaperRepo      *repository.PaperRepository
	ClassRepo      *repository.ClassRepository
	SubmissionRepo *repository.SubmissionRepository
}

func NewPaperService(
	paperRepo *repository.PaperRepository,
	classRepo *repository.ClassRepository,
	submissionRepo *repository.SubmissionRepository,
) *PaperService {
	return &PaperService{
		PaperRepo:      paperRepo,
		ClassRepo:      classRepo,
		SubmissionRepo: submissionRepo,
	}
}

func (s *PaperService) CreatePaper(actor *util.Claims, req *model.CreatePaperRequest) (*model.Paper, error) {
	if req.ClassID != nil {
		class, err := s.ClassRepo.FindByID(*req.ClassID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.ErrClassNotFound
			}
			return nil, err
		}
		if !actor.IsAdmin() && class.TeacherID != actor.UserID {
			return nil, util.ErrPermissionDenied
		}
	}

	paper := &model.Paper{
		Title:          req.Title,
		ArticleContent: req.ArticleContent,
		ClassID:        req.ClassID,
		CreatedBy:      actor.UserID,
		Questions:      make([]model.Question, 0, len(req.Questions)),
	}
	for _, q := range req.Questions {
		paper.Questions = append(paper.Questions, model.Question{
			QuestionText:        q.QuestionText,
			QuestionType:        q.QuestionType,
			Options:             q.Options,
			CorrectAnswer:       q.CorrectAnswer,
			CorrectAnswerSchema: q.CorrectAnswerSchema,
			SkillTag:            q.SkillTag,
			Difficulty:          q.Difficulty,
		})
	}

	if err := s.PaperRepo.Create(paper); err != nil {
		return nil, err
	}
	logger.L().Info("Paper created",
		zap.Uint("paper_id", paper.ID),
		zap.Uint("created_by", actor.UserID),
		zap.Int("questions", len(paper.Questions)),
	)
	return paper, nil
}

// ListPapers 教师看自己创建的，管理员看全部，学生看所在班级的试卷
func (s *PaperService) ListPapers(actor *util.Claims) ([]model.PaperListItem, error) {
	var (
		papers []model.Paper
		err    error
	)
	switch actor.Role {
	case model.Admin:
		papers, err = s.PaperRepo.List(nil)
	case model.Teacher:
		papers, err = s.PaperRepo.List(&actor.UserID)
	default:
		return s.listForStudent(actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	items := make([]model.PaperListItem, 0, len(papers))
	for _, p := range papers {
		items = append(items, paperListItem(&p))
	}
	return items, nil
}

func (s *PaperService) listForStudent(studentID uint) ([]model.PaperListItem, error) {
	classIDs, err := s.ClassRepo.ClassIDsOfStudent(studentID)
	if err != nil {
		return nil, err
	}
	papers, err := s.PaperRepo.ListByClasses(classIDs)
	if err != nil {
		return nil, err
	}

	paperIDs := make([]uint, 0, len(papers))
	for _, p := range papers {
		paperIDs = append(paperIDs, p.ID)
	}
	subs, err := s.SubmissionRepo.ForStudentPapers(studentID, paperIDs)
	if err != nil {
		return nil, err
	}
	// subs 已按时间倒序，第一条即最新
	byPaper := make(map[uint][]model.Submission)
	for _, sub := range subs {
		byPaper[sub.PaperID] = append(byPaper[sub.PaperID], sub)
	}

	items := make([]model.PaperListItem, 0, len(papers))
	for _, p := range papers {
		item := paperListItem(&p)
		attempts := byPaper[p.ID]
		count := len(attempts)
		item.SubmittedCount = &count
		item.Status = "pending"
		if count > 0 {
			latest := attempts[0]
			item.LatestScore = latest.Score
			item.LatestSubmissionID = &latest.ID
			item.Status = "completed"
		}
		items = append(items, item)
	}
	return items, nil
}

func paperListItem(p *model.Paper) model.PaperListItem {
	return model.PaperListItem{
		ID:        p.ID,
		Title:     p.Title,
		ClassID:   p.ClassID,
		CreatedBy: p.CreatedBy,
		CreatedAt: p.CreatedAt,
	}
}

// GetPaper 学生看不到标准答案，但会附带本人最近一次提交
func (s *PaperService) GetPaper(actor *util.Claims, paperID uint) (*model.PaperDetail, error) {
	paper, err := s.PaperRepo.FindWithQuestions(paperID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPaperNotFound
		}
		return nil, err
	}
	if actor.Role == model.Teacher && paper.CreatedBy != actor.UserID {
		return nil, util.ErrPermissionDenied
	}

	detail := &model.PaperDetail{
		ID:             paper.ID,
		Title:          paper.Title,
		ArticleContent: paper.ArticleContent,
		ClassID:        paper.ClassID,
		CreatedBy:      paper.CreatedBy,
		Questions:      paper.Questions,
	}
	if actor.Role != model.Student {
		return detail, nil
	}

	for i := range detail.Questions {
		detail.Questions[i].CorrectAnswer = nil
		detail.Questions[i].CorrectAnswerSchema = nil
	}

	subs, err := s.SubmissionRepo.ForStudentPapers(actor.UserID, []uint{paper.ID})
	if err != nil {
		return nil, err
	}
	if len(subs) > 0 {
		latest, err := s.SubmissionRepo.FindByID(subs[0].ID)
		if err != nil {
			return nil, err
		}
		answers := make(map[uint]string, len(latest.Answers))
		for _, a := range latest.Answers {
			answers[a.QuestionID] = a.Content
		}
		detail.Submission = &model.LatestSubmission{
			ID:           latest.ID,
			Score:        latest.Score,
			SubmittedAt:  latest.SubmittedAt,
			AttemptCount: len(subs),
			Answers:      answers,
		}
	}
	return detail, nil
}

func (s *PaperService) requireOwner(actor *util.Claims, paperID uint) (*model.Paper, error) {
	paper, err := s.PaperRepo.FindByID(paperID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPaperNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() && paper.CreatedBy != actor.UserID {
		return nil, util.ErrPermissionDenied
	}
	return paper, nil
}

// UpdateQuestion 只更新请求中出现的字段
func (s *PaperService) UpdateQuestion(actor *util.Claims, questionID uint, req *model.UpdateQuestionRequest) (*model.Question, error) {
	question, err := s.PaperRepo.FindQuestion(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	if _, err := s.requireOwner(actor, question.PaperID); err != nil {
		return nil, err
	}

	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.QuestionType != nil {
		question.QuestionType = *req.QuestionType
	}
	if len(req.Options) > 0 {
		question.Options = req.Options
	}
	if len(req.CorrectAnswer) > 0 {
		question.CorrectAnswer = req.CorrectAnswer
	}
	if len(req.CorrectAnswerSchema) > 0 {
		question.CorrectAnswerSchema = req.CorrectAnswerSchema
	}
	if req.SkillTag != nil {
		question.SkillTag = req.SkillTag
	}
	if req.Difficulty != nil {
		question.Difficulty = req.Difficulty
	}

	if err := s.PaperRepo.UpdateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *PaperService) DeletePaper(actor *util.Claims, paperID uint) error {
	if _, err := s.requireOwner(actor, paperID); err != nil {
		return err
	}
	if err := s.PaperRepo.Delete(paperID); err != nil {
		return err
	}
	logger.L().Info("Paper deleted", zap.Uint("paper_id", paperID), zap.Uint("actor_id", actor.UserID))
	return nil
}
