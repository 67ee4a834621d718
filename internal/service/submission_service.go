package service

import (
	"context"
	"errors"
	"exam_platform_backend/internal/grading"
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/util"
	"exam_platform_backend/pkg/logger"
	"exam_platform_backend/pkg/monitoring"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 提交详情中每题展示的满分
const displayMaxScore = 10

type SubmissionService struct {
	PaperRepo      *repository.PaperRepository
	SubmissionRepo *repository.SubmissionRepository
	UserRepo       *repository.UserRepository
	Grader         *grading.Grader
}

func NewSubmissionService(
	paperRepo *repository.PaperRepository,
	submissionRepo *repository.SubmissionRepository,
	userRepo *repository.UserRepository,
	grader *grading.Grader,
) *SubmissionService {
	return &SubmissionService{
		PaperRepo:      paperRepo,
		SubmissionRepo: submissionRepo,
		UserRepo:       userRepo,
		Grader:         grader,
	}
}

// ScoreSubmission 逐题评分后一次性写入提交与答案。
// 不属于该试卷的题目直接跳过，不计入题数；总分 = 各题得分之和 / 已评题数 * 100，无可评题目时为 0。
func (s *SubmissionService) ScoreSubmission(ctx context.Context, paperID, studentID uint, inputs []model.AnswerInput) (*model.ScoreResult, error) {
	if _, err := s.PaperRepo.FindByID(paperID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPaperNotFound
		}
		return nil, err
	}

	questions, err := s.PaperRepo.QuestionsByPaper(paperID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}

	sub := &model.Submission{
		StudentID:   studentID,
		PaperID:     paperID,
		SubmittedAt: time.Now(),
		Answers:     make([]model.Answer, 0, len(inputs)),
	}

	var sum float64
	graded := 0
	for _, in := range inputs {
		q, ok := questions[in.QuestionID]
		if !ok {
			continue
		}
		res, _ := s.Grader.GradeQuestion(ctx, q, in.Answer)
		isCorrect, score := res.IsCorrect, res.Score
		sub.Answers = append(sub.Answers, model.Answer{
			QuestionID: q.ID,
			Content:    in.Answer,
			IsCorrect:  &isCorrect,
			Score:      &score,
		})
		sum += score
		graded++
	}

	total := 0.0
	if graded > 0 {
		total = sum / float64(graded) * 100
	}
	sub.Score = &total

	if err := s.SubmissionRepo.CreateWithAnswers(sub); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}
	monitoring.SubmissionScores.Observe(total)

	logger.L().Info("Submission scored",
		zap.Uint("submission_id", sub.ID),
		zap.Uint("paper_id", paperID),
		zap.Uint("student_id", studentID),
		zap.Int("graded", graded),
		zap.Int("skipped", len(inputs)-graded),
		zap.Float64("score", total),
	)

	return &model.ScoreResult{SubmissionID: sub.ID, Score: total}, nil
}

// OverrideAnswerScore 教师手动改分，提交总分改为全部答案得分之和
func (s *SubmissionService) OverrideAnswerScore(actor *util.Claims, answerID uint, score float64, isCorrect *bool) (float64, error) {
	answer, err := s.SubmissionRepo.FindAnswer(answerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, util.ErrAnswerNotFound
		}
		return 0, err
	}

	if !actor.IsAdmin() {
		sub, err := s.SubmissionRepo.FindByID(answer.SubmissionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, util.ErrSubmissionNotFound
			}
			return 0, err
		}
		if err := s.requirePaperOwner(actor, sub.PaperID); err != nil {
			return 0, err
		}
	}

	total, err := s.SubmissionRepo.OverrideAnswerScore(answer, score, isCorrect)
	if err != nil {
		return 0, fmt.Errorf("override answer score: %w", err)
	}

	logger.L().Info("Answer score overridden",
		zap.Uint("answer_id", answerID),
		zap.Uint("submission_id", answer.SubmissionID),
		zap.Uint("actor_id", actor.UserID),
		zap.Float64("score", score),
		zap.Float64("total_score", total),
	)
	return total, nil
}

func (s *SubmissionService) requirePaperOwner(actor *util.Claims, paperID uint) error {
	paper, err := s.PaperRepo.FindByID(paperID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrPaperNotFound
		}
		return err
	}
	if actor.IsAdmin() || paper.CreatedBy == actor.UserID {
		return nil
	}
	return util.ErrPermissionDenied
}

// GetSubmissionDetail 学生只能看自己的提交，教师只能看自己试卷的提交
func (s *SubmissionService) GetSubmissionDetail(actor *util.Claims, submissionID uint) (*model.SubmissionDetail, error) {
	sub, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}

	paper, err := s.PaperRepo.FindByID(sub.PaperID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPaperNotFound
		}
		return nil, err
	}

	switch actor.Role {
	case model.Admin:
	case model.Student:
		if sub.StudentID != actor.UserID {
			return nil, util.ErrPermissionDenied
		}
	default:
		if paper.CreatedBy != actor.UserID {
			return nil, util.ErrPermissionDenied
		}
	}

	questionIDs := make([]uint, 0, len(sub.Answers))
	for _, a := range sub.Answers {
		questionIDs = append(questionIDs, a.QuestionID)
	}
	questions, err := s.PaperRepo.FindQuestionsByIDs(questionIDs)
	if err != nil {
		return nil, err
	}

	studentName := ""
	if student, err := s.UserRepo.FindByID(sub.StudentID); err == nil {
		studentName = student.Username
	}

	detail := &model.SubmissionDetail{
		ID:          sub.ID,
		StudentID:   sub.StudentID,
		StudentName: studentName,
		PaperID:     paper.ID,
		PaperTitle:  paper.Title,
		Score:       sub.Score,
		SubmittedAt: sub.SubmittedAt,
		Answers:     make([]model.AnswerDetail, 0, len(sub.Answers)),
	}
	for _, a := range sub.Answers {
		item := model.AnswerDetail{
			ID:           a.ID,
			QuestionID:   a.QuestionID,
			QuestionText: "Unknown Question",
			QuestionType: "unknown",
			MaxScore:     displayMaxScore,
			Answer:       a.Content,
			IsCorrect:    a.IsCorrect,
			Score:        a.Score,
		}
		if q, ok := questions[a.QuestionID]; ok {
			item.QuestionText = q.QuestionText
			item.QuestionType = q.QuestionType
		}
		detail.Answers = append(detail.Answers, item)
	}
	return detail, nil
}

// ListStudentSubmissions 教师只能看到自己试卷上的提交
func (s *SubmissionService) ListStudentSubmissions(actor *util.Claims, studentID uint) ([]repository.StudentSubmission, error) {
	var scope repository.Scope
	switch actor.Role {
	case model.Admin:
		scope = repository.AllData()
	case model.Teacher:
		scope = repository.OwnedBy(actor.UserID)
	default:
		return nil, util.ErrPermissionDenied
	}
	return s.SubmissionRepo.ListByStudent(studentID, scope)
}
