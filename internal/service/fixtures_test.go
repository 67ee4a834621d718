package service

import (
	"context"
	"exam_platform_backend/internal/config"
	"exam_platform_backend/internal/grading"
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/util"
	"exam_platform_backend/pkg/database"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// testEnv 内存库 + 一套基础数据：
// teacher1 拥有 classA（student1 在班），paper 属于 classA，
// q1 为 mcq/Inference（答案 B），q2 为 gap/Vocabulary（答案 sun）。
type testEnv struct {
	db *gorm.DB

	userRepo       *repository.UserRepository
	classRepo      *repository.ClassRepository
	paperRepo      *repository.PaperRepository
	submissionRepo *repository.SubmissionRepository
	analyticsRepo  *repository.AnalyticsRepository

	auth        *AuthService
	classes     *ClassService
	papers      *PaperService
	submissions *SubmissionService
	analytics   *AnalyticsService

	admin, teacher1, teacher2, student1, student2 *model.User

	classA, classB *model.Class
	paper          *model.Paper
	q1, q2         *model.Question
}

// stubOpenGrader 固定分数的主观题评分者
type stubOpenGrader struct {
	score float64
	calls int
}

func (g *stubOpenGrader) GradeOpenAnswer(ctx context.Context, req grading.OpenAnswerRequest) (*grading.OpenAnswerResult, error) {
	g.calls++
	score := g.score
	return &grading.OpenAnswerResult{Score: &score}, nil
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithGrader(t, nil)
}

func newTestEnvWithGrader(t *testing.T, open grading.OpenAnswerGrader) *testEnv {
	t.Helper()

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	env := &testEnv{
		db:             db,
		userRepo:       repository.NewUserRepository(db),
		classRepo:      repository.NewClassRepository(db),
		paperRepo:      repository.NewPaperRepository(db),
		submissionRepo: repository.NewSubmissionRepository(db),
		analyticsRepo:  repository.NewAnalyticsRepository(db),
	}

	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
	grader := grading.NewGrader(grading.NewOpenAnswerPolicy(open, grading.DefaultSettings()))

	env.auth = NewAuthService(env.userRepo, cfg)
	env.classes = NewClassService(env.classRepo, env.userRepo)
	env.papers = NewPaperService(env.paperRepo, env.classRepo, env.submissionRepo)
	env.submissions = NewSubmissionService(env.paperRepo, env.submissionRepo, env.userRepo, grader)
	env.analytics = NewAnalyticsService(env.analyticsRepo, config.AnalyticsConfig{})

	env.admin = env.createUser(t, "admin", model.Admin)
	env.teacher1 = env.createUser(t, "teacher1", model.Teacher)
	env.teacher2 = env.createUser(t, "teacher2", model.Teacher)
	env.student1 = env.createUser(t, "student1", model.Student)
	env.student2 = env.createUser(t, "student2", model.Student)

	env.classA = &model.Class{Name: "Class A", TeacherID: env.teacher1.ID}
	require.NoError(t, env.classRepo.Create(env.classA))
	env.classB = &model.Class{Name: "Class B", TeacherID: env.teacher2.ID}
	require.NoError(t, env.classRepo.Create(env.classB))
	require.NoError(t, env.classRepo.Enroll(env.classA.ID, env.student1.ID))

	env.paper = env.createPaper(t, env.teacher1.ID, &env.classA.ID,
		model.Question{
			QuestionText:  "What does the angle show?",
			QuestionType:  "mcq",
			CorrectAnswer: datatypes.JSON(`"B"`),
			SkillTag:      strPtr("Inference"),
		},
		model.Question{
			QuestionText:  "Measured relative to the ____.",
			QuestionType:  "gap",
			CorrectAnswer: datatypes.JSON(`["sun"]`),
			SkillTag:      strPtr("Vocabulary"),
		},
	)
	env.q1 = &env.paper.Questions[0]
	env.q2 = &env.paper.Questions[1]

	return env
}

func (e *testEnv) createUser(t *testing.T, username string, role model.UserRole) *model.User {
	t.Helper()
	hashed, err := HashPassword("password123")
	require.NoError(t, err)
	user := &model.User{Username: username, Password: hashed, Role: role}
	require.NoError(t, e.userRepo.Create(user))
	return user
}

func (e *testEnv) createPaper(t *testing.T, createdBy uint, classID *uint, questions ...model.Question) *model.Paper {
	t.Helper()
	paper := &model.Paper{
		Title:     "Paper",
		ClassID:   classID,
		CreatedBy: createdBy,
		Questions: questions,
	}
	require.NoError(t, e.paperRepo.Create(paper))
	return paper
}

// submit 走完整的评分流程
func (e *testEnv) submit(t *testing.T, student *model.User, answers map[uint]string) *model.ScoreResult {
	t.Helper()
	inputs := make([]model.AnswerInput, 0, len(answers))
	for _, q := range e.paper.Questions {
		if a, ok := answers[q.ID]; ok {
			inputs = append(inputs, model.AnswerInput{QuestionID: q.ID, Answer: a})
		}
	}
	res, err := e.submissions.ScoreSubmission(context.Background(), e.paper.ID, student.ID, inputs)
	require.NoError(t, err)
	return res
}

// insertSubmission 直接写入指定分数与时间的提交，绕过评分
func (e *testEnv) insertSubmission(t *testing.T, studentID uint, score float64, at time.Time, answers ...model.Answer) *model.Submission {
	t.Helper()
	sub := &model.Submission{
		StudentID:   studentID,
		PaperID:     e.paper.ID,
		SubmittedAt: at,
		Score:       &score,
		Answers:     answers,
	}
	require.NoError(t, e.submissionRepo.CreateWithAnswers(sub))
	return sub
}

func claimsOf(u *model.User) *util.Claims {
	return &util.Claims{UserID: u.ID, Role: u.Role, Username: u.Username}
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }
