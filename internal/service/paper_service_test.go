package service

import (
	"exam_platform_backend/internal/model"
	"exam_platform_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCreatePaper(t *testing.T) {
	env := newTestEnv(t)
	req := &model.CreatePaperRequest{
		Title:   "Bees",
		ClassID: &env.classA.ID,
		Questions: []model.QuestionInput{
			{QuestionText: "Q1", QuestionType: "mcq", CorrectAnswer: datatypes.JSON(`"A"`), SkillTag: strPtr("Detail")},
			{QuestionText: "Q2", QuestionType: "short"},
		},
	}

	paper, err := env.papers.CreatePaper(claimsOf(env.teacher1), req)
	require.NoError(t, err)
	assert.Equal(t, env.teacher1.ID, paper.CreatedBy)

	stored, err := env.paperRepo.FindWithQuestions(paper.ID)
	require.NoError(t, err)
	require.Len(t, stored.Questions, 2)
	assert.Equal(t, "Q1", stored.Questions[0].QuestionText)
	assert.JSONEq(t, `"A"`, string(stored.Questions[0].CorrectAnswer))

	_, err = env.papers.CreatePaper(claimsOf(env.teacher2), req)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	missing := uint(9999)
	_, err = env.papers.CreatePaper(claimsOf(env.teacher1), &model.CreatePaperRequest{Title: "x", ClassID: &missing})
	assert.ErrorIs(t, err, util.ErrClassNotFound)
}

func TestListPapers(t *testing.T) {
	env := newTestEnv(t)
	env.createPaper(t, env.teacher2.ID, &env.classB.ID)

	items, err := env.papers.ListPapers(claimsOf(env.teacher1))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].Status)
	assert.Nil(t, items[0].SubmittedCount)

	items, err = env.papers.ListPapers(claimsOf(env.admin))
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListPapersForStudent(t *testing.T) {
	env := newTestEnv(t)

	items, err := env.papers.ListPapers(claimsOf(env.student1))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "pending", items[0].Status)
	assert.Equal(t, 0, *items[0].SubmittedCount)
	assert.Nil(t, items[0].LatestScore)

	env.submit(t, env.student1, map[uint]string{env.q1.ID: "B", env.q2.ID: "x"})
	latest := env.submit(t, env.student1, map[uint]string{env.q1.ID: "B", env.q2.ID: "sun"})

	items, err = env.papers.ListPapers(claimsOf(env.student1))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "completed", items[0].Status)
	assert.Equal(t, 2, *items[0].SubmittedCount)
	assert.Equal(t, latest.SubmissionID, *items[0].LatestSubmissionID)
	assert.InDelta(t, 100.0, *items[0].LatestScore, 1e-9)

	// 不在任何班级的学生看不到试卷
	items, err = env.papers.ListPapers(claimsOf(env.student2))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetPaper(t *testing.T) {
	env := newTestEnv(t)

	detail, err := env.papers.GetPaper(claimsOf(env.teacher1), env.paper.ID)
	require.NoError(t, err)
	require.Len(t, detail.Questions, 2)
	assert.NotEmpty(t, detail.Questions[0].CorrectAnswer)
	assert.Nil(t, detail.Submission)

	_, err = env.papers.GetPaper(claimsOf(env.teacher2), env.paper.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = env.papers.GetPaper(claimsOf(env.admin), 9999)
	assert.ErrorIs(t, err, util.ErrPaperNotFound)
}

func TestGetPaperForStudentHidesAnswers(t *testing.T) {
	env := newTestEnv(t)
	env.submit(t, env.student1, map[uint]string{env.q1.ID: "C"})
	res := env.submit(t, env.student1, map[uint]string{env.q1.ID: "B", env.q2.ID: "sun"})

	detail, err := env.papers.GetPaper(claimsOf(env.student1), env.paper.ID)
	require.NoError(t, err)
	for _, q := range detail.Questions {
		assert.Nil(t, q.CorrectAnswer)
		assert.Nil(t, q.CorrectAnswerSchema)
	}
	require.NotNil(t, detail.Submission)
	assert.Equal(t, res.SubmissionID, detail.Submission.ID)
	assert.Equal(t, 2, detail.Submission.AttemptCount)
	assert.Equal(t, map[uint]string{env.q1.ID: "B", env.q2.ID: "sun"}, detail.Submission.Answers)
}

func TestUpdateQuestion(t *testing.T) {
	env := newTestEnv(t)
	text := "Updated?"

	q, err := env.papers.UpdateQuestion(claimsOf(env.teacher1), env.q1.ID, &model.UpdateQuestionRequest{
		QuestionText:  &text,
		CorrectAnswer: datatypes.JSON(`["C","c."]`),
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated?", q.QuestionText)
	assert.Equal(t, "mcq", q.QuestionType)
	assert.Equal(t, "Inference", *q.SkillTag)

	// 新答案立即用于评分
	res := env.submit(t, env.student1, map[uint]string{env.q1.ID: "c"})
	assert.InDelta(t, 100.0, res.Score, 1e-9)

	_, err = env.papers.UpdateQuestion(claimsOf(env.teacher2), env.q1.ID, &model.UpdateQuestionRequest{QuestionText: &text})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
	_, err = env.papers.UpdateQuestion(claimsOf(env.teacher1), 9999, &model.UpdateQuestionRequest{})
	assert.ErrorIs(t, err, util.ErrQuestionNotFound)
}

func TestDeletePaper(t *testing.T) {
	env := newTestEnv(t)
	res := env.submit(t, env.student1, map[uint]string{env.q1.ID: "B"})

	err := env.papers.DeletePaper(claimsOf(env.teacher2), env.paper.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	require.NoError(t, env.papers.DeletePaper(claimsOf(env.teacher1), env.paper.ID))

	_, err = env.paperRepo.FindByID(env.paper.ID)
	assert.Error(t, err)
	_, err = env.submissionRepo.FindByID(res.SubmissionID)
	assert.Error(t, err)
	_, err = env.paperRepo.FindQuestion(env.q1.ID)
	assert.Error(t, err)

	var answers int64
	require.NoError(t, env.db.Model(&model.Answer{}).Where("submission_id = ?", res.SubmissionID).Count(&answers).Error)
	assert.Zero(t, answers)
}
