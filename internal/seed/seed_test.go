package seed

import (
	"exam_platform_backend/internal/model"
	"exam_platform_backend/pkg/database"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const sample = `
users:
  - {username: teacher1, password: teacher123, role: teacher}
  - {username: student1, password: student123}
classes:
  - name: Class A
    teacher: teacher1
    students: [student1]
papers:
  - title: Bees
    class: Class A
    created_by: teacher1
    questions:
      - question_text: Angle?
        question_type: mcq
        options: ["A. distance", "B. direction"]
        correct_answer: B
        skill_tag: Detail
        difficulty: 1
      - question_text: Relative to the ____.
        question_type: gap
        correct_answer: ["sun", "the sun"]
      - question_text: Why dance?
        question_type: short
        correct_answer_schema:
          points: [direction, distance]
`

func TestApply(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)

	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	stats, err := Apply(db, f)
	require.NoError(t, err)
	assert.Equal(t, &Stats{Users: 2, Classes: 1, Papers: 1}, stats)

	var student model.User
	require.NoError(t, db.Where("username = ?", "student1").First(&student).Error)
	assert.Equal(t, model.Student, student.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(student.Password), []byte("student123")))

	var paper model.Paper
	require.NoError(t, db.Preload("Questions").Where("title = ?", "Bees").First(&paper).Error)
	require.NotNil(t, paper.ClassID)
	require.Len(t, paper.Questions, 3)
	assert.JSONEq(t, `"B"`, string(paper.Questions[0].CorrectAnswer))
	assert.JSONEq(t, `["A. distance", "B. direction"]`, string(paper.Questions[0].Options))
	assert.Equal(t, "Detail", *paper.Questions[0].SkillTag)
	assert.Equal(t, 1, *paper.Questions[0].Difficulty)
	assert.JSONEq(t, `["sun", "the sun"]`, string(paper.Questions[1].CorrectAnswer))
	assert.Nil(t, paper.Questions[1].SkillTag)
	assert.JSONEq(t, `{"points":["direction","distance"]}`, string(paper.Questions[2].CorrectAnswerSchema))

	var enrolled int64
	require.NoError(t, db.Model(&model.ClassStudent{}).Where("user_id = ?", student.ID).Count(&enrolled).Error)
	assert.Equal(t, int64(1), enrolled)

	// 重复导入不产生重复数据
	stats, err = Apply(db, f)
	require.NoError(t, err)
	assert.Equal(t, &Stats{}, stats)
	require.NoError(t, db.Model(&model.ClassStudent{}).Count(&enrolled).Error)
	assert.Equal(t, int64(1), enrolled)
}

func TestApplyRollsBackOnError(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)

	f, err := Parse([]byte(`
users:
  - {username: teacher1, password: x, role: teacher}
classes:
  - {name: Class A, teacher: nobody}
`))
	require.NoError(t, err)

	_, err = Apply(db, f)
	assert.Error(t, err)

	var users int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.Zero(t, users)
}

func TestApplyRejectsInvalidRole(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)

	_, err = Apply(db, &File{Users: []User{{Username: "x", Password: "y", Role: "principal"}}})
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Users, 2)
	assert.Equal(t, []string{"student1"}, f.Classes[0].Students)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("users: {not: [a list"))
	assert.Error(t, err)
}
