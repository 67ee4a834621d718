package service

import (
	"exam_platform_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassLifecycle(t *testing.T) {
	env := newTestEnv(t)
	teacher := claimsOf(env.teacher2)

	class, err := env.classes.CreateClass(teacher, "Class C")
	require.NoError(t, err)
	assert.Equal(t, env.teacher2.ID, class.TeacherID)

	require.NoError(t, env.classes.Enroll(teacher, class.ID, env.student2.ID))
	// 重复加入视为成功
	require.NoError(t, env.classes.Enroll(teacher, class.ID, env.student2.ID))

	students, err := env.classes.ListStudents(teacher, class.ID)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "student2", students[0].Username)

	classes, err := env.classes.ListClasses(teacher)
	require.NoError(t, err)
	assert.Len(t, classes, 2)

	classes, err = env.classes.ListClasses(claimsOf(env.admin))
	require.NoError(t, err)
	assert.Len(t, classes, 3)
}

func TestEnrollRules(t *testing.T) {
	env := newTestEnv(t)

	err := env.classes.Enroll(claimsOf(env.teacher1), env.classA.ID, env.teacher2.ID)
	assert.ErrorIs(t, err, util.ErrStudentNotEnrollable)

	err = env.classes.Enroll(claimsOf(env.teacher2), env.classA.ID, env.student2.ID)
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	err = env.classes.Enroll(claimsOf(env.teacher1), 9999, env.student2.ID)
	assert.ErrorIs(t, err, util.ErrClassNotFound)

	err = env.classes.Enroll(claimsOf(env.teacher1), env.classA.ID, 9999)
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	// 管理员可以操作任意班级
	assert.NoError(t, env.classes.Enroll(claimsOf(env.admin), env.classA.ID, env.student2.ID))
}
