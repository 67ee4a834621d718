package repository

import (
	"exam_platform_backend/pkg/database"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestScopeApply(t *testing.T) {
	db, err := database.OpenInMemory()
	require.NoError(t, err)

	classID := uint(7)
	tests := []struct {
		name     string
		scope    Scope
		contains []string
		vars     []interface{}
	}{
		{"零值不匹配任何数据", Scope{}, []string{"1 = 0"}, nil},
		{"全部数据", AllData(), nil, nil},
		{"教师本人试卷", OwnedBy(3), []string{"p.created_by = ?"}, []interface{}{uint(3)}},
		{"学生本人提交", SelfOnly(5), []string{"s.student_id = ?"}, []interface{}{uint(5)}},
		{"教师加班级过滤", OwnedBy(3).InClass(&classID), []string{"p.created_by = ?", "class_students"}, []interface{}{uint(3), uint(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows []map[string]interface{}
			stmt := tt.scope.apply(db.Session(&gorm.Session{DryRun: true}).Table("submissions s")).Find(&rows).Statement
			sql := stmt.SQL.String()
			for _, c := range tt.contains {
				assert.Contains(t, sql, c)
			}
			if tt.contains == nil {
				assert.NotContains(t, sql, "WHERE")
			}
			assert.Equal(t, tt.vars, stmt.Vars)
		})
	}
}

func TestScopeInClassCopies(t *testing.T) {
	classID := uint(1)
	base := OwnedBy(2)
	scoped := base.InClass(&classID)

	assert.Nil(t, base.ClassID)
	assert.Equal(t, &classID, scoped.ClassID)
	assert.Equal(t, "owned_by", scoped.Kind.String())
	assert.Equal(t, "none", Scope{}.Kind.String())
}
