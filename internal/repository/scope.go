package repository

import "gorm.io/gorm"

// ScopeKind 数据可见范围
type ScopeKind int

const (
	// 零值不匹配任何数据
	ScopeNone ScopeKind = iota
	ScopeAll
	ScopeOwnedBy
	ScopeSelfOnly
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeAll:
		return "all"
	case ScopeOwnedBy:
		return "owned_by"
	case ScopeSelfOnly:
		return "self_only"
	default:
		return "none"
	}
}

// Scope 每个请求计算一次，贯穿所有统计查询
//
// OwnedBy: 只看 UserID 创建的试卷；SelfOnly: 只看 UserID 本人的提交；
// ClassID 非空时再限定为该班学生的提交。
type Scope struct {
	Kind    ScopeKind
	UserID  uint
	ClassID *uint
}

func AllData() Scope {
	return Scope{Kind: ScopeAll}
}

func OwnedBy(teacherID uint) Scope {
	return Scope{Kind: ScopeOwnedBy, UserID: teacherID}
}

func SelfOnly(studentID uint) Scope {
	return Scope{Kind: ScopeSelfOnly, UserID: studentID}
}

// InClass 返回附加班级过滤的副本
func (s Scope) InClass(classID *uint) Scope {
	s.ClassID = classID
	return s
}

// apply 要求查询中提交表别名为 s、试卷表别名为 p
func (s Scope) apply(db *gorm.DB) *gorm.DB {
	switch s.Kind {
	case ScopeAll:
	case ScopeOwnedBy:
		db = db.Where("p.created_by = ?", s.UserID)
	case ScopeSelfOnly:
		db = db.Where("s.student_id = ?", s.UserID)
	default:
		return db.Where("1 = 0")
	}
	if s.ClassID != nil {
		db = db.Where("s.student_id IN (SELECT user_id FROM class_students WHERE class_id = ?)", *s.ClassID)
	}
	return db
}
