package model

import "time"

// swagger:model Class
type Class struct {
	BaseModel
	Name      string `gorm:"size:100;not null" json:"name"`
	TeacherID uint   `gorm:"index;not null" json:"teacherId"`
}

func (Class) TableName() string {
	return "classes"
}

// ClassStudent 学生与班级的选课关系
type ClassStudent struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClassID   uint      `gorm:"uniqueIndex:idx_class_student;not null" json:"classId"`
	UserID    uint      `gorm:"uniqueIndex:idx_class_student;index;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ClassStudent) TableName() string {
	return "class_students"
}
