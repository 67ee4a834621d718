package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// Valid 判断角色是否在枚举范围内
func (r UserRole) Valid() bool {
	switch r {
	case Student, Teacher, Admin:
		return true
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	Username string   `gorm:"size:64;uniqueIndex;not null" json:"username"`
	FullName string   `gorm:"size:100" json:"fullName"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"size:20;default:'student';index" json:"role"`
}

func (User) TableName() string {
	return "users"
}
