// Package seed 从 YAML 文件导入演示数据（用户、班级、试卷）。
// 按用户名、班级名、试卷标题判重，重复执行不会产生重复数据。
package seed

import (
	"encoding/json"
	"errors"
	"exam_platform_backend/internal/model"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type File struct {
	Users   []User  `yaml:"users"`
	Classes []Class `yaml:"classes"`
	Papers  []Paper `yaml:"papers"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	FullName string `yaml:"full_name"`
	Role     string `yaml:"role"`
}

type Class struct {
	Name     string   `yaml:"name"`
	Teacher  string   `yaml:"teacher"`
	Students []string `yaml:"students"`
}

type Paper struct {
	Title          string     `yaml:"title"`
	ArticleContent string     `yaml:"article_content"`
	Class          string     `yaml:"class"`
	CreatedBy      string     `yaml:"created_by"`
	Questions      []Question `yaml:"questions"`
}

// Question 的答案字段可以是任意 YAML 值，入库时转为 JSON
type Question struct {
	QuestionText        string `yaml:"question_text"`
	QuestionType        string `yaml:"question_type"`
	Options             any    `yaml:"options"`
	CorrectAnswer       any    `yaml:"correct_answer"`
	CorrectAnswerSchema any    `yaml:"correct_answer_schema"`
	SkillTag            string `yaml:"skill_tag"`
	Difficulty          *int   `yaml:"difficulty"`
}

// Stats 本次实际新建的记录数
type Stats struct {
	Users   int
	Classes int
	Papers  int
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Apply 在一个事务中导入
func Apply(db *gorm.DB, f *File) (*Stats, error) {
	stats := &Stats{}
	err := db.Transaction(func(tx *gorm.DB) error {
		users := make(map[string]*model.User, len(f.Users))
		for _, u := range f.Users {
			user, created, err := ensureUser(tx, u)
			if err != nil {
				return err
			}
			if created {
				stats.Users++
			}
			users[u.Username] = user
		}

		lookup := func(name string) (*model.User, error) {
			if u, ok := users[name]; ok {
				return u, nil
			}
			var user model.User
			if err := tx.Where("username = ?", name).First(&user).Error; err != nil {
				return nil, fmt.Errorf("seed user %q: %w", name, err)
			}
			users[name] = &user
			return &user, nil
		}

		classes := make(map[string]*model.Class, len(f.Classes))
		for _, c := range f.Classes {
			teacher, err := lookup(c.Teacher)
			if err != nil {
				return err
			}
			class, created, err := ensureClass(tx, c.Name, teacher.ID)
			if err != nil {
				return err
			}
			if created {
				stats.Classes++
			}
			classes[c.Name] = class

			for _, name := range c.Students {
				student, err := lookup(name)
				if err != nil {
					return err
				}
				link := model.ClassStudent{ClassID: class.ID, UserID: student.ID}
				if err := tx.Where(link).FirstOrCreate(&link).Error; err != nil {
					return err
				}
			}
		}

		for _, p := range f.Papers {
			author, err := lookup(p.CreatedBy)
			if err != nil {
				return err
			}
			created, err := ensurePaper(tx, p, author.ID, classes)
			if err != nil {
				return err
			}
			if created {
				stats.Papers++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func ensureUser(tx *gorm.DB, u User) (*model.User, bool, error) {
	var existing model.User
	err := tx.Where("username = ?", u.Username).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	role := model.UserRole(u.Role)
	if role == "" {
		role = model.Student
	}
	if !role.Valid() {
		return nil, false, fmt.Errorf("seed user %q: invalid role %q", u.Username, u.Role)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	user := &model.User{
		Username: u.Username,
		FullName: u.FullName,
		Password: string(hashed),
		Role:     role,
	}
	if err := tx.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func ensureClass(tx *gorm.DB, name string, teacherID uint) (*model.Class, bool, error) {
	var class model.Class
	err := tx.Where("name = ? AND teacher_id = ?", name, teacherID).First(&class).Error
	if err == nil {
		return &class, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	class = model.Class{Name: name, TeacherID: teacherID}
	if err := tx.Create(&class).Error; err != nil {
		return nil, false, err
	}
	return &class, true, nil
}

func ensurePaper(tx *gorm.DB, p Paper, authorID uint, classes map[string]*model.Class) (bool, error) {
	var count int64
	if err := tx.Model(&model.Paper{}).Where("title = ? AND created_by = ?", p.Title, authorID).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	paper := model.Paper{
		Title:          p.Title,
		ArticleContent: p.ArticleContent,
		CreatedBy:      authorID,
	}
	if p.Class != "" {
		class, ok := classes[p.Class]
		if !ok {
			return false, fmt.Errorf("seed paper %q: unknown class %q", p.Title, p.Class)
		}
		paper.ClassID = &class.ID
	}

	for _, q := range p.Questions {
		question := model.Question{
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			Difficulty:   q.Difficulty,
		}
		var err error
		if question.Options, err = toJSON(q.Options); err != nil {
			return false, err
		}
		if question.CorrectAnswer, err = toJSON(q.CorrectAnswer); err != nil {
			return false, err
		}
		if question.CorrectAnswerSchema, err = toJSON(q.CorrectAnswerSchema); err != nil {
			return false, err
		}
		if q.SkillTag != "" {
			tag := q.SkillTag
			question.SkillTag = &tag
		}
		paper.Questions = append(paper.Questions, question)
	}

	if err := tx.Create(&paper).Error; err != nil {
		return false, err
	}
	return true, nil
}

func toJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode seed value: %w", err)
	}
	return datatypes.JSON(b), nil
}
