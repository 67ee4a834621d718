package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrUsernameTaken        = errors.New("该用户名已被注册")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrInvalidRole          = errors.New("invalid role")
	ErrClassNotFound        = errors.New("class not found")
	ErrPaperNotFound        = errors.New("paper not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrAnswerNotFound       = errors.New("answer not found")
	ErrStudentNotEnrollable = errors.New("only students can be enrolled in a class")
)
