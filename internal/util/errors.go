package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrNotEnrolled          = errors.New("not enrolled in this subject")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrQuizNotAvailable     = errors.New("quiz not active or not accessible")
	ErrQuizNotYetOpen       = errors.New("quiz not yet open")
	ErrQuizClosed           = errors.New("quiz no longer available")
	ErrQuizHasNoQuestions   = errors.New("quiz has no questions")
	ErrQuizAlreadySubmitted = errors.New("quiz already submitted")
	ErrAnswersRequired      = errors.New("answers payload is required")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrQuestionNotFound     = errors.New("question not found")
)
