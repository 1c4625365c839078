package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("username or email already registered")
	ErrWordNotFound        = errors.New("word not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrInsufficientWords   = errors.New("not enough words for a quiz, at least 4 required")
	ErrSelfDelete          = errors.New("admin cannot delete itself")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrAlreadyLearned      = errors.New("word already marked as learned")
	ErrEmptyQuizSubmission = errors.New("quiz submission contains no answers")
)
