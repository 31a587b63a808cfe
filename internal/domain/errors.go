package domain

import "errors"

var (
	ErrLessonNotFound = errors.New("lesson not found")
)

var (
	ErrInvalidName        = errors.New("invalid customer name")
	ErrInvalidPhone       = errors.New("invalid customer phone")
	ErrNoLessonsSelected  = errors.New("no lessons selected")
	ErrInsufficientSpaces = errors.New("not enough spaces")
	ErrInvalidLessonID    = errors.New("invalid lesson id")
)

var (
	ErrValidation = errors.New("validation error")
)
