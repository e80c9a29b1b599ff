package infra

import "errors"

var (
	ErrNotFound  = errors.New("архив не найден")
	ErrMalformed = errors.New("повреждённый архив")
)
