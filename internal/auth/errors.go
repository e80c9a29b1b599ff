package auth

import "errors"

var (
	ErrInit           = errors.New("не удалось инициализировать аутентификацию")
	ErrUsersFile      = errors.New("не удалось прочитать файл пользователей")
	ErrPAMUnsupported = errors.New("PAM не поддерживается этой сборкой")
)
