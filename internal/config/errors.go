package config

import "errors"

var (
	ErrInit       = errors.New("ошибка инициализации конфигурации")
	ErrConfigFile = errors.New("не удалось прочитать файл конфигурации")
)
