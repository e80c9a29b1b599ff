package upload_service

import "errors"

var (
	ErrContextDone = errors.New("отмена контекста")

	ErrServerBusy = errors.New("сервер занят, достигнуто максимальное количество одновременных загрузок")

	ErrFileTooBig        = errors.New("превышен максимальный размер загрузки")
	ErrEmptyUpload       = errors.New("пустая загрузка")
	ErrUploadInterrupted = errors.New("загрузка прервана")

	ErrInvalidLink      = errors.New("некорректная ссылка")
	ErrArchiveNotFound  = errors.New("архив не найден")
	ErrMalformedArchive = errors.New("повреждённый архив")

	ErrFileCreateFailed = errors.New("не удалось создать файл")
	ErrFileWriteFailed  = errors.New("не удалось записать файл")
	ErrFileOpenFailed   = errors.New("не удалось открыть файл")
	ErrArchiveSeal      = errors.New("не удалось сохранить архив")
	ErrListFailed       = errors.New("не удалось получить список файлов")
)
