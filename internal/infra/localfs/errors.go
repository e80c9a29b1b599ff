package localfs

import "errors"

var (
	ErrContextDone = errors.New("отмена контекста")

	ErrStorageDir = errors.New("каталог хранилища недоступен")

	ErrFileCreateFailed  = errors.New("не удалось создать файл")
	ErrFileOpenFailed    = errors.New("не удалось открыть файл")
	ErrEntryCreateFailed = errors.New("не удалось создать запись в архиве")
	ErrSealFailed        = errors.New("не удалось завершить архив")
	ErrRemoveFailed      = errors.New("не удалось удалить файл")
	ErrListFailed        = errors.New("не удалось прочитать каталог хранилища")

	ErrContainerClosed = errors.New("архив уже закрыт")
)
