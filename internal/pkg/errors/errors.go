package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или непустой результат не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence используется, когда хранилище не смогло выполнить запись.
	// На границе HTTP всегда отображается в 422 без деталей хранилища.
	ErrPersistence = errors.New("persistence failure")
)
