package residents

import "errors"

var (
	// ErrResidentNotFound возвращается, когда житель не найден
	ErrResidentNotFound = errors.New("resident not found")

	// ErrEmptyImport возвращается, когда во входных данных нет ни одной валидной строки
	ErrEmptyImport = errors.New("import payload contains no residents")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
