package settings

import "errors"

var (
	// ErrInvalidLeadTime возвращается, когда срок предварительного
	// бронирования выходит за допустимый диапазон
	ErrInvalidLeadTime = errors.New("lead time out of range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
