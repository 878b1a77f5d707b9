package get_available_slots

import "errors"

var (
	// ErrAmenityNotFound возвращается, когда amenity не найден
	ErrAmenityNotFound = errors.New("get_available_slots: amenity not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
